package mappers

import (
	"sort"
	"time"

	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/models"
	"github.com/google/uuid"
)

// MapCartToOrder populates a new order from a priced cart
func MapCartToOrder(cart *models.Cart, id string, now time.Time) *models.OrderDB {
	order := &models.OrderDB{
		ID:         id,
		CustomerID: cart.CustomerID,
		Status:     models.OrderStatusCreated,
		Currency:   cart.Total.Currency,
		Subtotal:   cart.Subtotal.String(),
		Total:      cart.Total.String(),
		Items:      make([]models.OrderItemDB, 0, len(cart.Items)),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, item := range cart.Items {
		order.Items = append(order.Items, models.OrderItemDB{
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			LineTotal:   item.LineTotal.String(),
		})
	}

	modifiers := make([]string, 0, len(cart.ExtraRows))
	for modifier := range cart.ExtraRows {
		modifiers = append(modifiers, modifier)
	}
	sort.Strings(modifiers)

	for _, modifier := range modifiers {
		row := cart.ExtraRows[modifier]
		order.ExtraRows = append(order.ExtraRows, models.OrderExtraRowDB{
			Modifier: modifier,
			Label:    row.Label,
			Amount:   row.Amount.String(),
		})
	}

	return order
}

// MapChargeToOrderPayment records a PayPal charge as a payment of an order
func MapChargeToOrderPayment(orderID, transactionID string, amount models.Money, paymentMethod string, now time.Time) *models.OrderPaymentDB {
	return &models.OrderPaymentDB{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		Amount:        amount.String(),
		Currency:      amount.Currency,
		TransactionID: transactionID,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
	}
}
