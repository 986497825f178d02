package transformers

import (
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/models"
	"github.com/shopspring/decimal"
)

// OrderTransformer transforms order data from database into rest models
type OrderTransformer struct{}

// TransformToRest transforms an order and its payments into the order rest model
func (ot OrderTransformer) TransformToRest(order models.OrderDB, payments []models.OrderPaymentDB, amountPaid models.Money) models.OrderRest {
	rest := models.OrderRest{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Status:     order.Status,
		Subtotal:   toMoney(order.Subtotal, order.Currency),
		Total:      toMoney(order.Total, order.Currency),
		AmountPaid: amountPaid,
		Items:      make([]models.OrderItemRest, 0, len(order.Items)),
		Payments:   make([]models.OrderPaymentRest, 0, len(payments)),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}

	for _, item := range order.Items {
		rest.Items = append(rest.Items, models.OrderItemRest(item))
	}

	for _, payment := range payments {
		rest.Payments = append(rest.Payments, models.OrderPaymentRest{
			Amount:        toMoney(payment.Amount, payment.Currency),
			TransactionID: payment.TransactionID,
			PaymentMethod: payment.PaymentMethod,
			CreatedAt:     payment.CreatedAt,
		})
	}

	return rest
}

// amounts are written by this service, an unreadable one is shown as zero
func toMoney(amount, currency string) models.Money {
	m, err := models.ParseMoney(amount, currency)
	if err != nil {
		return models.NewMoney(decimal.Zero, currency)
	}
	return m
}
