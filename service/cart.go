package service

import (
	"fmt"

	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/models"
	"github.com/shopspring/decimal"
)

// PriceCart calculates subtotal and total of a stored cart and applies the
// modifiers to it
func PriceCart(cartDB *models.CartDB, modifiers ...*PaymentModifier) (*models.Cart, error) {
	cart := &models.Cart{
		ID:              cartDB.ID,
		CustomerID:      cartDB.CustomerID,
		PaymentModifier: cartDB.PaymentModifier,
		Items:           make([]models.CartItem, 0, len(cartDB.Items)),
	}

	subtotal := models.Money{Amount: decimal.Zero}
	for _, item := range cartDB.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity [%d] for product [%s]", item.Quantity, item.ProductCode)
		}

		unitPrice, err := models.ParseMoney(item.UnitPrice, item.Currency)
		if err != nil {
			return nil, fmt.Errorf("error pricing product [%s]: [%v]", item.ProductCode, err)
		}
		if !unitPrice.IsMinorUnit() {
			return nil, fmt.Errorf("unit price [%s] of product [%s] is finer than the minor unit of [%s]", item.UnitPrice, item.ProductCode, unitPrice.Currency)
		}
		lineTotal := models.NewMoney(unitPrice.Amount.Mul(decimal.NewFromInt(int64(item.Quantity))), unitPrice.Currency)

		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return nil, fmt.Errorf("error pricing cart [%s]: [%v]", cartDB.ID, err)
		}

		cart.Items = append(cart.Items, models.CartItem{
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
			LineTotal:   lineTotal,
		})
	}

	cart.Subtotal = subtotal
	cart.Total = subtotal

	for _, modifier := range modifiers {
		if err := modifier.AddExtraCartRow(cart); err != nil {
			return nil, err
		}
	}

	return cart, nil
}
