package fixtures

import (
	"time"

	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/models"
)

func GetCartDB(paymentModifier string) *models.CartDB {
	return &models.CartDB{
		ID:              "cart1",
		CustomerID:      "customer1",
		PaymentModifier: paymentModifier,
		Items: []models.CartItemDB{
			{
				ProductCode: "SKU-1",
				ProductName: "Umbrella",
				Quantity:    2,
				UnitPrice:   "10.00",
				Currency:    "EUR",
			},
			{
				ProductCode: "SKU-2",
				ProductName: "Raincoat",
				Quantity:    1,
				UnitPrice:   "30.00",
				Currency:    "EUR",
			},
		},
	}
}

func GetEmptyCartDB(paymentModifier string) *models.CartDB {
	return &models.CartDB{
		ID:              "cart1",
		CustomerID:      "customer1",
		PaymentModifier: paymentModifier,
	}
}

func GetPayPalPayment(id, state, total, currency string) *models.PayPalPayment {
	return &models.PayPalPayment{
		ID:     id,
		Intent: models.PayPalIntentSale,
		State:  state,
		Transactions: []models.PayPalTransaction{
			{
				Amount: models.PayPalAmount{
					Total:    total,
					Currency: currency,
				},
			},
		},
		Links: []models.PayPalLink{
			{Href: "https://api.sandbox.paypal.com/v1/payments/payment/" + id, Rel: "self", Method: "GET"},
			{Href: "https://www.sandbox.paypal.com/cgi-bin/webscr?cmd=_express-checkout&token=EC-1", Rel: models.PayPalLinkApprovalURL, Method: "REDIRECT"},
		},
	}
}

func GetOrderDB(status string) *models.OrderDB {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &models.OrderDB{
		ID:         "order1",
		CustomerID: "customer1",
		Status:     status,
		Currency:   "EUR",
		Subtotal:   "50.00",
		Total:      "50.00",
		Items: []models.OrderItemDB{
			{ProductCode: "SKU-1", ProductName: "Umbrella", Quantity: 2, UnitPrice: "10.00", LineTotal: "20.00"},
			{ProductCode: "SKU-2", ProductName: "Raincoat", Quantity: 1, UnitPrice: "30.00", LineTotal: "30.00"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func GetOrderPaymentDB(amount string) models.OrderPaymentDB {
	return models.OrderPaymentDB{
		ID:            "payment1",
		OrderID:       "order1",
		Amount:        amount,
		Currency:      "EUR",
		TransactionID: "PAY-1",
		PaymentMethod: "paypal-payment",
		CreatedAt:     time.Date(2024, 3, 1, 12, 5, 0, 0, time.UTC),
	}
}
