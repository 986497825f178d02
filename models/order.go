package models

import "time"

// OrderDB is a finalised purchase as stored in the DB
type OrderDB struct {
	ID         string            `bson:"_id"`
	CustomerID string            `bson:"customer_id"`
	Status     string            `bson:"status"`
	Currency   string            `bson:"currency"`
	Subtotal   string            `bson:"subtotal"`
	Total      string            `bson:"total"`
	Items      []OrderItemDB     `bson:"items"`
	ExtraRows  []OrderExtraRowDB `bson:"extra_rows,omitempty"`
	CreatedAt  time.Time         `bson:"created_at"`
	UpdatedAt  time.Time         `bson:"updated_at"`
}

// OrderItemDB is a product line copied from the cart
type OrderItemDB struct {
	ProductCode string `bson:"product_code"`
	ProductName string `bson:"product_name"`
	Quantity    int    `bson:"quantity"`
	UnitPrice   string `bson:"unit_price"`
	LineTotal   string `bson:"line_total"`
}

// OrderExtraRowDB is a modifier row copied from the cart
type OrderExtraRowDB struct {
	Modifier string `bson:"modifier"`
	Label    string `bson:"label"`
	Amount   string `bson:"amount"`
}

// OrderPaymentDB records an amount paid against an order
type OrderPaymentDB struct {
	ID            string    `bson:"_id"`
	OrderID       string    `bson:"order_id"`
	Amount        string    `bson:"amount"`
	Currency      string    `bson:"currency"`
	TransactionID string    `bson:"transaction_id"`
	PaymentMethod string    `bson:"payment_method"`
	CreatedAt     time.Time `bson:"created_at"`
}

// OrderRest is the public facing representation of an order
type OrderRest struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	Status     string             `json:"status"`
	StatusName string             `json:"status_name,omitempty"`
	Subtotal   Money              `json:"subtotal"`
	Total      Money              `json:"total"`
	AmountPaid Money              `json:"amount_paid"`
	Items      []OrderItemRest    `json:"items"`
	Payments   []OrderPaymentRest `json:"payments"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// OrderItemRest is an order line
type OrderItemRest struct {
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

// OrderPaymentRest is a payment recorded against an order
type OrderPaymentRest struct {
	Amount        Money     `json:"amount"`
	TransactionID string    `json:"transaction_id"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// Order statuses
const (
	OrderStatusCreated          = "created"
	OrderStatusPaidWithPayPal   = "paid_with_paypal"
	OrderStatusPaymentConfirmed = "payment_confirmed"
)
