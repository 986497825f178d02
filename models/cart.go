package models

import "time"

// CartDB is a customer's in-progress order as stored in the DB
type CartDB struct {
	ID              string       `bson:"_id"`
	CustomerID      string       `bson:"customer_id"`
	PaymentModifier string       `bson:"payment_modifier,omitempty"`
	Items           []CartItemDB `bson:"items"`
	UpdatedAt       time.Time    `bson:"updated_at,omitempty"`
}

// CartItemDB is a single product line of a cart
type CartItemDB struct {
	ProductCode string `bson:"product_code"`
	ProductName string `bson:"product_name"`
	Quantity    int    `bson:"quantity"`
	UnitPrice   string `bson:"unit_price"`
	Currency    string `bson:"currency"`
}

// Cart is a priced cart. Subtotal is the sum of its items, Total includes
// the extra rows added by cart modifiers.
type Cart struct {
	ID              string                  `json:"id"`
	CustomerID      string                  `json:"customer_id"`
	PaymentModifier string                  `json:"payment_modifier,omitempty"`
	Items           []CartItem              `json:"items"`
	Subtotal        Money                   `json:"subtotal"`
	Total           Money                   `json:"total"`
	ExtraRows       map[string]ExtraCartRow `json:"extra_rows,omitempty"`
}

// CartItem is a priced cart line
type CartItem struct {
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unit_price"`
	LineTotal   Money  `json:"line_total"`
}

// ExtraCartRow is a line added to the cart by a modifier, e.g. a handling fee
type ExtraCartRow struct {
	Label  string `json:"label"`
	Amount Money  `json:"amount"`
}
