package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in a single currency
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney returns a Money value with the currency code upper-cased
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: strings.ToUpper(currency)}
}

// ParseMoney parses a decimal string such as "10.50" into Money
func ParseMoney(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("amount [%s] format incorrect: [%v]", amount, err)
	}
	return NewMoney(d, currency), nil
}

// Add sums two amounts of the same currency
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != "" && other.Currency != "" && m.Currency != other.Currency {
		return Money{}, fmt.Errorf("cannot add [%s] to [%s]", other.Currency, m.Currency)
	}
	currency := m.Currency
	if currency == "" {
		currency = other.Currency
	}
	return NewMoney(m.Amount.Add(other.Amount), currency), nil
}

// IsZero reports whether the amount is zero
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// zeroDecimalCurrencies are the currencies PayPal only accepts whole amounts for
var zeroDecimalCurrencies = map[string]bool{
	"HUF": true,
	"JPY": true,
	"TWD": true,
}

// CurrencyExponent is the number of decimal places amounts in the currency have
func CurrencyExponent(currency string) int32 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return 0
	}
	return 2
}

// Exponent is the number of decimal places of the currency of m
func (m Money) Exponent() int32 {
	return CurrencyExponent(m.Currency)
}

// Round rounds the amount to the minor unit of its currency
func (m Money) Round() Money {
	return NewMoney(m.Amount.Round(m.Exponent()), m.Currency)
}

// IsMinorUnit reports whether the amount has no more decimal places than its currency allows
func (m Money) IsMinorUnit() bool {
	return m.Amount.Equal(m.Amount.Round(m.Exponent()))
}

// String formats the amount with the decimal places of its currency, as PayPal expects it
func (m Money) String() string {
	return m.Amount.StringFixed(m.Exponent())
}
