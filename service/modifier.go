package service

import (
	"fmt"

	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/models"
	"github.com/shopspring/decimal"
)

// PaymentModifierKey is the render context entry the modifiers flag themselves in
const PaymentModifierKey = "payment_modifiers"

var hundred = decimal.NewFromInt(100)

// PaymentModifier is the cart modifier which offers a PayPal variant as
// payment method and optionally adds a handling fee to the cart
type PaymentModifier struct {
	Variant              Variant
	CommissionPercentage *decimal.Decimal
}

// NewPaymentModifier creates a modifier for the variant. An empty commission
// means no handling fee.
func NewPaymentModifier(variant Variant, commission string) (*PaymentModifier, error) {
	modifier := &PaymentModifier{Variant: variant}
	if commission == "" {
		return modifier, nil
	}

	percentage, err := decimal.NewFromString(commission)
	if err != nil {
		return nil, fmt.Errorf("invalid commission percentage [%s] for [%s]: [%v]", commission, variant.Namespace, err)
	}
	if percentage.IsNegative() {
		return nil, fmt.Errorf("commission percentage for [%s] must not be negative", variant.Namespace)
	}
	modifier.CommissionPercentage = &percentage
	return modifier, nil
}

// Identifier is the payment method identifier of the modifier
func (m *PaymentModifier) Identifier() string {
	return m.Variant.Namespace
}

// GetChoice returns the choice offered at checkout
func (m *PaymentModifier) GetChoice() models.PaymentChoice {
	return models.PaymentChoice{
		Identifier: m.Identifier(),
		Label:      m.Variant.Label,
	}
}

// IsActive reports whether the customer selected this payment method
func (m *PaymentModifier) IsActive(cart *models.Cart) bool {
	return cart.PaymentModifier == m.Identifier()
}

// IsDisabled reports whether the payment method must not be offered for the cart
func (m *PaymentModifier) IsDisabled(cart *models.Cart) bool {
	return m.Variant.DisabledOnZeroTotal && cart.Total.IsZero()
}

// AddExtraCartRow adds the handling fee to an active cart
func (m *PaymentModifier) AddExtraCartRow(cart *models.Cart) error {
	if !m.IsActive(cart) || m.CommissionPercentage == nil || m.CommissionPercentage.IsZero() {
		return nil
	}

	fee := cart.Subtotal.Amount.Mul(*m.CommissionPercentage).Div(hundred)
	amount := models.NewMoney(fee, cart.Subtotal.Currency).Round()

	total, err := cart.Total.Add(amount)
	if err != nil {
		return fmt.Errorf("error adding handling fee of [%s]: [%v]", m.Identifier(), err)
	}

	if cart.ExtraRows == nil {
		cart.ExtraRows = make(map[string]models.ExtraCartRow)
	}
	cart.ExtraRows[m.Identifier()] = models.ExtraCartRow{
		Label:  fmt.Sprintf(m.Variant.FeeLabelFormat, m.CommissionPercentage.String()),
		Amount: amount,
	}
	cart.Total = total
	return nil
}

// UpdateRenderContext flags the payment method in the checkout render context
func (m *PaymentModifier) UpdateRenderContext(context map[string]interface{}) {
	modifiers, ok := context[PaymentModifierKey].(map[string]interface{})
	if !ok {
		modifiers = make(map[string]interface{})
		context[PaymentModifierKey] = modifiers
	}
	modifiers[m.Variant.RenderContextKey] = true
}
