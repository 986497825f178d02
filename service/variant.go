package service

import "fmt"

// Variant describes one flavour of the PayPal provider
type Variant struct {
	Namespace        string
	Label            string
	FeeLabelFormat   string
	RenderContextKey string
	// CancelPageID is the reverse id of the CMS page shown when a payment is cancelled
	CancelPageID string
	// CancelRouteName is the named route tried when the CMS page does not exist
	CancelRouteName     string
	IncludeItemList     bool
	IncludeDescription  bool
	DisabledOnZeroTotal bool
}

// PayPal is the standard PayPal checkout
var PayPal = Variant{
	Namespace:           "paypal-payment",
	Label:               "PayPal",
	FeeLabelFormat:      "plus %s%% handling fees",
	RenderContextKey:    "paypal_payment",
	CancelPageID:        "shop-cancel-payment",
	CancelRouteName:     "shop-cancel-payment",
	IncludeItemList:     true,
	IncludeDescription:  true,
	DisabledOnZeroTotal: true,
}

// PayPalPlus is the PayPal Plus checkout
var PayPalPlus = Variant{
	Namespace:        "paypalplus-payment",
	Label:            "PayPal Plus",
	FeeLabelFormat:   "+ %s%% handling fees",
	RenderContextKey: "paypalplus_payment",
	CancelPageID:     "cancel-payment",
}

// CancelPlaceholderPath is used when neither the CMS page nor the named route exist
func (v Variant) CancelPlaceholderPath() string {
	return fmt.Sprintf("/page__%s__not-found-in-cms", v.CancelPageID)
}
