package models

// PayPal payment intents and states used by this service
const (
	PayPalIntentSale          = "sale"
	PayPalPaymentMethodPayPal = "paypal"
	PayPalStateApproved       = "approved"
	PayPalLinkApprovalURL     = "approval_url"
)

// PayPalPaymentRequest is the request sent to PayPal to create a payment
type PayPalPaymentRequest struct {
	Intent       string              `json:"intent"        validate:"required,oneof=sale authorize order"`
	Payer        PayPalPayer         `json:"payer"`
	RedirectURLs PayPalRedirectURLs  `json:"redirect_urls"`
	Transactions []PayPalTransaction `json:"transactions"  validate:"required,min=1,dive"`
}

// PayPalPayer identifies how the customer pays
type PayPalPayer struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// PayPalRedirectURLs are the callbacks PayPal sends the customer back to
type PayPalRedirectURLs struct {
	ReturnURL string `json:"return_url" validate:"required,url"`
	CancelURL string `json:"cancel_url" validate:"required,url"`
}

// PayPalTransaction is a single transaction of a payment
type PayPalTransaction struct {
	ItemList    *PayPalItemList `json:"item_list,omitempty"`
	Amount      PayPalAmount    `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// PayPalItemList contains the purchased items of a transaction
type PayPalItemList struct {
	Items []PayPalItem `json:"items" validate:"dive"`
}

// PayPalItem is a purchased item
type PayPalItem struct {
	Name     string `json:"name"     validate:"required"`
	Quantity string `json:"quantity" validate:"required,numeric"`
	Price    string `json:"price"    validate:"required"`
	Currency string `json:"currency" validate:"required,len=3"`
}

// PayPalAmount is the amount object of a PayPal transaction
type PayPalAmount struct {
	Total    string               `json:"total"             validate:"required"`
	Currency string               `json:"currency"          validate:"required,len=3"`
	Details  *PayPalAmountDetails `json:"details,omitempty"`
}

// PayPalAmountDetails splits the total into the item subtotal and fees
type PayPalAmountDetails struct {
	Subtotal    string `json:"subtotal"               validate:"required"`
	HandlingFee string `json:"handling_fee,omitempty"`
}

// PayPalPayment is a payment resource as returned by PayPal
type PayPalPayment struct {
	ID           string              `json:"id"`
	Intent       string              `json:"intent,omitempty"`
	State        string              `json:"state"`
	Payer        *PayPalPayer        `json:"payer,omitempty"`
	Transactions []PayPalTransaction `json:"transactions"`
	Links        []PayPalLink        `json:"links,omitempty"`
	CreateTime   string              `json:"create_time,omitempty"`
	UpdateTime   string              `json:"update_time,omitempty"`
}

// PayPalLink is a HATEOAS link of a PayPal resource
type PayPalLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

// PayPalExecuteRequest is the body sent to PayPal to execute an approved payment
type PayPalExecuteRequest struct {
	PayerID string `json:"payer_id"`
}
