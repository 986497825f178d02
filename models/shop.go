package models

// PageDB is a CMS page
type PageDB struct {
	ID        string `bson:"_id"`
	ReverseID string `bson:"reverse_id"`
	Path      string `bson:"path"`
	Published bool   `bson:"published"`
}

// PaymentChoice is a payment method offered to the customer at checkout
type PaymentChoice struct {
	Identifier string `json:"identifier"`
	Label      string `json:"label"`
	Disabled   bool   `json:"disabled"`
}

// PaymentChoicesRest is the response listing the payment methods for a cart
type PaymentChoicesRest struct {
	Choices       []PaymentChoice        `json:"choices"`
	Cart          *Cart                  `json:"cart"`
	RenderContext map[string]interface{} `json:"render_context"`
}

// PaymentRedirect tells the browser where to continue the checkout
type PaymentRedirect struct {
	NextURL string `json:"next_url"`
}
