package service

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/dao"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/helpers"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/mappers"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/models"
	"github.com/go-playground/validator/v10"
)

// Route names of the provider endpoints, reversed with the namespace of the provider
const (
	ReturnRouteName = "shop-payment-return"
	CancelRouteName = "shop-payment-cancel"
)

var validate = validator.New()

// URLReverser builds the path of a named route
type URLReverser interface {
	Reverse(name string, pairs ...string) (string, error)
}

// PaymentProvider takes a cart through a PayPal payment and turns it into a paid order
type PaymentProvider struct {
	Variant    Variant
	Settings   config.PayPalSettings
	Client     PayPalSDK
	DAO        dao.DAO
	Modifiers  []*PaymentModifier
	Orders     OrderExtension
	URLs       URLReverser
	ShopWebURL string
	// NotifyOrderPaid is called once an order has been paid, failures are only logged
	NotifyOrderPaid func(order *models.OrderDB) error
	Now             func() time.Time
}

func (pp *PaymentProvider) now() time.Time {
	if pp.Now != nil {
		return pp.Now()
	}
	return time.Now().Truncate(time.Millisecond)
}

// Modifier returns the cart modifier of the provider's variant
func (pp *PaymentProvider) Modifier() *PaymentModifier {
	for _, modifier := range pp.Modifiers {
		if modifier.Identifier() == pp.Variant.Namespace {
			return modifier
		}
	}
	return &PaymentModifier{Variant: pp.Variant}
}

// BuildPaymentRequest creates the PayPal payment for a priced cart
func (pp *PaymentProvider) BuildPaymentRequest(cart *models.Cart, returnURL, cancelURL string) models.PayPalPaymentRequest {
	transaction := models.PayPalTransaction{
		Amount: models.PayPalAmount{
			Total:    cart.Total.String(),
			Currency: cart.Total.Currency,
		},
	}

	if pp.Variant.IncludeItemList {
		items := make([]models.PayPalItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			items = append(items, models.PayPalItem{
				Name:     item.ProductName,
				Quantity: strconv.Itoa(item.Quantity),
				Price:    item.UnitPrice.String(),
				Currency: item.UnitPrice.Currency,
			})
		}
		transaction.ItemList = &models.PayPalItemList{Items: items}

		// PayPal checks the items against the subtotal, fees go in the details
		if !cart.Total.Amount.Equal(cart.Subtotal.Amount) {
			transaction.Amount.Details = &models.PayPalAmountDetails{
				Subtotal:    cart.Subtotal.String(),
				HandlingFee: models.NewMoney(cart.Total.Amount.Sub(cart.Subtotal.Amount), cart.Total.Currency).String(),
			}
		}
	}

	if pp.Variant.IncludeDescription {
		transaction.Description = pp.Settings.PurchaseDescription
	}

	return models.PayPalPaymentRequest{
		Intent: models.PayPalIntentSale,
		Payer:  models.PayPalPayer{PaymentMethod: models.PayPalPaymentMethodPayPal},
		RedirectURLs: models.PayPalRedirectURLs{
			ReturnURL: returnURL,
			CancelURL: cancelURL,
		},
		Transactions: []models.PayPalTransaction{transaction},
	}
}

// GetPaymentRequest creates a PayPal payment for the cart and returns the URL
// the customer approves it at. On failure the URL of the cancel endpoint is
// returned alongside the error.
func (pp *PaymentProvider) GetPaymentRequest(req *http.Request, cartDB *models.CartDB) (string, ResponseType, error) {
	returnURL, err := pp.absoluteRoute(req, ReturnRouteName)
	if err != nil {
		return "", Error, err
	}
	cancelURL, err := pp.absoluteRoute(req, CancelRouteName)
	if err != nil {
		return "", Error, err
	}

	if cartDB.PaymentModifier != "" && cartDB.PaymentModifier != pp.Variant.Namespace {
		return cancelURL, InvalidData, fmt.Errorf("cart [%s] selected payment method [%s], not [%s]", cartDB.ID, cartDB.PaymentModifier, pp.Variant.Namespace)
	}

	cart, err := PriceCart(cartDB, pp.Modifiers...)
	if err != nil {
		return cancelURL, Error, err
	}

	if pp.Modifier().IsDisabled(cart) {
		return cancelURL, InvalidData, fmt.Errorf("payment method [%s] is not available for cart [%s]", pp.Variant.Namespace, cart.ID)
	}

	payment := pp.BuildPaymentRequest(cart, returnURL, cancelURL)
	if err := validate.Struct(payment); err != nil {
		return cancelURL, InvalidData, fmt.Errorf("invalid paypal payment request: [%v]", err)
	}

	created, err := pp.Client.CreatePayment(req.Context(), payment)
	if err != nil {
		return cancelURL, Error, fmt.Errorf("error creating paypal payment: [%v]", err)
	}

	approvalURL := approvalLink(created)
	if approvalURL == "" {
		return cancelURL, Error, fmt.Errorf("no approval url in paypal payment [%s]", created.ID)
	}

	log.InfoR(req, "paypal payment created", log.Data{
		"paypal_payment_id": created.ID,
		"cart_id":           cart.ID,
		"namespace":         pp.Variant.Namespace,
		"total":             cart.Total.String(),
	})

	return approvalURL, Success, nil
}

// HandleReturn executes the payment the customer approved at PayPal, creates
// the order and returns the URL to redirect to. An empty URL means the
// request failed and the ResponseType says how.
func (pp *PaymentProvider) HandleReturn(req *http.Request, cartID string) (string, ResponseType, error) {
	query := req.URL.Query()
	paymentID := query.Get("paymentId")
	payerID := query.Get("PayerID")
	if paymentID == "" || payerID == "" {
		return "", InvalidData, errors.New("paypal return request is missing paymentId or PayerID")
	}

	logData := log.Data{"paypal_payment_id": paymentID, "cart_id": cartID, "namespace": pp.Variant.Namespace}

	payment, err := pp.Client.GetPayment(req.Context(), paymentID)
	if err != nil {
		return pp.CancelURL(req), Error, fmt.Errorf("error finding paypal payment [%s]: [%v]", paymentID, err)
	}

	executed, err := pp.Client.ExecutePayment(req.Context(), payment.ID, payerID)
	if err != nil {
		return pp.CancelURL(req), Error, fmt.Errorf("error executing paypal payment [%s]: [%v]", paymentID, err)
	}

	if !strings.EqualFold(executed.State, models.PayPalStateApproved) {
		log.InfoR(req, "paypal payment was not approved", log.Data{"paypal_payment_id": paymentID, "state": executed.State})
		return pp.CancelURL(req), Success, nil
	}

	if cartID == "" {
		return "", NotFound, fmt.Errorf("no cart for approved paypal payment [%s]", paymentID)
	}
	cartDB, err := pp.DAO.GetCart(cartID)
	if err != nil {
		return "", Error, fmt.Errorf("error getting cart [%s]: [%v]", cartID, err)
	}
	if cartDB == nil {
		return "", NotFound, fmt.Errorf("cart [%s] for approved paypal payment [%s] not found", cartID, paymentID)
	}

	cart, err := PriceCart(cartDB, pp.Modifiers...)
	if err != nil {
		return "", Error, err
	}

	if _, err := ChargeAmount(cart.Total.Currency, executed); err != nil {
		return "", Error, err
	}

	order := mappers.MapCartToOrder(cart, generateID(), pp.now())
	if err := pp.DAO.CreateOrder(order); err != nil {
		return "", Error, fmt.Errorf("error writing order to DB: [%v]", err)
	}
	logData["order_id"] = order.ID

	// the cart is kept until the payment is recorded against the order
	if err := pp.Orders.AddPayPalPayment(order, executed, pp.Variant.Namespace); err != nil {
		return "", Error, err
	}

	if err := pp.DAO.DeleteCart(cart.ID); err != nil {
		log.ErrorR(req, fmt.Errorf("error deleting cart [%s]: [%v]", cart.ID, err), logData)
	}

	if pp.NotifyOrderPaid != nil {
		if err := pp.NotifyOrderPaid(order); err != nil {
			log.ErrorR(req, fmt.Errorf("error sending order paid notification: [%v]", err), logData)
		}
	}

	log.InfoR(req, "paypal payment approved and order created", logData)

	return pp.orderURL(order), Success, nil
}

// CancelURL resolves where a customer goes after cancelling a payment: the
// CMS cancel page, else the named cancel route, else a placeholder path
func (pp *PaymentProvider) CancelURL(req *http.Request) string {
	pageID := pp.Variant.CancelPageID

	page, err := pp.DAO.GetPublicPage(pageID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting cms page [%s]: [%v]", pageID, err))
	}
	if page != nil && page.Path != "" {
		return page.Path
	}

	if pp.Variant.CancelRouteName != "" && pp.URLs != nil {
		if path, err := pp.URLs.Reverse(pp.Variant.CancelRouteName); err == nil {
			return path
		}
	}

	log.InfoR(req, fmt.Sprintf("please add a page with an id `%s` to the CMS", pageID))
	return pp.Variant.CancelPlaceholderPath()
}

func (pp *PaymentProvider) absoluteRoute(req *http.Request, name string) (string, error) {
	path, err := pp.URLs.Reverse(name, "namespace", pp.Variant.Namespace)
	if err != nil {
		return "", fmt.Errorf("error building url of route [%s]: [%v]", name, err)
	}
	return helpers.BuildAbsoluteURI(req, path), nil
}

func (pp *PaymentProvider) orderURL(order *models.OrderDB) string {
	return strings.TrimRight(pp.ShopWebURL, "/") + "/orders/" + order.ID
}

func approvalLink(payment *models.PayPalPayment) string {
	for _, link := range payment.Links {
		if link.Rel == models.PayPalLinkApprovalURL {
			return link.Href
		}
	}
	return ""
}

// generateID generates an order id from a random number and the current time
func generateID() string {
	ranNumber := fmt.Sprintf("%07d", rand.Intn(9999999))
	millis := strconv.FormatInt(time.Now().UnixNano()/int64(time.Millisecond), 10)
	return ranNumber + millis
}
