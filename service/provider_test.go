package service

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/dao"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/fixtures"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/models"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

type stubReverser map[string]string

func (r stubReverser) Reverse(name string, pairs ...string) (string, error) {
	path, ok := r[name]
	if !ok {
		return "", fmt.Errorf("no route named [%s]", name)
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		path = strings.ReplaceAll(path, "{"+pairs[i]+"}", pairs[i+1])
	}
	return path, nil
}

var testRoutes = stubReverser{
	ReturnRouteName:       "/shop/{namespace}/return",
	CancelRouteName:       "/shop/{namespace}/cancel",
	"shop-cancel-payment": "/shop/cancel-payment/",
}

func createProvider(variant Variant, sdk PayPalSDK, mockDAO *dao.MockDAO, commission string) *PaymentProvider {
	return &PaymentProvider{
		Variant:    variant,
		Settings:   config.PayPalSettings{PurchaseDescription: "Umbrella shop purchase"},
		Client:     sdk,
		DAO:        mockDAO,
		Modifiers:  []*PaymentModifier{newModifier(PayPal, commission), newModifier(PayPalPlus, commission)},
		Orders:     createWorkflow(mockDAO),
		URLs:       testRoutes,
		ShopWebURL: "https://shop.example.com/",
		Now:        func() time.Time { return workflowNow },
	}
}

func pricedCart(paymentModifier, commission string) *models.Cart {
	cart, err := PriceCart(fixtures.GetCartDB(paymentModifier), newModifier(PayPal, commission), newModifier(PayPalPlus, commission))
	if err != nil {
		panic(err)
	}
	return cart
}

func TestUnitBuildPaymentRequest(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("PayPal payment lists the items and the description", t, func() {
		provider := createProvider(PayPal, NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), "")

		payment := provider.BuildPaymentRequest(pricedCart("paypal-payment", ""), "http://example.com/return", "http://example.com/cancel")

		So(payment.Intent, ShouldEqual, "sale")
		So(payment.Payer.PaymentMethod, ShouldEqual, "paypal")
		So(payment.RedirectURLs.ReturnURL, ShouldEqual, "http://example.com/return")
		So(payment.RedirectURLs.CancelURL, ShouldEqual, "http://example.com/cancel")
		So(payment.Transactions, ShouldHaveLength, 1)

		transaction := payment.Transactions[0]
		So(transaction.Amount.Total, ShouldEqual, "50.00")
		So(transaction.Amount.Currency, ShouldEqual, "EUR")
		So(transaction.Amount.Details, ShouldBeNil)
		So(transaction.Description, ShouldEqual, "Umbrella shop purchase")
		So(transaction.ItemList.Items, ShouldResemble, []models.PayPalItem{
			{Name: "Umbrella", Quantity: "2", Price: "10.00", Currency: "EUR"},
			{Name: "Raincoat", Quantity: "1", Price: "30.00", Currency: "EUR"},
		})
	})

	Convey("PayPal handling fee goes in the amount details", t, func() {
		provider := createProvider(PayPal, NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), "3")

		payment := provider.BuildPaymentRequest(pricedCart("paypal-payment", "3"), "http://example.com/return", "http://example.com/cancel")

		amount := payment.Transactions[0].Amount
		So(amount.Total, ShouldEqual, "51.50")
		So(amount.Details.Subtotal, ShouldEqual, "50.00")
		So(amount.Details.HandlingFee, ShouldEqual, "1.50")
	})

	Convey("Zero-decimal currency amounts have no decimals", t, func() {
		provider := createProvider(PayPal, NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), "2.5")
		cart, err := PriceCart(jpyCartDB("paypal-payment"), provider.Modifiers...)
		So(err, ShouldBeNil)

		payment := provider.BuildPaymentRequest(cart, "http://example.com/return", "http://example.com/cancel")

		transaction := payment.Transactions[0]
		So(transaction.Amount.Total, ShouldEqual, "5125")
		So(transaction.Amount.Currency, ShouldEqual, "JPY")
		So(transaction.Amount.Details.Subtotal, ShouldEqual, "5000")
		So(transaction.Amount.Details.HandlingFee, ShouldEqual, "125")
		So(transaction.ItemList.Items[0].Price, ShouldEqual, "1000")
		So(transaction.ItemList.Items[1].Price, ShouldEqual, "3000")
	})

	Convey("PayPal Plus payment only carries the amount", t, func() {
		provider := createProvider(PayPalPlus, NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), "3")

		payment := provider.BuildPaymentRequest(pricedCart("paypalplus-payment", "3"), "http://example.com/return", "http://example.com/cancel")

		transaction := payment.Transactions[0]
		So(transaction.ItemList, ShouldBeNil)
		So(transaction.Description, ShouldBeEmpty)
		So(transaction.Amount.Total, ShouldEqual, "51.50")
		So(transaction.Amount.Details, ShouldBeNil)
	})
}

func TestUnitGetPaymentRequest(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Payment is created and the approval url returned", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		provider := createProvider(PayPal, mockSDK, dao.NewMockDAO(mockCtrl), "")
		req := httptest.NewRequest("POST", "/shop/paypal-payment/purchase", nil)

		var sent models.PayPalPaymentRequest
		mockSDK.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payment models.PayPalPaymentRequest) (*models.PayPalPayment, error) {
			sent = payment
			return fixtures.GetPayPalPayment("PAY-1", "created", "50.00", "EUR"), nil
		})

		url, responseType, err := provider.GetPaymentRequest(req, fixtures.GetCartDB("paypal-payment"))
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(url, ShouldEqual, "https://www.sandbox.paypal.com/cgi-bin/webscr?cmd=_express-checkout&token=EC-1")
		So(sent.RedirectURLs.ReturnURL, ShouldEqual, "http://example.com/shop/paypal-payment/return")
		So(sent.RedirectURLs.CancelURL, ShouldEqual, "http://example.com/shop/paypal-payment/cancel")
	})

	Convey("Error creating the payment returns the cancel url", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		provider := createProvider(PayPalPlus, mockSDK, dao.NewMockDAO(mockCtrl), "")
		req := httptest.NewRequest("POST", "/shop/paypalplus-payment/purchase", nil)

		mockSDK.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("error"))

		url, responseType, err := provider.GetPaymentRequest(req, fixtures.GetCartDB("paypalplus-payment"))
		So(url, ShouldEqual, "http://example.com/shop/paypalplus-payment/cancel")
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error creating paypal payment: [error]")
	})

	Convey("Payment without approval link", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		provider := createProvider(PayPal, mockSDK, dao.NewMockDAO(mockCtrl), "")
		req := httptest.NewRequest("POST", "/shop/paypal-payment/purchase", nil)

		payment := fixtures.GetPayPalPayment("PAY-1", "created", "50.00", "EUR")
		payment.Links = payment.Links[:1]
		mockSDK.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(payment, nil)

		url, responseType, err := provider.GetPaymentRequest(req, fixtures.GetCartDB("paypal-payment"))
		So(url, ShouldEqual, "http://example.com/shop/paypal-payment/cancel")
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "no approval url in paypal payment [PAY-1]")
	})

	Convey("PayPal is not available for an empty cart", t, func() {
		provider := createProvider(PayPal, NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), "")
		req := httptest.NewRequest("POST", "/shop/paypal-payment/purchase", nil)

		url, responseType, err := provider.GetPaymentRequest(req, fixtures.GetEmptyCartDB("paypal-payment"))
		So(url, ShouldEqual, "http://example.com/shop/paypal-payment/cancel")
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "payment method [paypal-payment] is not available for cart [cart1]")
	})

	Convey("Invalid payment is not sent to PayPal", t, func() {
		provider := createProvider(PayPalPlus, NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), "")
		req := httptest.NewRequest("POST", "/shop/paypalplus-payment/purchase", nil)

		url, responseType, err := provider.GetPaymentRequest(req, fixtures.GetEmptyCartDB("paypalplus-payment"))
		So(url, ShouldEqual, "http://example.com/shop/paypalplus-payment/cancel")
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldStartWith, "invalid paypal payment request")
	})

	Convey("Cart cannot be priced", t, func() {
		provider := createProvider(PayPal, NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), "")
		req := httptest.NewRequest("POST", "/shop/paypal-payment/purchase", nil)
		cartDB := fixtures.GetCartDB("paypal-payment")
		cartDB.Items[0].UnitPrice = "ten"

		url, responseType, err := provider.GetPaymentRequest(req, cartDB)
		So(url, ShouldEqual, "http://example.com/shop/paypal-payment/cancel")
		So(responseType, ShouldEqual, Error)
		So(err, ShouldNotBeNil)
	})

	Convey("Cart selected another payment method", t, func() {
		provider := createProvider(PayPal, NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), "3")
		req := httptest.NewRequest("POST", "/shop/paypal-payment/purchase", nil)

		url, responseType, err := provider.GetPaymentRequest(req, fixtures.GetCartDB("paypalplus-payment"))
		So(url, ShouldEqual, "http://example.com/shop/paypal-payment/cancel")
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "cart [cart1] selected payment method [paypalplus-payment], not [paypal-payment]")
	})

	Convey("Callback routes cannot be built", t, func() {
		provider := createProvider(PayPal, NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), "")
		provider.URLs = stubReverser{}
		req := httptest.NewRequest("POST", "/shop/paypal-payment/purchase", nil)

		url, responseType, err := provider.GetPaymentRequest(req, fixtures.GetCartDB("paypal-payment"))
		So(url, ShouldBeEmpty)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldStartWith, "error building url of route [shop-payment-return]")
	})
}

func TestUnitHandleReturn(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	returnURL := "/shop/paypal-payment/return?paymentId=PAY-1&PayerID=PAYER-1"

	Convey("Missing paymentId has no side effects", t, func() {
		provider := createProvider(PayPal, NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), "")
		req := httptest.NewRequest("GET", "/shop/paypal-payment/return?PayerID=PAYER-1", nil)

		url, responseType, err := provider.HandleReturn(req, "cart1")
		So(url, ShouldBeEmpty)
		So(responseType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("Missing PayerID has no side effects", t, func() {
		provider := createProvider(PayPal, NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), "")
		req := httptest.NewRequest("GET", "/shop/paypal-payment/return?paymentId=PAY-1", nil)

		url, responseType, err := provider.HandleReturn(req, "cart1")
		So(url, ShouldBeEmpty)
		So(responseType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("Error finding the payment redirects to the CMS cancel page", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		provider := createProvider(PayPal, mockSDK, mockDAO, "")
		req := httptest.NewRequest("GET", returnURL, nil)

		mockSDK.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(nil, fmt.Errorf("error"))
		mockDAO.EXPECT().GetPublicPage("shop-cancel-payment").Return(&models.PageDB{Path: "/checkout/cancelled/"}, nil)

		url, responseType, err := provider.HandleReturn(req, "cart1")
		So(url, ShouldEqual, "/checkout/cancelled/")
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error finding paypal payment [PAY-1]: [error]")
	})

	Convey("Error executing the payment redirects to the cancel route", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		provider := createProvider(PayPal, mockSDK, mockDAO, "")
		req := httptest.NewRequest("GET", returnURL, nil)

		mockSDK.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(fixtures.GetPayPalPayment("PAY-1", "created", "50.00", "EUR"), nil)
		mockSDK.EXPECT().ExecutePayment(gomock.Any(), "PAY-1", "PAYER-1").Return(nil, fmt.Errorf("error"))
		mockDAO.EXPECT().GetPublicPage("shop-cancel-payment").Return(nil, nil)

		url, responseType, err := provider.HandleReturn(req, "cart1")
		So(url, ShouldEqual, "/shop/cancel-payment/")
		So(responseType, ShouldEqual, Error)
		So(err, ShouldNotBeNil)
	})

	Convey("Payment not approved redirects to the cancel placeholder", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		provider := createProvider(PayPalPlus, mockSDK, mockDAO, "")
		req := httptest.NewRequest("GET", "/shop/paypalplus-payment/return?paymentId=PAY-1&PayerID=PAYER-1", nil)

		mockSDK.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(fixtures.GetPayPalPayment("PAY-1", "created", "50.00", "EUR"), nil)
		mockSDK.EXPECT().ExecutePayment(gomock.Any(), "PAY-1", "PAYER-1").Return(fixtures.GetPayPalPayment("PAY-1", "failed", "50.00", "EUR"), nil)
		mockDAO.EXPECT().GetPublicPage("cancel-payment").Return(nil, nil)

		url, responseType, err := provider.HandleReturn(req, "cart1")
		So(url, ShouldEqual, "/page__cancel-payment__not-found-in-cms")
		So(responseType, ShouldEqual, Success)
		So(err, ShouldBeNil)
	})

	Convey("Approved payment turns the cart into a paid order", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		provider := createProvider(PayPal, mockSDK, mockDAO, "3")
		req := httptest.NewRequest("GET", returnURL, nil)

		var notified *models.OrderDB
		provider.NotifyOrderPaid = func(order *models.OrderDB) error {
			notified = order
			return nil
		}

		var created *models.OrderDB
		var payment *models.OrderPaymentDB
		mockSDK.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(fixtures.GetPayPalPayment("PAY-1", "created", "51.50", "EUR"), nil)
		mockSDK.EXPECT().ExecutePayment(gomock.Any(), "PAY-1", "PAYER-1").Return(fixtures.GetPayPalPayment("PAY-1", "approved", "51.50", "EUR"), nil)
		mockDAO.EXPECT().GetCart("cart1").Return(fixtures.GetCartDB("paypal-payment"), nil)
		gomock.InOrder(
			mockDAO.EXPECT().CreateOrder(gomock.Any()).DoAndReturn(func(order *models.OrderDB) error {
				created = order
				return nil
			}),
			mockDAO.EXPECT().DeleteCart("cart1").Return(nil),
			mockDAO.EXPECT().CreateOrderPayment(gomock.Any()).DoAndReturn(func(p *models.OrderPaymentDB) error {
				payment = p
				return nil
			}),
			mockDAO.EXPECT().UpdateOrderStatus(gomock.Any(), models.OrderStatusCreated, models.OrderStatusPaidWithPayPal).Return(nil),
		)

		url, responseType, err := provider.HandleReturn(req, "cart1")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(created.ID, ShouldNotBeEmpty)
		So(url, ShouldEqual, "https://shop.example.com/orders/"+created.ID)
		So(created.Total, ShouldEqual, "51.50")
		So(created.Status, ShouldEqual, models.OrderStatusPaidWithPayPal)
		So(created.ExtraRows, ShouldHaveLength, 1)
		So(payment.OrderID, ShouldEqual, created.ID)
		So(payment.Amount, ShouldEqual, "51.50")
		So(payment.TransactionID, ShouldEqual, "PAY-1")
		So(payment.PaymentMethod, ShouldEqual, "paypal-payment")
		So(notified, ShouldEqual, created)
	})

	Convey("Currency mismatch fails before an order is created", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		provider := createProvider(PayPal, mockSDK, mockDAO, "")
		req := httptest.NewRequest("GET", returnURL, nil)

		mockSDK.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(fixtures.GetPayPalPayment("PAY-1", "created", "50.00", "USD"), nil)
		mockSDK.EXPECT().ExecutePayment(gomock.Any(), "PAY-1", "PAYER-1").Return(fixtures.GetPayPalPayment("PAY-1", "approved", "50.00", "USD"), nil)
		mockDAO.EXPECT().GetCart("cart1").Return(fixtures.GetCartDB("paypal-payment"), nil)

		url, responseType, err := provider.HandleReturn(req, "cart1")
		So(url, ShouldBeEmpty)
		So(responseType, ShouldEqual, Error)
		So(errors.Is(err, ErrCurrencyMismatch), ShouldBeTrue)
	})

	Convey("Cart of an approved payment not found", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		provider := createProvider(PayPal, mockSDK, mockDAO, "")
		req := httptest.NewRequest("GET", returnURL, nil)

		mockSDK.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(fixtures.GetPayPalPayment("PAY-1", "created", "50.00", "EUR"), nil)
		mockSDK.EXPECT().ExecutePayment(gomock.Any(), "PAY-1", "PAYER-1").Return(fixtures.GetPayPalPayment("PAY-1", "approved", "50.00", "EUR"), nil)
		mockDAO.EXPECT().GetCart("cart1").Return(nil, nil)

		url, responseType, err := provider.HandleReturn(req, "cart1")
		So(url, ShouldBeEmpty)
		So(responseType, ShouldEqual, NotFound)
		So(err, ShouldNotBeNil)
	})

	Convey("Approved payment without a cart cookie", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		provider := createProvider(PayPal, mockSDK, dao.NewMockDAO(mockCtrl), "")
		req := httptest.NewRequest("GET", returnURL, nil)

		mockSDK.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(fixtures.GetPayPalPayment("PAY-1", "created", "50.00", "EUR"), nil)
		mockSDK.EXPECT().ExecutePayment(gomock.Any(), "PAY-1", "PAYER-1").Return(fixtures.GetPayPalPayment("PAY-1", "approved", "50.00", "EUR"), nil)

		url, responseType, err := provider.HandleReturn(req, "")
		So(url, ShouldBeEmpty)
		So(responseType, ShouldEqual, NotFound)
		So(err, ShouldNotBeNil)
	})

	Convey("Failing notification and cart removal do not fail the return", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		provider := createProvider(PayPal, mockSDK, mockDAO, "")
		provider.NotifyOrderPaid = func(_ *models.OrderDB) error {
			return fmt.Errorf("kafka unavailable")
		}
		req := httptest.NewRequest("GET", returnURL, nil)

		mockSDK.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(fixtures.GetPayPalPayment("PAY-1", "created", "50.00", "EUR"), nil)
		mockSDK.EXPECT().ExecutePayment(gomock.Any(), "PAY-1", "PAYER-1").Return(fixtures.GetPayPalPayment("PAY-1", "approved", "50.00", "EUR"), nil)
		mockDAO.EXPECT().GetCart("cart1").Return(fixtures.GetCartDB("paypal-payment"), nil)
		mockDAO.EXPECT().CreateOrder(gomock.Any()).Return(nil)
		mockDAO.EXPECT().DeleteCart("cart1").Return(fmt.Errorf("error"))
		mockDAO.EXPECT().CreateOrderPayment(gomock.Any()).Return(nil)
		mockDAO.EXPECT().UpdateOrderStatus(gomock.Any(), models.OrderStatusCreated, models.OrderStatusPaidWithPayPal).Return(nil)

		url, responseType, err := provider.HandleReturn(req, "cart1")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(url, ShouldStartWith, "https://shop.example.com/orders/")
	})

	Convey("Error recording the payment keeps the cart", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		provider := createProvider(PayPal, mockSDK, mockDAO, "")
		notified := false
		provider.NotifyOrderPaid = func(_ *models.OrderDB) error {
			notified = true
			return nil
		}
		req := httptest.NewRequest("GET", returnURL, nil)

		mockSDK.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(fixtures.GetPayPalPayment("PAY-1", "created", "50.00", "EUR"), nil)
		mockSDK.EXPECT().ExecutePayment(gomock.Any(), "PAY-1", "PAYER-1").Return(fixtures.GetPayPalPayment("PAY-1", "approved", "50.00", "EUR"), nil)
		mockDAO.EXPECT().GetCart("cart1").Return(fixtures.GetCartDB("paypal-payment"), nil)
		mockDAO.EXPECT().CreateOrder(gomock.Any()).Return(nil)
		mockDAO.EXPECT().CreateOrderPayment(gomock.Any()).Return(fmt.Errorf("error"))
		mockDAO.EXPECT().DeleteCart(gomock.Any()).Times(0)

		url, responseType, err := provider.HandleReturn(req, "cart1")
		So(url, ShouldBeEmpty)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error writing order payment to DB: [error]")
		So(notified, ShouldBeFalse)
	})

	Convey("Error updating the order status keeps the cart", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		provider := createProvider(PayPal, mockSDK, mockDAO, "")
		req := httptest.NewRequest("GET", returnURL, nil)

		mockSDK.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(fixtures.GetPayPalPayment("PAY-1", "created", "50.00", "EUR"), nil)
		mockSDK.EXPECT().ExecutePayment(gomock.Any(), "PAY-1", "PAYER-1").Return(fixtures.GetPayPalPayment("PAY-1", "approved", "50.00", "EUR"), nil)
		mockDAO.EXPECT().GetCart("cart1").Return(fixtures.GetCartDB("paypal-payment"), nil)
		mockDAO.EXPECT().CreateOrder(gomock.Any()).Return(nil)
		mockDAO.EXPECT().CreateOrderPayment(gomock.Any()).Return(nil)
		mockDAO.EXPECT().UpdateOrderStatus(gomock.Any(), models.OrderStatusCreated, models.OrderStatusPaidWithPayPal).Return(fmt.Errorf("error"))
		mockDAO.EXPECT().DeleteCart(gomock.Any()).Times(0)

		url, responseType, err := provider.HandleReturn(req, "cart1")
		So(url, ShouldBeEmpty)
		So(responseType, ShouldEqual, Error)
		So(err, ShouldNotBeNil)
	})

	Convey("Error writing the order", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		provider := createProvider(PayPal, mockSDK, mockDAO, "")
		req := httptest.NewRequest("GET", returnURL, nil)

		mockSDK.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(fixtures.GetPayPalPayment("PAY-1", "created", "50.00", "EUR"), nil)
		mockSDK.EXPECT().ExecutePayment(gomock.Any(), "PAY-1", "PAYER-1").Return(fixtures.GetPayPalPayment("PAY-1", "approved", "50.00", "EUR"), nil)
		mockDAO.EXPECT().GetCart("cart1").Return(fixtures.GetCartDB("paypal-payment"), nil)
		mockDAO.EXPECT().CreateOrder(gomock.Any()).Return(fmt.Errorf("error"))

		url, responseType, err := provider.HandleReturn(req, "cart1")
		So(url, ShouldBeEmpty)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error writing order to DB: [error]")
	})
}

func TestUnitCancelURL(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	req := httptest.NewRequest("GET", "/shop/paypal-payment/cancel", nil)

	Convey("Published CMS page", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetPublicPage("shop-cancel-payment").Return(&models.PageDB{Path: "/checkout/cancelled/"}, nil)

		So(createProvider(PayPal, nil, mockDAO, "").CancelURL(req), ShouldEqual, "/checkout/cancelled/")
	})

	Convey("Named route when there is no page", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetPublicPage("shop-cancel-payment").Return(nil, nil)

		So(createProvider(PayPal, nil, mockDAO, "").CancelURL(req), ShouldEqual, "/shop/cancel-payment/")
	})

	Convey("Placeholder when neither page nor route exist", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetPublicPage("shop-cancel-payment").Return(nil, nil)
		provider := createProvider(PayPal, nil, mockDAO, "")
		provider.URLs = stubReverser{}

		So(provider.CancelURL(req), ShouldEqual, "/page__shop-cancel-payment__not-found-in-cms")
	})

	Convey("Error looking up the page falls through", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetPublicPage("cancel-payment").Return(nil, fmt.Errorf("error"))

		So(createProvider(PayPalPlus, nil, mockDAO, "").CancelURL(req), ShouldEqual, "/page__cancel-payment__not-found-in-cms")
	})
}
