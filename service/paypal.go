package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/models"
	"github.com/plutov/paypal/v4"
)

const paymentsPath = "/v1/payments/payment"

// PayPalSDK is an interface for all the PayPal payment methods that will be
// used in this service
type PayPalSDK interface {
	CreatePayment(ctx context.Context, payment models.PayPalPaymentRequest) (*models.PayPalPayment, error)
	GetPayment(ctx context.Context, paymentID string) (*models.PayPalPayment, error)
	ExecutePayment(ctx context.Context, paymentID, payerID string) (*models.PayPalPayment, error)
}

// PayPalRESTClient talks to the PayPal payments API. Requests carry the token
// of its TokenProvider rather than one stored on the shared client.
type PayPalRESTClient struct {
	Client *paypal.Client
	Tokens TokenProvider
}

// NewPayPalClient creates a PayPal client for the given settings whose tokens
// are kept in cache under cacheKey
func NewPayPalClient(settings config.PayPalSettings, cache TokenCache, cacheKey string) (*PayPalRESTClient, error) {
	paypalAPIBase := settings.APIEndpoint
	if paypalAPIBase == "" {
		paypalAPIBase = getPayPalAPIBase(settings.Mode)
	}
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", settings.Mode)
	}

	c, err := paypal.NewClient(settings.ClientID, settings.ClientSecret, strings.TrimRight(paypalAPIBase, "/"))
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}

	return &PayPalRESTClient{
		Client: c,
		Tokens: &CachedTokenProvider{
			Source: &PayPalTokenSource{Client: c},
			Cache:  cache,
			Key:    cacheKey,
		},
	}, nil
}

// CreatePayment creates a payment which the customer then approves at PayPal
func (pp *PayPalRESTClient) CreatePayment(ctx context.Context, payment models.PayPalPaymentRequest) (*models.PayPalPayment, error) {
	var res models.PayPalPayment
	if err := pp.send(ctx, http.MethodPost, paymentsPath, payment, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetPayment looks up a payment
func (pp *PayPalRESTClient) GetPayment(ctx context.Context, paymentID string) (*models.PayPalPayment, error) {
	var res models.PayPalPayment
	if err := pp.send(ctx, http.MethodGet, paymentsPath+"/"+url.PathEscape(paymentID), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ExecutePayment executes a payment the payer has approved
func (pp *PayPalRESTClient) ExecutePayment(ctx context.Context, paymentID, payerID string) (*models.PayPalPayment, error) {
	var res models.PayPalPayment
	body := models.PayPalExecuteRequest{PayerID: payerID}
	if err := pp.send(ctx, http.MethodPost, paymentsPath+"/"+url.PathEscape(paymentID)+"/execute", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (pp *PayPalRESTClient) send(ctx context.Context, method, path string, payload, v interface{}) error {
	token, err := pp.Tokens.Token(ctx)
	if err != nil {
		return err
	}

	req, err := pp.Client.NewRequest(ctx, method, pp.Client.APIBase+path, payload)
	if err != nil {
		return fmt.Errorf("error creating paypal request: [%v]", err)
	}
	req.Header.Set("Authorization", token.AuthorizationHeader())

	log.Trace("performing PayPal request", log.Data{"method": method, "path": path})

	return pp.Client.Send(req, v)
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "sandbox", "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}
