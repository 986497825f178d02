package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/dao"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/interceptors"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/service"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
)

var shopDAO dao.DAO
var modifiers []*service.PaymentModifier
var providers map[string]*service.PaymentProvider
var orderWorkflow service.OrderExtension
var shopCancelURL string

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	cache, err := newTokenCache(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	if err := registerRoutes(mainRouter, cfg, dao.NewDAO(&cfg), cache); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func registerRoutes(mainRouter *mux.Router, cfg config.Config, d dao.DAO, cache service.TokenCache) error {
	shopDAO = d
	shopCancelURL = cfg.ShopCancelURL
	orderWorkflow = &service.OrderWorkflow{DAO: d}

	type variantSettings struct {
		variant  service.Variant
		settings config.PayPalSettings
	}
	enabled := []variantSettings{{service.PayPal, cfg.PayPal()}}
	if cfg.PaypalPlusEnabled {
		enabled = append(enabled, variantSettings{service.PayPalPlus, cfg.PayPalPlus()})
	}

	modifiers = make([]*service.PaymentModifier, 0, len(enabled))
	for _, v := range enabled {
		modifier, err := service.NewPaymentModifier(v.variant, v.settings.CommissionPercentage)
		if err != nil {
			return err
		}
		modifiers = append(modifiers, modifier)
	}

	urls := muxReverser{router: mainRouter}

	providers = make(map[string]*service.PaymentProvider, len(enabled))
	for _, v := range enabled {
		client, err := service.NewPayPalClient(v.settings, cache, v.variant.Namespace)
		if err != nil {
			return fmt.Errorf("error creating client for [%s]: [%v]", v.variant.Namespace, err)
		}

		provider := &service.PaymentProvider{
			Variant:    v.variant,
			Settings:   v.settings,
			Client:     client,
			DAO:        d,
			Modifiers:  modifiers,
			Orders:     orderWorkflow,
			URLs:       urls,
			ShopWebURL: cfg.ShopWebURL,
		}
		if len(cfg.BrokerAddr) > 0 {
			provider.NotifyOrderPaid = produceOrderMessage
		}
		providers[v.variant.Namespace] = provider
	}

	cartInterceptor := &interceptors.CartInterceptor{DAO: d}
	userAuthInterceptor := &authentication.UserAuthenticationInterceptor{
		AllowAPIKeyUser: true,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Checkout endpoints need the customer's cart, return and cancel are called
	// by the browser coming back from PayPal and only read it if needed
	choicesRouter := mainRouter.PathPrefix("/shop/payment-choices").Subrouter()
	choicesRouter.HandleFunc("", HandleGetPaymentChoices).Methods("GET").Name("get-payment-choices")

	purchaseRouter := mainRouter.PathPrefix("/shop/{namespace}/purchase").Subrouter()
	purchaseRouter.HandleFunc("", HandlePurchase).Methods("POST").Name("shop-payment-purchase")

	// host cancel page the PayPal cancel view falls back to without a CMS page
	var cancelPageRouter *mux.Router
	if shopCancelURL != "" {
		cancelPageRouter = mainRouter.PathPrefix("/shop/cancel-payment").Subrouter()
		cancelPageRouter.HandleFunc("", HandleShopCancelPage).Methods("GET").Name(service.PayPal.CancelRouteName)
	}

	callbackRouter := mainRouter.PathPrefix("/shop/{namespace}").Subrouter()
	callbackRouter.HandleFunc("/return", HandlePaymentReturn).Methods("GET").Name(service.ReturnRouteName)
	callbackRouter.HandleFunc("/cancel", HandlePaymentCancel).Methods("GET").Name(service.CancelRouteName)

	adminRouter := mainRouter.PathPrefix("/admin/shop/orders/{order_id}/acknowledge-paypal-payment").Subrouter()
	adminRouter.HandleFunc("", HandleAcknowledgePayPalPayment).Methods("POST").Name("acknowledge-paypal-payment")

	// Set middleware for subrouters
	choicesRouter.Use(log.Handler, cartInterceptor.CartIntercept)
	purchaseRouter.Use(log.Handler, cartInterceptor.CartIntercept)
	callbackRouter.Use(log.Handler)
	if cancelPageRouter != nil {
		cancelPageRouter.Use(log.Handler)
	}
	adminRouter.Use(log.Handler, userAuthInterceptor.UserAuthenticationIntercept, interceptors.OrderAdminAuthenticationIntercept)

	return nil
}

// newTokenCache shares PayPal tokens through redis when it is configured
func newTokenCache(cfg config.Config) (service.TokenCache, error) {
	if cfg.RedisURL == "" {
		return service.NewMemoryTokenCache(), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: [%v]", err)
	}
	return &service.RedisTokenCache{Client: redis.NewClient(opts)}, nil
}

// muxReverser builds the paths of the routes named on the router
type muxReverser struct {
	router *mux.Router
}

func (m muxReverser) Reverse(name string, pairs ...string) (string, error) {
	route := m.router.Get(name)
	if route == nil {
		return "", fmt.Errorf("no route named [%s]", name)
	}

	u, err := route.URLPath(pairs...)
	if err != nil {
		return "", err
	}
	return u.Path, nil
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
