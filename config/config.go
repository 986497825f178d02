// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr                   string   `env:"BIND_ADDR"                     flag:"bind-addr"                     flagDesc:"Bind address"`
	MongoDBURL                 string   `env:"MONGODB_URL"                   flag:"mongodb-url"                   flagDesc:"MongoDB server URL"`
	Database                   string   `env:"MONGODB_DATABASE"              flag:"mongodb-database"              flagDesc:"MongoDB database for data"`
	CartsCollection            string   `env:"MONGODB_CARTS_COLLECTION"      flag:"mongodb-carts-collection"      flagDesc:"MongoDB collection for carts"`
	OrdersCollection           string   `env:"MONGODB_ORDERS_COLLECTION"     flag:"mongodb-orders-collection"     flagDesc:"MongoDB collection for orders"`
	OrderPaymentsCollection    string   `env:"MONGODB_PAYMENTS_COLLECTION"   flag:"mongodb-payments-collection"   flagDesc:"MongoDB collection for order payments"`
	PagesCollection            string   `env:"MONGODB_PAGES_COLLECTION"      flag:"mongodb-pages-collection"      flagDesc:"MongoDB collection for CMS pages"`
	RedisURL                   string   `env:"REDIS_URL"                     flag:"redis-url"                     flagDesc:"Redis URL used to share PayPal auth tokens, in-memory cache if empty"`
	BrokerAddr                 []string `env:"KAFKA_BROKER_ADDR"             flag:"broker-addr"                   flagDesc:"Kafka broker address"`
	SchemaRegistryURL          string   `env:"SCHEMA_REGISTRY_URL"           flag:"schema-registry-url"           flagDesc:"Schema registry url"`
	ShopWebURL                 string   `env:"SHOP_WEB_URL"                  flag:"shop-web-url"                  flagDesc:"Base URL for the shop frontend, used for order detail pages"`
	ShopCancelURL              string   `env:"SHOP_CANCEL_URL"               flag:"shop-cancel-url"               flagDesc:"Shop page for cancelled payments, served as the shop-cancel-payment route"`
	PaypalEnv                  string   `env:"PAYPAL_ENV"                    flag:"paypal-env"                    flagDesc:"PayPal mode: sandbox, test or live"`
	PaypalClientID             string   `env:"PAYPAL_CLIENT_ID"              flag:"paypal-client-id"              flagDesc:"PayPal client id"`
	PaypalSecret               string   `env:"PAYPAL_SECRET"                 flag:"paypal-secret"                 flagDesc:"PayPal client secret"`
	PaypalAPIEndpoint          string   `env:"PAYPAL_API_ENDPOINT"           flag:"paypal-api-endpoint"           flagDesc:"Override for the PayPal REST API base URL"`
	PaypalPurchaseDescription  string   `env:"PAYPAL_PURCHASE_DESCRIPTION"   flag:"paypal-purchase-description"   flagDesc:"Description attached to PayPal transactions"`
	PaypalCommission           string   `env:"PAYPAL_COMMISSION_PERCENTAGE"  flag:"paypal-commission-percentage"  flagDesc:"Handling fee added to the cart subtotal, in percent"`
	PaypalPlusEnv              string   `env:"PAYPALPLUS_ENV"                flag:"paypalplus-env"                flagDesc:"PayPal Plus mode: sandbox, test or live"`
	PaypalPlusClientID         string   `env:"PAYPALPLUS_CLIENT_ID"          flag:"paypalplus-client-id"          flagDesc:"PayPal Plus client id"`
	PaypalPlusSecret           string   `env:"PAYPALPLUS_SECRET"             flag:"paypalplus-secret"             flagDesc:"PayPal Plus client secret"`
	PaypalPlusAPIEndpoint      string   `env:"PAYPALPLUS_API_ENDPOINT"       flag:"paypalplus-api-endpoint"       flagDesc:"Override for the PayPal Plus REST API base URL"`
	PaypalPlusCommission       string   `env:"PAYPALPLUS_COMMISSION_PERCENTAGE" flag:"paypalplus-commission-percentage" flagDesc:"Handling fee added to the cart subtotal for PayPal Plus, in percent"`
	PaypalPlusEnabled          bool     `env:"PAYPALPLUS_ENABLED"            flag:"paypalplus-enabled"            flagDesc:"Register the PayPal Plus provider"`
}

// PayPalSettings is the settings block of a single PayPal provider.
type PayPalSettings struct {
	Mode                 string
	ClientID             string
	ClientSecret         string
	APIEndpoint          string
	PurchaseDescription  string
	CommissionPercentage string
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:                "shop",
		CartsCollection:         "carts",
		OrdersCollection:        "orders",
		OrderPaymentsCollection: "order_payments",
		PagesCollection:         "pages",
		PaypalEnv:               "sandbox",
		PaypalPlusEnv:           "sandbox",
	}
}

// PayPal returns the settings of the PayPal provider.
func (c *Config) PayPal() PayPalSettings {
	return PayPalSettings{
		Mode:                 c.PaypalEnv,
		ClientID:             c.PaypalClientID,
		ClientSecret:         c.PaypalSecret,
		APIEndpoint:          c.PaypalAPIEndpoint,
		PurchaseDescription:  c.PaypalPurchaseDescription,
		CommissionPercentage: c.PaypalCommission,
	}
}

// PayPalPlus returns the settings of the PayPal Plus provider. PayPal Plus
// transactions carry no purchase description.
func (c *Config) PayPalPlus() PayPalSettings {
	return PayPalSettings{
		Mode:                 c.PaypalPlusEnv,
		ClientID:             c.PaypalPlusClientID,
		ClientSecret:         c.PaypalPlusSecret,
		APIEndpoint:          c.PaypalPlusAPIEndpoint,
		CommissionPercentage: c.PaypalPlusCommission,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
