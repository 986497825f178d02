package dao

import (
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/models"
)

// DAO is an interface for accessing dao from a backend store
type DAO interface {
	GetCart(id string) (*models.CartDB, error)
	DeleteCart(id string) error
	CreateOrder(order *models.OrderDB) error
	GetOrder(id string) (*models.OrderDB, error)
	UpdateOrderStatus(id, fromStatus, toStatus string) error
	CreateOrderPayment(payment *models.OrderPaymentDB) error
	GetOrderPayments(orderID string) ([]models.OrderPaymentDB, error)
	GetPublicPage(reverseID string) (*models.PageDB, error)
}

// NewDAO will create a new instance of the DAO interface
func NewDAO(cfg *config.Config) DAO {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:                      database,
		CartsCollection:         cfg.CartsCollection,
		OrdersCollection:        cfg.OrdersCollection,
		OrderPaymentsCollection: cfg.OrderPaymentsCollection,
		PagesCollection:         cfg.PagesCollection,
	}
}
