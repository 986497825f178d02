package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

// ErrOrderStatusConflict is returned when an order is not in the status an
// update expects it to be in
var ErrOrderStatusConflict = errors.New("order status conflict")

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// MongoService is an implementation of the DAO interface using MongoDB as the backend driver.
type MongoService struct {
	db                      MongoDatabaseInterface
	CartsCollection         string
	OrdersCollection        string
	OrderPaymentsCollection string
	PagesCollection         string
}

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	c, err := mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no database connection so the prog must
	// crash here as the service cannot continue.
	if err != nil {
		log.Error(err)
		panic(err)
	}

	// Check we can connect to the mongodb instance. Failure here should result in a crash.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = c.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		panic(err)
	}

	log.Info("connected to mongodb successfully")

	client = c
	return client
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// GetCart gets a cart from the DB
// If cart not found in DB, return nil
func (m *MongoService) GetCart(id string) (*models.CartDB, error) {
	var cart models.CartDB

	collection := m.db.Collection(m.CartsCollection)
	err := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &cart, nil
}

// DeleteCart removes a cart once it has been turned into an order
func (m *MongoService) DeleteCart(id string) error {
	collection := m.db.Collection(m.CartsCollection)
	_, err := collection.DeleteOne(context.Background(), bson.M{"_id": id})
	return err
}

// CreateOrder writes a new order to the DB
func (m *MongoService) CreateOrder(order *models.OrderDB) error {
	collection := m.db.Collection(m.OrdersCollection)
	_, err := collection.InsertOne(context.Background(), order)
	return err
}

// GetOrder gets an order from the DB
// If order not found in DB, return nil
func (m *MongoService) GetOrder(id string) (*models.OrderDB, error) {
	var order models.OrderDB

	collection := m.db.Collection(m.OrdersCollection)
	err := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &order, nil
}

// UpdateOrderStatus moves an order from one status to another. The update only
// applies while the order is still in fromStatus.
func (m *MongoService) UpdateOrderStatus(id, fromStatus, toStatus string) error {
	collection := m.db.Collection(m.OrdersCollection)

	filter := bson.M{"_id": id, "status": fromStatus}
	update := bson.M{"$set": bson.M{
		"status":     toStatus,
		"updated_at": time.Now().Truncate(time.Millisecond),
	}}

	result, err := collection.UpdateOne(context.Background(), filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order [%s] not in status [%s]: %w", id, fromStatus, ErrOrderStatusConflict)
	}

	return nil
}

// CreateOrderPayment writes a payment for an order to the DB
func (m *MongoService) CreateOrderPayment(payment *models.OrderPaymentDB) error {
	collection := m.db.Collection(m.OrderPaymentsCollection)
	_, err := collection.InsertOne(context.Background(), payment)
	return err
}

// GetOrderPayments gets all payments recorded against an order
func (m *MongoService) GetOrderPayments(orderID string) ([]models.OrderPaymentDB, error) {
	collection := m.db.Collection(m.OrderPaymentsCollection)

	ctx := context.Background()
	cursor, err := collection.Find(ctx, bson.M{"order_id": orderID})
	if err != nil {
		return nil, err
	}

	var payments []models.OrderPaymentDB
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}

	return payments, nil
}

// GetPublicPage gets a published CMS page by its reverse id
// If page not found in DB, return nil
func (m *MongoService) GetPublicPage(reverseID string) (*models.PageDB, error) {
	var page models.PageDB

	collection := m.db.Collection(m.PagesCollection)
	err := collection.FindOne(context.Background(), bson.M{"reverse_id": reverseID, "published": true}).Decode(&page)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &page, nil
}
