package handlers

import (
	"fmt"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/models"
)

// ProducerTopic is the topic to which the order paid kafka message is sent
const ProducerTopic = "shop-order-paid"

// ProducerSchemaName is the schema which will be used to send the order paid kafka message with
const ProducerSchemaName = "shop-order-paid"

// orderPaid represents the avro schema of the order paid message
type orderPaid struct {
	OrderID  string `avro:"order_id"`
	Status   string `avro:"status"`
	Total    string `avro:"total"`
	Currency string `avro:"currency"`
}

// produceOrderMessage handles creating a producer, marshalling the order into the correct avro schema and sending
// the message to the topic defined in ProducerTopic
func produceOrderMessage(order *models.OrderDB) error {
	cfg, err := config.Get()
	if err != nil {
		err = fmt.Errorf("error getting config for kafka message production: [%v]", err)
		return err
	}

	// Get a producer
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		err = fmt.Errorf("error creating kafka producer: [%v]", err)
		return err
	}
	orderPaidSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		err = fmt.Errorf("error getting schema from schema registry: [%v]", err)
		return err
	}
	producerSchema := &avro.Schema{
		Definition: orderPaidSchema,
	}

	// Prepare a message with the avro schema
	message, err := prepareKafkaMessage(order, *producerSchema)
	if err != nil {
		err = fmt.Errorf("error preparing kafka message with schema: [%v]", err)
		return err
	}

	// Send the message
	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		err = fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
		return err
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceOrderMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(order *models.OrderDB, orderPaidSchema avro.Schema) (*producer.Message, error) {
	orderPaidMessage := orderPaid{
		OrderID:  order.ID,
		Status:   order.Status,
		Total:    order.Total,
		Currency: order.Currency,
	}

	messageBytes, err := orderPaidSchema.Marshal(orderPaidMessage)
	if err != nil {
		err = fmt.Errorf("error marshalling order paid message: [%v]", err)
		return nil, err
	}

	producerMessage := &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}
	return producerMessage, nil
}
