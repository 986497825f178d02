package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/dao"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/mappers"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/models"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Transition names
const (
	TransitionAddPayPalPayment         = "add_paypal_payment"
	TransitionAcknowledgePayPalPayment = "acknowledge_paypal_payment"
)

// TransitionTargets maps the statuses this extension adds to their display names
var TransitionTargets = map[string]string{
	models.OrderStatusPaidWithPayPal: "Paid with PayPal",
}

var (
	// ErrTransitionNotAllowed is returned when the order is not in the source status of a transition
	ErrTransitionNotAllowed = errors.New("transition not allowed")

	// ErrNotFullyPaid is returned when acknowledging an order whose payments do not cover its total
	ErrNotFullyPaid = errors.New("order is not fully paid")

	// ErrCurrencyMismatch is returned when a charge is in another currency than the order
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// TransitionError is returned when an order transition cannot be applied
type TransitionError struct {
	Transition string
	OrderID    string
	Status     string
	Reason     error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot apply [%s] to order [%s] in status [%s]: %v", e.Transition, e.OrderID, e.Status, e.Reason)
}

func (e *TransitionError) Unwrap() error {
	return e.Reason
}

// CurrencyMismatchError is returned when a PayPal charge does not match the order currency
type CurrencyMismatchError struct {
	OrderCurrency  string
	ChargeCurrency string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("paypal charge currency [%s] does not match order currency [%s]", e.ChargeCurrency, e.OrderCurrency)
}

// Is makes errors.Is(err, ErrCurrencyMismatch) hold for any CurrencyMismatchError
func (e *CurrencyMismatchError) Is(target error) bool {
	return target == ErrCurrencyMismatch
}

// OrderExtension is the set of transitions PayPal adds to the order workflow
type OrderExtension interface {
	AddPayPalPayment(order *models.OrderDB, charge *models.PayPalPayment, paymentMethod string) error
	IsFullyPaid(order *models.OrderDB) (bool, error)
	AcknowledgePayPalPayment(order *models.OrderDB) error
}

// OrderWorkflow applies the PayPal transitions to orders stored through the DAO
type OrderWorkflow struct {
	DAO dao.DAO
	Now func() time.Time
}

func (w *OrderWorkflow) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now().Truncate(time.Millisecond)
}

// ChargeAmount returns the amount of a PayPal charge, checking that it is in
// the given currency
func ChargeAmount(currency string, charge *models.PayPalPayment) (models.Money, error) {
	if charge == nil || len(charge.Transactions) == 0 {
		return models.Money{}, errors.New("paypal charge has no transactions")
	}

	amount := charge.Transactions[0].Amount
	chargeCurrency := strings.ToUpper(amount.Currency)
	if currency != chargeCurrency {
		return models.Money{}, &CurrencyMismatchError{OrderCurrency: currency, ChargeCurrency: chargeCurrency}
	}

	return models.ParseMoney(amount.Total, chargeCurrency)
}

// AddPayPalPayment records the charge as a payment of the order and moves the
// order from created to paid_with_paypal
func (w *OrderWorkflow) AddPayPalPayment(order *models.OrderDB, charge *models.PayPalPayment, paymentMethod string) error {
	if order.Status != models.OrderStatusCreated {
		return &TransitionError{Transition: TransitionAddPayPalPayment, OrderID: order.ID, Status: order.Status, Reason: ErrTransitionNotAllowed}
	}

	amount, err := ChargeAmount(order.Currency, charge)
	if err != nil {
		return err
	}

	now := w.now()
	payment := mappers.MapChargeToOrderPayment(order.ID, charge.ID, amount, paymentMethod, now)
	if err := w.DAO.CreateOrderPayment(payment); err != nil {
		return fmt.Errorf("error writing order payment to DB: [%v]", err)
	}

	if err := w.transition(order, TransitionAddPayPalPayment, models.OrderStatusPaidWithPayPal, now); err != nil {
		return err
	}

	log.Info("paypal payment added to order", log.Data{
		"order_id":       order.ID,
		"transaction_id": charge.ID,
		"amount":         amount.String(),
		"currency":       amount.Currency,
	})

	return nil
}

// IsFullyPaid reports whether the payments of an order cover its total
func (w *OrderWorkflow) IsFullyPaid(order *models.OrderDB) (bool, error) {
	payments, err := w.DAO.GetOrderPayments(order.ID)
	if err != nil {
		return false, fmt.Errorf("error getting payments of order [%s]: [%v]", order.ID, err)
	}

	paid, err := AmountPaid(order, payments)
	if err != nil {
		return false, err
	}

	total, err := decimal.NewFromString(order.Total)
	if err != nil {
		return false, fmt.Errorf("total of order [%s] format incorrect: [%v]", order.ID, err)
	}

	return paid.Amount.GreaterThanOrEqual(total), nil
}

// AcknowledgePayPalPayment confirms the payment of a fully paid order
func (w *OrderWorkflow) AcknowledgePayPalPayment(order *models.OrderDB) error {
	if order.Status != models.OrderStatusPaidWithPayPal {
		return &TransitionError{Transition: TransitionAcknowledgePayPalPayment, OrderID: order.ID, Status: order.Status, Reason: ErrTransitionNotAllowed}
	}

	fullyPaid, err := w.IsFullyPaid(order)
	if err != nil {
		return err
	}
	if !fullyPaid {
		return &TransitionError{Transition: TransitionAcknowledgePayPalPayment, OrderID: order.ID, Status: order.Status, Reason: ErrNotFullyPaid}
	}

	if err := w.transition(order, TransitionAcknowledgePayPalPayment, models.OrderStatusPaymentConfirmed, w.now()); err != nil {
		return err
	}

	log.Info("paypal payment acknowledged", log.Data{"order_id": order.ID})

	return nil
}

func (w *OrderWorkflow) transition(order *models.OrderDB, transition, target string, now time.Time) error {
	err := w.DAO.UpdateOrderStatus(order.ID, order.Status, target)
	if errors.Is(err, dao.ErrOrderStatusConflict) {
		return &TransitionError{Transition: transition, OrderID: order.ID, Status: order.Status, Reason: ErrTransitionNotAllowed}
	}
	if err != nil {
		return fmt.Errorf("error updating status of order [%s]: [%v]", order.ID, err)
	}

	order.Status = target
	order.UpdatedAt = now
	return nil
}

// LoadOrderWithPayments reads an order and its payments concurrently. A nil
// order means it was not found.
func LoadOrderWithPayments(d dao.DAO, orderID string) (*models.OrderDB, []models.OrderPaymentDB, error) {
	var (
		order    *models.OrderDB
		payments []models.OrderPaymentDB
		g        errgroup.Group
	)

	g.Go(func() error {
		var err error
		order, err = d.GetOrder(orderID)
		if err != nil {
			return fmt.Errorf("error getting order [%s]: [%v]", orderID, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		payments, err = d.GetOrderPayments(orderID)
		if err != nil {
			return fmt.Errorf("error getting payments of order [%s]: [%v]", orderID, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, nil
	}

	return order, payments, nil
}

// AmountPaid sums the payments recorded against an order
func AmountPaid(order *models.OrderDB, payments []models.OrderPaymentDB) (models.Money, error) {
	paid := models.NewMoney(decimal.Zero, order.Currency)
	for _, payment := range payments {
		amount, err := models.ParseMoney(payment.Amount, payment.Currency)
		if err != nil {
			return models.Money{}, fmt.Errorf("error reading payment [%s] of order [%s]: [%v]", payment.ID, order.ID, err)
		}
		if paid, err = paid.Add(amount); err != nil {
			return models.Money{}, fmt.Errorf("error summing payments of order [%s]: [%v]", order.ID, err)
		}
	}
	return paid, nil
}
