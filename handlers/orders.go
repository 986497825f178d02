package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/helpers"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/service"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/transformers"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/utils"
	"github.com/gorilla/mux"
)

// HandleAcknowledgePayPalPayment confirms the PayPal payment of a fully paid order
func HandleAcknowledgePayPalPayment(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["order_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	logData := log.Data{"order_id": id, "identity": helpers.GetAuthorisedIdentity(req)}

	order, payments, err := service.LoadOrderWithPayments(shopDAO, id)
	if err != nil {
		log.ErrorR(req, err, logData)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if order == nil {
		log.InfoR(req, "order not found", logData)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	err = orderWorkflow.AcknowledgePayPalPayment(order)
	if errors.Is(err, service.ErrTransitionNotAllowed) || errors.Is(err, service.ErrNotFullyPaid) {
		log.InfoR(req, err.Error(), logData)
		utils.WriteMessageWithStatus(w, req, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error acknowledging paypal payment: [%v]", err), logData)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	amountPaid, err := service.AmountPaid(order, payments)
	if err != nil {
		log.ErrorR(req, err, logData)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	orderRest := transformers.OrderTransformer{}.TransformToRest(*order, payments, amountPaid)
	orderRest.StatusName = orderRest.Status
	if name, ok := service.TransitionTargets[order.Status]; ok {
		orderRest.StatusName = name
	}

	log.InfoR(req, "Successful POST request to acknowledge paypal payment", logData)

	utils.WriteJSONWithStatus(w, req, orderRest, http.StatusOK)
}
