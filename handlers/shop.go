package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/helpers"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/models"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/service"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/utils"
	"github.com/gorilla/mux"
)

// HandleGetPaymentChoices lists the payment methods offered for the customer's cart
func HandleGetPaymentChoices(w http.ResponseWriter, req *http.Request) {
	cartDB, ok := req.Context().Value(helpers.ContextKeyCart).(*models.CartDB)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid CartDB in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cart, err := service.PriceCart(cartDB, modifiers...)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error pricing cart: [%v]", err), log.Data{"cart_id": cartDB.ID})
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	choices := models.PaymentChoicesRest{
		Choices:       make([]models.PaymentChoice, 0, len(modifiers)),
		Cart:          cart,
		RenderContext: map[string]interface{}{},
	}
	for _, modifier := range modifiers {
		choice := modifier.GetChoice()
		choice.Disabled = modifier.IsDisabled(cart)
		choices.Choices = append(choices.Choices, choice)
		modifier.UpdateRenderContext(choices.RenderContext)
	}

	utils.WriteJSONWithStatus(w, req, choices, http.StatusOK)
}

// HandlePurchase creates a PayPal payment for the customer's cart and tells
// the browser where to approve it
func HandlePurchase(w http.ResponseWriter, req *http.Request) {
	provider := getProvider(w, req)
	if provider == nil {
		return
	}

	cartDB, ok := req.Context().Value(helpers.ContextKeyCart).(*models.CartDB)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid CartDB in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	nextURL, responseType, err := provider.GetPaymentRequest(req, cartDB)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating paypal payment request: [%v]", err), log.Data{"service_response_type": responseType.String(), "cart_id": cartDB.ID})
	}

	if nextURL == "" {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Location", nextURL)
	utils.WriteJSONWithStatus(w, req, models.PaymentRedirect{NextURL: nextURL}, http.StatusOK)
}

// HandlePaymentReturn completes the payment the customer approved at PayPal
func HandlePaymentReturn(w http.ResponseWriter, req *http.Request) {
	provider := getProvider(w, req)
	if provider == nil {
		return
	}

	redirectURL, responseType, err := provider.HandleReturn(req, helpers.GetCartID(req))
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error handling paypal return: [%v]", err), log.Data{"service_response_type": responseType.String()})
	}

	if redirectURL != "" {
		utils.RedirectSeeOther(w, req, redirectURL)
		return
	}

	switch responseType {
	case service.InvalidData:
		utils.WriteMessageWithStatus(w, req, "Invalid Payment Request", http.StatusBadRequest)
	case service.NotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// HandlePaymentCancel sends a customer who cancelled at PayPal to the cancel page
func HandlePaymentCancel(w http.ResponseWriter, req *http.Request) {
	provider := getProvider(w, req)
	if provider == nil {
		return
	}

	utils.RedirectSeeOther(w, req, provider.CancelURL(req))
}

// HandleShopCancelPage sends the customer on to the shop's configured cancel page
func HandleShopCancelPage(w http.ResponseWriter, req *http.Request) {
	utils.RedirectSeeOther(w, req, shopCancelURL)
}

// getProvider returns the provider named by the namespace of the request and
// responds with a 404 if there is none
func getProvider(w http.ResponseWriter, req *http.Request) *service.PaymentProvider {
	namespace := mux.Vars(req)["namespace"]
	provider, ok := providers[namespace]
	if !ok {
		log.InfoR(req, "no payment provider for namespace", log.Data{"namespace": namespace})
		w.WriteHeader(http.StatusNotFound)
		return nil
	}
	return provider
}
