package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/dao"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/helpers"
)

// CartInterceptor contains the DAO the customer's cart is read from
type CartInterceptor struct {
	DAO dao.DAO
}

// CartIntercept loads the cart named by the cart cookie and stores it in the request context
func (cartInterceptor CartInterceptor) CartIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := helpers.GetCartID(r)
		if id == "" {
			log.ErrorR(r, fmt.Errorf("CartInterceptor error: no cart id"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		cart, err := cartInterceptor.DAO.GetCart(id)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("CartInterceptor error when retrieving cart: [%v]", err), log.Data{"cart_id": id})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if cart == nil {
			log.InfoR(r, "CartInterceptor cart not found", log.Data{"cart_id": id})
			w.WriteHeader(http.StatusNotFound)
			return
		}

		// Store cart in context to use later in the handler
		ctx := context.WithValue(r.Context(), helpers.ContextKeyCart, cart)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
