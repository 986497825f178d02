package interceptors

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/helpers"
)

// OrderAdminAuthenticationIntercept checks that the user is authenticated for shop order admin privileges
func OrderAdminAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Get identity type from request
		identityType := authentication.GetAuthorisedIdentityType(r)
		if !(identityType == authentication.Oauth2IdentityType || identityType == authentication.APIKeyIdentityType) {
			log.ErrorR(r, fmt.Errorf("OrderAdminAuthenticationInterceptor unauthorised: not oauth2 or API key identity type"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		// Get user details from context, passed in by UserAuthenticationInterceptor
		userDetails, ok := r.Context().Value(authentication.ContextKeyUserDetails).(authentication.AuthUserDetails)
		if !ok {
			log.ErrorR(r, fmt.Errorf("OrderAdminAuthenticationInterceptor error: invalid AuthUserDetails from UserAuthenticationInterceptor"))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if userDetails.ID == "" {
			log.ErrorR(r, fmt.Errorf("OrderAdminAuthenticationInterceptor unauthorised: no authorised identity"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		authUserHasOrderAdminRole := authentication.IsRoleAuthorised(r, helpers.AdminOrderRole)

		debugMap := log.Data{
			"auth_user_has_order_admin_role": authUserHasOrderAdminRole,
			"request_method":                 r.Method,
		}

		if authUserHasOrderAdminRole && r.Method == http.MethodPost {
			log.InfoR(r, "OrderAdminAuthenticationInterceptor authorised as order admin role on POST", debugMap)
			next.ServeHTTP(w, r)
			return
		}

		log.InfoR(r, "OrderAdminAuthenticationInterceptor unauthorised", debugMap)
		w.WriteHeader(http.StatusUnauthorized)
	})
}
