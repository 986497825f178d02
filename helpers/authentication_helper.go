package helpers

import "net/http"

// AdminOrderRole is the role required to acknowledge the payment of an order
const AdminOrderRole = "/admin/shop-orders"

const ericIdentity = "ERIC-Identity"

// GetAuthorisedIdentity returns the identity of the caller set by the gateway
func GetAuthorisedIdentity(r *http.Request) string {
	return r.Header.Get(ericIdentity)
}
