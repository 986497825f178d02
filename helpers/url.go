package helpers

import (
	"net/http"
	"strings"
)

// CartCookieName is the cookie holding the id of the customer's cart
const CartCookieName = "cart"

// GetCartID returns the cart id of the request, or an empty string if there is none
func GetCartID(r *http.Request) string {
	cookie, err := r.Cookie(CartCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// BuildAbsoluteURI turns a path into an absolute URI on the host the request was sent to
func BuildAbsoluteURI(r *http.Request, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(forwarded, ",")[0]))
	}

	host := r.Host
	if forwarded := r.Header.Get("X-Forwarded-Host"); forwarded != "" {
		host = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return scheme + "://" + host + path
}
