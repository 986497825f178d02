package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyCart is a specific key for identifying "cart" contexts added to the http request
var ContextKeyCart = ContextKey("cart")
