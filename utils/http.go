package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
)

// ResponseResource is the object returned in an error case
type ResponseResource struct {
	Message string `json:"message"`
}

// NewMessageResponse - convenience function for creating a response resource
func NewMessageResponse(message string) *ResponseResource {
	return &ResponseResource{Message: message}
}

// WriteJSONWithStatus writes the interface as a json string with the supplied status.
func WriteJSONWithStatus(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: %v", err))
	}
}

// WriteMessageWithStatus writes a message response with the supplied status.
func WriteMessageWithStatus(w http.ResponseWriter, r *http.Request, message string, status int) {
	WriteJSONWithStatus(w, r, NewMessageResponse(message), status)
}

// RedirectSeeOther sends the browser on to the url with a GET.
func RedirectSeeOther(w http.ResponseWriter, r *http.Request, url string) {
	log.InfoR(r, "Redirecting to:", log.Data{"redirect_url": url})
	http.Redirect(w, r, url, http.StatusSeeOther)
}
