// Package shared holds the response helpers common to every HTTP handler.
package shared

import (
	"encoding/json"
	"net/http"

	dErrors "lifebank/pkg/domain-errors"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError maps a domain error to its HTTP status and writes the
// categorical code alongside the message.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	WriteJSON(w, dErrors.ToHTTPStatus(code), ErrorResponse{
		Code:    string(code),
		Message: err.Error(),
	})
}
