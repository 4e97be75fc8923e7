// Package httputil provides the shared response envelope all mock endpoints emit.
//
// Success envelope: {"success": true, "message": ..., "data": ...}
// Error envelope:   {"success": false, "error": {"code": ..., "message": ..., "details": ...}}
package httputil

import (
	"encoding/json"
	"net/http"
)

// Envelope is the top-level response shape shared by every endpoint.
type Envelope struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError carries a stable machine-readable code alongside a human message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It sets the Content-Type header to application/json.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteRaw writes a pre-rendered JSON body with the given status code.
// Used for catalog variant bodies that are stored as raw JSON.
func WriteRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// WriteSuccess writes a success envelope with an optional message and data.
func WriteSuccess(w http.ResponseWriter, status int, message string, data any) {
	WriteJSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

// WriteFailure writes an error envelope with a stable error code.
func WriteFailure(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &APIError{Code: code, Message: message}})
}

// WriteFailureDetails writes an error envelope with field-level details.
// Used for validation errors that report per-field messages.
func WriteFailureDetails(w http.ResponseWriter, status int, code, message string, details any) {
	WriteJSON(w, status, Envelope{Success: false, Error: &APIError{Code: code, Message: message, Details: details}})
}
