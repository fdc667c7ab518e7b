package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RespondError writes a standardized error response to the HTTP response writer.
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Status:  StatusError,
		Message: message,
	})
}

// RespondBadRequest writes the 400 response every API failure maps to.
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondMethodNotAllowed rejects a request for a known path with the wrong verb.
func RespondMethodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	RespondError(w, http.StatusMethodNotAllowed, "method not allowed")
}
