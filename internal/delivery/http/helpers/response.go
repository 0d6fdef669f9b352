package helpers

import (
	"encoding/json"
	"net/http"

	"communityroots/pkg/validation"
)

// ErrorResponse is the envelope for every failed request: a success flag and
// one human-readable message. Validation failures additionally carry the
// field error list. Internal details and stack traces are never included.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorResponse with the given status and message.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Success: false, Message: message})
}

// WriteValidationErrors writes a 400 ErrorResponse carrying the field errors.
func WriteValidationErrors(w http.ResponseWriter, errs []validation.FieldError) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}
