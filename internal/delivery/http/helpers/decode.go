package helpers

import (
	"encoding/json"
	"net/http"

	"communityroots/pkg/validation"
)

// DecodeAndValidate decodes the request body into dest (with
// DisallowUnknownFields) and validates it against its `validate` tags. On
// decode or validation failure it writes a 400 JSON error and returns false;
// callers should return immediately in that case. Validation always runs
// before any handler logic, so an invalid payload can never reach a store,
// mailer, or CRM call.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if errs := validation.Struct(dest); len(errs) > 0 {
		WriteValidationErrors(w, errs)
		return false
	}
	return true
}
