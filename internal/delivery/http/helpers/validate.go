package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// maxBodyBytes caps request bodies. The largest payload this API accepts is a
// question-list replacement, well under this limit.
const maxBodyBytes = 1 << 20

// Validator is implemented by request DTOs. Validate returns one message per
// failed rule; nil or empty means the request is acceptable.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the capped request body into dest, rejecting
// unknown fields, then runs dest's Validate if it has one. It writes the 400
// itself and returns false on any failure; callers return immediately on
// false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body: "+err.Error())
		return false
	}
	v, ok := dest.(Validator)
	if !ok {
		return true
	}
	if errs := v.Validate(); len(errs) > 0 {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "))
		return false
	}
	return true
}
