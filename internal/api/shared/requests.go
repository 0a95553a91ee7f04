package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is the process-wide validator shared by every handler. A single
// instance is reused so struct metadata is cached across requests.
var validate = validator.New()

// SelfValidator is implemented by request types that carry validation logic
// beyond what struct tags can express.
type SelfValidator interface {
	Validate() error
}

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest checks v against its struct validation tags. Types
// implementing SelfValidator are validated through their own method instead.
func ValidateRequest(v any) error {
	if sv, ok := v.(SelfValidator); ok {
		return sv.Validate()
	}
	return validate.Struct(v)
}
