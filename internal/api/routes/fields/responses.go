package fields

import (
	"github.com/matt-dz/formcheck/internal/form"
	"github.com/matt-dz/formcheck/internal/validation"
)

type ValidateFieldResponse struct {
	Field validation.FieldKind `json:"field" swaggertype:"string"`
	validation.Result
	State     form.FieldState          `json:"state"`
	Indicator *form.StrengthIndicator `json:"indicator,omitempty"`
}

type StrengthResponse struct {
	Score       int     `json:"score"`
	Label       string  `json:"label"`
	Class       string  `json:"class"`
	Text        string  `json:"text"`
	EntropyBits float64 `json:"entropy_bits"`
}
