package register

import (
	apiError "github.com/matt-dz/formcheck/internal/api/error"
	"github.com/matt-dz/formcheck/internal/form"
)

type RegisterResponse struct {
	Message string `json:"message"`
}

// ValidationFailedResponse carries the rendered state of every field so
// the page can show all errors at once.
type ValidationFailedResponse struct {
	apiError.Error
	Fields    []form.FieldState      `json:"fields"`
	Indicator form.StrengthIndicator `json:"indicator"`
}
