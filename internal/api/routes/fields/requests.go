package fields

import "github.com/matt-dz/formcheck/internal/validation"

type ValidateFieldRequest struct {
	Value   string             `json:"value" validate:"max=256"`
	Context validation.Context `json:"context"`
}

type StrengthRequest struct {
	Password string `json:"password" validate:"max=256"`
}
