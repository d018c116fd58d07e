package register

import "github.com/matt-dz/formcheck/internal/validation"

type RegisterRequest struct {
	FullName        string `json:"full_name" validate:"max=256"`
	Email           string `json:"email" validate:"max=256"`
	Password        string `json:"password" validate:"max=256"`
	ConfirmPassword string `json:"confirm_password" validate:"max=256"`
}

func (r RegisterRequest) Values() validation.Values {
	return validation.Values{
		FullName:        r.FullName,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}
