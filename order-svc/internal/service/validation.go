package service

import (
	"errors"
	"fmt"
	"strings"

	"food-ordering/order-svc/internal/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type PasswordInput struct {
	NewPassword string `json:"new_password" validate:"required"`
}

func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingField, strings.ToLower(fieldErrs[0].Field()))
	}
	return err
}
