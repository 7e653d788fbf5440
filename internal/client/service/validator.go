package service

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/clients/internal/validation"
)

// SignupValidator checks signup fields with the shared validation rules.
// Empty values are never valid.
type SignupValidator struct{}

// NewSignupValidator creates a SignupValidator.
func NewSignupValidator() *SignupValidator {
	return &SignupValidator{}
}

// IsEmail reports whether email is a well-formed address.
func (v *SignupValidator) IsEmail(email string) bool {
	return validation.Validate(email, validation.Required, customValidation.Email) == nil
}

// IsCPF reports whether cpf is a CPF with valid check digits.
func (v *SignupValidator) IsCPF(cpf string) bool {
	return validation.Validate(cpf, validation.Required, customValidation.CPF) == nil
}

// IsZipCode reports whether zipCode is a Brazilian CEP.
func (v *SignupValidator) IsZipCode(zipCode string) bool {
	return validation.Validate(zipCode, validation.Required, customValidation.ZipCode) == nil
}
