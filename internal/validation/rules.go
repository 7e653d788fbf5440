// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/clients/internal/errors"
)

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	cpfRegex     = regexp.MustCompile(`^(\d{3}\.\d{3}\.\d{3}-\d{2}|\d{11})$`)
	zipCodeRegex = regexp.MustCompile(`^(\d{5}-\d{3}|\d{8})$`)
	nonDigit     = regexp.MustCompile(`\D`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// OnlyDigits strips every non-digit character from s.
func OnlyDigits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// CPF validates a Brazilian individual taxpayer number, either formatted
// (000.000.000-00) or as 11 bare digits, including both check digits.
var CPF = validation.NewStringRuleWithError(
	isValidCPF,
	validation.NewError("validation_cpf", "must be a valid CPF"),
)

// ZipCode validates a Brazilian postal code (CEP): 00000-000 or 8 bare digits.
var ZipCode = validation.NewStringRuleWithError(
	func(s string) bool {
		return zipCodeRegex.MatchString(s)
	},
	validation.NewError("validation_zipcode", "must be a valid zip code (00000-000)"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

func isValidCPF(s string) bool {
	if !cpfRegex.MatchString(s) {
		return false
	}

	digits := OnlyDigits(s)

	// Sequences like 111.111.111-11 pass the checksum but are not issued.
	if strings.Count(digits, digits[:1]) == len(digits) {
		return false
	}

	return cpfCheckDigit(digits[:9]) == digits[9] && cpfCheckDigit(digits[:10]) == digits[10]
}

// cpfCheckDigit computes the mod-11 check digit for the given prefix.
func cpfCheckDigit(prefix string) byte {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (weight - i)
	}

	rest := sum * 10 % 11
	if rest == 10 {
		rest = 0
	}
	return byte('0' + rest)
}
