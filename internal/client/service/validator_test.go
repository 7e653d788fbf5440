package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupValidator_IsEmail(t *testing.T) {
	v := NewSignupValidator()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "john@example.com", true},
		{"valid subdomain", "john.doe@mail.example.com.br", true},
		{"empty", "", false},
		{"missing at", "john.example.com", false},
		{"missing domain", "john@", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsEmail(tt.input))
		})
	}
}

func TestSignupValidator_IsCPF(t *testing.T) {
	v := NewSignupValidator()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid digits", "52998224725", true},
		{"valid formatted", "529.982.247-25", true},
		{"valid other", "11144477735", true},
		{"empty", "", false},
		{"wrong check digit", "52998224724", false},
		{"repeated digits", "11111111111", false},
		{"too short", "5299822472", false},
		{"letters", "5299822472a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsCPF(tt.input))
		})
	}
}

func TestSignupValidator_IsZipCode(t *testing.T) {
	v := NewSignupValidator()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid digits", "01310100", true},
		{"valid formatted", "01310-100", true},
		{"empty", "", false},
		{"too short", "0131010", false},
		{"letters", "0131010a", false},
		{"misplaced dash", "0131-0100", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsZipCode(tt.input))
		})
	}
}
