// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"bytes"
	"encoding/json"

	clientDomain "github.com/allisson/clients/internal/client/domain"
)

// SignupRequest is the JSON body of a signup. Pointer fields keep an absent key
// (or an explicit null) apart from an empty string.
type SignupRequest struct {
	Name     *string         `json:"name"`
	Email    *string         `json:"email"`
	Password *string         `json:"password"`
	CPF      *string         `json:"cpf"`
	Address  *AddressRequest `json:"address"`
}

// AddressRequest is the nested address of a signup body.
type AddressRequest struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zipcode"`
}

// ToDomain converts the decoded body into a domain signup request.
func (r *SignupRequest) ToDomain() *clientDomain.SignupRequest {
	if r == nil {
		return &clientDomain.SignupRequest{}
	}

	body := &clientDomain.SignupBody{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		CPF:      r.CPF,
	}
	if r.Address != nil {
		body.Address = &clientDomain.SignupAddress{
			Street:  r.Address.Street,
			City:    r.Address.City,
			State:   r.Address.State,
			ZipCode: r.Address.ZipCode,
		}
	}

	return &clientDomain.SignupRequest{Body: body}
}

// DecodeSignupRequest parses a raw signup document. An empty document or a JSON
// null yields a request without a body. Any other document must be a JSON object
// whose fields have the expected types.
func DecodeSignupRequest(raw []byte) (*clientDomain.SignupRequest, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &clientDomain.SignupRequest{}, nil
	}

	var req *SignupRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, clientDomain.NewInvalidParameterError("body")
	}

	return req.ToDomain(), nil
}
