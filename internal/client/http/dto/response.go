package dto

import (
	"time"

	clientDomain "github.com/allisson/clients/internal/client/domain"
)

// ClientResponse represents a client in API responses (excludes password).
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapClientToResponse converts a domain client to an API response.
func MapClientToResponse(client *clientDomain.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID.String(),
		Name:      client.Name,
		Email:     client.Email,
		CPF:       client.CPF,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

// ListClientsResponse represents a paginated list of clients in API responses.
type ListClientsResponse struct {
	Data []ClientResponse `json:"data"`
}

// MapClientsToListResponse converts a slice of domain clients to a list API response.
func MapClientsToListResponse(clients []*clientDomain.Client) ListClientsResponse {
	clientResponses := make([]ClientResponse, 0, len(clients))
	for _, client := range clients {
		clientResponses = append(clientResponses, MapClientToResponse(client))
	}
	return ListClientsResponse{
		Data: clientResponses,
	}
}

// SignupErrorResponse is the body of a rejected or failed signup.
type SignupErrorResponse struct {
	Errors []string `json:"errors"`
}

// MapSignupResponse returns the JSON body for a signup envelope.
func MapSignupResponse(response *clientDomain.SignupResponse) any {
	if response.Client != nil {
		return MapClientToResponse(response.Client)
	}
	return SignupErrorResponse{Errors: response.Errors}
}
