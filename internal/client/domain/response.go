package domain

import "net/http"

// UnknownErrorMessage is the only detail returned when client creation fails.
const UnknownErrorMessage = "An unknown error has occurred."

// NewBadRequestResponse builds a 400 envelope listing the message of every error, in order.
func NewBadRequestResponse(errs []error) *SignupResponse {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return &SignupResponse{
		StatusCode: http.StatusBadRequest,
		Errors:     messages,
	}
}

// NewOKResponse builds a 200 envelope carrying the created client.
func NewOKResponse(client *Client) *SignupResponse {
	return &SignupResponse{
		StatusCode: http.StatusOK,
		Client:     client,
	}
}

// NewInternalErrorResponse builds a 500 envelope with the generic error message.
func NewInternalErrorResponse() *SignupResponse {
	return &SignupResponse{
		StatusCode: http.StatusInternalServerError,
		Errors:     []string{UnknownErrorMessage},
	}
}
