package usecase

import (
	"context"
	"log/slog"

	clientDomain "github.com/allisson/clients/internal/client/domain"
)

// requiredField pairs a field name with a presence check on its parent object.
type requiredField[T any] struct {
	name    string
	present func(T) bool
}

// bodyFields lists the required top-level fields in the order errors are reported.
var bodyFields = []requiredField[*clientDomain.SignupBody]{
	{name: "name", present: func(b *clientDomain.SignupBody) bool { return b.Name != nil }},
	{name: "email", present: func(b *clientDomain.SignupBody) bool { return b.Email != nil }},
	{name: "password", present: func(b *clientDomain.SignupBody) bool { return b.Password != nil }},
	{name: "cpf", present: func(b *clientDomain.SignupBody) bool { return b.CPF != nil }},
	{name: "address", present: func(b *clientDomain.SignupBody) bool { return b.Address != nil }},
}

// addressFields lists the required address fields in the order errors are reported.
var addressFields = []requiredField[*clientDomain.SignupAddress]{
	{name: "street", present: func(a *clientDomain.SignupAddress) bool { return a.Street != nil }},
	{name: "city", present: func(a *clientDomain.SignupAddress) bool { return a.City != nil }},
	{name: "state", present: func(a *clientDomain.SignupAddress) bool { return a.State != nil }},
	{name: "zipcode", present: func(a *clientDomain.SignupAddress) bool { return a.ZipCode != nil }},
}

type signupUseCase struct {
	validator     Validator
	clientCreator ClientCreator
	logger        *slog.Logger
}

// NewSignupUseCase creates the signup processor around its two collaborators.
func NewSignupUseCase(validator Validator, clientCreator ClientCreator, logger *slog.Logger) SignupUseCase {
	return &signupUseCase{
		validator:     validator,
		clientCreator: clientCreator,
		logger:        logger,
	}
}

// Handle runs the presence check, then the format check, then delegates to the creator.
// Each stage that finds a problem ends the request with a 400 envelope.
func (s *signupUseCase) Handle(
	ctx context.Context,
	request *clientDomain.SignupRequest,
) *clientDomain.SignupResponse {
	if request == nil || request.Body == nil {
		return clientDomain.NewBadRequestResponse([]error{clientDomain.NewMissingParameterError("body")})
	}
	body := request.Body

	if errs := missingParameters(body); len(errs) > 0 {
		return clientDomain.NewBadRequestResponse(errs)
	}

	if errs := s.invalidParameters(body); len(errs) > 0 {
		return clientDomain.NewBadRequestResponse(errs)
	}

	client, err := s.clientCreator.Create(ctx, &clientDomain.ClientCreationInput{
		Name:     *body.Name,
		Email:    *body.Email,
		Password: *body.Password,
		CPF:      *body.CPF,
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to create client", slog.Any("error", err))
		}
		return clientDomain.NewInternalErrorResponse()
	}

	return clientDomain.NewOKResponse(client)
}

// missingParameters collects every absent required field. Address fields are
// only checked when the address itself is present.
func missingParameters(body *clientDomain.SignupBody) []error {
	var errs []error

	for _, field := range bodyFields {
		if !field.present(body) {
			errs = append(errs, clientDomain.NewMissingParameterError(field.name))
		}
	}

	if body.Address != nil {
		for _, field := range addressFields {
			if !field.present(body.Address) {
				errs = append(errs, clientDomain.NewMissingParameterError("address."+field.name))
			}
		}
	}

	return errs
}

// invalidParameters calls each validator method exactly once, in order, and
// reports every field that failed. All fields must already be present.
func (s *signupUseCase) invalidParameters(body *clientDomain.SignupBody) []error {
	checks := []struct {
		field string
		valid bool
	}{
		{field: "email", valid: s.validator.IsEmail(*body.Email)},
		{field: "cpf", valid: s.validator.IsCPF(*body.CPF)},
		{field: "zipcode", valid: s.validator.IsZipCode(*body.Address.ZipCode)},
	}

	var errs []error
	for _, check := range checks {
		if !check.valid {
			errs = append(errs, clientDomain.NewInvalidParameterError(check.field))
		}
	}
	return errs
}
