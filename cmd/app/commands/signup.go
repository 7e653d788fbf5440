package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	clientDomain "github.com/allisson/clients/internal/client/domain"
	"github.com/allisson/clients/internal/client/http/dto"
	clientUsecase "github.com/allisson/clients/internal/client/usecase"
)

// ErrSignupRejected is returned when a signup does not produce a 200 response.
var ErrSignupRejected = errors.New("signup rejected")

// RunSignup reads a JSON signup document from filePath, or from streams.Reader when
// filePath is empty, runs it through the signup pipeline and prints the response.
func RunSignup(
	ctx context.Context,
	signupUseCase clientUsecase.SignupUseCase,
	logger *slog.Logger,
	filePath string,
	format string,
	streams IOTuple,
) error {
	raw, err := readSignupDocument(filePath, streams.Reader)
	if err != nil {
		return err
	}

	request, err := dto.DecodeSignupRequest(raw)
	var response *clientDomain.SignupResponse
	if err != nil {
		response = clientDomain.NewBadRequestResponse([]error{err})
	} else {
		response = signupUseCase.Handle(ctx, request)
	}

	switch format {
	case "json":
		if err := outputSignupJSON(response, streams.Writer); err != nil {
			return err
		}
	default:
		outputSignupText(response, streams.Writer)
	}

	if response.StatusCode != http.StatusOK {
		logger.Debug("signup rejected", slog.Int("status_code", response.StatusCode))
		return fmt.Errorf("%w: status %d", ErrSignupRejected, response.StatusCode)
	}
	return nil
}

func readSignupDocument(filePath string, reader io.Reader) ([]byte, error) {
	if filePath != "" {
		raw, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read signup file: %w", err)
		}
		return raw, nil
	}

	if reader == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read signup from stdin: %w", err)
	}
	return raw, nil
}

func outputSignupText(response *clientDomain.SignupResponse, writer io.Writer) {
	if response.StatusCode == http.StatusOK && response.Client != nil {
		_, _ = fmt.Fprintln(writer, "Client created successfully!")
		_, _ = fmt.Fprintf(writer, "Client ID: %s\n", response.Client.ID)
		_, _ = fmt.Fprintf(writer, "Name: %s\n", response.Client.Name)
		_, _ = fmt.Fprintf(writer, "Email: %s\n", response.Client.Email)
		return
	}

	_, _ = fmt.Fprintf(writer, "Signup failed with status %d:\n", response.StatusCode)
	for _, message := range response.Errors {
		_, _ = fmt.Fprintf(writer, "  - %s\n", message)
	}
}

func outputSignupJSON(response *clientDomain.SignupResponse, writer io.Writer) error {
	result := map[string]any{
		"status_code": response.StatusCode,
		"body":        dto.MapSignupResponse(response),
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
