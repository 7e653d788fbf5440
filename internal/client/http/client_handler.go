// Package http provides HTTP handlers for client signup and client lookup.
package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	clientDomain "github.com/allisson/clients/internal/client/domain"
	"github.com/allisson/clients/internal/client/http/dto"
	clientUseCase "github.com/allisson/clients/internal/client/usecase"
	apperrors "github.com/allisson/clients/internal/errors"
	"github.com/allisson/clients/internal/httputil"
)

// maxSignupBodyBytes bounds the signup document read from the request.
const maxSignupBodyBytes = 1 << 20

// ClientHandler handles HTTP requests for client operations.
type ClientHandler struct {
	signupUseCase clientUseCase.SignupUseCase
	clientUseCase clientUseCase.ClientUseCase
	logger        *slog.Logger
}

// NewClientHandler creates a new client handler with required dependencies.
func NewClientHandler(
	signupUseCase clientUseCase.SignupUseCase,
	clientUseCase clientUseCase.ClientUseCase,
	logger *slog.Logger,
) *ClientHandler {
	return &ClientHandler{
		signupUseCase: signupUseCase,
		clientUseCase: clientUseCase,
		logger:        logger,
	}
}

// SignupHandler runs a signup through the signup use case.
// POST /v1/signup - Returns the status code of the response envelope with either
// the created client or {"errors": [...]}.
func (h *ClientHandler) SignupHandler(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSignupBodyBytes))
	if err != nil {
		h.writeSignupResponse(c, clientDomain.NewBadRequestResponse(
			[]error{clientDomain.NewInvalidParameterError("body")},
		))
		return
	}

	request, err := dto.DecodeSignupRequest(raw)
	if err != nil {
		h.writeSignupResponse(c, clientDomain.NewBadRequestResponse([]error{err}))
		return
	}

	h.writeSignupResponse(c, h.signupUseCase.Handle(c.Request.Context(), request))
}

func (h *ClientHandler) writeSignupResponse(c *gin.Context, response *clientDomain.SignupResponse) {
	c.JSON(response.StatusCode, dto.MapSignupResponse(response))
}

// GetHandler retrieves a client by ID.
// GET /v1/clients/:id - Returns 200 OK with client data (no password).
func (h *ClientHandler) GetHandler(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "invalid client ID format: must be a valid UUID"),
			h.logger)
		return
	}

	client, err := h.clientUseCase.Get(c.Request.Context(), clientID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapClientToResponse(client))
}

// ListHandler retrieves clients with pagination support.
// GET /v1/clients?offset=0&limit=50 - Returns 200 OK with a page of clients, newest first.
func (h *ClientHandler) ListHandler(c *gin.Context) {
	page, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	clients, err := h.clientUseCase.List(c.Request.Context(), page.Offset, page.Limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapClientsToListResponse(clients))
}
