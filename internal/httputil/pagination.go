package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/clients/internal/errors"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// Page holds the offset and limit of a list request.
type Page struct {
	Offset int
	Limit  int
}

// ParsePagination reads the offset and limit query parameters.
// Offset defaults to 0 and limit to 50; limit cannot exceed 100.
// Errors wrap ErrInvalidInput.
func ParsePagination(c *gin.Context) (Page, error) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return Page{}, apperrors.Wrap(apperrors.ErrInvalidInput, "offset must be a non-negative integer")
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		return Page{}, apperrors.Wrapf(apperrors.ErrInvalidInput, "limit must be between 1 and %d", maxLimit)
	}

	return Page{Offset: offset, Limit: limit}, nil
}
