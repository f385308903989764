package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/agri-ledger/internal/services"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type ErrorResponse struct {
	Error string `json:"error"`
}

// InsufficientLandResponse is returned with 409 when an allocation would
// exceed the farmer's land.
type InsufficientLandResponse struct {
	Error    string `json:"error"`
	FreeLand string `json:"free_land"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func respondError(c *gin.Context, err error) {
	var landErr *services.InsufficientLandError
	if errors.As(err, &landErr) {
		c.JSON(http.StatusConflict, InsufficientLandResponse{
			Error:    "insufficient land",
			FreeLand: money(landErr.FreeLand),
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrFarmerNotFound),
		errors.Is(err, services.ErrCycleNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrFarmerExists),
		errors.Is(err, services.ErrCycleHarvested),
		errors.Is(err, services.ErrCycleAlreadyHarvested):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrRegistrationKeyRequired),
		errors.Is(err, services.ErrInvalidLandArea),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidArea),
		errors.Is(err, services.ErrCropNameRequired),
		errors.Is(err, services.ErrItemNameRequired),
		errors.Is(err, services.ErrInvalidCost),
		errors.Is(err, services.ErrInvalidYield):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// parseOptionalDate returns the zero time for an empty string.
func parseOptionalDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

// parseDecimal reads a query or form value. Empty means def.
func parseDecimal(s string, def decimal.Decimal) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return decimal.NewFromString(s)
}
