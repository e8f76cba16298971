package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	echo "github.com/labstack/echo/v5"

	"github.com/butlerhq/butlerd/pkg/approval"
	"github.com/butlerhq/butlerd/pkg/scheduler"
	"github.com/butlerhq/butlerd/pkg/services"
)

const (
	codeButlerNotFound    = "BUTLER_NOT_FOUND"
	codeButlerUnreachable = "BUTLER_UNREACHABLE"
	codeValidation        = "VALIDATION_ERROR"
	codeNotFound          = "NOT_FOUND"
	codeConflict          = "CONFLICT"
	codeInternal          = "INTERNAL"
)

// errorBody is the payload inside the error envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Butler  string `json:"butler,omitempty"`
}

// errorEnvelope is the uniform error response shape.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// apiError carries an HTTP status plus the envelope body through the echo
// error handler.
type apiError struct {
	status int
	body   errorBody
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.body.Code, e.body.Message)
}

func newAPIError(status int, code, message, butler string) *apiError {
	return &apiError{status: status, body: errorBody{Code: code, Message: message, Butler: butler}}
}

// mapServiceError maps service-layer errors onto the error envelope. butler
// names which backend the failure belongs to.
func mapServiceError(butler string, err error) *apiError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, validErr.Error(), butler)
	}

	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, approval.ErrActionNotFound),
		errors.Is(err, approval.ErrRuleNotFound),
		errors.Is(err, scheduler.ErrTaskNotFound):
		return newAPIError(http.StatusNotFound, codeNotFound, "resource not found", butler)

	case errors.Is(err, approval.ErrInvalidTransition),
		errors.Is(err, approval.ErrActionExpired),
		errors.Is(err, scheduler.ErrTaskExists),
		errors.Is(err, scheduler.ErrTaskStatic),
		errors.Is(err, services.ErrAlreadyExists):
		return newAPIError(http.StatusConflict, codeConflict, err.Error(), butler)

	case errors.Is(err, approval.ErrRuleInvariant),
		errors.Is(err, scheduler.ErrTaskInvalid):
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, err.Error(), butler)

	case isUnreachable(err):
		return newAPIError(http.StatusBadGateway, codeButlerUnreachable,
			"butler database is unreachable", butler)
	}

	slog.Error("Unexpected service error", "butler", butler, "error", err)
	return newAPIError(http.StatusInternalServerError, codeInternal, "internal server error", butler)
}

// isUnreachable reports whether the error chain indicates the backend
// database could not be reached, as opposed to rejecting the query.
func isUnreachable(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// httpErrorHandler renders every error as the envelope, including echo's own
// routing errors.
func (s *Server) httpErrorHandler(c *echo.Context, err error) {
	var (
		status = http.StatusInternalServerError
		body   = errorBody{Code: codeInternal, Message: "internal server error"}
	)

	var apiErr *apiError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.status
		body = apiErr.body
	case errors.As(err, &httpErr):
		status = httpErr.Code
		body = errorBody{Code: codeForStatus(httpErr.Code), Message: fmt.Sprintf("%v", httpErr.Message)}
	default:
		slog.Error("Unhandled API error", "error", err)
	}

	if r, _ := echo.UnwrapResponse(c.Response()); r != nil && r.Committed {
		return
	}
	if writeErr := c.JSON(status, &errorEnvelope{Error: body}); writeErr != nil {
		slog.Error("Failed to write error response", "error", writeErr)
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return codeValidation
	case http.StatusNotFound:
		return codeNotFound
	case http.StatusConflict:
		return codeConflict
	default:
		return codeInternal
	}
}
