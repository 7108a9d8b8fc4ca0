package http

import (
	"errors"
	"log/slog"
	"net/http"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// problem maps an application error to its status and stable error code.
// Anything unrecognized is a 500 whose details stay in the log.
func problem(err error) (int, servers.Error) {
	var outOfStock *product.OutOfStockError

	switch {
	case errors.As(err, &outOfStock):
		productID := outOfStock.ProductID.Bytes()
		return newError(http.StatusConflict, servers.OUTOFSTOCK, err.Error(), func(e *servers.Error) {
			e.ProductId = &productID
			e.Available = &outOfStock.Available
			e.Requested = &outOfStock.Requested
		})
	case errs.IsObjectNotFound(err, "product"):
		return newError(http.StatusNotFound, servers.PRODUCTNOTFOUND, err.Error())
	case errs.IsObjectNotFound(err, "order"):
		return newError(http.StatusNotFound, servers.ORDERNOTFOUND, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return newError(http.StatusNotFound, servers.NOTFOUND, err.Error())
	case errors.Is(err, order.ErrEmptyOrder):
		return newError(http.StatusBadRequest, servers.EMPTYORDER, err.Error())
	case errors.Is(err, order.ErrInvalidTransition):
		return newError(http.StatusConflict, servers.INVALIDTRANSITION, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return newError(http.StatusForbidden, servers.FORBIDDEN, err.Error())
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return newError(http.StatusConflict, servers.CONCURRENCYCONFLICT, err.Error())
	case errors.Is(err, ports.ErrUnauthenticated):
		return newError(http.StatusUnauthorized, servers.UNAUTHENTICATED, "missing or invalid bearer token")
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return newError(http.StatusBadRequest, servers.VALIDATIONFAILED, err.Error())
	default:
		return newError(http.StatusInternalServerError, servers.INTERNAL, "internal error")
	}
}

func newError(status int, code servers.ErrorErrorCode, message string, opts ...func(*servers.Error)) (int, servers.Error) {
	e := servers.Error{
		Code:      status,
		ErrorCode: code,
		Message:   message,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return status, e
}

func (s *Server) fail(c echo.Context, err error) error {
	status, body := problem(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}
	return c.JSON(status, body)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, servers.Error{
		Code:      http.StatusBadRequest,
		ErrorCode: servers.VALIDATIONFAILED,
		Message:   message,
	})
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes or malformed path parameters, in the same shape as use case errors.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := problem(err)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			body = servers.Error{Code: he.Code, ErrorCode: codeForStatus(he.Code), Message: http.StatusText(he.Code)}
			if msg, ok := he.Message.(string); ok {
				body.Message = msg
			}
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "unhandled error", "path", c.Path(), "error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.WarnContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

func codeForStatus(status int) servers.ErrorErrorCode {
	switch status {
	case http.StatusUnauthorized:
		return servers.UNAUTHENTICATED
	case http.StatusForbidden:
		return servers.FORBIDDEN
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return servers.NOTFOUND
	default:
		if status < http.StatusInternalServerError {
			return servers.VALIDATIONFAILED
		}
		return servers.INTERNAL
	}
}
