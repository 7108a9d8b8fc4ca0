package http

import (
	"errors"
	"log/slog"
	"strings"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

const (
	apiPrefix    = "/api/"
	principalKey = "marketplace.principal"
)

// Authenticate resolves the bearer token of every /api/ request and stores
// the caller for the handlers. Other routes such as /health pass through.
func Authenticate(auth ports.Authenticator, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Request().URL.Path, apiPrefix) {
				return next(c)
			}

			token, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !ok {
				token = ""
			}

			principal, err := auth.Resolve(c.Request().Context(), token)
			if err != nil {
				status, body := problem(err)
				if !errors.Is(err, ports.ErrUnauthenticated) {
					logger.ErrorContext(c.Request().Context(), "failed to resolve session", "error", err)
				}
				return c.JSON(status, body)
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// RequestValidator rejects requests that do not match the OpenAPI document
// before they reach a handler. Requests to routes the document does not know
// are left to echo.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	withoutServers := *doc
	withoutServers.Servers = nil

	router, err := gorillamux.NewRouter(&withoutServers)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return badRequest(c, validationMessage(validateErr))
			}
			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return "invalid parameter " + reqErr.Parameter.Name + ": " + reqErr.Reason
		}
		if reqErr.RequestBody != nil && reqErr.Err != nil {
			return "invalid request body: " + reqErr.Err.Error()
		}
		return reqErr.Error()
	}
	return err.Error()
}

func principalFrom(c echo.Context) (ports.Principal, error) {
	principal, ok := c.Get(principalKey).(ports.Principal)
	if !ok {
		return ports.Principal{}, ports.ErrUnauthenticated
	}
	return principal, nil
}

// requireRole returns the caller when it acts in role.
func requireRole(c echo.Context, role order.Role, action string) (ports.Principal, error) {
	principal, err := principalFrom(c)
	if err != nil {
		return ports.Principal{}, err
	}
	if principal.Role != role {
		return ports.Principal{}, errs.NewForbiddenError(action, "only a "+role.String()+" may do this")
	}
	return principal, nil
}
