package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterCourier handles POST /api/v1/couriers/me.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	principal, err := requireRole(ctx, order.RoleCourier, "register_courier")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRegisterCourierCommand(kernel.NewUUID(), principal.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.RegisterCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithCourierProfile(ctx, http.StatusCreated, principal.UserID)
}

// GetMyCourierProfile handles GET /api/v1/couriers/me.
func (s *Server) GetMyCourierProfile(ctx echo.Context) error {
	principal, err := requireRole(ctx, order.RoleCourier, "get_courier_profile")
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithCourierProfile(ctx, http.StatusOK, principal.UserID)
}

// ChangeCourierAvailability handles PUT /api/v1/couriers/me/availability.
func (s *Server) ChangeCourierAvailability(ctx echo.Context) error {
	principal, err := requireRole(ctx, order.RoleCourier, "change_courier_availability")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.Availability
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeCourierAvailabilityCommand(principal.UserID, body.Available)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ChangeCourierAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCourierLocation handles PUT /api/v1/couriers/me/location.
func (s *Server) UpdateCourierLocation(ctx echo.Context) error {
	principal, err := requireRole(ctx, order.RoleCourier, "update_courier_location")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.Location
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCourierLocationCommand(principal.UserID, body.Latitude, body.Longitude)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.UpdateCourierLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithCourierProfile(ctx echo.Context, status int, userID kernel.UUID) error {
	query, err := queries.NewGetCourierProfileQuery(userID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetCourierProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(status, toCourierProfile(view))
}
