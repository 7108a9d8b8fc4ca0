package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context, params servers.ListNotificationsParams) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListNotificationsQuery(principal.UserID, flag(params.UnreadOnly), limitOf(params.Limit))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Notification, 0, len(views))
	for _, v := range views {
		response = append(response, toNotification(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/notifications/{notificationId}/read.
func (s *Server) MarkNotificationRead(ctx echo.Context, notificationId openapi_types.UUID) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(toKernelID(notificationId), principal.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
