package http

import (
	"context"
	"log/slog"
	"net/http"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func parseUUID(s string) (kernel.UUID, error) {
	return kernel.UUIDFromString(s)
}

func newUUID() kernel.UUID {
	return kernel.NewUUID()
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}

// runOrderCommand factors the shared shape of the order lifecycle
// endpoints: parse the order id, run the command as the caller, answer
// 204 on success.
func (s *Server) runOrderCommand(
	c echo.Context,
	run func(orderID kernel.UUID, principal services.Principal) error,
) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	orderID, err := pathID(c)
	if err != nil {
		return writeBadRequest(c, "invalid order id")
	}

	if err := run(orderID, principal); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func logRequest(_ echo.Context, v middleware.RequestLoggerValues) error {
	slog.LogAttrs(context.Background(), slog.LevelInfo, "request",
		slog.String("method", v.Method),
		slog.String("uri", v.URI),
		slog.Int("status", v.Status),
	)
	return nil
}
