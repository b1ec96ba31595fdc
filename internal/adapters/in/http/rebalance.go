package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Rebalance handles POST /api/v1/rebalance - recomputes the whole fleet.
func (s *Server) Rebalance(ctx echo.Context) error {
	summary, err := s.handlers.Rebalance.Handle(ctx.Request().Context(), commands.NewRebalanceCommand())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.RebalanceSummary{
		Assigned:     summary.Assigned,
		OnHold:       summary.OnHold,
		Pending:      summary.Pending,
		Unassignable: summary.Unassignable,
	})
}
