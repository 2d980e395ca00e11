package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
)

// DashboardService is the dashboard use case consumed by the handler
type DashboardService interface {
	GetDashboardData(ctx context.Context, userID string) (*entities.DashboardSnapshot, error)
}

// Dashboard handles dashboard HTTP requests
type Dashboard struct {
	service DashboardService
	logger  *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service DashboardService, logger *zap.Logger) *Dashboard {
	return &Dashboard{service: service, logger: logger}
}

// GetDashboard handles GET /dashboard
// @Summary      Get dashboard
// @Description  Meeting count, upcoming meetings, task summary and overdue tasks of the caller
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entities.DashboardSnapshot
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}  "Failed to fetch dashboard data"
// @Router       /dashboard [get]
func (h *Dashboard) GetDashboard(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	snapshot, err := h.service.GetDashboardData(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}

	return HandleSuccess(h.logger, c, snapshot)
}
