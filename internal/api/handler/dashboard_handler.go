package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancedash/profit-engine/internal/api/metrics"
	"github.com/freelancedash/profit-engine/internal/core/domain"
	"github.com/freelancedash/profit-engine/internal/core/ports"
)

// DashboardHandler serves the derived per-client metrics view.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get handles GET /dashboard.
//
// @Summary      Per-client profitability metrics for the current user
// @Tags         dashboard
// @Produce      json
// @Param        x-access-token  header    string  true  "Session token"
// @Success      200             {array}   domain.ClientMetrics
// @Failure      401             {object}  messageResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	start := time.Now()
	rows, err := h.service.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	metrics.DashboardDuration.Observe(time.Since(start).Seconds())

	if len(rows) == 0 {
		metrics.DashboardsComputedTotal.WithLabelValues("empty").Inc()
		return c.JSON(http.StatusOK, []domain.ClientMetrics{})
	}
	metrics.DashboardsComputedTotal.WithLabelValues("rows").Inc()
	return c.JSON(http.StatusOK, rows)
}
