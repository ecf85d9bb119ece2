package rest

import (
	"context"
	"net/http"
	"time"

	"causalLab/domain"
	"causalLab/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	DashboardHandler struct {
		catalog Catalog
		timeout time.Duration
	}

	Catalog interface {
		Segments() []domain.UpliftResult
		KPIs() []domain.MetricData
		RevenueTrend() []domain.TrendPoint
		Campaigns(ctx context.Context) ([]domain.CampaignHistory, error)
	}
)

func NewDashboardHandler(catalog Catalog) *DashboardHandler {
	return &DashboardHandler{
		catalog: catalog,
		timeout: 10 * time.Second,
	}
}

func (h *DashboardHandler) KPIs(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.catalog.KPIs()))
}

func (h *DashboardHandler) RevenueTrend(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.catalog.RevenueTrend()))
}

func (h *DashboardHandler) Segments(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.catalog.Segments()))
}

func (h *DashboardHandler) Campaigns(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	campaigns, err := h.catalog.Campaigns(ctx)
	if err != nil {
		logger.Error("Failed to find campaign history", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(campaigns))
}
