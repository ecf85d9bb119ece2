package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"causalLab/business/insight"
	"causalLab/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	InsightHandler struct {
		insightService InsightService
		catalog        Catalog
		timeout        time.Duration
	}

	InsightService interface {
		UpliftInsights(ctx context.Context, results []domain.UpliftResult) string
		ExplainMethod(ctx context.Context, method string) string
	}

	InsightResponse struct {
		Insights string `json:"insights"`
	}

	ExplanationResponse struct {
		Key         string `json:"key"`
		Method      string `json:"method"`
		Explanation string `json:"explanation"`
	}
)

func NewInsightHandler(insightService InsightService, catalog Catalog, timeout time.Duration) *InsightHandler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &InsightHandler{
		insightService: insightService,
		catalog:        catalog,
		timeout:        timeout,
	}
}

func (h *InsightHandler) UpliftInsights(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	text := h.insightService.UpliftInsights(ctx, h.catalog.Segments())
	return c.JSON(http.StatusOK, fres.Response.StatusOK(InsightResponse{Insights: text}))
}

func (h *InsightHandler) ExplainMethod(c echo.Context) error {
	key := strings.ToUpper(c.Param("key"))
	method, ok := insight.LearnerMethods[key]
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "unknown learner method: " + c.Param("key")})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	text := h.insightService.ExplainMethod(ctx, method)
	return c.JSON(http.StatusOK, fres.Response.StatusOK(ExplanationResponse{
		Key:         key,
		Method:      method,
		Explanation: text,
	}))
}
