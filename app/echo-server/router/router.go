package router

import (
	"net/http"

	"causalLab/internal/rest"
	"causalLab/pkg/metrics"

	"github.com/labstack/echo/v4"
)

func SetupPSMRoutes(api *echo.Group, handler *rest.PSMHandler, mw ...echo.MiddlewareFunc) {
	sessions := api.Group("/psm/sessions", mw...)

	sessions.POST("", handler.OpenSession)
	sessions.GET("/:id", handler.GetSession)
	sessions.DELETE("/:id", handler.CloseSession)

	sessions.PUT("/:id/model", handler.SetModel)
	sessions.PUT("/:id/method", handler.SetMethod)
	sessions.PUT("/:id/caliper", handler.SetCaliper)

	sessions.POST("/:id/selection", handler.SelectScore)
	sessions.DELETE("/:id/selection", handler.ClearSelection)

	sessions.POST("/:id/estimation", handler.RunEstimation)
	sessions.GET("/:id/chart", handler.Chart)

	api.GET("/psm/quality", handler.Quality, mw...)
}

func SetupDashboardRoutes(api *echo.Group, handler *rest.DashboardHandler, mw ...echo.MiddlewareFunc) {
	dashboard := api.Group("/dashboard", mw...)
	dashboard.GET("/kpis", handler.KPIs)
	dashboard.GET("/trend", handler.RevenueTrend)
	dashboard.GET("/campaigns", handler.Campaigns)

	api.GET("/uplift/segments", handler.Segments, mw...)
}

func SetupInsightRoutes(api *echo.Group, handler *rest.InsightHandler, mw ...echo.MiddlewareFunc) {
	api.GET("/uplift/insights", handler.UpliftInsights, mw...)
	api.GET("/insights/methods/:key", handler.ExplainMethod, mw...)
}

func SetupOpsRoutes(e *echo.Echo) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", metrics.Handler())
}
