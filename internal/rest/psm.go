package rest

import (
	"context"
	"net/http"
	"time"

	"causalLab/business/psm"
	"causalLab/domain"
	"causalLab/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PSMHandler struct {
		psmService PSMService
		validate   *validator.Validate
		timeout    time.Duration
	}

	PSMService interface {
		Open(ctx context.Context) (domain.PSMView, error)
		View(ctx context.Context, id string) (domain.PSMView, error)
		SetModel(ctx context.Context, id, model string) (domain.PSMView, error)
		SetMethod(ctx context.Context, id, method string) (domain.PSMView, error)
		SetCaliper(ctx context.Context, id string, caliper float64) (domain.PSMView, error)
		SelectScore(ctx context.Context, id string, score float64) (domain.PSMView, error)
		ClearSelection(ctx context.Context, id string) (domain.PSMView, error)
		RunEstimation(ctx context.Context, id string) (domain.PSMView, error)
		Close(ctx context.Context, id string) error
		Quality(ctx context.Context) (domain.MatchingQuality, error)
	}

	SetModelRequest struct {
		Model string `json:"model" validate:"required,psm_model"`
	}

	SetMethodRequest struct {
		Method string `json:"method" validate:"required,psm_method"`
	}

	SetCaliperRequest struct {
		Caliper *float64 `json:"caliper" validate:"required,min=0.01,max=0.2"`
	}

	SelectScoreRequest struct {
		Score *float64 `json:"score" validate:"required,min=0,max=1"`
	}
)

func NewPSMHandler(psmService PSMService) *PSMHandler {
	return &PSMHandler{
		psmService: psmService,
		validate:   psm.NewValidator(),
		timeout:    10 * time.Second,
	}
}

func (h *PSMHandler) OpenSession(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	view, err := h.psmService.Open(ctx)
	if err != nil {
		logger.Error("Failed to open psm session", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(view))
}

func (h *PSMHandler) GetSession(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	view, err := h.psmService.View(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(view))
}

func (h *PSMHandler) CloseSession(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.psmService.Close(ctx, c.Param("id")); err != nil {
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("session closed"))
}

func (h *PSMHandler) SetModel(c echo.Context) error {
	var req SetModelRequest
	if err := h.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return h.respond(c, func(ctx context.Context, id string) (domain.PSMView, error) {
		return h.psmService.SetModel(ctx, id, req.Model)
	})
}

func (h *PSMHandler) SetMethod(c echo.Context) error {
	var req SetMethodRequest
	if err := h.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return h.respond(c, func(ctx context.Context, id string) (domain.PSMView, error) {
		return h.psmService.SetMethod(ctx, id, req.Method)
	})
}

func (h *PSMHandler) SetCaliper(c echo.Context) error {
	var req SetCaliperRequest
	if err := h.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return h.respond(c, func(ctx context.Context, id string) (domain.PSMView, error) {
		return h.psmService.SetCaliper(ctx, id, *req.Caliper)
	})
}

func (h *PSMHandler) SelectScore(c echo.Context) error {
	var req SelectScoreRequest
	if err := h.bind(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return h.respond(c, func(ctx context.Context, id string) (domain.PSMView, error) {
		return h.psmService.SelectScore(ctx, id, *req.Score)
	})
}

func (h *PSMHandler) ClearSelection(c echo.Context) error {
	return h.respond(c, h.psmService.ClearSelection)
}

// RunEstimation answers with the view in its calculating state; clients poll
// GetSession for the return to idle.
func (h *PSMHandler) RunEstimation(c echo.Context) error {
	return h.respond(c, h.psmService.RunEstimation)
}

func (h *PSMHandler) Quality(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	quality, err := h.psmService.Quality(ctx)
	if err != nil {
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(quality))
}

func (h *PSMHandler) bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		logger.Error("Failed to bind request", err)
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		logger.Debug("psm request rejected", "error", err)
		return err
	}
	return nil
}

func (h *PSMHandler) respond(c echo.Context, fn func(ctx context.Context, id string) (domain.PSMView, error)) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	view, err := fn(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(view))
}
