package rest

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"causalLab/domain"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/labstack/echo/v4"
)

const (
	treatmentColor = "#3b82f6"
	controlColor   = "#94a3b8"
	bandColor      = "rgba(59, 130, 246, 0.12)"

	areaOpacity       = 0.1
	areaOpacityDimmed = 0.03
)

// Chart renders the session's current distribution as an HTML area chart.
func (h *PSMHandler) Chart(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	view, err := h.psmService.View(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	page, err := renderDistributionChart(view)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: fmt.Sprintf("failed to render chart: %v", err)})
	}

	return c.HTMLBlob(http.StatusOK, page)
}

func renderDistributionChart(view domain.PSMView) ([]byte, error) {
	opacity := float32(areaOpacity)
	if view.Selection != nil {
		opacity = areaOpacityDimmed
	}

	treatment := make([]opts.LineData, 0, len(view.Samples))
	control := make([]opts.LineData, 0, len(view.Samples))
	for _, s := range view.Samples {
		treatment = append(treatment, opts.LineData{Name: s.Label, Value: []interface{}{s.Score, s.TreatmentDensity}})
		control = append(control, opts.LineData{Name: s.Label, Value: []interface{}{s.Score, s.ControlDensity}})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Propensity Score Distribution", Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Propensity Score Distribution", Subtitle: string(view.Model)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Propensity Score", Min: 0, Max: 1}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Density"}),
	)

	treatmentOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: treatmentColor}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: treatmentColor}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: treatmentColor, Opacity: opts.Float(opacity)}),
	}
	if view.Selection != nil {
		label := "Inspect"
		if view.SelectLabel != nil {
			label = fmt.Sprintf("%s to %s", view.SelectLabel.Lower, view.SelectLabel.Upper)
		}
		treatmentOpts = append(treatmentOpts,
			charts.WithMarkAreaData([]opts.MarkAreaData{
				{Name: label, XAxis: view.Selection.Lower},
				{XAxis: view.Selection.Upper},
			}),
			charts.WithMarkAreaStyleOpts(opts.MarkAreaStyle{
				ItemStyle: &opts.ItemStyle{Color: bandColor},
			}),
		)
	}

	line.AddSeries("Treatment", treatment, treatmentOpts...)
	line.AddSeries("Control", control,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: controlColor}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: controlColor}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: controlColor, Opacity: opts.Float(opacity)}),
	)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
