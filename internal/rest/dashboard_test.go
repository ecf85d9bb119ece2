package rest

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"causalLab/business/uplift"
	"causalLab/domain"
	"causalLab/internal/repository/memory"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCampaignRepo struct{}

func (failingCampaignRepo) FindAll(ctx context.Context) ([]domain.CampaignHistory, error) {
	return nil, errors.New("connection refused")
}

func newDashboardServer(repo uplift.CampaignRepository) *echo.Echo {
	h := NewDashboardHandler(uplift.NewCatalog(repo))
	e := echo.New()
	api := e.Group("/api/v1")
	api.GET("/dashboard/kpis", h.KPIs)
	api.GET("/dashboard/trend", h.RevenueTrend)
	api.GET("/dashboard/campaigns", h.Campaigns)
	api.GET("/uplift/segments", h.Segments)
	return e
}

func TestDashboardHandler(t *testing.T) {
	e := newDashboardServer(memory.NewCampaignRepository(uplift.DefaultCampaigns()))

	tests := []struct {
		path string
		key  string
		want interface{}
	}{
		{"/api/v1/dashboard/kpis", "label", "Total Causal ROI"},
		{"/api/v1/dashboard/trend", "name", "Mon"},
		{"/api/v1/uplift/segments", "segment", "Persuadable"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(e, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, lookup(t, rec.Body.Bytes(), tt.key))
		})
	}

	t.Run("campaigns", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/dashboard/campaigns", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Summer Festival Coupons")
		assert.Equal(t, "Summer Festival Coupons", lookup(t, rec.Body.Bytes(), "name"), "oldest campaign first")
	})
}

func TestDashboardHandler_CampaignError(t *testing.T) {
	e := newDashboardServer(failingCampaignRepo{})

	rec := do(e, http.MethodGet, "/api/v1/dashboard/campaigns", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
