package uplift

import (
	"context"
	"fmt"

	"causalLab/domain"
	"causalLab/pkg/logger"
)

// CampaignRepository contract interface
type CampaignRepository interface {
	FindAll(ctx context.Context) ([]domain.CampaignHistory, error)
}

// Catalog serves the fixed datasets behind the dashboard and the uplift view.
type Catalog struct {
	campaignRepo CampaignRepository
}

func NewCatalog(campaignRepo CampaignRepository) *Catalog {
	return &Catalog{campaignRepo: campaignRepo}
}

func (c *Catalog) Segments() []domain.UpliftResult {
	out := make([]domain.UpliftResult, len(upliftSegments))
	copy(out, upliftSegments)
	return out
}

func (c *Catalog) KPIs() []domain.MetricData {
	out := make([]domain.MetricData, len(kpiCards))
	copy(out, kpiCards)
	return out
}

func (c *Catalog) RevenueTrend() []domain.TrendPoint {
	out := make([]domain.TrendPoint, len(revenueTrend))
	copy(out, revenueTrend)
	return out
}

func (c *Catalog) Campaigns(ctx context.Context) ([]domain.CampaignHistory, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get campaigns")
		return nil, fmt.Errorf("context error: %w", err)
	}

	campaigns, err := c.campaignRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find campaigns", err)
		return nil, err
	}

	return campaigns, nil
}
