package memory

import (
	"context"
	"fmt"

	"causalLab/domain"
)

// CampaignRepository serves a fixed campaign list in the order it was given.
type CampaignRepository struct {
	rows []domain.CampaignHistory
}

func NewCampaignRepository(rows []domain.CampaignHistory) *CampaignRepository {
	kept := make([]domain.CampaignHistory, len(rows))
	copy(kept, rows)
	return &CampaignRepository{rows: kept}
}

func (r *CampaignRepository) FindAll(ctx context.Context) ([]domain.CampaignHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	out := make([]domain.CampaignHistory, len(r.rows))
	copy(out, r.rows)
	return out, nil
}
