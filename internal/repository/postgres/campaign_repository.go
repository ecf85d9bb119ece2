package postgres

import (
	"context"
	"fmt"

	"causalLab/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CampaignRepository struct {
	DB *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{
		DB: db,
	}
}

func (r *CampaignRepository) FindAll(ctx context.Context) ([]domain.CampaignHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var campaigns []domain.CampaignHistory
	err := findAllQuery(r.DB.WithContext(ctx)).Find(&campaigns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find campaigns: %w", err)
	}

	return campaigns, nil
}

// findAllQuery lists campaigns oldest first, the order they are declared in.
func findAllQuery(tx *gorm.DB) *gorm.DB {
	return tx.Order("run_date ASC").Order("id ASC")
}

// Seed creates the campaign table if needed and upserts rows by id.
func (r *CampaignRepository) Seed(ctx context.Context, campaigns []domain.CampaignHistory) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).AutoMigrate(&domain.CampaignHistory{}); err != nil {
		return fmt.Errorf("failed to migrate campaign_history: %w", err)
	}
	if len(campaigns) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		},
	).Create(&campaigns).Error; err != nil {
		return fmt.Errorf("failed to seed campaign_history: %w", err)
	}

	return nil
}
