package postgres

import (
	"context"
	"testing"

	"causalLab/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Discard,
	})
	require.NoError(t, err)
	return db
}

func TestFindAllQuery_OldestFirst(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []domain.CampaignHistory
		return findAllQuery(tx).Find(&rows)
	})

	assert.Contains(t, sql, `FROM "campaign_history"`)
	assert.Regexp(t, `ORDER BY run_date ASC,\s*id ASC`, sql)
}

func TestCampaignRepository_FindAllCanceled(t *testing.T) {
	repo := NewCampaignRepository(dryRunDB(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
