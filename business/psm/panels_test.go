package psm

import (
	"context"
	"testing"

	"causalLab/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspection(t *testing.T) {
	assert.Nil(t, Inspection(nil))

	got := Inspection(&domain.SelectionLabels{Center: "0.490", Lower: "0.440", Upper: "0.540"})
	require.NotNil(t, got)
	assert.Equal(t, "Segment Inspection: PS Range 0.440 - 0.540", got.Title)
	assert.Equal(t, "1,245", got.MatchedPairs)
	assert.Equal(t, "+8.2%", got.LocalATE)
	assert.Equal(t, []domain.SegmentStat{
		{Name: "Avg Age", Value: "34.2 vs 33.9"},
		{Name: "Active Days", Value: "12.5 vs 12.8"},
		{Name: "Prior Spend", Value: "¥450 vs ¥448"},
		{Name: "Matched Bias", Value: "< 0.001"},
	}, got.Covariates)

	got.Covariates[0].Value = "changed"
	again := Inspection(&domain.SelectionLabels{Lower: "0.440", Upper: "0.540"})
	assert.Equal(t, "34.2 vs 33.9", again.Covariates[0].Value)
}

func TestSession_InspectionFollowsSelection(t *testing.T) {
	sess := NewSession("s", DefaultConfig())
	defer sess.Close()

	assert.Nil(t, sess.View().Inspection)

	require.NoError(t, sess.SelectScore(0.5))
	inspection := sess.View().Inspection
	require.NotNil(t, inspection)
	assert.Equal(t, "Segment Inspection: PS Range 0.450 - 0.550", inspection.Title)

	require.NoError(t, sess.ClearSelection())
	assert.Nil(t, sess.View().Inspection)
}

func TestQuality(t *testing.T) {
	q := Quality()

	require.Len(t, q.Metrics, 3)
	assert.Equal(t, domain.QualityMetric{Label: "SMD (Before)", Value: "0.45", Gauge: 45}, q.Metrics[0])
	assert.Equal(t, domain.QualityMetric{Label: "SMD (After)", Value: "0.02", Gauge: 2}, q.Metrics[1])
	assert.Equal(t, "12.4%", q.Metrics[2].Value)
	assert.Equal(t, "Due to lack of common support", q.Metrics[2].Note)

	require.Len(t, q.Parameters, 3)
	assert.Equal(t, "Caliper (Tolerance)", q.Parameters[0].Title)
	assert.Equal(t, "Kernel (Weighting)", q.Parameters[1].Title)
	assert.Equal(t, "Bandwidth (Smoothness)", q.Parameters[2].Title)

	q.Metrics[0].Value = "changed"
	assert.Equal(t, "0.45", Quality().Metrics[0].Value)

	svc := NewService(NewSessionStore(DefaultConfig()))
	fromService, err := svc.Quality(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Quality(), fromService)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Quality(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
