package insight

import (
	"context"
	"errors"
	"testing"

	"causalLab/domain"

	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.response, g.err
}

var sampleResults = []domain.UpliftResult{
	{Segment: domain.SegmentPersuadable, Count: 2450, ConversionRateTreatment: 0.18, ConversionRateControl: 0.05, Uplift: 0.13},
	{Segment: domain.SegmentSleepingDog, Count: 150, ConversionRateTreatment: 0.01, ConversionRateControl: 0.04, Uplift: -0.03},
}

func TestUpliftInsights(t *testing.T) {
	t.Run("returns generated text", func(t *testing.T) {
		gen := &stubGenerator{response: "## Summary"}
		svc := NewService(gen)

		assert.Equal(t, "## Summary", svc.UpliftInsights(context.Background(), sampleResults))
		assert.Len(t, gen.prompts, 1)
		assert.Contains(t, gen.prompts[0], "- Persuadable: 2450 users, Treatment CR: 0.18, Control CR: 0.05, Uplift: 0.13")
		assert.Contains(t, gen.prompts[0], "- Sleeping Dog: 150 users, Treatment CR: 0.01, Control CR: 0.04, Uplift: -0.03")
	})

	t.Run("falls back on error", func(t *testing.T) {
		svc := NewService(&stubGenerator{err: errors.New("quota exceeded")})
		assert.Equal(t, FallbackUpliftInsights, svc.UpliftInsights(context.Background(), sampleResults))
	})

	t.Run("falls back on blank text", func(t *testing.T) {
		svc := NewService(&stubGenerator{response: "  \n"})
		assert.Equal(t, FallbackUpliftInsights, svc.UpliftInsights(context.Background(), sampleResults))
	})

	t.Run("falls back without generator", func(t *testing.T) {
		svc := NewService(nil)
		assert.Equal(t, FallbackUpliftInsights, svc.UpliftInsights(context.Background(), sampleResults))
	})

	t.Run("falls back on canceled context", func(t *testing.T) {
		gen := &stubGenerator{response: "never"}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Equal(t, FallbackUpliftInsights, NewService(gen).UpliftInsights(ctx, sampleResults))
		assert.Empty(t, gen.prompts)
	})
}

func TestExplainMethod(t *testing.T) {
	gen := &stubGenerator{response: "X-Learner crosses..."}
	svc := NewService(gen)

	assert.Equal(t, "X-Learner crosses...", svc.ExplainMethod(context.Background(), LearnerMethods["X"]))
	assert.Contains(t, gen.prompts[0], "'X-Learner (Cross)'")

	failing := NewService(&stubGenerator{err: errors.New("down")})
	assert.Equal(t, FallbackExplanation, failing.ExplainMethod(context.Background(), LearnerMethods["DR"]))
}
