package psm

import (
	"testing"

	"causalLab/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_Params(t *testing.T) {
	tests := []struct {
		name    string
		method  domain.MatchingMethod
		caliper float64
		want    string
	}{
		{"nn default", domain.MethodNearestNeighbor, 0.05, "k=1, Caliper=0.05, Replacement=False"},
		{"nn max", domain.MethodNearestNeighbor, 0.2, "k=1, Caliper=0.2, Replacement=False"},
		{"radius doubles caliper", domain.MethodRadiusMatching, 0.1, "Radius=0.2"},
		{"radius min", domain.MethodRadiusMatching, 0.01, "Radius=0.02"},
		{"kernel fixed", domain.MethodKernelMatching, 0.05, "Kernel=Gaussian, Bandwidth=0.06"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.method, tt.caliper).EffectiveParams)
		})
	}
}

func TestSummarize_KernelIgnoresCaliper(t *testing.T) {
	base := Summarize(domain.MethodKernelMatching, domain.CaliperMin)
	for c := 2; c <= 20; c++ {
		assert.Equal(t, base, Summarize(domain.MethodKernelMatching, float64(c)/100))
	}
}

func TestSummarize_CaliperSensitiveMethods(t *testing.T) {
	for _, m := range []domain.MatchingMethod{domain.MethodNearestNeighbor, domain.MethodRadiusMatching} {
		a := Summarize(m, 0.05)
		b := Summarize(m, 0.15)
		assert.NotEqual(t, a.EffectiveParams, b.EffectiveParams, m)
		assert.Equal(t, a, Summarize(m, 0.05), m)

		a.EffectiveParams, b.EffectiveParams = "", ""
		assert.Equal(t, a, b, "only the params string depends on the caliper")
	}
}

func TestSummarize_Titles(t *testing.T) {
	assert.Equal(t, "Nearest Neighbor (NN) Matching", Summarize(domain.MethodNearestNeighbor, 0.05).Title)
	assert.Equal(t, "Radius Matching", Summarize(domain.MethodRadiusMatching, 0.05).Title)
	assert.Equal(t, "Kernel Matching", Summarize(domain.MethodKernelMatching, 0.05).Title)

	for _, m := range MatchingMethods {
		s := Summarize(m, 0.05)
		assert.NotEmpty(t, s.Mechanism)
		assert.NotEmpty(t, s.Pros)
		assert.NotEmpty(t, s.Cons)
	}
}

func TestParseMethod(t *testing.T) {
	got, err := ParseMethod("Radius Matching")
	require.NoError(t, err)
	assert.Equal(t, domain.MethodRadiusMatching, got)

	got, err = ParseMethod("kernel")
	require.NoError(t, err)
	assert.Equal(t, domain.MethodKernelMatching, got)

	got, err = ParseMethod("nearest_neighbor")
	require.NoError(t, err)
	assert.Equal(t, domain.MethodNearestNeighbor, got)

	_, err = ParseMethod("optimal")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestValidCaliper(t *testing.T) {
	assert.True(t, ValidCaliper(0.01))
	assert.True(t, ValidCaliper(0.2))
	assert.True(t, ValidCaliper(domain.CaliperDefault))
	assert.False(t, ValidCaliper(0.009))
	assert.False(t, ValidCaliper(0.21))
}
