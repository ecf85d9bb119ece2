package psm

import (
	"context"
	"testing"
	"time"

	"causalLab/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(delay time.Duration) Config {
	cfg := DefaultConfig()
	cfg.BusyDelay = delay
	return cfg
}

func TestSession_Defaults(t *testing.T) {
	s := NewSession("s1", DefaultConfig())
	v := s.View()

	assert.Equal(t, "s1", v.SessionID)
	assert.Equal(t, domain.ModelLogisticRegression, v.Model)
	assert.Equal(t, domain.MethodNearestNeighbor, v.Method)
	assert.Equal(t, 0.05, v.Caliper)
	assert.Equal(t, domain.StateIdle, v.State)
	assert.Len(t, v.Samples, 50)
	assert.Nil(t, v.Selection)
	assert.Nil(t, v.SelectLabel)
	assert.Equal(t, "k=1, Caliper=0.05, Replacement=False", v.Summary.EffectiveParams)
}

func TestSession_SettersTouchOnlyTheirSlice(t *testing.T) {
	s := NewSession("s1", DefaultConfig())
	require.NoError(t, s.SelectScore(0.5))

	require.NoError(t, s.SetModel(domain.ModelXGBoost))
	v := s.View()
	assert.Equal(t, ProfileFor(domain.ModelXGBoost), v.Profile)
	assert.Equal(t, Generate(ProfileFor(domain.ModelXGBoost), 50), v.Samples)
	assert.Equal(t, domain.MethodNearestNeighbor, v.Method)
	assert.Equal(t, 0.05, v.Caliper)
	require.NotNil(t, v.Selection)
	assert.Equal(t, 0.5, v.Selection.Center)

	before := v.Samples
	require.NoError(t, s.SetMethod(domain.MethodRadiusMatching))
	require.NoError(t, s.SetCaliper(0.1))
	v = s.View()
	assert.Equal(t, before, v.Samples)
	assert.Equal(t, "Radius=0.2", v.Summary.EffectiveParams)
	require.NotNil(t, v.Selection)
	assert.Equal(t, domain.ModelXGBoost, v.Model)
}

func TestSession_SelectAndClear(t *testing.T) {
	s := NewSession("s1", DefaultConfig())

	require.NoError(t, s.SelectScore(0.5))
	v := s.View()
	require.NotNil(t, v.SelectLabel)
	assert.Equal(t, "0.450", v.SelectLabel.Lower)
	assert.Equal(t, "0.550", v.SelectLabel.Upper)

	require.NoError(t, s.SelectScore(0.1))
	v = s.View()
	assert.Equal(t, 0.1, v.Selection.Center)
	assert.Equal(t, "0.050", v.SelectLabel.Lower)

	require.NoError(t, s.ClearSelection())
	assert.Nil(t, s.View().Selection)
}

func TestSession_RunEstimation(t *testing.T) {
	s := NewSession("s1", testConfig(30*time.Millisecond))
	require.NoError(t, s.SetMethod(domain.MethodKernelMatching))
	require.NoError(t, s.SelectScore(0.7))
	before := s.View()

	require.NoError(t, s.RunEstimation())
	v := s.View()
	assert.Equal(t, domain.StateCalculating, v.State)
	assert.Nil(t, v.Selection)

	assert.ErrorIs(t, s.RunEstimation(), ErrCalculating)

	// selection is not blocked while busy
	require.NoError(t, s.SelectScore(0.3))
	require.NoError(t, s.ClearSelection())

	assert.Eventually(t, func() bool {
		return s.State() == domain.StateIdle
	}, time.Second, 5*time.Millisecond)

	after := s.View()
	assert.Equal(t, before.Model, after.Model)
	assert.Equal(t, before.Method, after.Method)
	assert.Equal(t, before.Caliper, after.Caliper)
	assert.Equal(t, before.Samples, after.Samples)
	assert.Nil(t, after.Selection)

	require.NoError(t, s.RunEstimation(), "idle again, a new run is accepted")
}

func TestSession_CloseDiscardsPendingCompletion(t *testing.T) {
	s := NewSession("s1", testConfig(20*time.Millisecond))
	require.NoError(t, s.RunEstimation())

	s.Close()
	s.Close()
	assert.True(t, s.Closed())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, domain.StateCalculating, s.State(), "completion must not touch a closed session")

	assert.ErrorIs(t, s.SetModel(domain.ModelXGBoost), ErrSessionClosed)
	assert.ErrorIs(t, s.SetMethod(domain.MethodKernelMatching), ErrSessionClosed)
	assert.ErrorIs(t, s.SetCaliper(0.1), ErrSessionClosed)
	assert.ErrorIs(t, s.SelectScore(0.5), ErrSessionClosed)
	assert.ErrorIs(t, s.ClearSelection(), ErrSessionClosed)
	assert.ErrorIs(t, s.RunEstimation(), ErrSessionClosed)
}

func TestSessionStore(t *testing.T) {
	st := NewSessionStore(testConfig(time.Hour))
	ctx := context.Background()

	a, err := st.Open(ctx)
	require.NoError(t, err)
	b, err := st.Open(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, st.Len())

	got, err := st.Get(a.ID())
	require.NoError(t, err)
	assert.Same(t, a, got)

	require.NoError(t, a.RunEstimation())
	require.NoError(t, st.Close(a.ID()))
	assert.True(t, a.Closed())
	assert.ErrorIs(t, st.Close(a.ID()), ErrSessionNotFound)

	_, err = st.Get(a.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	st.CloseAll()
	assert.Equal(t, 0, st.Len())
	assert.True(t, b.Closed())
}

func TestSessionStore_OpenCanceledContext(t *testing.T) {
	st := NewSessionStore(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.Open(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, st.Len())
}
