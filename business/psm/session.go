package psm

import (
	"sync"
	"time"

	"causalLab/domain"
	"causalLab/pkg/logger"
)

// Session is the state of one PSM inspector view. Derived values (samples,
// method summary, selection band) are recomputed from the selectors on every
// View call; nothing derived is cached.
type Session struct {
	mu sync.Mutex

	id  string
	cfg Config

	model   domain.ScoringModel
	method  domain.MatchingMethod
	caliper float64
	state   domain.CalculationState

	inspector *RangeInspector

	// runSeq invalidates completions of timers that were stopped or replaced.
	timer  *time.Timer
	runSeq uint64
	closed bool
}

func NewSession(id string, cfg Config) *Session {
	cfg = cfg.withDefaults()
	return &Session{
		id:        id,
		cfg:       cfg,
		model:     domain.ModelLogisticRegression,
		method:    domain.MethodNearestNeighbor,
		caliper:   domain.CaliperDefault,
		state:     domain.StateIdle,
		inspector: NewRangeInspector(cfg.SelectionHalfWidth),
	}
}

func (s *Session) ID() string {
	return s.id
}

// SetModel switches the scoring model. Method, caliper and selection are kept;
// the sample scores do not move so a selection stays meaningful.
func (s *Session) SetModel(m domain.ScoringModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.model = m
	SessionEventsTotal.WithLabelValues("set_model").Inc()
	return nil
}

func (s *Session) SetMethod(m domain.MatchingMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.method = m
	SessionEventsTotal.WithLabelValues("set_method").Inc()
	return nil
}

// SetCaliper stores c as given. Range checks belong to the control producing
// the value (see ValidCaliper).
func (s *Session) SetCaliper(c float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.caliper = c
	SessionEventsTotal.WithLabelValues("set_caliper").Inc()
	return nil
}

// SelectScore is allowed while calculating.
func (s *Session) SelectScore(x float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.inspector.Select(x)
	SessionEventsTotal.WithLabelValues("select").Inc()
	return nil
}

func (s *Session) ClearSelection() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.inspector.Clear()
	SessionEventsTotal.WithLabelValues("clear_selection").Inc()
	return nil
}

// RunEstimation marks the session busy, drops the selection and schedules the
// return to idle after cfg.BusyDelay. A second call while busy is rejected
// with ErrCalculating.
func (s *Session) RunEstimation() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if s.state == domain.StateCalculating {
		EstimationRunsTotal.WithLabelValues("rejected").Inc()
		return ErrCalculating
	}

	s.state = domain.StateCalculating
	s.inspector.Clear()
	s.runSeq++
	seq := s.runSeq
	s.timer = time.AfterFunc(s.cfg.BusyDelay, func() {
		s.finishEstimation(seq)
	})

	EstimationRunsTotal.WithLabelValues("started").Inc()
	logger.Debug("psm_estimation_started", "session_id", s.id, "run", seq, "delay", s.cfg.BusyDelay.String())
	return nil
}

func (s *Session) finishEstimation(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || seq != s.runSeq {
		EstimationRunsTotal.WithLabelValues("discarded").Inc()
		return
	}
	s.state = domain.StateIdle
	s.timer = nil

	EstimationRunsTotal.WithLabelValues("completed").Inc()
	logger.Debug("psm_estimation_completed", "session_id", s.id, "run", seq)
}

// State reports the calculation flag.
func (s *Session) State() domain.CalculationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close tears the session down; a pending estimation completion is dropped.
// Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.runSeq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// View composes the current view model from a snapshot of the selectors.
func (s *Session) View() domain.PSMView {
	s.mu.Lock()
	model, method, caliper, state := s.model, s.method, s.caliper, s.state
	interval := s.inspector.CurrentInterval()
	sampleCount := s.cfg.SampleCount
	s.mu.Unlock()

	profile := ProfileFor(model)
	labels := FormatInterval(interval)
	return domain.PSMView{
		SessionID:   s.id,
		Model:       model,
		Method:      method,
		Caliper:     caliper,
		State:       state,
		Profile:     profile,
		Samples:     Generate(profile, sampleCount),
		Summary:     Summarize(method, caliper),
		Selection:   interval,
		SelectLabel: labels,
		Inspection:  Inspection(labels),
	}
}
