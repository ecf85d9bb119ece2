package psm

import (
	"context"
	"fmt"

	"causalLab/domain"
	"causalLab/pkg/logger"
)

// Service is the entry point the transport layer talks to. It resolves
// sessions by id and turns raw selector input into session operations.
type Service struct {
	store *SessionStore
}

func NewService(store *SessionStore) *Service {
	return &Service{store: store}
}

func (s *Service) Open(ctx context.Context) (domain.PSMView, error) {
	sess, err := s.store.Open(ctx)
	if err != nil {
		return domain.PSMView{}, err
	}

	logger.Debug("psm_session_opened",
		"trace_id", TraceIDFromContext(ctx),
		"session_id", sess.ID(),
	)
	return sess.View(), nil
}

func (s *Service) View(ctx context.Context, id string) (domain.PSMView, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return domain.PSMView{}, err
	}
	return sess.View(), nil
}

func (s *Service) SetModel(ctx context.Context, id, model string) (domain.PSMView, error) {
	m, err := ParseModel(model)
	if err != nil {
		return domain.PSMView{}, err
	}
	return s.apply(ctx, id, "set_model", func(sess *Session) error {
		return sess.SetModel(m)
	})
}

func (s *Service) SetMethod(ctx context.Context, id, method string) (domain.PSMView, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return domain.PSMView{}, err
	}
	return s.apply(ctx, id, "set_method", func(sess *Session) error {
		return sess.SetMethod(m)
	})
}

func (s *Service) SetCaliper(ctx context.Context, id string, caliper float64) (domain.PSMView, error) {
	if !ValidCaliper(caliper) {
		return domain.PSMView{}, fmt.Errorf("%w: %v not in [%v, %v]", ErrCaliperOutOfRange, caliper, domain.CaliperMin, domain.CaliperMax)
	}
	return s.apply(ctx, id, "set_caliper", func(sess *Session) error {
		return sess.SetCaliper(caliper)
	})
}

// SelectScore snaps score to the nearest generated sample before selecting
// it, since the chart only ever reports sample positions.
func (s *Service) SelectScore(ctx context.Context, id string, score float64) (domain.PSMView, error) {
	return s.apply(ctx, id, "select", func(sess *Session) error {
		sample, ok := Nearest(sess.View().Samples, score)
		if !ok {
			return fmt.Errorf("no samples to select from")
		}
		return sess.SelectScore(sample.Score)
	})
}

func (s *Service) ClearSelection(ctx context.Context, id string) (domain.PSMView, error) {
	return s.apply(ctx, id, "clear_selection", func(sess *Session) error {
		return sess.ClearSelection()
	})
}

func (s *Service) RunEstimation(ctx context.Context, id string) (domain.PSMView, error) {
	return s.apply(ctx, id, "run_estimation", func(sess *Session) error {
		return sess.RunEstimation()
	})
}

// Quality serves the matching-quality panel shared by every session.
func (s *Service) Quality(ctx context.Context) (domain.MatchingQuality, error) {
	if err := ctx.Err(); err != nil {
		return domain.MatchingQuality{}, fmt.Errorf("context error: %w", err)
	}
	return Quality(), nil
}

func (s *Service) Close(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if err := s.store.Close(id); err != nil {
		return err
	}

	logger.Debug("psm_session_closed",
		"trace_id", TraceIDFromContext(ctx),
		"session_id", id,
	)
	return nil
}

func (s *Service) apply(ctx context.Context, id, op string, fn func(*Session) error) (domain.PSMView, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return domain.PSMView{}, err
	}
	if err := fn(sess); err != nil {
		logger.Debug("psm_session_op_failed",
			"trace_id", TraceIDFromContext(ctx),
			"session_id", id,
			"op", op,
			"error", err,
		)
		return domain.PSMView{}, err
	}
	return sess.View(), nil
}

func (s *Service) session(ctx context.Context, id string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	return s.store.Get(id)
}
