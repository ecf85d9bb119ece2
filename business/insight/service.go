package insight

import (
	"context"
	"fmt"
	"strings"

	"causalLab/domain"
	"causalLab/pkg/logger"
)

const (
	FallbackUpliftInsights = "Failed to fetch insights. Please ensure your API key is valid."
	FallbackExplanation    = "Could not load explanation."
)

// Generator is the external text-generation collaborator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// LearnerMethods maps the short keys used by the interview hub to the
// meta-learner names sent in prompts.
var LearnerMethods = map[string]string{
	"S":  "S-Learner (Single)",
	"T":  "T-Learner (Two)",
	"X":  "X-Learner (Cross)",
	"DR": "DR-Learner (Doubly Robust)",
}

// Service builds narrative prompts and fails closed: callers always get text
// back, either generated or a fixed fallback.
type Service struct {
	generator Generator
}

func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

func (s *Service) UpliftInsights(ctx context.Context, results []domain.UpliftResult) string {
	return s.request(ctx, "uplift", UpliftPrompt(results), FallbackUpliftInsights)
}

func (s *Service) ExplainMethod(ctx context.Context, method string) string {
	return s.request(ctx, "explain", ExplainPrompt(method), FallbackExplanation)
}

func (s *Service) request(ctx context.Context, kind, prompt, fallback string) string {
	if s.generator == nil {
		RequestsTotal.WithLabelValues(kind, "unconfigured").Inc()
		return fallback
	}
	if err := ctx.Err(); err != nil {
		RequestsTotal.WithLabelValues(kind, "canceled").Inc()
		return fallback
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Error("insight generation failed", "kind", kind, "error", err)
		RequestsTotal.WithLabelValues(kind, "error").Inc()
		return fallback
	}
	if strings.TrimSpace(text) == "" {
		logger.Warn("insight generation returned empty text", "kind", kind)
		RequestsTotal.WithLabelValues(kind, "empty").Inc()
		return fallback
	}

	RequestsTotal.WithLabelValues(kind, "ok").Inc()
	return text
}

func UpliftPrompt(results []domain.UpliftResult) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("- %s: %d users, Treatment CR: %v, Control CR: %v, Uplift: %v",
			r.Segment, r.Count, r.ConversionRateTreatment, r.ConversionRateControl, r.Uplift))
	}

	var b strings.Builder
	b.WriteString("As a Senior Causal Inference Specialist at a top tech company (like ByteDance or Meituan),\n")
	b.WriteString("analyze these marketing Uplift Modeling results:\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nProvide:\n")
	b.WriteString("1. A summary of the 'True Incremental Effect'.\n")
	b.WriteString("2. Strategic recommendation: Who should we target for the next campaign to maximize ROI?\n")
	b.WriteString("3. Technical explanation of why Uplift modeling is superior to simple A/B testing for personalized marketing.\n")
	b.WriteString("4. An 'Interview Tip' for a data science candidate on how to explain this in a technical interview.\n\n")
	b.WriteString("Format the response as clear Markdown.")
	return b.String()
}

func ExplainPrompt(method string) string {
	return fmt.Sprintf("Explain the causal inference algorithm '%s' (e.g., S-Learner, T-Learner, X-Learner) in the context of marketing attribution.\n"+
		"Focus on how it handles heterogeneous treatment effects and why it's used instead of basic correlation.\n"+
		"Include a section on 'Interview Prep' specifically for companies like Alibaba or Meituan.", method)
}
