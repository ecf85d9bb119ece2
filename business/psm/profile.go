package psm

import (
	"fmt"
	"strings"

	"causalLab/domain"
)

// ScoringModels lists the selectable models in display order.
var ScoringModels = []domain.ScoringModel{
	domain.ModelLogisticRegression,
	domain.ModelRandomForest,
	domain.ModelXGBoost,
}

// ProfileFor maps a scoring model to the shape of its illustrative curves.
// The constants only control how separated the two populations look.
func ProfileFor(model domain.ScoringModel) domain.ScoreProfile {
	switch model {
	case domain.ModelRandomForest:
		return domain.ScoreProfile{CenterShift: 0.2, Spread: 0.05}
	case domain.ModelXGBoost:
		return domain.ScoreProfile{CenterShift: 0.1, Spread: 0.05}
	case domain.ModelLogisticRegression:
		fallthrough
	default:
		return domain.ScoreProfile{CenterShift: 0.4, Spread: 0.08}
	}
}

// ParseModel accepts a display name ("Random Forest") or a key ("random_forest").
func ParseModel(s string) (domain.ScoringModel, error) {
	switch selectorKey(s) {
	case "logistic_regression", "logit", "lr":
		return domain.ModelLogisticRegression, nil
	case "random_forest", "rf":
		return domain.ModelRandomForest, nil
	case "xgboost", "xgb":
		return domain.ModelXGBoost, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, s)
}

func selectorKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return s
}
