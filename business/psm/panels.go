package psm

import (
	"fmt"

	"causalLab/domain"
)

var segmentCovariates = []domain.SegmentStat{
	{Name: "Avg Age", Value: "34.2 vs 33.9"},
	{Name: "Active Days", Value: "12.5 vs 12.8"},
	{Name: "Prior Spend", Value: "¥450 vs ¥448"},
	{Name: "Matched Bias", Value: "< 0.001"},
}

var qualityMetrics = []domain.QualityMetric{
	{Label: "SMD (Before)", Value: "0.45", Gauge: 45},
	{Label: "SMD (After)", Value: "0.02", Gauge: 2},
	{Label: "Sample Loss", Value: "12.4%", Note: "Due to lack of common support"},
}

var parameterGuides = []domain.ParameterGuide{
	{
		Key:         "C",
		Title:       "Caliper (Tolerance)",
		Description: "The maximum distance allowed between the Propensity Scores of treated and control units for a match to be valid.",
		LowLabel:    "Lower",
		LowEffect:   "Increases quality of matches (lower bias), but leads to more dropped units (higher sample loss).",
		HighLabel:   "Higher",
		HighEffect:  `Maximizes sample size, but risks matching "dissimilar" users, potentially introducing bias.`,
	},
	{
		Key:         "K",
		Title:       "Kernel (Weighting)",
		Description: "A function that assigns weights to control group units. Closer units get exponentially higher weights than distant ones.",
		LowLabel:    "Epanechnikov",
		LowEffect:   "Efficient kernel often used to minimize mean squared error in non-parametric estimation.",
		HighLabel:   "Gaussian",
		HighEffect:  "Uses all control units but gives negligible weight to those with large score differences.",
	},
	{
		Key:         "B",
		Title:       "Bandwidth (Smoothness)",
		Description: "Specifically used in Kernel Matching. It determines how fast weights decrease as the score distance increases.",
		LowLabel:    "Narrower",
		LowEffect:   "High sensitivity to local score differences. Low bias but high variance in the final estimate.",
		HighLabel:   "Wider",
		HighEffect:  "Smooths out differences. More robust but may overlook specific local selection biases.",
	},
}

// Inspection returns the segment panel for an active selection, nil without one.
func Inspection(labels *domain.SelectionLabels) *domain.SegmentInspection {
	if labels == nil {
		return nil
	}

	covariates := make([]domain.SegmentStat, len(segmentCovariates))
	copy(covariates, segmentCovariates)

	return &domain.SegmentInspection{
		Title: fmt.Sprintf("Segment Inspection: PS Range %s - %s", labels.Lower, labels.Upper),
		Description: "Showing statistics for users matched in this specific likelihood neighborhood. " +
			"Balancing check for covariates shows high overlap in this region.",
		MatchedPairs: "1,245",
		LocalATE:     "+8.2%",
		Covariates:   covariates,
	}
}

// Quality returns the fixed matching-quality cards and parameter guides.
func Quality() domain.MatchingQuality {
	metrics := make([]domain.QualityMetric, len(qualityMetrics))
	copy(metrics, qualityMetrics)
	params := make([]domain.ParameterGuide, len(parameterGuides))
	copy(params, parameterGuides)

	return domain.MatchingQuality{Metrics: metrics, Parameters: params}
}
