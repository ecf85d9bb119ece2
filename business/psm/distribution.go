package psm

import (
	"math"
	"strconv"

	"causalLab/domain"
)

// Generate samples the treatment and control curves at sampleCount evenly
// spaced scores over [0, 1], endpoints included, in ascending score order.
//
// The curves are unnormalized Gaussian bumps: they show relative overlap only
// and are not meant to integrate to 1.
func Generate(profile domain.ScoreProfile, sampleCount int) []domain.DistributionSample {
	if sampleCount < 2 {
		sampleCount = defaultSampleCount
	}

	out := make([]domain.DistributionSample, sampleCount)
	for i := range sampleCount {
		x := float64(i) / float64(sampleCount-1)
		out[i] = domain.DistributionSample{
			Score:            x,
			Label:            FormatScore(x),
			TreatmentDensity: TreatmentDensity(profile, x),
			ControlDensity:   ControlDensity(profile, x),
		}
	}
	return out
}

// TreatmentDensity = exp(-(x - (0.5 + shift/2))^2 / spread)
func TreatmentDensity(profile domain.ScoreProfile, x float64) float64 {
	center := 0.5 + profile.CenterShift/2
	d := x - center
	return math.Exp(-(d * d) / profile.Spread)
}

// ControlDensity = exp(-(x - (0.5 - shift/2))^2 / (spread * 1.2))
func ControlDensity(profile domain.ScoreProfile, x float64) float64 {
	center := 0.5 - profile.CenterShift/2
	d := x - center
	return math.Exp(-(d * d) / (profile.Spread * 1.2))
}

// FormatScore renders a score the way sample labels are shown: 3 decimals.
func FormatScore(x float64) string {
	return strconv.FormatFloat(x, 'f', 3, 64)
}

// Nearest snaps x to the score of the closest sample. Ties go to the lower
// sample. samples must be sorted by score.
func Nearest(samples []domain.DistributionSample, x float64) (domain.DistributionSample, bool) {
	if len(samples) == 0 {
		return domain.DistributionSample{}, false
	}

	best := 0
	bestDist := math.Abs(samples[0].Score - x)
	for i := 1; i < len(samples); i++ {
		d := math.Abs(samples[i].Score - x)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return samples[best], true
}

// SampleByLabel finds the sample whose 3-decimal label equals label.
func SampleByLabel(samples []domain.DistributionSample, label string) (domain.DistributionSample, bool) {
	for _, s := range samples {
		if s.Label == label {
			return s, true
		}
	}
	return domain.DistributionSample{}, false
}
