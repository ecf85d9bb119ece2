package psm

import (
	"fmt"
	"strconv"

	"causalLab/domain"
)

var MatchingMethods = []domain.MatchingMethod{
	domain.MethodNearestNeighbor,
	domain.MethodRadiusMatching,
	domain.MethodKernelMatching,
}

const kernelBandwidth = 0.06

// Summarize describes a matching method under the given caliper.
// Kernel matching ignores the caliper: its bandwidth is fixed.
func Summarize(method domain.MatchingMethod, caliper float64) domain.MethodSummary {
	switch method {
	case domain.MethodRadiusMatching:
		return domain.MethodSummary{
			Title:           "Radius Matching",
			Mechanism:       "Matches each treatment unit with all control units within a predefined score distance (radius).",
			EffectiveParams: fmt.Sprintf("Radius=%s", formatParam(caliper*2)),
			Pros:            "Uses more information when many good matches are available.",
			Cons:            "Risk of poor matches if the radius is too large.",
		}
	case domain.MethodKernelMatching:
		return domain.MethodSummary{
			Title:           "Kernel Matching",
			Mechanism:       "Uses a weighted average of all control group units to create a counterfactual for each treatment unit.",
			EffectiveParams: fmt.Sprintf("Kernel=Gaussian, Bandwidth=%s", formatParam(kernelBandwidth)),
			Pros:            "Low variance because it uses more data points.",
			Cons:            "Can be biased if many units are far from the treatment unit.",
		}
	case domain.MethodNearestNeighbor:
		fallthrough
	default:
		return domain.MethodSummary{
			Title:           "Nearest Neighbor (NN) Matching",
			Mechanism:       "Pairs each treatment unit with the control unit that has the closest propensity score.",
			EffectiveParams: fmt.Sprintf("k=1, Caliper=%s, Replacement=False", formatParam(caliper)),
			Pros:            "Simple, easy to interpret, good for large samples.",
			Cons:            "Sensitive to the order of data if matching without replacement.",
		}
	}
}

// ParseMethod accepts a display name ("Radius Matching") or a key ("radius").
func ParseMethod(s string) (domain.MatchingMethod, error) {
	switch selectorKey(s) {
	case "nearest_neighbor", "nearest", "nn":
		return domain.MethodNearestNeighbor, nil
	case "radius_matching", "radius":
		return domain.MethodRadiusMatching, nil
	case "kernel_matching", "kernel":
		return domain.MethodKernelMatching, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// ValidCaliper reports whether c lies on the slider range [0.01, 0.2].
func ValidCaliper(c float64) bool {
	return c >= domain.CaliperMin && c <= domain.CaliperMax
}

// shortest representation, so 0.05 prints as "0.05" and 0.1*2 as "0.2"
func formatParam(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
