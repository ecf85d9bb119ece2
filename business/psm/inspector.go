package psm

import "causalLab/domain"

// RangeInspector tracks the score picked on the distribution chart and
// derives the highlighted band from it on every read.
type RangeInspector struct {
	halfWidth float64
	selected  *float64
}

func NewRangeInspector(halfWidth float64) *RangeInspector {
	if halfWidth <= 0 {
		halfWidth = defaultSelectionHalfWidth
	}
	return &RangeInspector{halfWidth: halfWidth}
}

// Select replaces any previous selection with x.
func (r *RangeInspector) Select(x float64) {
	v := x
	r.selected = &v
}

func (r *RangeInspector) Clear() {
	r.selected = nil
}

func (r *RangeInspector) Active() bool {
	return r.selected != nil
}

// CurrentInterval returns nil when nothing is selected.
func (r *RangeInspector) CurrentInterval() *domain.SelectionInterval {
	if r.selected == nil {
		return nil
	}
	c := *r.selected
	return &domain.SelectionInterval{
		Center: c,
		Lower:  c - r.halfWidth,
		Upper:  c + r.halfWidth,
	}
}

// FormatInterval renders interval bounds with the 3-decimal sample labels.
func FormatInterval(iv *domain.SelectionInterval) *domain.SelectionLabels {
	if iv == nil {
		return nil
	}
	return &domain.SelectionLabels{
		Center: FormatScore(iv.Center),
		Lower:  FormatScore(iv.Lower),
		Upper:  FormatScore(iv.Upper),
	}
}
