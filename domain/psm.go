package domain

// ScoringModel selects the propensity-score model whose curve shape is shown.
type ScoringModel string

const (
	ModelLogisticRegression ScoringModel = "Logistic Regression"
	ModelRandomForest       ScoringModel = "Random Forest"
	ModelXGBoost            ScoringModel = "XGBoost"
)

// MatchingMethod selects the matching strategy described next to the chart.
type MatchingMethod string

const (
	MethodNearestNeighbor MatchingMethod = "Nearest Neighbor"
	MethodRadiusMatching  MatchingMethod = "Radius Matching"
	MethodKernelMatching  MatchingMethod = "Kernel Matching"
)

// Caliper slider bounds.
const (
	CaliperMin     = 0.01
	CaliperMax     = 0.2
	CaliperStep    = 0.01
	CaliperDefault = 0.05
)

// ScoreProfile holds the two shape parameters of a scoring model.
type ScoreProfile struct {
	CenterShift float64 `json:"center_shift"`
	Spread      float64 `json:"spread"`
}

// DistributionSample is one point of the treatment/control curves.
type DistributionSample struct {
	Score            float64 `json:"score"`
	Label            string  `json:"label"`
	TreatmentDensity float64 `json:"treatment"`
	ControlDensity   float64 `json:"control"`
}

type MethodSummary struct {
	Title           string `json:"title"`
	Mechanism       string `json:"mechanism"`
	EffectiveParams string `json:"effective_params"`
	Pros            string `json:"pros"`
	Cons            string `json:"cons"`
}

// SelectionInterval is the highlighted band around a picked score.
// Lower < Center < Upper always holds.
type SelectionInterval struct {
	Center float64 `json:"center"`
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
}

// SelectionLabels is the display form of a SelectionInterval.
type SelectionLabels struct {
	Center string `json:"center"`
	Lower  string `json:"lower"`
	Upper  string `json:"upper"`
}

type CalculationState string

const (
	StateIdle        CalculationState = "idle"
	StateCalculating CalculationState = "calculating"
)

// PSMView is the composed view model handed to the presentation layer.
type PSMView struct {
	SessionID   string               `json:"session_id"`
	Model       ScoringModel         `json:"model"`
	Method      MatchingMethod       `json:"method"`
	Caliper     float64              `json:"caliper"`
	State       CalculationState     `json:"state"`
	Profile     ScoreProfile         `json:"profile"`
	Samples     []DistributionSample `json:"samples"`
	Summary     MethodSummary        `json:"summary"`
	Selection   *SelectionInterval   `json:"selection,omitempty"`
	SelectLabel *SelectionLabels     `json:"selection_labels,omitempty"`
	Inspection  *SegmentInspection   `json:"inspection,omitempty"`
}

// SegmentStat is one covariate balance cell, treated vs control.
type SegmentStat struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SegmentInspection is the fixed statistics panel shown for an active
// selection. The figures are display data, not computed from the band.
type SegmentInspection struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	MatchedPairs string        `json:"matched_pairs"`
	LocalATE     string        `json:"local_ate"`
	Covariates   []SegmentStat `json:"covariates"`
}

type QualityMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	// Percent fill of the gauge bar, 0 when the card has none.
	Gauge float64 `json:"gauge,omitempty"`
	Note  string  `json:"note,omitempty"`
}

type ParameterGuide struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	LowLabel    string `json:"low_label"`
	LowEffect   string `json:"low_effect"`
	HighLabel   string `json:"high_label"`
	HighEffect  string `json:"high_effect"`
}

// MatchingQuality groups the balance cards and the parameter deep dive.
type MatchingQuality struct {
	Metrics    []QualityMetric  `json:"metrics"`
	Parameters []ParameterGuide `json:"parameters"`
}
