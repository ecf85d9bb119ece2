package domain

import "time"

type UserSegment string

const (
	SegmentPersuadable UserSegment = "Persuadable"
	SegmentSureThing   UserSegment = "Sure Thing"
	SegmentLostCause   UserSegment = "Lost Cause"
	SegmentSleepingDog UserSegment = "Sleeping Dog"
)

type UpliftResult struct {
	Segment                 UserSegment `json:"segment"`
	Count                   int         `json:"count"`
	ConversionRateTreatment float64     `json:"conversion_rate_treatment"`
	ConversionRateControl   float64     `json:"conversion_rate_control"`
	Uplift                  float64     `json:"uplift"`
	Color                   string      `json:"color"`
}

// MetricData backs a dashboard KPI card.
type MetricData struct {
	Label  string  `json:"label"`
	Value  string  `json:"value"`
	Change float64 `json:"change"`
	Icon   string  `json:"icon"`
}

type TrendPoint struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// CREATE TABLE public.campaign_history (
//     id                   TEXT PRIMARY KEY,
//     name                 TEXT NOT NULL,
//     run_date             DATE NOT NULL,
//     method               TEXT NOT NULL,
//     roi                  DOUBLE PRECISION NOT NULL,
//     incremental_revenue  DOUBLE PRECISION NOT NULL
// );

type CampaignHistory struct {
	ID                 string    `gorm:"primaryKey;column:id" json:"id"`
	Name               string    `gorm:"column:name;not null" json:"name"`
	Date               time.Time `gorm:"column:run_date;type:date;not null" json:"date"`
	Method             string    `gorm:"column:method;not null" json:"method"`
	ROI                float64   `gorm:"column:roi;not null" json:"roi"`
	IncrementalRevenue float64   `gorm:"column:incremental_revenue;not null" json:"incremental_revenue"`
}

func (CampaignHistory) TableName() string {
	return "campaign_history"
}
