package uplift

import (
	"time"

	"causalLab/domain"
)

var upliftSegments = []domain.UpliftResult{
	{
		Segment:                 domain.SegmentPersuadable,
		Count:                   2450,
		ConversionRateTreatment: 0.18,
		ConversionRateControl:   0.05,
		Uplift:                  0.13,
		Color:                   "#3b82f6",
	},
	{
		Segment:                 domain.SegmentSureThing,
		Count:                   1200,
		ConversionRateTreatment: 0.92,
		ConversionRateControl:   0.91,
		Uplift:                  0.01,
		Color:                   "#10b981",
	},
	{
		Segment:                 domain.SegmentLostCause,
		Count:                   5800,
		ConversionRateTreatment: 0.02,
		ConversionRateControl:   0.02,
		Uplift:                  0,
		Color:                   "#94a3b8",
	},
	{
		Segment:                 domain.SegmentSleepingDog,
		Count:                   150,
		ConversionRateTreatment: 0.01,
		ConversionRateControl:   0.04,
		Uplift:                  -0.03,
		Color:                   "#ef4444",
	},
}

var kpiCards = []domain.MetricData{
	{Label: "Total Causal ROI", Value: "4.2x", Change: 12, Icon: "fa-chart-pie"},
	{Label: "Incremental GMV", Value: "¥1,240,500", Change: 8.4, Icon: "fa-money-bill-trend-up"},
	{Label: "Persuadables Found", Value: "12,450", Change: 15.2, Icon: "fa-user-check"},
	{Label: "Marketing Efficiency", Value: "88.5%", Change: -2.1, Icon: "fa-bolt"},
}

var revenueTrend = []domain.TrendPoint{
	{Name: "Mon", Revenue: 4000},
	{Name: "Tue", Revenue: 3000},
	{Name: "Wed", Revenue: 2000},
	{Name: "Thu", Revenue: 2780},
	{Name: "Fri", Revenue: 1890},
	{Name: "Sat", Revenue: 2390},
	{Name: "Sun", Revenue: 3490},
}

// DefaultCampaigns seeds the static campaign store and the campaign table.
func DefaultCampaigns() []domain.CampaignHistory {
	return []domain.CampaignHistory{
		{ID: "1", Name: "Summer Festival Coupons", Date: day(2024, time.June, 12), Method: "X-Learner", ROI: 4.2, IncrementalRevenue: 124000},
		{ID: "2", Name: "New User Retention Push", Date: day(2024, time.July, 5), Method: "DR-Learner", ROI: 2.8, IncrementalRevenue: 89000},
		{ID: "3", Name: "Dormant User Re-activation", Date: day(2024, time.August, 20), Method: "T-Learner", ROI: 1.5, IncrementalRevenue: 45000},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
