package services

import (
	"math"
	"sort"

	"fitness-backend/models"
)

// The dashboard's calorie surplus chart shows at most this many of the
// most recent logged days.
const surplusWindowDays = 14

// The aggregation engine is pure: it turns already-fetched record listings
// into the derived structures the dashboard charts, and touches neither the
// database nor the clock. Dates are grouped and ordered as the stored
// YYYY-MM-DD strings, whose lexicographic order is chronological.

// DayGroup is one calendar day's meal entries with their totals. Days with
// no entries are never materialized.
type DayGroup struct {
	Date         string             `json:"date"`
	Entries      []models.MealEntry `json:"entries"`
	TotalKcal    float64            `json:"total_kcal"`
	TotalProtein float64            `json:"total_protein"`
}

// WeightTrend is the weight-over-time chart input: ascending dates, one
// weight per label, and an optional constant target line of equal length.
// Target is nil (and omitted from JSON) when no target weight is set.
type WeightTrend struct {
	Labels  []string  `json:"labels"`
	Weights []float64 `json:"weights"`
	Target  []float64 `json:"target,omitempty"`
}

// SurplusSeries is the daily calorie surplus/deficit chart input, ascending
// by date. Positive values are a surplus over the target, negative a deficit.
type SurplusSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// DaySummary is a single day's intake totals.
type DaySummary struct {
	Date         string  `json:"date"`
	TotalKcal    float64 `json:"total_kcal"`
	TotalProtein float64 `json:"total_protein"`
}

// numeric zeroes out NaN and infinite values so one malformed entry
// degrades gracefully instead of poisoning a whole day's total.
func numeric(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// GroupMealsByDate buckets entries by their exact stored date string and
// sums calories and protein per bucket. Groups come back most recent day
// first. Every input entry lands in exactly one group.
func GroupMealsByDate(entries []models.MealEntry) []DayGroup {
	byDate := make(map[string]*DayGroup)
	for _, e := range entries {
		g, ok := byDate[e.Date]
		if !ok {
			g = &DayGroup{Date: e.Date}
			byDate[e.Date] = g
		}
		g.Entries = append(g.Entries, e)
		g.TotalKcal += numeric(e.CaloriesKcal)
		g.TotalProtein += numeric(e.ProteinG)
	}

	groups := make([]DayGroup, 0, len(byDate))
	for _, g := range byDate {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})
	return groups
}

// WeightTrendSeries re-sorts records ascending by date for charting (the
// store lists them descending) and, when a target weight is set, adds a
// constant target line the same length as the labels. An unset target
// produces no line at all rather than a zero-filled one.
func WeightTrendSeries(records []models.WeightRecord, targetWeight *float64) WeightTrend {
	sorted := make([]models.WeightRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	trend := WeightTrend{
		Labels:  make([]string, 0, len(sorted)),
		Weights: make([]float64, 0, len(sorted)),
	}
	for _, r := range sorted {
		trend.Labels = append(trend.Labels, r.Date)
		trend.Weights = append(trend.Weights, r.WeightKg)
	}

	if targetWeight != nil {
		trend.Target = make([]float64, len(trend.Labels))
		for i := range trend.Target {
			trend.Target[i] = *targetWeight
		}
	}
	return trend
}

// CalorieSurplusSeries keeps the most recent surplusWindowDays groups
// (input is already descending), then reverses to ascending chronological
// order and emits totalKcal - targetKcal per day. The window applies before
// the reversal, so it always selects the newest days.
func CalorieSurplusSeries(groups []DayGroup, targetKcal int) SurplusSeries {
	recent := groups
	if len(recent) > surplusWindowDays {
		recent = recent[:surplusWindowDays]
	}

	n := len(recent)
	series := SurplusSeries{
		Labels: make([]string, n),
		Values: make([]float64, n),
	}
	for i, g := range recent {
		series.Labels[n-1-i] = g.Date
		series.Values[n-1-i] = g.TotalKcal - float64(targetKcal)
	}
	return series
}

// TodaySummary picks the group for todayDate, or a zero-valued summary when
// nothing has been logged yet today.
func TodaySummary(groups []DayGroup, todayDate string) DaySummary {
	for _, g := range groups {
		if g.Date == todayDate {
			return DaySummary{
				Date:         g.Date,
				TotalKcal:    g.TotalKcal,
				TotalProtein: g.TotalProtein,
			}
		}
	}
	return DaySummary{Date: todayDate}
}
