package domain

import (
	"math"
	"time"
)

// TotalUnknown marks a totals bucket the server page did not report.
// Zero and "not computed" are semantically distinct, so buckets are never
// zero-defaulted.
const TotalUnknown = time.Duration(math.MinInt64)

// TimeTotals holds the aggregate duration buckets shown at the bottom of a
// time list page. Each bucket is independently known or unknown.
type TimeTotals struct {
	Daily     time.Duration
	Weekly    time.Duration
	Monthly   time.Duration
	Remaining time.Duration
}

// NewTimeTotals creates totals with every bucket unknown.
func NewTimeTotals() TimeTotals {
	return TimeTotals{
		Daily:     TotalUnknown,
		Weekly:    TotalUnknown,
		Monthly:   TotalUnknown,
		Remaining: TotalUnknown,
	}
}

// Clear resets all four buckets, to the unknown sentinel when unknown is
// true, to zero otherwise.
func (t *TimeTotals) Clear(unknown bool) {
	value := time.Duration(0)
	if unknown {
		value = TotalUnknown
	}
	t.Daily = value
	t.Weekly = value
	t.Monthly = value
	t.Remaining = value
}

// ReportTotals aggregates the records of a report results page.
type ReportTotals struct {
	Duration time.Duration
	Cost     float64
}
