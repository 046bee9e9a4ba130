package domain

import "time"

// ReportTimePeriod is a named date range understood by the report form.
// The value is the option value the server templates use.
type ReportTimePeriod string

const (
	PeriodCustom        ReportTimePeriod = ""
	PeriodToday         ReportTimePeriod = "1"
	PeriodThisWeek      ReportTimePeriod = "2"
	PeriodThisMonth     ReportTimePeriod = "3"
	PeriodPreviousWeek  ReportTimePeriod = "6"
	PeriodPreviousMonth ReportTimePeriod = "7"
	PeriodYesterday     ReportTimePeriod = "8"
)

// DefaultTimePeriod is the period a fresh filter starts with.
const DefaultTimePeriod = PeriodThisMonth

// TimePeriods lists every named period the server understands.
var TimePeriods = []ReportTimePeriod{
	PeriodCustom,
	PeriodToday,
	PeriodThisWeek,
	PeriodThisMonth,
	PeriodPreviousWeek,
	PeriodPreviousMonth,
	PeriodYesterday,
}

// PeriodByValue resolves an option value to its period, falling back to
// CUSTOM when the value is not one of the named periods.
func PeriodByValue(value string) ReportTimePeriod {
	for _, period := range TimePeriods {
		if string(period) == value && period != PeriodCustom {
			return period
		}
	}
	return PeriodCustom
}

// ReportFilter is a query descriptor for the report form. It shares the
// project/task shape of a time record but is never persisted as one; it is
// only serialized into request parameters by the transport layer.
type ReportFilter struct {
	Project Project
	Task    ProjectTask
	Period  ReportTimePeriod
	Start   *time.Time
	Finish  *time.Time

	// Column visibility flags. An unchecked or missing checkbox on the
	// parsed page preserves the prior value instead of forcing false.
	ShowProjectField  bool
	ShowTaskField     bool
	ShowStartField    bool
	ShowFinishField   bool
	ShowDurationField bool
	ShowNoteField     bool
}

// NewReportFilter creates a filter with the default period.
func NewReportFilter() ReportFilter {
	return ReportFilter{Period: DefaultTimePeriod}
}
