package parser

import (
	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/errors"
	"timesheet-sync/internal/timefmt"
)

// ParseReportFormPage parses the report filter form page.
func ParseReportFormPage(html string) (*ReportFormPage, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, errors.NewParseError("document", "", err)
	}

	data, err := parseFormData(doc, "reportForm", scriptObjTasksStart, objTasksPattern)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return &ReportFormPage{Filter: domain.NewReportFilter()}, nil
	}

	filter := domain.NewReportFilter()
	filter.Project = data.selectedProject
	filter.Task = data.selectedTask

	page := &ReportFormPage{
		Filter:       filter,
		Projects:     data.projects,
		Tasks:        data.tasks,
		ErrorMessage: data.errorMessage,
	}

	inputPeriod := selectByName(data.form, "period")
	if inputPeriod == nil {
		return page, nil
	}
	// No selection, or a selected blank value, keeps the default period;
	// CUSTOM is reserved for selected values outside the named set.
	if value := findSelectedValue(inputPeriod); value != "" {
		filter.Period = domain.PeriodByValue(value)
	}

	if inputStart := selectByName(data.form, "start_date"); inputStart != nil {
		if start, ok := timefmt.ParseDate(inputValue(inputStart)); ok {
			filter.Start = &start
		}
	}
	if inputFinish := selectByName(data.form, "end_date"); inputFinish != nil {
		if finish, ok := timefmt.ParseDate(inputValue(inputFinish)); ok {
			filter.Finish = &finish
		}
	}

	// An unchecked or missing checkbox preserves the filter's prior
	// default instead of forcing false.
	if input := selectByName(data.form, "chproject"); input != nil {
		filter.ShowProjectField = isChecked(input)
	}
	if input := selectByName(data.form, "chtask"); input != nil {
		filter.ShowTaskField = isChecked(input)
	}
	if input := selectByName(data.form, "chstart"); input != nil {
		filter.ShowStartField = isChecked(input)
	}
	if input := selectByName(data.form, "chfinish"); input != nil {
		filter.ShowFinishField = isChecked(input)
	}
	if input := selectByName(data.form, "chduration"); input != nil {
		filter.ShowDurationField = isChecked(input)
	}
	if input := selectByName(data.form, "chnote"); input != nil {
		filter.ShowNoteField = isChecked(input)
	}

	page.Filter = filter
	return page, nil
}
