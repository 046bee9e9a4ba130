package parser

import (
	"strconv"
	"time"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/errors"
	"timesheet-sync/internal/timefmt"
)

// ParseTimeEditPage parses the time-entry edit form page.
func ParseTimeEditPage(html string) (*TimeEditPage, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, errors.NewParseError("document", "", err)
	}

	data, err := parseFormData(doc, "timeRecordForm", scriptTaskIDsStart, taskIDsPattern)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return &TimeEditPage{Record: domain.NewTimeRecord()}, nil
	}

	record := domain.NewTimeRecord()
	record.Project = data.selectedProject
	record.Task = data.selectedTask

	page := &TimeEditPage{
		Record:       record,
		Projects:     data.projects,
		Tasks:        data.tasks,
		ErrorMessage: data.errorMessage,
	}

	inputDate := selectByName(data.form, "date")
	if inputDate == nil {
		return page, nil
	}
	date, ok := timefmt.ParseDate(inputValue(inputDate))
	if !ok {
		date = time.Now()
	}
	page.Date = date
	record.Date = date

	inputID := selectByName(data.form, "id")
	if inputID == nil {
		page.Record = record
		return page, nil
	}
	if idValue := inputValue(inputID); idValue != "" {
		id, err := strconv.ParseInt(idValue, 10, 64)
		if err != nil {
			return nil, errors.NewParseError("record id", idValue, err)
		}
		record.ID = id
	}

	if inputStart := selectByName(data.form, "start"); inputStart != nil {
		record.Start = timefmt.ParseTime(date, inputValue(inputStart))
	}
	if inputFinish := selectByName(data.form, "finish"); inputFinish != nil {
		record.Finish = timefmt.ParseTime(date, inputValue(inputFinish))
	}
	if inputNote := selectByName(data.form, "note"); inputNote != nil {
		record.Note = inputValue(inputNote)
	}

	if record.ID == domain.IDNone {
		record.Status = domain.StatusDraft
	} else {
		record.Status = domain.StatusCurrent
	}

	page.Record = record
	return page, nil
}
