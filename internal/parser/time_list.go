package parser

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/errors"
	"timesheet-sync/internal/timefmt"
)

// ParseTimeListPage parses the per-day time-entry list page: the shared
// entry form, the day's records table, and the totals footer.
func ParseTimeListPage(html string) (*TimeListPage, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, errors.NewParseError("document", "", err)
	}

	data, err := parseFormData(doc, "timeRecordForm", scriptTaskIDsStart, taskIDsPattern)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return &TimeListPage{
			Record: domain.NewTimeRecord(),
			Totals: domain.NewTimeTotals(),
		}, nil
	}

	record := domain.NewTimeRecord()
	record.Project = data.selectedProject
	record.Task = data.selectedTask

	page := &TimeListPage{
		Record:       record,
		Projects:     data.projects,
		Tasks:        data.tasks,
		Totals:       domain.NewTimeTotals(),
		ErrorMessage: data.errorMessage,
	}

	inputDate := selectByName(data.form, "date")
	if inputDate == nil {
		return page, nil
	}
	date, ok := timefmt.ParseDate(inputValue(inputDate))
	if !ok {
		return page, nil
	}
	page.Date = date
	record.Date = date
	page.Record = record

	records, err := parseListRecords(doc, date, data.projects, data.tasks)
	if err != nil {
		return nil, err
	}
	page.Records = records
	page.Totals = parseListTotals(doc)

	return page, nil
}

// findListTable locates the day's records table: the table enclosing three
// consecutive header cells labelled Project, Task and Start, under the
// record-list container.
func findListTable(doc *goquery.Document) *goquery.Selection {
	container := doc.Find("div.record-list").First()
	if container.Length() == 0 {
		return nil
	}

	var table *goquery.Selection
	container.Find("th").EachWithBreak(func(_ int, th *goquery.Selection) bool {
		if ownText(th) != "Project" {
			return true
		}
		next := th.Next()
		if ownText(next) != "Task" {
			return true
		}
		next = next.Next()
		if ownText(next) != "Start" {
			return true
		}
		table = th.Closest("table")
		return false
	})
	return table
}

func parseListRecords(doc *goquery.Document, date time.Time, projects []domain.Project, tasks []domain.ProjectTask) ([]domain.TimeRecord, error) {
	table := findListTable(doc)
	if table == nil {
		return nil, nil
	}

	var records []domain.TimeRecord
	var rowErr error
	table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		record, err := parseListRecord(date, projects, tasks, row)
		if err != nil {
			rowErr = err
			return false
		}
		if record != nil {
			records = append(records, *record)
		}
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return records, nil
}

// parseListRecord parses one row of the records table. Returns nil for
// header and filler rows; a malformed record id is a hard parse failure.
func parseListRecord(date time.Time, projects []domain.Project, tasks []domain.ProjectTask, row *goquery.Selection) (*domain.TimeRecord, error) {
	cols := row.Find("td")
	if cols.Length() < 7 {
		return nil, nil
	}
	if cols.First().AttrOr("class", "") == "tableHeader" {
		return nil, nil
	}

	projectName := ownText(cols.Eq(0))
	project := domain.NewProject(projectName)
	if known := domain.FindProjectByName(projects, projectName); known != nil {
		project = *known
	}

	taskName := ownText(cols.Eq(1))
	task := domain.NewProjectTask(taskName)
	if known := domain.FindTaskByName(tasks, taskName); known != nil {
		task = *known
	}

	start := timefmt.ParseTime(date, ownText(cols.Eq(2)))
	finish := timefmt.ParseTime(date, ownText(cols.Eq(3)))
	duration, _ := timefmt.ParseDuration(ownText(cols.Eq(4)))
	note := strings.TrimSpace(cols.Eq(5).Text())

	editLink := cols.Eq(6).Find("a").First().AttrOr("href", "")
	id, err := parseRecordID(editLink)
	if err != nil {
		return nil, err
	}
	if id == domain.IDNone {
		return nil, nil
	}

	return &domain.TimeRecord{
		ID:       id,
		Project:  project,
		Task:     task,
		Date:     date,
		Start:    start,
		Finish:   finish,
		Duration: duration,
		Note:     note,
		Status:   domain.StatusCurrent,
	}, nil
}

// parseRecordID extracts the record id from an edit link's query string.
// A missing link or id parameter yields IDNone (the row is skipped); a
// non-numeric id is a hard parse failure.
func parseRecordID(link string) (int64, error) {
	if link == "" {
		return domain.IDNone, nil
	}
	parsed, err := url.Parse(link)
	if err != nil {
		return domain.IDNone, nil
	}
	idValue := parsed.Query().Get("id")
	if idValue == "" {
		return domain.IDNone, nil
	}
	id, err := strconv.ParseInt(idValue, 10, 64)
	if err != nil {
		return domain.IDNone, errors.NewParseError("record id", idValue, err)
	}
	return id, nil
}

// parseListTotals reads the totals footer. Buckets whose cell is missing
// or unparsable stay at the unknown sentinel, never zero.
func parseListTotals(doc *goquery.Document) domain.TimeTotals {
	totals := domain.NewTimeTotals()

	doc.Find("td").Each(func(_ int, td *goquery.Selection) {
		class := td.AttrOr("class", "")
		if !strings.HasPrefix(class, "day-totals") {
			return
		}
		text := strings.TrimSpace(td.Text())
		// Only the first colon separates the label; the value itself
		// contains one ("8:30").
		label, value, found := strings.Cut(text, ":")
		if !found {
			return
		}
		duration, ok := timefmt.ParseDuration(strings.TrimSpace(value))
		if !ok {
			duration = domain.TotalUnknown
		}
		switch strings.TrimSpace(label) {
		case "Day total":
			totals.Daily = duration
		case "Week total":
			totals.Weekly = duration
		case "Month total":
			totals.Monthly = duration
		case "Remaining quota":
			totals.Remaining = duration
		}
	})

	return totals
}
