package parser

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/errors"
	"timesheet-sync/internal/timefmt"
)

// reportColumns maps each semantic column to its index in the results
// table, -1 when the report was generated without that column.
type reportColumns struct {
	date     int
	project  int
	task     int
	start    int
	finish   int
	duration int
	note     int
	cost     int
	edit     int
}

// ParseReportPage parses the report results page. The table has no fixed
// shape: the report generator emits only the columns the filter asked for,
// so column meaning is derived from the header cell text.
func ParseReportPage(html string) (*ReportPage, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, errors.NewParseError("document", "", err)
	}

	page := &ReportPage{}

	table := findReportTable(doc)
	if table == nil {
		return page, nil
	}

	rows := table.Find("tr")
	if rows.Length() <= 1 {
		return page, nil
	}

	columns := parseReportColumns(rows.First())
	if columns.date < 0 {
		return page, nil
	}

	// The table ends with a blank spacer row and a totals row; neither
	// holds a record.
	var parseErr error
	last := rows.Length() - 2
	rows.Slice(1, rows.Length()).EachWithBreak(func(i int, row *goquery.Selection) bool {
		index := i + 1
		if index >= last {
			return false
		}
		record, err := parseReportRecord(row, int64(index), columns, page)
		if err != nil {
			parseErr = err
			return false
		}
		if record != nil {
			page.Records = append(page.Records, *record)
		}
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	page.Totals = totalReportRecords(page.Records)
	return page, nil
}

// findReportTable locates the results table: inside the report view form,
// the table enclosing a header cell whose own text is "Date". Current
// templates render the header row as th cells; older ones as
// td.tableHeader.
func findReportTable(doc *goquery.Document) *goquery.Selection {
	form := doc.Find("form[name='reportViewForm']").First()
	if form.Length() == 0 {
		return nil
	}
	header := form.Find("th").First()
	if header.Length() == 0 {
		header = form.Find("td.tableHeader").First()
	}
	if header.Length() == 0 || ownText(header) != "Date" {
		return nil
	}
	table := header.Closest("table")
	if table.Length() == 0 {
		return nil
	}
	return table
}

func parseReportColumns(headerRow *goquery.Selection) reportColumns {
	columns := reportColumns{
		date:     -1,
		project:  -1,
		task:     -1,
		start:    -1,
		finish:   -1,
		duration: -1,
		note:     -1,
		cost:     -1,
		edit:     -1,
	}
	cells := headerRow.Children()
	cells.Each(func(col int, cell *goquery.Selection) {
		switch ownText(cell) {
		case "Date":
			columns.date = col
		case "Project":
			columns.project = col
		case "Task":
			columns.task = col
		case "Start":
			columns.start = col
		case "Finish":
			columns.finish = col
		case "Duration":
			columns.duration = col
		case "Note":
			columns.note = col
		case "Cost":
			columns.cost = col
		}
	})
	// The unlabelled trailing column holds each row's edit link.
	columns.edit = cells.Length() - 1
	return columns
}

// parseReportRecord parses one results row. Rows with an unreadable date
// are skipped; an unreadable start or finish leaves that field unset; a
// malformed cost or record id is a hard parse failure. Project and task
// names not seen before are registered as fresh name-only entities on the
// page.
func parseReportRecord(row *goquery.Selection, id int64, columns reportColumns, page *ReportPage) (*domain.TimeRecord, error) {
	cols := row.Find("td")
	if cols.Length() == 0 {
		return nil, nil
	}

	record := domain.NewTimeRecord()
	record.ID = id
	record.Status = domain.StatusCurrent

	date, ok := timefmt.ParseDate(ownText(cols.Eq(columns.date)))
	if !ok {
		return nil, nil
	}
	record.Date = date

	if columns.project >= 0 {
		cell := cols.Eq(columns.project)
		if cell.AttrOr("class", "") == "tableHeader" {
			return nil, nil
		}
		record.Project = internProject(page, ownText(cell))
	}

	if columns.task >= 0 {
		record.Task = internTask(page, ownText(cols.Eq(columns.task)))
	}

	if columns.start >= 0 {
		record.Start = timefmt.ParseTime(date, ownText(cols.Eq(columns.start)))
	}

	if columns.finish >= 0 {
		record.Finish = timefmt.ParseTime(date, ownText(cols.Eq(columns.finish)))
	}

	if columns.duration >= 0 {
		duration, _ := timefmt.ParseDuration(ownText(cols.Eq(columns.duration)))
		record.Duration = duration
	}

	if columns.note >= 0 {
		record.Note = strings.TrimSpace(ownText(cols.Eq(columns.note)))
	}

	if columns.cost >= 0 {
		costText := ownText(cols.Eq(columns.cost))
		if costText != "" {
			cost, err := strconv.ParseFloat(costText, 64)
			if err != nil {
				return nil, errors.NewParseError("cost", costText, err)
			}
			record.Cost = cost
		}
	}

	if columns.edit >= 0 {
		link := cols.Eq(columns.edit).Find("a").First().AttrOr("href", "")
		editID, err := parseRecordID(link)
		if err != nil {
			return nil, err
		}
		if editID != domain.IDNone {
			record.ID = editID
		}
	}

	return &record, nil
}

// internProject finds the named project in the page's accumulating list or
// registers a fresh name-only entry.
func internProject(page *ReportPage, name string) domain.Project {
	if known := domain.FindProjectByName(page.Projects, name); known != nil {
		return *known
	}
	project := domain.NewProject(name)
	page.Projects = append(page.Projects, project)
	return project
}

// internTask finds the named task in the page's accumulating list or
// registers a fresh name-only entry.
func internTask(page *ReportPage, name string) domain.ProjectTask {
	if known := domain.FindTaskByName(page.Tasks, name); known != nil {
		return *known
	}
	task := domain.NewProjectTask(name)
	page.Tasks = append(page.Tasks, task)
	return task
}

func totalReportRecords(records []domain.TimeRecord) domain.ReportTotals {
	var totals domain.ReportTotals
	for _, record := range records {
		if duration := record.TotalDuration(); duration > 0 {
			totals.Duration += duration
		}
		totals.Cost += record.Cost
	}
	return totals
}
