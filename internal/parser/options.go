package parser

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/errors"
)

// Option is one decoded <option> entry. ID is domain.IDNone for placeholder
// entries such as "--- select ---" whose value attribute is blank.
type Option struct {
	ID   int64
	Name string
}

// decodeOptions decodes the child options of a select element, in document
// order. A non-blank value that is not a positive integer is a hard parse
// failure for the page.
func decodeOptions(sel *goquery.Selection) ([]Option, error) {
	var options []Option
	var decodeErr error
	sel.Find("option").EachWithBreak(func(_ int, option *goquery.Selection) bool {
		entry := Option{Name: ownText(option)}
		value := option.AttrOr("value", "")
		if value != "" {
			id, err := strconv.ParseInt(value, 10, 64)
			if err != nil || id <= 0 {
				decodeErr = errors.NewParseError("option id", value, err)
				return false
			}
			entry.ID = id
		}
		options = append(options, entry)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return options, nil
}

// findSelected returns the id of the first child option flagged selected
// with a non-empty value, or domain.IDNone when no such option exists.
func findSelected(sel *goquery.Selection) (int64, error) {
	var selectedID int64 = domain.IDNone
	var decodeErr error
	sel.Find("option").EachWithBreak(func(_ int, option *goquery.Selection) bool {
		if _, ok := option.Attr("selected"); !ok {
			return true
		}
		value := option.AttrOr("value", "")
		if value == "" {
			return false
		}
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			decodeErr = errors.NewParseError("selected option id", value, err)
			return false
		}
		selectedID = id
		return false
	})
	if decodeErr != nil {
		return domain.IDNone, decodeErr
	}
	return selectedID, nil
}

// findSelectedValue returns the raw value attribute of the first child
// option flagged selected, or "" when no option is selected.
func findSelectedValue(sel *goquery.Selection) string {
	var selected string
	sel.Find("option").EachWithBreak(func(_ int, option *goquery.Selection) bool {
		if _, ok := option.Attr("selected"); !ok {
			return true
		}
		selected = option.AttrOr("value", "")
		return false
	})
	return selected
}

// decodeProjects decodes a project dropdown into a flat project list,
// dropping placeholder entries.
func decodeProjects(sel *goquery.Selection) ([]domain.Project, error) {
	options, err := decodeOptions(sel)
	if err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(options))
	for _, option := range options {
		if option.ID == domain.IDNone {
			continue
		}
		project := domain.NewProject(option.Name)
		project.ID = option.ID
		projects = append(projects, project)
	}
	return projects, nil
}

// decodeTasks decodes a task dropdown into a flat task list, dropping
// placeholder entries.
func decodeTasks(sel *goquery.Selection) ([]domain.ProjectTask, error) {
	options, err := decodeOptions(sel)
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.ProjectTask, 0, len(options))
	for _, option := range options {
		if option.ID == domain.IDNone {
			continue
		}
		task := domain.NewProjectTask(option.Name)
		task.ID = option.ID
		tasks = append(tasks, task)
	}
	return tasks, nil
}
