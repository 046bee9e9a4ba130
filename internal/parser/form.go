package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/logging"
)

// formData is the intermediate state shared by every form-shaped page:
// the form element, the decoded project/task dropdowns with associations
// attached, and the current selections. Page parsers compose it with their
// page-specific field extraction and assemble an immutable page at the end.
type formData struct {
	form            *goquery.Selection
	projects        []domain.Project
	tasks           []domain.ProjectTask
	selectedProject domain.Project
	selectedTask    domain.ProjectTask
	errorMessage    string
}

func parseDocument(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// parseFormData runs the shared pipeline: locate the named form, decode the
// project and task dropdowns, attach the script-encoded associations, and
// resolve the selected entries. Returns nil (with no error) when the form
// or either dropdown is missing, which callers treat as a structural miss
// yielding an empty page.
func parseFormData(doc *goquery.Document, formName, scriptStart string, pattern *regexp.Regexp) (*formData, error) {
	form := doc.Find("form[name='" + formName + "']").First()
	if form.Length() == 0 {
		logging.Debugf("form %q not found\n", formName)
		return nil, nil
	}

	inputProjects := selectByName(form, "project")
	inputTasks := selectByName(form, "task")
	if inputProjects == nil || inputTasks == nil {
		logging.Debugf("form %q has no project/task dropdowns\n", formName)
		return nil, nil
	}

	projects, err := decodeProjects(inputProjects)
	if err != nil {
		return nil, err
	}
	tasks, err := decodeTasks(inputTasks)
	if err != nil {
		return nil, err
	}

	scriptText := findScript(doc, scriptStart, scriptTaskNamesEnd)
	associations := decodeAssociations(scriptText, pattern)
	projects = attachTasks(projects, tasks, associations)

	data := &formData{
		form:         form,
		projects:     projects,
		tasks:        tasks,
		errorMessage: findError(doc),
	}

	selectedProjectID, err := findSelected(inputProjects)
	if err != nil {
		return nil, err
	}
	if project := domain.FindProjectByID(projects, selectedProjectID); project != nil {
		data.selectedProject = *project
	}

	selectedTaskID, err := findSelected(inputTasks)
	if err != nil {
		return nil, err
	}
	if task := domain.FindTaskByID(tasks, selectedTaskID); task != nil {
		data.selectedTask = *task
	}

	return data, nil
}
