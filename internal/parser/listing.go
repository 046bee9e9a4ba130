package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/errors"
)

// The admin listing pages (projects, project tasks, users) share one
// table shape: located by two consecutive header cell labels, one entity
// per row, header row dropped.

// findListingTable locates the table enclosing two consecutive header
// cells with the given labels.
func findListingTable(doc *goquery.Document, first, second string) *goquery.Selection {
	var table *goquery.Selection
	doc.Find("th").EachWithBreak(func(_ int, th *goquery.Selection) bool {
		if ownText(th) != first {
			return true
		}
		if ownText(th.Next()) != second {
			return true
		}
		table = th.Closest("table")
		return false
	})
	return table
}

// ParseProjectsPage parses the admin projects listing into name-only
// projects (the listing shows no ids).
func ParseProjectsPage(html string) (*ProjectsPage, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, errors.NewParseError("document", "", err)
	}

	page := &ProjectsPage{}
	table := findListingTable(doc, "Name", "Description")
	if table == nil {
		return page, nil
	}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cols := row.Find("td")
		if cols.Length() < 2 {
			return
		}
		project := domain.NewProject(ownText(cols.Eq(0)))
		project.Description = ownText(cols.Eq(1))
		page.Projects = append(page.Projects, project)
	})

	return page, nil
}

// ParseProjectTasksPage parses the project-tasks listing into name-only
// tasks.
func ParseProjectTasksPage(html string) (*ProjectTasksPage, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, errors.NewParseError("document", "", err)
	}

	page := &ProjectTasksPage{}
	table := findListingTable(doc, "Name", "Description")
	if table == nil {
		return page, nil
	}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cols := row.Find("td")
		if cols.Length() < 2 {
			return
		}
		task := domain.NewProjectTask(ownText(cols.Eq(0)))
		task.Description = ownText(cols.Eq(1))
		page.Tasks = append(page.Tasks, task)
	})

	return page, nil
}

// ParseUsersPage parses the users listing. Users get sequential local ids;
// the listing shows none.
func ParseUsersPage(html string) (*UsersPage, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, errors.NewParseError("document", "", err)
	}

	page := &UsersPage{}
	table := findListingTable(doc, "Name", "Login")
	if table == nil {
		return page, nil
	}

	var id int64
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cols := row.Find("td")
		if cols.Length() < 2 {
			return
		}
		user := domain.User{
			DisplayName: ownText(cols.Eq(0)),
			Username:    ownText(cols.Eq(1)),
		}
		if user.IsEmpty() {
			return
		}
		if cols.Length() > 2 {
			if roles := ownText(cols.Eq(2)); roles != "" {
				user.Roles = strings.Split(roles, ",")
			}
		}
		id++
		user.ID = id
		page.Users = append(page.Users, user)
	})

	return page, nil
}
