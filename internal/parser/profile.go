package parser

import (
	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/errors"
)

// ParseProfilePage parses the profile edit form page.
func ParseProfilePage(html string) (*ProfilePage, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, errors.NewParseError("document", "", err)
	}

	page := &ProfilePage{}

	form := doc.Find("form[name='profileForm']").First()
	if form.Length() == 0 {
		return page, nil
	}

	var user domain.User
	if input := selectByName(form, "name"); input != nil {
		user.DisplayName = inputValue(input)
	}
	if input := selectByName(form, "email"); input != nil {
		user.Email = inputValue(input)
	}
	if input := selectByName(form, "login"); input != nil {
		user.Username = inputValue(input)
	}

	page.User = user
	page.ErrorMessage = findError(doc)
	return page, nil
}
