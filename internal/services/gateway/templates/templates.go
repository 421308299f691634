// Package templates renders the gateway's HTML pages.
//
//go:generate templ generate
package templates

import "strings"

// AppName is shown in page titles and headings.
const AppName = "Boardbots"

// ComposePageTitle appends the app name to title.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == AppName {
		return AppName
	}
	if strings.HasSuffix(title, " | "+AppName) {
		return title
	}
	return title + " | " + AppName
}

// LoginView is the state of the development login form.
type LoginView struct {
	// Failed shows the rejected-credentials notice.
	Failed bool
	// Username pre-fills the name field.
	Username string
}
