// Package routepath defines canonical gateway route paths.
package routepath

const (
	Root = "/"

	// AuthPrefix covers the login flow; requests under it pass the session
	// gate without a cookie.
	AuthPrefix = "/auth"
	Login      = "/auth/login"
	AuthSubmit = "/auth/auth"

	// LoginFailed is the login redirect carrying the failure indicator.
	LoginFailed = Login + "?auth=fail"

	// PublicPrefix serves static assets without any session check.
	PublicPrefix = "/public"

	Connect = "/connect"
	Users   = "/users"
)
