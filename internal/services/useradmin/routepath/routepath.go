// Package routepath centralizes the admin UI route strings so handlers and
// templates never drift apart on URL shapes.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
)

const (
	Users          = "/users"
	UsersTable     = "/users/table"
	UsersLookup    = "/users/lookup"
	UsersCreate    = "/users/create"
	UsersSelection = "/users/selection"
	UsersPrefix    = "/users/"
)

func UserDetail(userID string) string {
	return Users + "/" + escapeSegment(userID)
}

func UserEdit(userID string) string {
	return UserDetail(userID) + "/edit"
}

func UserActivity(userID string) string {
	return UserDetail(userID) + "/activity"
}

func UserUpdate(userID string) string {
	return UserDetail(userID) + "/update"
}

func UserDelete(userID string) string {
	return UserDetail(userID) + "/delete"
}

func UserResetPassword(userID string) string {
	return UserDetail(userID) + "/reset-password"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
