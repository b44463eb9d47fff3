package routepath

import "testing"

func TestTopLevelRoutes(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if StaticPrefix != "/static/" {
		t.Fatalf("StaticPrefix = %q", StaticPrefix)
	}
	if Users != "/users" {
		t.Fatalf("Users = %q", Users)
	}
	if UsersTable != "/users/table" {
		t.Fatalf("UsersTable = %q", UsersTable)
	}
	if UsersLookup != "/users/lookup" {
		t.Fatalf("UsersLookup = %q", UsersLookup)
	}
	if UsersCreate != "/users/create" {
		t.Fatalf("UsersCreate = %q", UsersCreate)
	}
	if UsersSelection != "/users/selection" {
		t.Fatalf("UsersSelection = %q", UsersSelection)
	}
	if UsersPrefix != "/users/" {
		t.Fatalf("UsersPrefix = %q", UsersPrefix)
	}
}

func TestUserBuilders(t *testing.T) {
	t.Parallel()

	if got := UserDetail("user-1"); got != "/users/user-1" {
		t.Fatalf("UserDetail = %q", got)
	}
	if got := UserEdit("user-1"); got != "/users/user-1/edit" {
		t.Fatalf("UserEdit = %q", got)
	}
	if got := UserActivity("user-1"); got != "/users/user-1/activity" {
		t.Fatalf("UserActivity = %q", got)
	}
	if got := UserUpdate("user-1"); got != "/users/user-1/update" {
		t.Fatalf("UserUpdate = %q", got)
	}
	if got := UserDelete("user-1"); got != "/users/user-1/delete" {
		t.Fatalf("UserDelete = %q", got)
	}
	if got := UserResetPassword("user-1"); got != "/users/user-1/reset-password" {
		t.Fatalf("UserResetPassword = %q", got)
	}
}

func TestBuildersEscapeSegments(t *testing.T) {
	t.Parallel()

	if got := UserDetail("user one"); got != "/users/user%20one" {
		t.Fatalf("UserDetail = %q", got)
	}
	if got := UserDetail("  user-1  "); got != "/users/user-1" {
		t.Fatalf("UserDetail trims whitespace, got %q", got)
	}
}
