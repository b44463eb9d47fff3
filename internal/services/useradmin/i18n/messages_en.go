package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Page chrome
	message.SetString(lang, "title.users", "Users | %s")
	message.SetString(lang, "title.user_detail", "User | %s")
	message.SetString(lang, "nav.users", "Users")
	message.SetString(lang, "users.heading", "Users")
	message.SetString(lang, "users.detail.heading", "User")
	message.SetString(lang, "users.create.heading", "Create user")
	message.SetString(lang, "users.lookup.heading", "Find user")

	// Table columns
	message.SetString(lang, "users.col.select", "Select")
	message.SetString(lang, "users.col.id", "User ID")
	message.SetString(lang, "users.col.email", "Email")
	message.SetString(lang, "users.col.display_name", "Name")
	message.SetString(lang, "users.col.role", "Role")
	message.SetString(lang, "users.col.created_at", "Created")
	message.SetString(lang, "users.col.updated_at", "Updated")
	message.SetString(lang, "users.col.actions", "Actions")

	// Actions
	message.SetString(lang, "users.action.edit", "Edit")
	message.SetString(lang, "users.action.delete", "Delete")
	message.SetString(lang, "users.action.reset_password", "Reset password")
	message.SetString(lang, "users.action.create", "Create user")
	message.SetString(lang, "users.action.lookup", "Look up")
	message.SetString(lang, "users.action.close", "Back to users")
	message.SetString(lang, "users.action.save", "Save changes")

	// Detail tabs
	message.SetString(lang, "users.tab.details", "Details")
	message.SetString(lang, "users.tab.edit", "Edit")
	message.SetString(lang, "users.tab.activity", "Activity")

	// Fields
	message.SetString(lang, "users.field.user_id", "User ID")
	message.SetString(lang, "users.field.email", "Email")
	message.SetString(lang, "users.field.display_name", "Display name")
	message.SetString(lang, "users.field.role", "Role")
	message.SetString(lang, "users.field.created_at", "Created at")
	message.SetString(lang, "users.field.updated_at", "Updated at")

	// Role labels
	message.SetString(lang, "label.role.admin", "Admin")
	message.SetString(lang, "label.role.member", "Member")
	message.SetString(lang, "label.role.viewer", "Viewer")
	message.SetString(lang, "label.unspecified", "Unspecified")

	// Table states
	message.SetString(lang, "users.loading", "Loading users...")
	message.SetString(lang, "users.selected_count", "%d selected")
	message.SetString(lang, "error.no_users", "No users found.")

	// Activity tab
	message.SetString(lang, "users.activity.empty", "No recorded activity.")
	message.SetString(lang, "users.activity.action", "Action")
	message.SetString(lang, "users.activity.actor", "Operator")
	message.SetString(lang, "users.activity.at", "When")
	message.SetString(lang, "audit.action.user_created", "User created")
	message.SetString(lang, "audit.action.user_updated", "User updated")
	message.SetString(lang, "audit.action.user_deleted", "User deleted")
	message.SetString(lang, "audit.action.password_reset", "Password reset")

	// Password reset
	message.SetString(lang, "users.reset.success", "Password reset. Share the one-time secret below.")
	message.SetString(lang, "users.reset.secret_label", "One-time secret")

	// Outcomes
	message.SetString(lang, "users.create.success", "User created.")
	message.SetString(lang, "users.update.success", "User updated.")
	message.SetString(lang, "users.delete.success", "User deleted.")

	// Errors
	message.SetString(lang, "error.user_directory_unavailable", "User directory unavailable.")
	message.SetString(lang, "error.users_unavailable", "Unable to load users.")
	message.SetString(lang, "error.user_not_found", "User not found.")
	message.SetString(lang, "error.user_id_required", "User ID is required.")
	message.SetString(lang, "error.user_email_required", "Email is required.")
	message.SetString(lang, "error.user_role_invalid", "Role is not valid.")
	message.SetString(lang, "error.user_create_invalid", "Invalid create request.")
	message.SetString(lang, "error.user_create_failed", "Unable to create user.")
	message.SetString(lang, "error.user_update_invalid", "Invalid update request.")
	message.SetString(lang, "error.user_update_failed", "Unable to update user.")
	message.SetString(lang, "error.user_delete_failed", "Unable to delete user.")
	message.SetString(lang, "error.password_reset_failed", "Unable to reset password.")
	message.SetString(lang, "error.selection_invalid", "Invalid selection request.")
	message.SetString(lang, "error.csrf_invalid", "Request origin rejected.")
	message.SetString(lang, "error.forbidden", "You do not have permission to do that.")
}
