package useradmin

import (
	"net/http"
	"time"

	"github.com/louisbranch/userhub-admin/internal/platform/branding"
	"github.com/louisbranch/userhub-admin/internal/platform/requestctx"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/directory"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/routepath"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/storage"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/templates"
	"golang.org/x/text/message"
)

// timestampLayout is the display format for record timestamps.
const timestampLayout = "2006-01-02 15:04:05"

// tableColumns pairs sortable fields with their localized labels.
var tableColumns = []struct {
	field    string
	labelKey string
}{
	{"id", "users.col.id"},
	{"email", "users.col.email"},
	{"display_name", "users.col.display_name"},
	{"role", "users.col.role"},
	{"created_at", "users.col.created_at"},
	{"updated_at", "users.col.updated_at"},
}

func brandName() string {
	return branding.AppName
}

func operatorID(r *http.Request) string {
	if r == nil {
		return ""
	}
	return requestctx.OperatorIDFromContext(r.Context())
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

func roleLabel(loc *message.Printer, role string) string {
	if role == "" {
		return loc.Sprintf("label.unspecified")
	}
	if !directory.ValidRole(role) {
		return role
	}
	return loc.Sprintf("label.role." + role)
}

func roleOptions(loc *message.Printer, selected string) []templates.RoleOption {
	roles := []string{directory.RoleAdmin, directory.RoleMember, directory.RoleViewer}
	options := make([]templates.RoleOption, 0, len(roles))
	for _, role := range roles {
		options = append(options, templates.RoleOption{
			Value:    role,
			Label:    roleLabel(loc, role),
			Selected: role == selected,
		})
	}
	return options
}

// buildColumnHeaders renders the sortable header set for the current sort.
func buildColumnHeaders(loc *message.Printer, sort SortState) []templates.ColumnHeader {
	headers := make([]templates.ColumnHeader, 0, len(tableColumns))
	for _, column := range tableColumns {
		header := templates.ColumnHeader{
			Label:   loc.Sprintf(column.labelKey),
			SortURL: templates.AppendQueryParam(routepath.UsersTable, "order_by", sort.NextFor(column.field).OrderBy()),
		}
		if sort.Field == column.field {
			header.Direction = "asc"
			if sort.Desc {
				header.Direction = "desc"
			}
		}
		headers = append(headers, header)
	}
	return headers
}

func buildUserRows(loc *message.Printer, users []directory.User, sort SortState, selection *Selection, canManage bool) []templates.UserRow {
	rows := make([]templates.UserRow, 0, len(users))
	for _, user := range users {
		row := templates.UserRow{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			RoleLabel:   roleLabel(loc, user.Role),
			CreatedAt:   formatTimestamp(user.CreatedAt),
			UpdatedAt:   formatTimestamp(user.UpdatedAt),
			DetailURL:   routepath.UserDetail(user.ID),
			ToggleURL:   selectionURL("toggle", user.ID, sort),
			Selected:    selection.Contains(user.ID),
		}
		if canManage {
			row.EditURL = routepath.UserEdit(user.ID)
			row.DeleteURL = routepath.UserDelete(user.ID)
		}
		rows = append(rows, row)
	}
	return rows
}

func buildUsersTableView(loc *message.Printer, users []directory.User, sort SortState, selection *Selection, canManage bool) templates.UsersTableView {
	view := templates.UsersTableView{
		Columns:      buildColumnHeaders(loc, sort),
		Rows:         buildUserRows(loc, users, sort, selection, canManage),
		SelectAllURL: selectionURL("all", "", sort),
		AllSelected:  len(users) > 0 && selection.State(len(users)) == SelectionAll,
		CanManage:    canManage,
	}
	if count := selection.Count(); count > 0 {
		view.SelectedCountLabel = loc.Sprintf("users.selected_count", count)
	}
	return view
}

// selectionURL builds a selection mutation URL that preserves the sort.
func selectionURL(action, userID string, sort SortState) string {
	target := templates.AppendQueryParam(routepath.UsersSelection, "action", action)
	if userID != "" {
		target = templates.AppendQueryParam(target, "user_id", userID)
	}
	if orderBy := sort.OrderBy(); orderBy != "" {
		target = templates.AppendQueryParam(target, "order_by", orderBy)
	}
	return target
}

func buildUserDetail(loc *message.Printer, user directory.User, tab string, canManage bool) templates.UserDetailView {
	return templates.UserDetailView{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		RoleLabel:   roleLabel(loc, user.Role),
		CreatedAt:   formatTimestamp(user.CreatedAt),
		UpdatedAt:   formatTimestamp(user.UpdatedAt),

		Tab:         tab,
		DetailsURL:  routepath.UserDetail(user.ID),
		EditURL:     routepath.UserEdit(user.ID),
		ActivityURL: routepath.UserActivity(user.ID),
		UpdateURL:   routepath.UserUpdate(user.ID),
		DeleteURL:   routepath.UserDelete(user.ID),
		ResetURL:    routepath.UserResetPassword(user.ID),
		BackURL:     routepath.Users,

		Roles:     roleOptions(loc, user.Role),
		CanManage: canManage,
	}
}

func buildActivityRows(loc *message.Printer, entries []storage.AuditEntry) []templates.ActivityRow {
	rows := make([]templates.ActivityRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, templates.ActivityRow{
			ActionLabel: auditActionLabel(loc, entry.Action),
			ActorID:     entry.ActorID,
			CreatedAt:   formatTimestamp(entry.CreatedAt),
		})
	}
	return rows
}

func auditActionLabel(loc *message.Printer, action string) string {
	switch action {
	case storage.AuditActionUserCreated, storage.AuditActionUserUpdated,
		storage.AuditActionUserDeleted, storage.AuditActionPasswordReset:
		return loc.Sprintf("audit.action." + action)
	default:
		return action
	}
}
