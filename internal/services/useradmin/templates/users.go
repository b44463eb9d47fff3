package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Detail tab identifiers.
const (
	TabDetails  = "details"
	TabEdit     = "edit"
	TabActivity = "activity"
)

// ColumnHeader describes one column of the users table.
type ColumnHeader struct {
	// Label is the localized column label.
	Label string
	// SortURL carries the order_by produced by clicking this header.
	SortURL string
	// Direction is "asc" or "desc" when this column is the active sort.
	Direction string
}

// UserRow represents a row in the users table.
type UserRow struct {
	ID          string
	Email       string
	DisplayName string
	RoleLabel   string
	CreatedAt   string
	UpdatedAt   string
	DetailURL   string
	EditURL     string
	DeleteURL   string
	ToggleURL   string
	Selected    bool
}

// UsersTableView provides data for the users table fragment.
type UsersTableView struct {
	Columns []ColumnHeader
	Rows    []UserRow
	// Message is rendered as the single body row when Rows is empty.
	Message            string
	SelectAllURL       string
	AllSelected        bool
	SelectedCountLabel string
	CanManage          bool
}

// UsersPageView provides data for the users page shell.
type UsersPageView struct {
	Message     string
	MessageKind string
	TableURL    string
	LookupURL   string
	CreateURL   string
	CanManage   bool
	Roles       []RoleOption
}

// RoleOption is one entry of a role select input.
type RoleOption struct {
	Value    string
	Label    string
	Selected bool
}

// ActivityRow is one rendered audit entry on the activity tab.
type ActivityRow struct {
	ActionLabel string
	ActorID     string
	CreatedAt   string
}

// UserDetailView provides data for the user detail page.
type UserDetailView struct {
	ID          string
	Email       string
	DisplayName string
	RoleLabel   string
	CreatedAt   string
	UpdatedAt   string

	Tab         string
	DetailsURL  string
	EditURL     string
	ActivityURL string
	UpdateURL   string
	DeleteURL   string
	ResetURL    string
	BackURL     string

	Roles           []RoleOption
	Activity        []ActivityRow
	ActivityMessage string
	// ResetSecret is shown once after a password reset and never persisted.
	ResetSecret string
	Message     string
	MessageKind string
	CanManage   bool
}

// userTableDataColumns matches the per-row data cells UsersTable renders.
const userTableDataColumns = 6

// tableColumnCount is the number of cells a placeholder row must span.
func tableColumnCount(view UsersTableView) int {
	count := len(view.Columns) + 1 // selection checkbox
	if view.CanManage {
		count++ // actions column
	}
	return count
}

// UsersTable renders the sortable, selectable users table fragment.
func UsersTable(page PageContext, view UsersTableView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="users-table">`); err != nil {
			return err
		}
		if view.SelectedCountLabel != "" {
			if _, err := fmt.Fprintf(w, `<p class="text-sm" data-selection-count>%s</p>`,
				templ.EscapeString(view.SelectedCountLabel)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<table class="table"><thead><tr>`); err != nil {
			return err
		}

		checked := ""
		if view.AllSelected {
			checked = " checked"
		}
		if _, err := fmt.Fprintf(w,
			`<th><input type="checkbox" class="checkbox" aria-label="%s" hx-post="%s" hx-target="#users-table" hx-swap="outerHTML"%s/></th>`,
			templ.EscapeString(T(page.Loc, "users.col.select")),
			templ.EscapeString(view.SelectAllURL), checked); err != nil {
			return err
		}

		for _, column := range view.Columns {
			ariaSort := ""
			indicator := ""
			switch column.Direction {
			case "asc":
				ariaSort = ` aria-sort="ascending"`
				indicator = ` <span aria-hidden="true">&#9650;</span>`
			case "desc":
				ariaSort = ` aria-sort="descending"`
				indicator = ` <span aria-hidden="true">&#9660;</span>`
			}
			if _, err := fmt.Fprintf(w,
				`<th%s><a href="%s" hx-get="%s" hx-target="#users-table" hx-swap="outerHTML">%s</a>%s</th>`,
				ariaSort,
				templ.EscapeString(column.SortURL), templ.EscapeString(column.SortURL),
				templ.EscapeString(column.Label), indicator); err != nil {
				return err
			}
		}
		if view.CanManage {
			if _, err := fmt.Fprintf(w, `<th>%s</th>`,
				templ.EscapeString(T(page.Loc, "users.col.actions"))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr></thead><tbody>`); err != nil {
			return err
		}

		if len(view.Rows) == 0 {
			message := view.Message
			if message == "" {
				message = T(page.Loc, "error.no_users")
			}
			if _, err := fmt.Fprintf(w, `<tr><td colspan="%d" data-empty-row>%s</td></tr>`,
				tableColumnCount(view), templ.EscapeString(message)); err != nil {
				return err
			}
		}

		for _, row := range view.Rows {
			if _, err := io.WriteString(w, `<tr>`); err != nil {
				return err
			}
			rowChecked := ""
			if row.Selected {
				rowChecked = " checked"
			}
			if _, err := fmt.Fprintf(w,
				`<td><input type="checkbox" class="checkbox" hx-post="%s" hx-target="#users-table" hx-swap="outerHTML"%s/></td>`,
				templ.EscapeString(row.ToggleURL), rowChecked); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, `<td><a class="link" href="%s">%s</a></td>`,
				templ.EscapeString(row.DetailURL), templ.EscapeString(row.ID)); err != nil {
				return err
			}
			for _, cell := range []string{row.Email, row.DisplayName, row.RoleLabel, row.CreatedAt, row.UpdatedAt} {
				if _, err := fmt.Fprintf(w, `<td>%s</td>`, templ.EscapeString(cell)); err != nil {
					return err
				}
			}
			if view.CanManage {
				if _, err := fmt.Fprintf(w,
					`<td><a class="btn btn-ghost btn-xs" href="%s">%s</a><button type="button" class="btn btn-ghost btn-xs text-error" hx-post="%s" hx-confirm="%s">%s</button></td>`,
					templ.EscapeString(row.EditURL), templ.EscapeString(T(page.Loc, "users.action.edit")),
					templ.EscapeString(row.DeleteURL), templ.EscapeString(T(page.Loc, "users.action.delete")),
					templ.EscapeString(T(page.Loc, "users.action.delete"))); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tr>`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</tbody></table></div>`)
		return err
	})
}

// UsersTableLoading renders the table placeholder shown before data arrives.
// It keeps exactly one body row spanning every column so screen readers
// announce a single state.
func UsersTableLoading(page PageContext, tableURL string, canManage bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		span := userTableDataColumns + 1 // selection checkbox
		if canManage {
			span++ // actions column
		}
		if _, err := fmt.Fprintf(w,
			`<div id="users-table" hx-get="%s" hx-trigger="load" hx-swap="outerHTML"><table class="table"><tbody><tr><td colspan="%d" data-loading-row>`,
			templ.EscapeString(tableURL), span); err != nil {
			return err
		}
		if err := LoadingSpinner().Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<span class="sr-only">%s</span></td></tr></tbody></table></div>`,
			templ.EscapeString(T(page.Loc, "users.loading")))
		return err
	})
}

// UsersPage renders the users screen shell with lookup and create forms.
func UsersPage(page PageContext, view UsersPageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := Heading(PageHeading{Title: T(page.Loc, "users.heading")}).Render(ctx, w); err != nil {
			return err
		}
		if err := MessageBanner(view.MessageKind, view.Message).Render(ctx, w); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<form class="flex gap-2 py-2" method="get" action="%s"><input class="input input-bordered input-sm" type="text" name="user_id" placeholder="%s"/><button class="btn btn-sm" type="submit">%s</button></form>`,
			templ.EscapeString(view.LookupURL),
			templ.EscapeString(T(page.Loc, "users.field.user_id")),
			templ.EscapeString(T(page.Loc, "users.action.lookup"))); err != nil {
			return err
		}

		if view.CanManage {
			if _, err := fmt.Fprintf(w,
				`<form class="flex gap-2 py-2" method="post" action="%s"><input class="input input-bordered input-sm" type="email" name="email" placeholder="%s" required/><input class="input input-bordered input-sm" type="text" name="display_name" placeholder="%s"/><select class="select select-bordered select-sm" name="role">`,
				templ.EscapeString(view.CreateURL),
				templ.EscapeString(T(page.Loc, "users.field.email")),
				templ.EscapeString(T(page.Loc, "users.field.display_name"))); err != nil {
				return err
			}
			if err := renderRoleOptions(w, view.Roles); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, `</select><button class="btn btn-primary btn-sm" type="submit">%s</button></form>`,
				templ.EscapeString(T(page.Loc, "users.action.create"))); err != nil {
				return err
			}
		}

		return UsersTableLoading(page, view.TableURL, view.CanManage).Render(ctx, w)
	})
}

// UsersFullPage renders the users screen inside the document chrome.
func UsersFullPage(page PageContext, view UsersPageView, title string) templ.Component {
	return Layout(page, title, UsersPage(page, view))
}

// UserDetailPage renders the detail screen with its tab strip.
func UserDetailPage(page PageContext, view UserDetailView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		heading := PageHeading{
			Title: T(page.Loc, "users.detail.heading"),
			Breadcrumbs: []Breadcrumb{
				{Label: T(page.Loc, "nav.users"), URL: view.BackURL},
				{Label: view.ID},
			},
		}
		if err := Heading(heading).Render(ctx, w); err != nil {
			return err
		}
		if err := MessageBanner(view.MessageKind, view.Message).Render(ctx, w); err != nil {
			return err
		}
		if view.ResetSecret != "" {
			if _, err := fmt.Fprintf(w,
				`<div class="alert alert-success" role="status">%s</div><p><strong>%s:</strong> <code data-reset-secret>%s</code></p>`,
				templ.EscapeString(T(page.Loc, "users.reset.success")),
				templ.EscapeString(T(page.Loc, "users.reset.secret_label")),
				templ.EscapeString(view.ResetSecret)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<div id="user-detail">`); err != nil {
			return err
		}
		if err := renderDetailTabs(w, page, view); err != nil {
			return err
		}

		var err error
		switch view.Tab {
		case TabEdit:
			err = renderEditTab(w, page, view)
		case TabActivity:
			err = renderActivityTab(w, page, view)
		default:
			err = renderDetailsTab(w, page, view)
		}
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, `</div>`)
		return err
	})
}

// UserDetailFullPage renders the detail screen inside the document chrome.
func UserDetailFullPage(page PageContext, view UserDetailView, title string) templ.Component {
	return Layout(page, title, UserDetailPage(page, view))
}

func renderDetailTabs(w io.Writer, page PageContext, view UserDetailView) error {
	type tab struct {
		id    string
		url   string
		label string
	}
	tabs := []tab{
		{TabDetails, view.DetailsURL, T(page.Loc, "users.tab.details")},
		{TabEdit, view.EditURL, T(page.Loc, "users.tab.edit")},
		{TabActivity, view.ActivityURL, T(page.Loc, "users.tab.activity")},
	}
	if !view.CanManage {
		tabs = append(tabs[:1], tabs[2])
	}
	if _, err := io.WriteString(w, `<div class="tabs tabs-bordered" role="tablist">`); err != nil {
		return err
	}
	active := view.Tab
	if active == "" {
		active = TabDetails
	}
	for _, item := range tabs {
		class := "tab"
		if item.id == active {
			class = "tab tab-active"
		}
		if _, err := fmt.Fprintf(w,
			`<a class="%s" role="tab" href="%s" hx-get="%s" hx-target="#user-detail" hx-swap="outerHTML">%s</a>`,
			class, templ.EscapeString(item.url), templ.EscapeString(item.url),
			templ.EscapeString(item.label)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

func renderDetailsTab(w io.Writer, page PageContext, view UserDetailView) error {
	fields := []struct {
		label string
		value string
	}{
		{T(page.Loc, "users.field.user_id"), view.ID},
		{T(page.Loc, "users.field.email"), view.Email},
		{T(page.Loc, "users.field.display_name"), view.DisplayName},
		{T(page.Loc, "users.field.role"), view.RoleLabel},
		{T(page.Loc, "users.field.created_at"), view.CreatedAt},
		{T(page.Loc, "users.field.updated_at"), view.UpdatedAt},
	}
	if _, err := io.WriteString(w, `<dl class="grid grid-cols-2 gap-2 py-4">`); err != nil {
		return err
	}
	for _, field := range fields {
		if _, err := fmt.Fprintf(w, `<dt class="font-semibold">%s</dt><dd>%s</dd>`,
			templ.EscapeString(field.label), templ.EscapeString(field.value)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `</dl>`); err != nil {
		return err
	}
	if !view.CanManage {
		return nil
	}
	_, err := fmt.Fprintf(w,
		`<div class="flex gap-2"><button type="button" class="btn btn-sm" hx-post="%s" hx-confirm="%s">%s</button><button type="button" class="btn btn-sm text-error" hx-post="%s" hx-confirm="%s">%s</button></div>`,
		templ.EscapeString(view.ResetURL),
		templ.EscapeString(T(page.Loc, "users.action.reset_password")),
		templ.EscapeString(T(page.Loc, "users.action.reset_password")),
		templ.EscapeString(view.DeleteURL),
		templ.EscapeString(T(page.Loc, "users.action.delete")),
		templ.EscapeString(T(page.Loc, "users.action.delete")))
	return err
}

func renderEditTab(w io.Writer, page PageContext, view UserDetailView) error {
	if _, err := fmt.Fprintf(w,
		`<form class="flex flex-col gap-2 py-4" method="post" action="%s"><label class="form-control">%s<input class="input input-bordered input-sm" type="email" name="email" value="%s" required/></label><label class="form-control">%s<input class="input input-bordered input-sm" type="text" name="display_name" value="%s"/></label><label class="form-control">%s<select class="select select-bordered select-sm" name="role">`,
		templ.EscapeString(view.UpdateURL),
		templ.EscapeString(T(page.Loc, "users.field.email")), templ.EscapeString(view.Email),
		templ.EscapeString(T(page.Loc, "users.field.display_name")), templ.EscapeString(view.DisplayName),
		templ.EscapeString(T(page.Loc, "users.field.role"))); err != nil {
		return err
	}
	if err := renderRoleOptions(w, view.Roles); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w,
		`</select></label><div class="flex gap-2"><button class="btn btn-primary btn-sm" type="submit">%s</button><a class="btn btn-ghost btn-sm" href="%s">%s</a></div></form>`,
		templ.EscapeString(T(page.Loc, "users.action.save")),
		templ.EscapeString(view.BackURL),
		templ.EscapeString(T(page.Loc, "users.action.close")))
	return err
}

func renderActivityTab(w io.Writer, page PageContext, view UserDetailView) error {
	if len(view.Activity) == 0 {
		message := view.ActivityMessage
		if message == "" {
			message = T(page.Loc, "users.activity.empty")
		}
		_, err := fmt.Fprintf(w, `<p class="py-4" data-empty-activity>%s</p>`, templ.EscapeString(message))
		return err
	}
	if _, err := fmt.Fprintf(w,
		`<table class="table"><thead><tr><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
		templ.EscapeString(T(page.Loc, "users.activity.action")),
		templ.EscapeString(T(page.Loc, "users.activity.actor")),
		templ.EscapeString(T(page.Loc, "users.activity.at"))); err != nil {
		return err
	}
	for _, row := range view.Activity {
		if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td></tr>`,
			templ.EscapeString(row.ActionLabel), templ.EscapeString(row.ActorID),
			templ.EscapeString(row.CreatedAt)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</tbody></table>`)
	return err
}

func renderRoleOptions(w io.Writer, roles []RoleOption) error {
	for _, role := range roles {
		selected := ""
		if role.Selected {
			selected = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
			templ.EscapeString(role.Value), selected, templ.EscapeString(role.Label)); err != nil {
			return err
		}
	}
	return nil
}
