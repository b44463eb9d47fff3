package useradmin

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/userhub-admin/internal/services/shared/htmx"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/directory"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/routepath"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/storage"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/templates"
	"golang.org/x/text/message"
)

func (h *Handler) handleUsersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc, r)

	if userID := strings.TrimSpace(r.URL.Query().Get("user_id")); userID != "" {
		h.redirectToUserDetail(w, r, userID)
		return
	}

	view := templates.UsersPageView{
		TableURL:  routepath.UsersTable,
		LookupURL: routepath.UsersLookup,
		CreateURL: routepath.UsersCreate,
		CanManage: canManage(r),
		Roles:     roleOptions(loc, directory.RoleMember),
	}
	if orderBy := strings.TrimSpace(r.URL.Query().Get("order_by")); orderBy != "" {
		view.TableURL = templates.AppendQueryParam(routepath.UsersTable, "order_by", orderBy)
	}
	if msg := strings.TrimSpace(r.URL.Query().Get("message")); msg != "" {
		view.Message = msg
		view.MessageKind = strings.TrimSpace(r.URL.Query().Get("kind"))
	}

	renderPage(
		w,
		r,
		templates.UsersPage(pageCtx, view),
		templates.UsersFullPage(pageCtx, view, loc.Sprintf("title.users", brandName())),
		htmxLocalizedPageTitle(loc, "title.users"),
	)
}

// handleUsersTable renders the users table fragment.
func (h *Handler) handleUsersTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)

	sort, err := ParseSortState(r.URL.Query().Get("order_by"))
	if err != nil {
		log.Printf("users table order_by rejected: %v", err)
		h.renderUsersTableError(w, r, loc, lang, loc.Sprintf("error.users_unavailable"))
		return
	}

	if h.directory == nil {
		h.renderUsersTableError(w, r, loc, lang, loc.Sprintf("error.user_directory_unavailable"))
		return
	}

	ctx, cancel := h.directoryCallContext(r.Context())
	defer cancel()

	users, err := h.directory.ListUsers(ctx, directory.ListQuery{OrderBy: sort.OrderBy()})
	if err != nil {
		log.Printf("list users: %v", err)
		h.renderUsersTableError(w, r, loc, lang, loc.Sprintf("error.users_unavailable"))
		return
	}

	selection := h.selectionForRequest(w, r)
	view := buildUsersTableView(loc, users, sort, selection, canManage(r))
	h.renderUsersTableView(w, r, loc, lang, view)
}

// handleSelection mutates the session's row selection and re-renders the table.
func (h *Handler) handleSelection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}

	sort, err := ParseSortState(r.URL.Query().Get("order_by"))
	if err != nil {
		sort, _ = ParseSortState("")
	}

	if h.directory == nil {
		h.renderUsersTableError(w, r, loc, lang, loc.Sprintf("error.user_directory_unavailable"))
		return
	}

	ctx, cancel := h.directoryCallContext(r.Context())
	defer cancel()

	users, err := h.directory.ListUsers(ctx, directory.ListQuery{OrderBy: sort.OrderBy()})
	if err != nil {
		log.Printf("list users for selection: %v", err)
		h.renderUsersTableError(w, r, loc, lang, loc.Sprintf("error.users_unavailable"))
		return
	}

	selection := h.selectionForRequest(w, r)
	switch strings.TrimSpace(r.URL.Query().Get("action")) {
	case "toggle":
		userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
		if userID == "" {
			http.Error(w, loc.Sprintf("error.selection_invalid"), http.StatusBadRequest)
			return
		}
		selection.Toggle(userID)
	case "all":
		ids := make([]string, 0, len(users))
		for _, user := range users {
			ids = append(ids, user.ID)
		}
		selection.SelectAll(ids)
	default:
		http.Error(w, loc.Sprintf("error.selection_invalid"), http.StatusBadRequest)
		return
	}

	view := buildUsersTableView(loc, users, sort, selection, canManage(r))
	h.renderUsersTableView(w, r, loc, lang, view)
}

// handleUserLookup redirects the find-user form to the detail page.
func (h *Handler) handleUserLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc, r)

	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		view := templates.UsersPageView{
			TableURL:    routepath.UsersTable,
			LookupURL:   routepath.UsersLookup,
			CreateURL:   routepath.UsersCreate,
			CanManage:   canManage(r),
			Roles:       roleOptions(loc, directory.RoleMember),
			Message:     loc.Sprintf("error.user_id_required"),
			MessageKind: "error",
		}
		renderPage(
			w,
			r,
			templates.UsersPage(pageCtx, view),
			templates.UsersFullPage(pageCtx, view, loc.Sprintf("title.users", brandName())),
			htmxLocalizedPageTitle(loc, "title.users"),
		)
		return
	}

	h.redirectToUserDetail(w, r, userID)
}

// handleCreateUser provisions a new user from the create form.
func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if !canManage(r) {
		http.Error(w, loc.Sprintf("error.forbidden"), http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_create_invalid"), "error")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	if email == "" {
		h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_email_required"), "error")
		return
	}
	role := strings.TrimSpace(r.FormValue("role"))
	if role == "" {
		role = directory.RoleMember
	}
	if !directory.ValidRole(role) {
		h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_role_invalid"), "error")
		return
	}

	if h.directory == nil {
		h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_directory_unavailable"), "error")
		return
	}

	ctx, cancel := h.directoryCallContext(r.Context())
	defer cancel()

	created, err := h.directory.CreateUser(ctx, directory.User{
		Email:       email,
		DisplayName: strings.TrimSpace(r.FormValue("display_name")),
		Role:        role,
	})
	if err != nil {
		log.Printf("create user: %v", err)
		h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_create_failed"), "error")
		return
	}

	h.recordAudit(r, storage.AuditActionUserCreated, created.ID, "email="+created.Email)

	detailURL := templates.AppendQueryParam(routepath.UserDetail(created.ID), "message", loc.Sprintf("users.create.success"))
	h.redirect(w, r, templates.AppendQueryParam(detailURL, "kind", "success"))
}

// handleUserRoutes dispatches /users/{id}[/...] requests.
func (h *Handler) handleUserRoutes(w http.ResponseWriter, r *http.Request) {
	parts := splitPathParts(strings.TrimPrefix(r.URL.Path, routepath.UsersPrefix))
	if len(parts) == 0 {
		http.Redirect(w, r, routepath.Users, http.StatusFound)
		return
	}

	userID := parts[0]
	if len(parts) == 1 {
		h.handleUserDetailTab(w, r, userID, templates.TabDetails)
		return
	}

	switch parts[1] {
	case "edit":
		h.handleUserDetailTab(w, r, userID, templates.TabEdit)
	case "activity":
		h.handleUserDetailTab(w, r, userID, templates.TabActivity)
	case "update":
		h.handleUserUpdate(w, r, userID)
	case "delete":
		h.handleUserDelete(w, r, userID)
	case "reset-password":
		h.handleResetPassword(w, r, userID)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleUserDetailTab(w http.ResponseWriter, r *http.Request, userID, tab string) {
	loc, lang := h.localizer(w, r)

	if tab == templates.TabEdit && !canManage(r) {
		http.Error(w, loc.Sprintf("error.forbidden"), http.StatusForbidden)
		return
	}

	if h.directory == nil {
		h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_directory_unavailable"), "error")
		return
	}

	ctx, cancel := h.directoryCallContext(r.Context())
	defer cancel()

	user, err := h.directory.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_not_found"), "error")
			return
		}
		log.Printf("get user %s: %v", userID, err)
		h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.users_unavailable"), "error")
		return
	}

	view := buildUserDetail(loc, user, tab, canManage(r))
	if msg := strings.TrimSpace(r.URL.Query().Get("message")); msg != "" {
		view.Message = msg
		view.MessageKind = strings.TrimSpace(r.URL.Query().Get("kind"))
	}

	if tab == templates.TabActivity {
		view.Activity, view.ActivityMessage = h.loadUserActivity(r, userID, loc)
	}

	h.renderUserDetail(w, r, loc, lang, view)
}

// handleUserUpdate applies the edit form to a user record.
func (h *Handler) handleUserUpdate(w http.ResponseWriter, r *http.Request, userID string) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if !canManage(r) {
		http.Error(w, loc.Sprintf("error.forbidden"), http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderUserDetailWithMessage(w, r, loc, lang, userID, loc.Sprintf("error.user_update_invalid"), "error")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	if email == "" {
		h.renderUserDetailWithMessage(w, r, loc, lang, userID, loc.Sprintf("error.user_email_required"), "error")
		return
	}
	role := strings.TrimSpace(r.FormValue("role"))
	if role != "" && !directory.ValidRole(role) {
		h.renderUserDetailWithMessage(w, r, loc, lang, userID, loc.Sprintf("error.user_role_invalid"), "error")
		return
	}

	if h.directory == nil {
		h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_directory_unavailable"), "error")
		return
	}

	ctx, cancel := h.directoryCallContext(r.Context())
	defer cancel()

	displayName := strings.TrimSpace(r.FormValue("display_name"))
	update := directory.Update{Email: &email, DisplayName: &displayName}
	if role != "" {
		update.Role = &role
	}

	updated, err := h.directory.UpdateUser(ctx, userID, update)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_not_found"), "error")
			return
		}
		log.Printf("update user %s: %v", userID, err)
		h.renderUserDetailWithMessage(w, r, loc, lang, userID, loc.Sprintf("error.user_update_failed"), "error")
		return
	}

	h.recordAudit(r, storage.AuditActionUserUpdated, updated.ID, "email="+updated.Email+" role="+updated.Role)

	view := buildUserDetail(loc, updated, templates.TabDetails, canManage(r))
	view.Message = loc.Sprintf("users.update.success")
	view.MessageKind = "success"
	h.renderUserDetail(w, r, loc, lang, view)
}

// handleUserDelete removes a user and returns to the table.
func (h *Handler) handleUserDelete(w http.ResponseWriter, r *http.Request, userID string) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if !canManage(r) {
		http.Error(w, loc.Sprintf("error.forbidden"), http.StatusForbidden)
		return
	}
	if h.directory == nil {
		h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_directory_unavailable"), "error")
		return
	}

	ctx, cancel := h.directoryCallContext(r.Context())
	defer cancel()

	if err := h.directory.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_not_found"), "error")
			return
		}
		log.Printf("delete user %s: %v", userID, err)
		h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_delete_failed"), "error")
		return
	}

	h.selectionForRequest(w, r).Remove(userID)
	h.recordAudit(r, storage.AuditActionUserDeleted, userID, "")
	h.redirectToUsersWithMessage(w, r, loc.Sprintf("users.delete.success"), "success")
}

// handleResetPassword invalidates credentials and shows the one-time secret.
func (h *Handler) handleResetPassword(w http.ResponseWriter, r *http.Request, userID string) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if !canManage(r) {
		http.Error(w, loc.Sprintf("error.forbidden"), http.StatusForbidden)
		return
	}
	if h.directory == nil {
		h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_directory_unavailable"), "error")
		return
	}

	ctx, cancel := h.directoryCallContext(r.Context())
	defer cancel()

	secret, err := h.directory.ResetPassword(ctx, userID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.user_not_found"), "error")
			return
		}
		log.Printf("reset password %s: %v", userID, err)
		h.renderUserDetailWithMessage(w, r, loc, lang, userID, loc.Sprintf("error.password_reset_failed"), "error")
		return
	}

	user, err := h.directory.GetUser(ctx, userID)
	if err != nil {
		log.Printf("get user %s after reset: %v", userID, err)
		h.redirectToUsersWithMessage(w, r, loc.Sprintf("error.users_unavailable"), "error")
		return
	}

	h.recordAudit(r, storage.AuditActionPasswordReset, userID, "")

	view := buildUserDetail(loc, user, templates.TabDetails, canManage(r))
	view.ResetSecret = secret
	h.renderUserDetail(w, r, loc, lang, view)
}

func (h *Handler) renderUsersTableView(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, view templates.UsersTableView) {
	pageCtx := h.pageContext(lang, loc, r)
	renderPage(
		w,
		r,
		templates.UsersTable(pageCtx, view),
		templates.Layout(pageCtx, loc.Sprintf("title.users", brandName()), templates.UsersTable(pageCtx, view)),
		htmxLocalizedPageTitle(loc, "title.users"),
	)
}

func (h *Handler) renderUsersTableError(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, message string) {
	sort, _ := ParseSortState("")
	view := buildUsersTableView(loc, nil, sort, nil, canManage(r))
	view.Message = message
	h.renderUsersTableView(w, r, loc, lang, view)
}

func (h *Handler) renderUserDetail(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, view templates.UserDetailView) {
	pageCtx := h.pageContext(lang, loc, r)
	renderPage(
		w,
		r,
		templates.UserDetailPage(pageCtx, view),
		templates.UserDetailFullPage(pageCtx, view, loc.Sprintf("title.user_detail", brandName())),
		htmxLocalizedPageTitle(loc, "title.user_detail"),
	)
}

func (h *Handler) renderUserDetailWithMessage(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, userID, msg, kind string) {
	if h.directory != nil {
		ctx, cancel := h.directoryCallContext(r.Context())
		defer cancel()
		if user, err := h.directory.GetUser(ctx, userID); err == nil {
			view := buildUserDetail(loc, user, templates.TabDetails, canManage(r))
			view.Message = msg
			view.MessageKind = kind
			h.renderUserDetail(w, r, loc, lang, view)
			return
		}
	}
	h.redirectToUsersWithMessage(w, r, msg, kind)
}

func (h *Handler) loadUserActivity(r *http.Request, userID string, loc *message.Printer) ([]templates.ActivityRow, string) {
	if h.audit == nil {
		return nil, loc.Sprintf("users.activity.empty")
	}

	ctx, cancel := h.directoryCallContext(r.Context())
	defer cancel()

	entries, err := h.audit.ListAuditEntries(ctx, userID, 0)
	if err != nil {
		log.Printf("list audit entries %s: %v", userID, err)
		return nil, loc.Sprintf("users.activity.empty")
	}
	return buildActivityRows(loc, entries), ""
}

func (h *Handler) recordAudit(r *http.Request, action, userID, detail string) {
	if h.audit == nil {
		return
	}

	ctx, cancel := h.directoryCallContext(r.Context())
	defer cancel()

	entry := storage.AuditEntry{
		ActorID: operatorID(r),
		Action:  action,
		UserID:  userID,
		Detail:  detail,
	}
	if err := h.audit.PutAuditEntry(ctx, entry); err != nil {
		log.Printf("record audit %s for %s: %v", action, userID, err)
	}
}

func (h *Handler) redirectToUserDetail(w http.ResponseWriter, r *http.Request, userID string) {
	h.redirect(w, r, routepath.UserDetail(userID))
}

func (h *Handler) redirectToUsersWithMessage(w http.ResponseWriter, r *http.Request, msg, kind string) {
	target := templates.AppendQueryParam(routepath.Users, "message", msg)
	if kind != "" {
		target = templates.AppendQueryParam(target, "kind", kind)
	}
	h.redirect(w, r, target)
}

// redirect navigates the browser, using HX-Redirect for HTMX requests so the
// whole document moves rather than the swapped fragment.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, target string) {
	if htmx.IsHTMXRequest(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
