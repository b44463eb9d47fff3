package useradmin

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/userhub-admin/internal/platform/branding"
	"github.com/louisbranch/userhub-admin/internal/platform/id"
	"github.com/louisbranch/userhub-admin/internal/platform/timeouts"
	"github.com/louisbranch/userhub-admin/internal/services/shared/htmx"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/directory"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/i18n"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/routepath"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/storage"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/templates"
	"golang.org/x/text/message"
)

// Handler routes user administration requests.
type Handler struct {
	directory  directory.Directory
	audit      storage.AuditStore
	selections *selectionStore
}

// NewHandler builds the HTTP handler for the useradmin server.
//
// audit may be nil, which disables the activity tab. authCfg may be nil,
// which disables authentication and grants the admin role.
func NewHandler(dir directory.Directory, audit storage.AuditStore, authCfg *AuthConfig) http.Handler {
	handler := &Handler{
		directory:  dir,
		audit:      audit,
		selections: newSelectionStore(),
	}
	return traceRequests(requireAuth(handler.routes(), authCfg))
}

// traceRequests opens one span per request on the configured tracer provider.
func traceRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tracer := otel.Tracer("useradmin")
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("url.path", r.URL.Path),
			))
		defer span.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// routes wires the HTTP routes for the useradmin handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.Dir("internal/services/useradmin/static"))))
	mux.Handle(routepath.Root, http.HandlerFunc(h.handleRoot))
	mux.Handle(routepath.Users, http.HandlerFunc(h.handleUsersPage))
	mux.Handle(routepath.UsersTable, http.HandlerFunc(h.handleUsersTable))
	mux.Handle(routepath.UsersLookup, http.HandlerFunc(h.handleUserLookup))
	mux.Handle(routepath.UsersCreate, http.HandlerFunc(h.handleCreateUser))
	mux.Handle(routepath.UsersSelection, http.HandlerFunc(h.handleSelection))
	mux.Handle(routepath.UsersPrefix, http.HandlerFunc(h.handleUserRoutes))
	return mux
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, routepath.Users, http.StatusFound)
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

func (h *Handler) pageContext(lang string, loc *message.Printer, r *http.Request) templates.PageContext {
	pageCtx := templates.PageContext{Lang: lang, Loc: loc}
	if r != nil {
		pageCtx.CurrentPath = r.URL.Path
		pageCtx.CurrentQuery = r.URL.RawQuery
	}
	return pageCtx
}

// directoryCallContext bounds a directory call made on behalf of a request.
func (h *Handler) directoryCallContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeouts.DirectoryRequest)
}

// selectionForRequest returns the request's selection, minting a session
// cookie when the browser does not carry one yet.
func (h *Handler) selectionForRequest(w http.ResponseWriter, r *http.Request) *Selection {
	sessionID := ""
	if cookie, err := r.Cookie(selectionCookieName); err == nil {
		sessionID = strings.TrimSpace(cookie.Value)
	}
	if sessionID == "" {
		newID, err := id.NewID()
		if err != nil {
			log.Printf("mint selection session id: %v", err)
			return NewSelection()
		}
		sessionID = newID
		if w != nil {
			http.SetCookie(w, &http.Cookie{
				Name:     selectionCookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(selectionTTL.Seconds()),
				HttpOnly: true,
				Secure:   isHTTPS(r),
				SameSite: http.SameSiteLaxMode,
			})
		}
	}
	selection, ok := h.selections.Get(sessionID)
	if !ok {
		selection = NewSelection()
		h.selections.Set(sessionID, selection)
	}
	return selection
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func isHTTPS(r *http.Request) bool {
	return requestScheme(r) == "https"
}

func splitPathParts(path string) []string {
	rawParts := strings.Split(path, "/")
	parts := make([]string, 0, len(rawParts))
	for _, part := range rawParts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed)
	}
	return parts
}

func htmxLocalizedPageTitle(loc *message.Printer, title string) string {
	if loc == nil {
		return htmx.TitleTag(branding.AppName)
	}
	return htmx.TitleTag(loc.Sprintf(title, branding.AppName))
}

// renderPage renders page components with consistent HTMX and non-HTMX behavior.
func renderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, htmxTitle string) {
	htmx.RenderPage(w, r, fragment, full, htmxTitle)
}
