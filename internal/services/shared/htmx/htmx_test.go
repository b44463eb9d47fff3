package htmx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func textComponent(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}

func TestIsHTMXRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMXRequest(req) {
		t.Fatal("expected non-HTMX request")
	}
	req.Header.Set(ResponseHeaderKey, "true")
	if !IsHTMXRequest(req) {
		t.Fatal("expected HTMX request")
	}
	if IsHTMXRequest(nil) {
		t.Fatal("expected nil request to be non-HTMX")
	}
}

func TestTitleTagEscapes(t *testing.T) {
	if got := TitleTag("Users <Admin>"); got != "<title>Users &lt;Admin&gt;</title>" {
		t.Fatalf("TitleTag = %q", got)
	}
	if got := TitleTag("  "); got != "" {
		t.Fatalf("expected empty tag, got %q", got)
	}
}

func TestRenderPageUsesFragmentForHTMX(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(ResponseHeaderKey, "true")
	recorder := httptest.NewRecorder()

	RenderPage(recorder, req, textComponent("fragment"), textComponent("<main>full</main>"), TitleTag("Users"))

	body := recorder.Body.String()
	if !strings.Contains(body, "fragment") {
		t.Fatalf("expected fragment body, got %q", body)
	}
	if strings.Contains(body, "full") {
		t.Fatalf("expected no full body, got %q", body)
	}
	if !strings.Contains(body, "<title>Users</title>") {
		t.Fatalf("expected injected title, got %q", body)
	}
}

func TestRenderPageUsesFullForNormalRequests(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	recorder := httptest.NewRecorder()

	RenderPage(recorder, req, textComponent("fragment"), textComponent("full"), "")

	if got := recorder.Body.String(); got != "full" {
		t.Fatalf("expected full body, got %q", got)
	}
}

func TestRenderPageExtractsMainFromFull(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(ResponseHeaderKey, "true")
	recorder := httptest.NewRecorder()

	RenderPage(recorder, req, nil, textComponent(`<html><main class="p-1">inner</main></html>`), "")

	if got := recorder.Body.String(); got != "inner" {
		t.Fatalf("expected extracted main content, got %q", got)
	}
}
