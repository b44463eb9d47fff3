package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLoadingSpinnerRendersRingOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := LoadingSpinner().Render(context.Background(), &buf); err != nil {
		t.Fatalf("render LoadingSpinner: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `class="loading loading-ring loading-md"`) {
		t.Fatalf("LoadingSpinner output missing loading ring: %q", got)
	}
	if strings.Contains(got, "sr-only") {
		t.Fatalf("LoadingSpinner output should not include message: %q", got)
	}
}

func TestHeadingRendersBreadcrumbsAndAction(t *testing.T) {
	var buf bytes.Buffer
	heading := PageHeading{
		Title: "Users",
		Breadcrumbs: []Breadcrumb{
			{Label: "Home", URL: "/"},
			{Label: "Users"},
		},
		ActionURL:   "/users/create",
		ActionLabel: "Create user",
	}
	if err := Heading(heading).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render Heading: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `<li><a href="/">Home</a></li>`) {
		t.Fatalf("Heading missing breadcrumb link: %q", got)
	}
	if !strings.Contains(got, `<li>Users</li>`) {
		t.Fatalf("Heading missing terminal breadcrumb: %q", got)
	}
	if !strings.Contains(got, `href="/users/create"`) {
		t.Fatalf("Heading missing action URL: %q", got)
	}
}

func TestLayoutWrapsContentInMain(t *testing.T) {
	var buf bytes.Buffer
	page := PageContext{Lang: "pt-BR"}
	if err := Layout(page, "Users | Userhub Admin", LoadingSpinner()).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render Layout: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `<html lang="pt-BR"`) {
		t.Fatalf("Layout missing lang attribute: %q", got)
	}
	if !strings.Contains(got, "<title>Users | Userhub Admin</title>") {
		t.Fatalf("Layout missing title: %q", got)
	}
	if !strings.Contains(got, "<main") || !strings.Contains(got, "</main>") {
		t.Fatalf("Layout missing main element: %q", got)
	}
	if !strings.Contains(got, "loading-ring") {
		t.Fatalf("Layout missing embedded content: %q", got)
	}
}

func TestMessageBannerKinds(t *testing.T) {
	var buf bytes.Buffer
	if err := MessageBanner("error", "Unable to load users.").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render MessageBanner: %v", err)
	}
	if !strings.Contains(buf.String(), `class="alert alert-error"`) {
		t.Fatalf("MessageBanner missing error class: %q", buf.String())
	}

	buf.Reset()
	if err := MessageBanner("success", "").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render empty MessageBanner: %v", err)
	}
	if buf.String() != "" {
		t.Fatalf("empty MessageBanner should render nothing: %q", buf.String())
	}
}

func TestAppendQueryParam(t *testing.T) {
	if got := AppendQueryParam("/users/table", "order_by", "email desc"); got != "/users/table?order_by=email+desc" {
		t.Fatalf("AppendQueryParam = %q", got)
	}
	if got := AppendQueryParam("/users/table?lang=en", "order_by", "email"); got != "/users/table?lang=en&order_by=email" {
		t.Fatalf("AppendQueryParam = %q", got)
	}
}
