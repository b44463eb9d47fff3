package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// PageHeading holds header metadata for pages.
type PageHeading struct {
	// Title is the page heading.
	Title string
	// Breadcrumbs renders a path trail for the page.
	Breadcrumbs []Breadcrumb
	// ActionURL renders a CTA button when set.
	ActionURL string
	// ActionLabel is the CTA button label.
	ActionLabel string
}

// Breadcrumb represents a single breadcrumb item.
type Breadcrumb struct {
	// Label is the visible label.
	Label string
	// URL is the optional navigation target.
	URL string
}

// AppendQueryParam appends a single query parameter to a URL.
func AppendQueryParam(baseURL string, key string, value string) string {
	encodedKey := url.QueryEscape(key)
	encodedValue := url.QueryEscape(value)
	if strings.Contains(baseURL, "?") {
		return baseURL + "&" + encodedKey + "=" + encodedValue
	}
	return baseURL + "?" + encodedKey + "=" + encodedValue
}

// Layout wraps content in the full HTML document chrome.
func Layout(page PageContext, title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := page.Lang
		if lang == "" {
			lang = "en"
		}
		_, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="%s" data-theme="light"><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/><title>%s</title><script src="/static/htmx.min.js" defer></script><link rel="stylesheet" href="/static/app.css"/></head><body><main class="container mx-auto p-4">`,
			templ.EscapeString(lang), templ.EscapeString(title))
		if err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// Heading renders a page heading with optional breadcrumbs and CTA.
func Heading(heading PageHeading) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(heading.Breadcrumbs) > 0 {
			if _, err := io.WriteString(w, `<div class="breadcrumbs text-sm"><ul>`); err != nil {
				return err
			}
			for _, crumb := range heading.Breadcrumbs {
				var err error
				if crumb.URL != "" {
					_, err = fmt.Fprintf(w, `<li><a href="%s">%s</a></li>`,
						templ.EscapeString(crumb.URL), templ.EscapeString(crumb.Label))
				} else {
					_, err = fmt.Fprintf(w, `<li>%s</li>`, templ.EscapeString(crumb.Label))
				}
				if err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</ul></div>`); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<div class="flex items-center justify-between"><h1 class="text-2xl font-bold">%s</h1>`,
			templ.EscapeString(heading.Title)); err != nil {
			return err
		}
		if heading.ActionURL != "" && heading.ActionLabel != "" {
			if _, err := fmt.Fprintf(w, `<a class="btn btn-primary btn-sm" href="%s">%s</a>`,
				templ.EscapeString(heading.ActionURL), templ.EscapeString(heading.ActionLabel)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// LoadingSpinner renders the shared loading ring without a message.
func LoadingSpinner() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<span class="loading loading-ring loading-md"></span>`)
		return err
	})
}

// MessageBanner renders a status message above page content.
func MessageBanner(kind string, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		class := "alert alert-info"
		switch kind {
		case "error":
			class = "alert alert-error"
		case "success":
			class = "alert alert-success"
		}
		_, err := fmt.Fprintf(w, `<div class="%s" role="status">%s</div>`, class, templ.EscapeString(text))
		return err
	})
}
