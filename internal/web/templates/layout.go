// Package templates renders the site pages as templ components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// PageContext holds metadata shared by every rendered page.
type PageContext struct {
	Title    string
	SignedIn bool
	UserName string
}

const pageStyles = `
body { margin: 0; font-family: system-ui, sans-serif; color: #1f2937; }
nav { display: flex; gap: 1rem; padding: 1rem 2rem; border-bottom: 1px solid #e5e7eb; }
nav a { color: #2563eb; text-decoration: none; font-weight: 500; }
main { max-width: 48rem; margin: 0 auto; padding: 2rem; }
section { margin-bottom: 2.5rem; }
h1, h2 { color: #111827; }
table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: 0.5rem 0.75rem; border-bottom: 1px solid #e5e7eb; }
label { display: block; margin-bottom: 0.5rem; font-size: 0.875rem; font-weight: 500; }
input, select { display: block; width: 100%; max-width: 20rem; padding: 0.5rem; margin-bottom: 1rem;
  border: 1px solid #d1d5db; border-radius: 0.375rem; }
input[type=radio] { display: inline; width: auto; margin-bottom: 0; }
button { padding: 0.5rem 1rem; border: 0; border-radius: 0.5rem; background: #2563eb; color: #fff;
  font-weight: 500; cursor: pointer; }
.banner { padding: 0.75rem; border-radius: 0.5rem; font-weight: 600; margin-top: 1rem; }
.banner-success { background: #dcfce7; color: #15803d; }
.banner-failure { background: #fee2e2; color: #b91c1c; }
.field-error { color: #dc2626; font-size: 0.875rem; margin: -0.5rem 0 1rem; }
.status-pending { background: #fef9c3; color: #854d0e; padding: 0.25rem 0.75rem; border-radius: 9999px; }
.status-paid { background: #dcfce7; color: #15803d; padding: 0.25rem 0.75rem; border-radius: 9999px; }
`

// Layout wraps body in the shared page chrome.
func Layout(page PageContext, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := page.Title
		if title == "" {
			title = "Atelier"
		}
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s</title><style>%s</style></head><body>`,
			templ.EscapeString(title), pageStyles,
		); err != nil {
			return err
		}
		if err := writeNav(w, page); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main>`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func writeNav(w io.Writer, page PageContext) error {
	if _, err := io.WriteString(w, `<nav><a href="/">Atelier</a>`); err != nil {
		return err
	}
	if page.SignedIn {
		if _, err := io.WriteString(w,
			`<a href="/dashboard">Dashboard</a>`+
				`<a href="/dashboard/invoices">Invoices</a>`+
				`<form method="post" action="/logout"><button type="submit">Sign out</button></form>`,
		); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, `<a href="/login">Sign in</a>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</nav>`)
	return err
}
