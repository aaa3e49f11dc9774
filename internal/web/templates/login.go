package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LoginParams feeds the login form.
type LoginParams struct {
	// Email repopulates the email input after a failed attempt.
	Email string
	// Error is the generic failure message, empty on first render.
	Error string
}

// LoginPage renders the credential form. Failed attempts show one generic
// message regardless of which half of the pair was wrong.
func LoginPage(params LoginParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section><h1>Sign in</h1>`); err != nil {
			return err
		}
		if params.Error != "" {
			if _, err := fmt.Fprintf(w,
				`<div class="banner banner-failure" aria-live="polite">%s</div>`,
				templ.EscapeString(params.Error),
			); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `
<form method="post" action="/login">
  <label for="email">Email</label>
  <input id="email" name="email" type="email" value="%s" required>
  <label for="password">Password</label>
  <input id="password" name="password" type="password" required>
  <button type="submit">Sign in</button>
</form></section>`, templ.EscapeString(params.Email))
		return err
	})
}
