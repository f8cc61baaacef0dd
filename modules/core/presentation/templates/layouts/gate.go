package layouts

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LoginPrompt is the inline unauthenticated view. Rendering it in place of
// the content, rather than redirecting, means a successful login lands the
// user back on the section they were after.
func LoginPrompt(returnTo string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="gate gate-login"><h1>Sign in</h1><form method="post" action="/login"><input type="hidden" name="return_to" value="%s"><label>Email<input type="email" name="email" required></label><label>Password<input type="password" name="password" required></label><button type="submit">Sign in</button></form></div>`,
			templ.EscapeString(returnTo),
		)
		return err
	})
}

// ForbiddenView explains the missing access; a first-class state, not an
// error page.
func ForbiddenView(sectionLabel string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="gate gate-forbidden"><h1>No access to %s</h1><p>Your account does not have the permissions this section requires. Ask an administrator to grant access.</p><a href="/">Back to dashboard</a></div>`,
			templ.EscapeString(sectionLabel),
		)
		return err
	})
}
