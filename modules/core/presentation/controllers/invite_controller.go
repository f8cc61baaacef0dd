package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/fieldsuite/fieldsuite/modules/core/presentation/templates/layouts"
	"github.com/fieldsuite/fieldsuite/pkg/composables"
	"github.com/fieldsuite/fieldsuite/pkg/shell/composer"
)

// InviteController owns the reserved invitation-acceptance route. The path
// is detected before section resolution, so "accept-invite" can never be
// shadowed by a section id.
type InviteController struct{}

func NewInviteController() *InviteController {
	return &InviteController{}
}

func (c *InviteController) Key() string {
	return composer.InviteAcceptPath
}

func (c *InviteController) Register(r *mux.Router) {
	r.HandleFunc(composer.InviteAcceptPath, c.accept).Methods(http.MethodGet)
}

func (c *InviteController) accept(w http.ResponseWriter, r *http.Request) {
	token, ok := composer.InviteToken(r.URL)
	if !ok {
		http.Error(w, "missing invitation token", http.StatusBadRequest)
		return
	}
	props := layouts.ShellProps{
		Title:   "Accept invitation | FieldSuite",
		Header:  composer.HeaderBusiness,
		Content: inviteView(token),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layouts.Base(props).Render(r.Context(), w); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("invite render failed")
	}
}

func inviteView(token string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="invite"><h1>You have been invited</h1><p>Accept the invitation to join this workspace.</p><form method="post" action="/login"><input type="hidden" name="invite_token" value="%s"><a href="/login">Continue to sign in</a></form></div>`,
			templ.EscapeString(token),
		)
		return err
	})
}
