package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/fieldsuite/fieldsuite/pkg/intl"
)

func Assistant(ctx context.Context) (templ.Component, error) {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="assistant"><h1>%s</h1><div class="chat-log"><p class="chat-message chat-assistant">%s</p></div><form class="chat-composer"><input type="text" name="prompt" placeholder="%s"><button type="submit">%s</button></form></section>`,
			templ.EscapeString(intl.MustT(ctx, "Assistant.Title")),
			templ.EscapeString(intl.MustT(ctx, "Assistant.WelcomeMessage")),
			templ.EscapeString(intl.MustT(ctx, "Assistant.PromptPlaceholder")),
			templ.EscapeString(intl.MustT(ctx, "Assistant.Send")),
		)
		return err
	}), nil
}
