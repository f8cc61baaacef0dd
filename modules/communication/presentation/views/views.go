package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/fieldsuite/fieldsuite/pkg/intl"
)

type message struct {
	From    string
	Preview string
	Unread  bool
}

var messages = []message{
	{"Harbor Point Cafe", "The ice machine is leaking again, can someone come by today?", true},
	{"Westline Property Group", "Approved the estimate for unit 4B.", true},
	{"Tom Beckett", "Thanks for the quick fix last week!", false},
	{"Cascade Dental", "Please send the invoice to accounting@cascadedental.com.", true},
}

func Inbox(ctx context.Context) (templ.Component, error) {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="inbox"><h1>%s</h1><ul class="message-list">`,
			templ.EscapeString(intl.MustT(ctx, "Inbox.Title"))); err != nil {
			return err
		}
		for _, m := range messages {
			class := "message"
			if m.Unread {
				class += " unread"
			}
			if _, err := fmt.Fprintf(w,
				`<li class="%s"><strong>%s</strong><span>%s</span></li>`,
				class, templ.EscapeString(m.From), templ.EscapeString(m.Preview),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></section>`)
		return err
	}), nil
}
