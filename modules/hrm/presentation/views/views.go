package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/fieldsuite/fieldsuite/pkg/intl"
)

type member struct {
	Name    string
	RoleKey string
	Active  int
}

var members = []member{
	{"Maya Chen", "Team.Role.Manager", 0},
	{"Dario Ruiz", "Team.Role.Technician", 2},
	{"Kwame Osei", "Team.Role.Technician", 1},
	{"Minh Tran", "Team.Role.Technician", 1},
	{"Eli Novak", "Team.Role.Dispatcher", 0},
}

func Team(ctx context.Context) (templ.Component, error) {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="team"><h1>%s</h1><table class="data-table"><thead><tr><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			templ.EscapeString(intl.MustT(ctx, "Team.Title")),
			templ.EscapeString(intl.MustT(ctx, "Team.Columns.Name")),
			templ.EscapeString(intl.MustT(ctx, "Team.Columns.Role")),
			templ.EscapeString(intl.MustT(ctx, "Team.Columns.ActiveJobs")),
		); err != nil {
			return err
		}
		for _, m := range members {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%d</td></tr>`,
				templ.EscapeString(m.Name),
				templ.EscapeString(intl.MustT(ctx, m.RoleKey)),
				m.Active,
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	}), nil
}
