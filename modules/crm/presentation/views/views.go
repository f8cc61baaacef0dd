package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/fieldsuite/fieldsuite/pkg/intl"
)

type customer struct {
	Name  string
	Phone string
	City  string
	Jobs  int
}

var fixtures = []customer{
	{"Harbor Point Cafe", "(415) 555-0132", "San Rafael", 12},
	{"Linda Okafor", "(415) 555-0178", "Mill Valley", 4},
	{"Westline Property Group", "(628) 555-0105", "San Francisco", 27},
	{"Tom Beckett", "(707) 555-0190", "Petaluma", 2},
	{"Cascade Dental", "(415) 555-0144", "Corte Madera", 8},
}

func Customers(ctx context.Context) (templ.Component, error) {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="customers"><h1>%s</h1><table class="data-table"><thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			templ.EscapeString(intl.MustT(ctx, "Customers.Title")),
			templ.EscapeString(intl.MustT(ctx, "Customers.Columns.Name")),
			templ.EscapeString(intl.MustT(ctx, "Customers.Columns.Phone")),
			templ.EscapeString(intl.MustT(ctx, "Customers.Columns.City")),
			templ.EscapeString(intl.MustT(ctx, "Customers.Columns.Jobs")),
		); err != nil {
			return err
		}
		for _, c := range fixtures {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td></tr>`,
				templ.EscapeString(c.Name), templ.EscapeString(c.Phone), templ.EscapeString(c.City), c.Jobs,
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	}), nil
}
