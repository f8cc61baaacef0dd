package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/fieldsuite/fieldsuite/pkg/intl"
)

type monthly struct {
	Month   string
	Revenue string
	Jobs    int
}

var revenueByMonth = []monthly{
	{"2026-04", "$38,400", 51},
	{"2026-05", "$41,900", 56},
	{"2026-06", "$47,200", 63},
	{"2026-07", "$44,100", 58},
	{"2026-08", "$49,800", 66},
}

func Reports(ctx context.Context) (templ.Component, error) {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="reports"><h1>%s</h1><table class="data-table"><thead><tr><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			templ.EscapeString(intl.MustT(ctx, "Reports.Title")),
			templ.EscapeString(intl.MustT(ctx, "Reports.Columns.Month")),
			templ.EscapeString(intl.MustT(ctx, "Reports.Columns.Revenue")),
			templ.EscapeString(intl.MustT(ctx, "Reports.Columns.JobsCompleted")),
		); err != nil {
			return err
		}
		for _, m := range revenueByMonth {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%d</td></tr>`,
				templ.EscapeString(m.Month), templ.EscapeString(m.Revenue), m.Jobs,
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	}), nil
}
