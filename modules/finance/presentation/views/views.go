package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/fieldsuite/fieldsuite/pkg/intl"
)

type document struct {
	Ref      string
	Customer string
	Total    string
	StateKey string
}

var estimateFixtures = []document{
	{"EST-2210", "Westline Property Group", "$4,820.00", "Finance.State.Sent"},
	{"EST-2209", "Harbor Point Cafe", "$1,150.00", "Finance.State.Approved"},
	{"EST-2207", "Cascade Dental", "$780.00", "Finance.State.Draft"},
}

var invoiceFixtures = []document{
	{"INV-5531", "Harbor Point Cafe", "$1,150.00", "Finance.State.Overdue"},
	{"INV-5530", "Linda Okafor", "$420.00", "Finance.State.Paid"},
	{"INV-5528", "Westline Property Group", "$2,300.00", "Finance.State.Sent"},
	{"INV-5526", "Tom Beckett", "$260.00", "Finance.State.Paid"},
}

func Estimates(ctx context.Context) (templ.Component, error) {
	return documentTable("Estimates.Title", estimateFixtures), nil
}

func Invoices(ctx context.Context) (templ.Component, error) {
	return documentTable("Invoices.Title", invoiceFixtures), nil
}

func documentTable(titleKey string, docs []document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="finance"><h1>%s</h1><table class="data-table"><thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			templ.EscapeString(intl.MustT(ctx, titleKey)),
			templ.EscapeString(intl.MustT(ctx, "Finance.Columns.Ref")),
			templ.EscapeString(intl.MustT(ctx, "Finance.Columns.Customer")),
			templ.EscapeString(intl.MustT(ctx, "Finance.Columns.Total")),
			templ.EscapeString(intl.MustT(ctx, "Finance.Columns.State")),
		); err != nil {
			return err
		}
		for _, d := range docs {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(d.Ref),
				templ.EscapeString(d.Customer),
				templ.EscapeString(d.Total),
				templ.EscapeString(intl.MustT(ctx, d.StateKey)),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}
