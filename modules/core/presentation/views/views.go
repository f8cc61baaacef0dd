// Package views renders the core sections. All data is an in-memory
// fixture; the shell is the product here, not the records behind it.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/fieldsuite/fieldsuite/pkg/composables"
	"github.com/fieldsuite/fieldsuite/pkg/intl"
)

type statCard struct {
	labelKey string
	value    string
}

var dashboardStats = []statCard{
	{"Dashboard.Stats.OpenJobs", "14"},
	{"Dashboard.Stats.PendingEstimates", "6"},
	{"Dashboard.Stats.UnpaidInvoices", "9"},
	{"Dashboard.Stats.NewLeads", "3"},
}

func Dashboard(ctx context.Context) (templ.Component, error) {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		greeting := intl.MustT(ctx, "Dashboard.Greeting")
		if u, err := composables.UseUser(ctx); err == nil {
			greeting = fmt.Sprintf("%s, %s", greeting, templ.EscapeString(u.DisplayName()))
		}
		if _, err := fmt.Fprintf(w, `<section class="dashboard"><h1>%s</h1><div class="stat-grid">`, greeting); err != nil {
			return err
		}
		for _, s := range dashboardStats {
			if _, err := fmt.Fprintf(w,
				`<div class="stat-card"><span class="stat-value">%s</span><span class="stat-label">%s</span></div>`,
				s.value, templ.EscapeString(intl.MustT(ctx, s.labelKey)),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></section>`)
		return err
	}), nil
}

type tenantRow struct {
	name     string
	plan     string
	stateKey string
}

var tenantRows = []tenantRow{
	{"Northwind Services", "Business", "Tenants.State.Active"},
	{"Cascade Plumbing Co", "Business", "Tenants.State.Active"},
	{"Brightline Electric", "Starter", "Tenants.State.Trial"},
	{"Summit HVAC Group", "Enterprise", "Tenants.State.Suspended"},
}

// Tenants is the platform shell's landing section.
func Tenants(ctx context.Context) (templ.Component, error) {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="tenants"><h1>%s</h1><table class="data-table"><thead><tr><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			templ.EscapeString(intl.MustT(ctx, "Tenants.Title")),
			templ.EscapeString(intl.MustT(ctx, "Tenants.Name")),
			templ.EscapeString(intl.MustT(ctx, "Tenants.Plan")),
			templ.EscapeString(intl.MustT(ctx, "Tenants.Status")),
		); err != nil {
			return err
		}
		for _, row := range tenantRows {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(row.name),
				templ.EscapeString(row.plan),
				templ.EscapeString(intl.MustT(ctx, row.stateKey)),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	}), nil
}

func Settings(ctx context.Context) (templ.Component, error) {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="settings"><h1>%s</h1><ul class="settings-list"><li>%s</li><li>%s</li><li>%s</li></ul></section>`,
			templ.EscapeString(intl.MustT(ctx, "Settings.Title")),
			templ.EscapeString(intl.MustT(ctx, "Settings.Company")),
			templ.EscapeString(intl.MustT(ctx, "Settings.Billing")),
			templ.EscapeString(intl.MustT(ctx, "Settings.Notifications")),
		)
		return err
	}), nil
}
