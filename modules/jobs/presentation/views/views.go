package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/fieldsuite/fieldsuite/pkg/intl"
)

type job struct {
	Ref      string
	Customer string
	StateKey string
	Tech     string
}

var jobFixtures = []job{
	{"JOB-1042", "Harbor Point Cafe", "Jobs.State.InProgress", "D. Ruiz"},
	{"JOB-1041", "Westline Property Group", "Jobs.State.Scheduled", "K. Osei"},
	{"JOB-1039", "Cascade Dental", "Jobs.State.Scheduled", "D. Ruiz"},
	{"JOB-1036", "Linda Okafor", "Jobs.State.AwaitingParts", "M. Tran"},
	{"JOB-1033", "Tom Beckett", "Jobs.State.Done", "K. Osei"},
}

func Jobs(ctx context.Context) (templ.Component, error) {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="jobs"><h1>%s</h1><table class="data-table"><thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			templ.EscapeString(intl.MustT(ctx, "Jobs.Title")),
			templ.EscapeString(intl.MustT(ctx, "Jobs.Columns.Ref")),
			templ.EscapeString(intl.MustT(ctx, "Jobs.Columns.Customer")),
			templ.EscapeString(intl.MustT(ctx, "Jobs.Columns.State")),
			templ.EscapeString(intl.MustT(ctx, "Jobs.Columns.Technician")),
		); err != nil {
			return err
		}
		for _, j := range jobFixtures {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(j.Ref),
				templ.EscapeString(j.Customer),
				templ.EscapeString(intl.MustT(ctx, j.StateKey)),
				templ.EscapeString(j.Tech),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	}), nil
}

func Schedule(ctx context.Context) (templ.Component, error) {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="schedule"><h1>%s</h1><ol class="schedule-list">`,
			templ.EscapeString(intl.MustT(ctx, "Schedule.Title"))); err != nil {
			return err
		}
		for _, j := range jobFixtures {
			if j.StateKey != "Jobs.State.Scheduled" {
				continue
			}
			if _, err := fmt.Fprintf(w, `<li><strong>%s</strong> %s (%s)</li>`,
				templ.EscapeString(j.Ref), templ.EscapeString(j.Customer), templ.EscapeString(j.Tech)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ol></section>`)
		return err
	}), nil
}
