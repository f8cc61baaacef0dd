package layouts

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/fieldsuite/fieldsuite/pkg/composables"
	"github.com/fieldsuite/fieldsuite/pkg/metrics"
	"github.com/fieldsuite/fieldsuite/pkg/shell/navigation"
	"github.com/fieldsuite/fieldsuite/pkg/shell/registry"
)

// Skeleton approximates the final section layout while content is pending;
// never a blank screen or a bare spinner.
func Skeleton() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="section-skeleton" role="status" aria-label="Loading"><div class="skeleton skeleton-title"></div><div class="skeleton skeleton-toolbar"></div><div class="skeleton skeleton-table"></div></div>`)
		return err
	})
}

// NotFoundView is the placeholder for ids the registry does not know. A
// valid terminal outcome, distinct from under-construction.
func NotFoundView(sectionID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="section-placeholder section-not-found"><h1>Section not found</h1><p>There is no section named &quot;%s&quot;.</p><a href="/">Back to dashboard</a></div>`,
			templ.EscapeString(sectionID),
		)
		return err
	})
}

// UnderConstructionView marks sections that are declared but intentionally
// unimplemented.
func UnderConstructionView(sectionLabel string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="section-placeholder section-under-construction"><h1>%s</h1><p>This section is under construction.</p></div>`,
			templ.EscapeString(sectionLabel),
		)
		return err
	})
}

func materializationFallback(sectionID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="section-placeholder section-error"><h1>Something went wrong</h1><p>This section failed to load. The rest of the app is unaffected.</p><a href="%s">Retry</a></div>`,
			templ.EscapeString(navigation.PathFor(sectionID)),
		)
		return err
	})
}

// ContentBoundary materializes the section's view and contains failures: a
// producer error is logged, counted, and rendered as an inline retry
// fallback. A failure here never reaches the header or sidebar, and never
// blocks navigating elsewhere.
func ContentBoundary(sectionID string, producer registry.ViewProducer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		view, err := func() (c templ.Component, err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("section %s panicked: %v", sectionID, r)
				}
			}()
			return producer(ctx)
		}()
		if err != nil {
			metrics.MaterializationFailures.WithLabelValues(sectionID).Inc()
			composables.UseLogger(ctx).WithError(err).WithField("section", sectionID).Error("section materialization failed")
			return materializationFallback(sectionID).Render(ctx, w)
		}
		if err := view.Render(ctx, w); err != nil {
			metrics.MaterializationFailures.WithLabelValues(sectionID).Inc()
			composables.UseLogger(ctx).WithError(err).WithField("section", sectionID).Error("section render failed")
			return materializationFallback(sectionID).Render(ctx, w)
		}
		return nil
	})
}
