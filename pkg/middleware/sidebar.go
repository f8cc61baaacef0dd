package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/aggregates/user"
	"github.com/fieldsuite/fieldsuite/pkg/application"
	"github.com/fieldsuite/fieldsuite/pkg/composables"
	"github.com/fieldsuite/fieldsuite/pkg/constants"
	"github.com/fieldsuite/fieldsuite/pkg/intl"
	"github.com/fieldsuite/fieldsuite/pkg/shell/access"
	"github.com/fieldsuite/fieldsuite/pkg/shell/registry"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

func filterSections(sections []types.Section, u user.User) []types.Section {
	filtered := make([]types.Section, 0, len(sections))
	for _, s := range sections {
		if access.CanAccess(u, s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// NavSections computes the permission-filtered section list and its derived
// groups for the current user and stores both in the request context. The
// group table keeps only groups that retain at least one visible section.
func NavSections() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				app, err := application.UseApp(r.Context())
				if err != nil {
					panic(err.Error())
				}
				localizer, ok := intl.UseLocalizer(r.Context())
				if !ok {
					panic("localizer not found in context")
				}
				u, err := composables.UseUser(r.Context())
				if err != nil {
					next.ServeHTTP(w, r)
					return
				}

				sections := filterSections(app.Sections(localizer), u)
				groups := translateGroups(registry.GroupsFor(sections, app.Membership()), localizer)

				ctx := context.WithValue(r.Context(), constants.NavSectionsKey, sections)
				ctx = context.WithValue(ctx, constants.NavGroupsKey, groups)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

func translateGroups(groups []types.Group, localizer *i18n.Localizer) []types.Group {
	translated := make([]types.Group, len(groups))
	for i, g := range groups {
		if label, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: g.Label}); err == nil {
			g.Label = label
		}
		translated[i] = g
	}
	return translated
}

// UseNavSections returns the filtered sections computed by NavSections.
func UseNavSections(ctx context.Context) ([]types.Section, bool) {
	sections, ok := ctx.Value(constants.NavSectionsKey).([]types.Section)
	return sections, ok
}

// UseNavGroups returns the filtered groups computed by NavSections.
func UseNavGroups(ctx context.Context) ([]types.Group, bool) {
	groups, ok := ctx.Value(constants.NavGroupsKey).([]types.Group)
	return groups, ok
}
