package spotlight

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/a-h/templ"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/permission"
	"github.com/fieldsuite/fieldsuite/pkg/composables"
	"github.com/fieldsuite/fieldsuite/pkg/intl"
	"github.com/fieldsuite/fieldsuite/pkg/shell/access"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

// Item represents a renderable spotlight entry.
type Item interface {
	templ.Component
}

// DataSource supplies spotlight entries for a query.
type DataSource interface {
	Find(ctx context.Context, q string) []Item
}

type Spotlight interface {
	Register(ds DataSource)
	Find(ctx context.Context, q string) []Item
}

func New() Spotlight {
	return &spotlight{}
}

type spotlight struct {
	sources []DataSource
}

func (s *spotlight) Register(ds DataSource) {
	s.sources = append(s.sources, ds)
}

func (s *spotlight) Find(ctx context.Context, q string) []Item {
	var out []Item
	for _, ds := range s.sources {
		out = append(out, ds.Find(ctx, q)...)
	}
	return out
}

func NewQuickLink(icon templ.Component, trKey, link string) *QuickLink {
	return &QuickLink{trKey: trKey, icon: icon, link: link}
}

type QuickLink struct {
	trKey       string
	icon        templ.Component
	link        string
	permissions []*permission.Permission
}

func (i *QuickLink) Render(ctx context.Context, w io.Writer) error {
	label := intl.MustT(ctx, i.trKey)
	if _, err := fmt.Fprintf(w, `<a class="spotlight-item" href="%s">`, templ.EscapeString(i.link)); err != nil {
		return err
	}
	if i.icon != nil {
		if err := i.icon.Render(ctx, w); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, `<span>%s</span></a>`, templ.EscapeString(label)); err != nil {
		return err
	}
	return nil
}

// RequirePermissions limits the quick link's visibility to users the access
// gate would admit to a section carrying the same permissions.
func (i *QuickLink) RequirePermissions(perms ...*permission.Permission) *QuickLink {
	i.permissions = append(i.permissions, perms...)
	return i
}

type QuickLinks struct {
	items []*QuickLink
}

func (ql *QuickLinks) Add(links ...*QuickLink) {
	ql.items = append(ql.items, links...)
}

func (ql *QuickLinks) Find(ctx context.Context, q string) []Item {
	links := ql.authorizedLinks(ctx)
	if len(links) == 0 {
		return nil
	}
	words := make([]string, len(links))
	for i, it := range links {
		words[i] = intl.MustT(ctx, it.trKey)
	}
	ranks := fuzzy.RankFindNormalizedFold(q, words)
	sort.Sort(ranks)

	result := make([]Item, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, links[rank.OriginalIndex])
	}
	return result
}

func (ql *QuickLinks) authorizedLinks(ctx context.Context) []*QuickLink {
	u, err := composables.UseUser(ctx)
	if err != nil || u == nil {
		return nil
	}

	filtered := make([]*QuickLink, 0, len(ql.items))
	for _, link := range ql.items {
		if access.CanAccess(u, types.Section{Permissions: link.permissions}) {
			filtered = append(filtered, link)
		}
	}
	return filtered
}
