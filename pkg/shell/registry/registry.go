// Package registry maps stable section ids to lazily-materialized views.
// The registry is built once from the static tables each module declares at
// startup; lookups are plain map access and have no side effects.
package registry

import (
	"context"

	"github.com/a-h/templ"

	"github.com/fieldsuite/fieldsuite/pkg/types"
)

// HomeSectionID is the reserved synthetic id the shell falls back to
// whenever a navigation target fails validation.
const HomeSectionID = "home"

// ViewProducer is a deferred unit of renderable content bound to a section
// id. Materialization may block on the request context and may fail; the
// content-area boundary turns failures into an inline fallback.
type ViewProducer func(ctx context.Context) (templ.Component, error)

type Outcome int

const (
	// Found: the id resolves to a producer.
	Found Outcome = iota
	// NotFound: the id is unknown. This is a valid terminal outcome, not an
	// error; the content area renders an explicit placeholder for it.
	NotFound
	// UnderConstruction: the id is declared but intentionally has no view
	// yet. Rendered as a distinct placeholder.
	UnderConstruction
)

type Registry struct {
	sections          []types.Section
	index             map[string]int
	producers         map[string]ViewProducer
	underConstruction map[string]bool
}

func New() *Registry {
	return &Registry{
		index:             make(map[string]int),
		producers:         make(map[string]ViewProducer),
		underConstruction: make(map[string]bool),
	}
}

// Register adds a section with its view producer. Registration order is the
// order sections appear in menus; it is never re-sorted.
func (r *Registry) Register(section types.Section, producer ViewProducer) {
	if _, exists := r.index[section.ID]; exists {
		return
	}
	r.index[section.ID] = len(r.sections)
	r.sections = append(r.sections, section)
	r.producers[section.ID] = producer
}

// RegisterUnderConstruction declares a known section that intentionally has
// no view yet.
func (r *Registry) RegisterUnderConstruction(section types.Section) {
	if _, exists := r.index[section.ID]; exists {
		return
	}
	r.index[section.ID] = len(r.sections)
	r.sections = append(r.sections, section)
	r.underConstruction[section.ID] = true
}

func (r *Registry) Resolve(id string) (ViewProducer, Outcome) {
	if r.underConstruction[id] {
		return nil, UnderConstruction
	}
	producer, ok := r.producers[id]
	if !ok {
		return nil, NotFound
	}
	return producer, Found
}

// IsKnown reports whether id is a valid navigation target: a registered
// section (implemented or under construction) or the reserved home id.
func (r *Registry) IsKnown(id string) bool {
	if id == HomeSectionID {
		return true
	}
	_, ok := r.index[id]
	return ok
}

func (r *Registry) Lookup(id string) (types.Section, bool) {
	i, ok := r.index[id]
	if !ok {
		return types.Section{}, false
	}
	return r.sections[i], true
}

// Sections returns every registered section in registration order.
func (r *Registry) Sections() []types.Section {
	out := make([]types.Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// GroupsFor filters each group's fixed id list against the available flat
// sections, dropping groups left with no members. Order of groups and of
// sections within a group is the order of the static configuration.
func GroupsFor(sections []types.Section, membership []types.Group) []types.Group {
	available := make(map[string]bool, len(sections))
	for _, s := range sections {
		available[s.ID] = true
	}

	out := make([]types.Group, 0, len(membership))
	for _, g := range membership {
		ids := make([]string, 0, len(g.SectionIDs))
		for _, id := range g.SectionIDs {
			if available[id] {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			continue
		}
		filtered := g
		filtered.SectionIDs = ids
		out = append(out, filtered)
	}
	return out
}

// GroupOwning returns the id of the group claiming sectionID, if any.
func GroupOwning(membership []types.Group, sectionID string) (types.GroupID, bool) {
	for _, g := range membership {
		if g.Contains(sectionID) {
			return g.ID, true
		}
	}
	return "", false
}
