// Package sidebar owns the navigation panel's own UI state: the collapse
// flag, the set of expanded groups and the active search filter. Collapse
// and open groups persist; the search term is session-only.
package sidebar

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fieldsuite/fieldsuite/pkg/eventbus"
	"github.com/fieldsuite/fieldsuite/pkg/shell/navigation"
	"github.com/fieldsuite/fieldsuite/pkg/shell/registry"
	"github.com/fieldsuite/fieldsuite/pkg/shell/uistate"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

// CollapseChangedEvent carries no payload; consumers re-read the persisted
// value themselves. Toggle buttons in the header and the sidebar itself are
// not wired to each other, the bus is how they converge.
type CollapseChangedEvent struct{}

type Controller struct {
	membership []types.Group
	store      uistate.Store
	bus        eventbus.EventBus
	log        *logrus.Logger

	collapsed  bool
	openGroups []types.GroupID
	searchTerm string
}

func NewController(membership []types.Group, store uistate.Store, bus eventbus.EventBus, log *logrus.Logger) *Controller {
	c := &Controller{
		membership: membership,
		store:      store,
		bus:        bus,
		log:        log,
	}
	c.restore()
	if bus != nil {
		bus.Subscribe(func(e *navigation.SectionChangedEvent) {
			c.ensureGroupOpenFor(e.SectionID)
		})
	}
	return c
}

// restore loads persisted state, treating anything that fails to decode as
// absent. Defaults: not collapsed, only the defaultOpen groups expanded.
func (c *Controller) restore() {
	c.collapsed = false
	var collapsed bool
	if c.store.Get(uistate.KeySidebarCollapsed, &collapsed) {
		c.collapsed = collapsed
	}

	var persisted []types.GroupID
	if c.store.Get(uistate.KeySidebarOpenGroups, &persisted) {
		c.openGroups = c.knownOnly(persisted)
		return
	}
	for _, g := range c.membership {
		if g.DefaultOpen {
			c.openGroups = append(c.openGroups, g.ID)
		}
	}
}

func (c *Controller) knownOnly(ids []types.GroupID) []types.GroupID {
	known := make(map[types.GroupID]bool, len(c.membership))
	for _, g := range c.membership {
		known[g.ID] = true
	}
	out := make([]types.GroupID, 0, len(ids))
	for _, id := range ids {
		if known[id] {
			out = append(out, id)
		}
	}
	return out
}

func (c *Controller) IsCollapsed() bool {
	return c.collapsed
}

func (c *Controller) ToggleCollapse() {
	c.collapsed = !c.collapsed
	c.store.Set(uistate.KeySidebarCollapsed, c.collapsed)
	if c.bus != nil {
		c.bus.Publish(&CollapseChangedEvent{})
	}
}

func (c *Controller) OpenGroups() []types.GroupID {
	out := make([]types.GroupID, len(c.openGroups))
	copy(out, c.openGroups)
	return out
}

func (c *Controller) IsGroupOpen(id types.GroupID) bool {
	for _, g := range c.openGroups {
		if g == id {
			return true
		}
	}
	return false
}

func (c *Controller) ToggleGroup(id types.GroupID) {
	if c.IsGroupOpen(id) {
		filtered := c.openGroups[:0]
		for _, g := range c.openGroups {
			if g != id {
				filtered = append(filtered, g)
			}
		}
		c.openGroups = filtered
	} else {
		c.openGroups = append(c.openGroups, id)
	}
	c.store.Set(uistate.KeySidebarOpenGroups, c.openGroups)
}

func (c *Controller) SearchTerm() string {
	return c.searchTerm
}

func (c *Controller) SetSearchTerm(term string) {
	c.searchTerm = term
}

// ensureGroupOpenFor keeps the invariant that the group owning the active
// section is expanded. Groups are only ever added here, never auto-closed.
func (c *Controller) ensureGroupOpenFor(sectionID string) {
	owner, ok := registry.GroupOwning(c.membership, sectionID)
	if !ok || c.IsGroupOpen(owner) {
		return
	}
	c.openGroups = append(c.openGroups, owner)
	c.store.Set(uistate.KeySidebarOpenGroups, c.openGroups)
}

// FilterGroups returns groups whose sections' labels contain term
// case-insensitively, dropping groups left empty. labelFor resolves a
// section id to its display label. An empty term returns groups unchanged.
func FilterGroups(groups []types.Group, labelFor func(sectionID string) string, term string) []types.Group {
	if term == "" {
		return groups
	}
	needle := strings.ToLower(term)

	out := make([]types.Group, 0, len(groups))
	for _, g := range groups {
		ids := make([]string, 0, len(g.SectionIDs))
		for _, id := range g.SectionIDs {
			if strings.Contains(strings.ToLower(labelFor(id)), needle) {
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

// FilteredGroups applies the controller's current search term.
func (c *Controller) FilteredGroups(groups []types.Group, labelFor func(sectionID string) string) []types.Group {
	return FilterGroups(groups, labelFor, c.searchTerm)
}
