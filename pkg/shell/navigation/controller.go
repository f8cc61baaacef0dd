// Package navigation owns the single source of truth for the active
// section and keeps it consistent with the history stack and the persisted
// last-active-section key.
package navigation

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fieldsuite/fieldsuite/pkg/eventbus"
	"github.com/fieldsuite/fieldsuite/pkg/shell/history"
	"github.com/fieldsuite/fieldsuite/pkg/shell/registry"
	"github.com/fieldsuite/fieldsuite/pkg/shell/uistate"
)

const defaultSidebarWidthPx = 240

// SectionChangedEvent is published on every active-section change, from any
// entry point. Subscribers re-read controller state; the payload only names
// the new section.
type SectionChangedEvent struct {
	SectionID string
}

type Controller struct {
	registry *registry.Registry
	store    uistate.Store
	stack    *history.Stack
	bus      eventbus.EventBus
	log      *logrus.Logger

	active         string
	sidebarWidthPx int
}

func NewController(reg *registry.Registry, store uistate.Store, bus eventbus.EventBus, log *logrus.Logger) *Controller {
	c := &Controller{
		registry:       reg,
		store:          store,
		bus:            bus,
		log:            log,
		active:         registry.HomeSectionID,
		sidebarWidthPx: defaultSidebarWidthPx,
	}
	c.RestoreOnMount()
	c.stack = history.NewStack(PathFor(c.active))
	return c
}

// PathFor derives the history path for a section id: home maps to the root
// path, everything else to "/" + id.
func PathFor(id string) string {
	if id == registry.HomeSectionID {
		return "/"
	}
	return "/" + id
}

// SectionFor is the inverse of PathFor.
func SectionFor(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return registry.HomeSectionID
	}
	return trimmed
}

func (c *Controller) Active() string {
	return c.active
}

func (c *Controller) History() *history.Stack {
	return c.stack
}

func (c *Controller) SidebarWidth() int {
	return c.sidebarWidthPx
}

func (c *Controller) SetSidebarWidth(px int) {
	if px > 0 {
		c.sidebarWidthPx = px
	}
}

// SetActiveSection handles forward navigation: validate, set, push exactly
// one history entry, persist. An unknown id silently becomes home; a
// repeated id is a no-op so a double click cannot double-push.
func (c *Controller) SetActiveSection(id string) {
	id = c.validated(id)
	if id == c.active {
		return
	}
	c.active = id
	c.stack.Push(PathFor(id))
	c.store.Set(uistate.KeyActiveSection, id)
	c.publish()
}

// OnHistoryNavigation handles the browser's back/forward signal. It sets
// state from the path without pushing a new entry; pushing here would feed
// the loop that produced the signal.
func (c *Controller) OnHistoryNavigation(path string) {
	id := c.validated(SectionFor(path))
	if id == c.active {
		return
	}
	c.active = id
	c.store.Set(uistate.KeyActiveSection, id)
	c.publish()
}

// RestoreOnMount initializes the active section from the persisted
// last-active key, falling back to home when the key is absent or names an
// unknown section.
func (c *Controller) RestoreOnMount() {
	var persisted string
	if !c.store.Get(uistate.KeyActiveSection, &persisted) {
		c.active = registry.HomeSectionID
		return
	}
	c.active = c.validated(persisted)
}

func (c *Controller) validated(id string) string {
	if c.registry.IsKnown(id) {
		return id
	}
	if c.log != nil {
		c.log.WithField("section", id).Debug("navigation: unknown section, falling back to home")
	}
	return registry.HomeSectionID
}

func (c *Controller) publish() {
	if c.bus != nil {
		c.bus.Publish(&SectionChangedEvent{SectionID: c.active})
	}
}
