package navigation

import (
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsuite/fieldsuite/pkg/eventbus"
	"github.com/fieldsuite/fieldsuite/pkg/logging"
	"github.com/fieldsuite/fieldsuite/pkg/shell/registry"
	"github.com/fieldsuite/fieldsuite/pkg/shell/uistate"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

func testRegistry(ids ...string) *registry.Registry {
	r := registry.New()
	for _, id := range ids {
		r.Register(types.Section{ID: id}, func(ctx context.Context) (templ.Component, error) {
			return templ.NopComponent, nil
		})
	}
	return r
}

func newTestController(store uistate.Store, ids ...string) *Controller {
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))
	return NewController(testRegistry(ids...), store, bus, logging.ConsoleLogger(logrus.PanicLevel))
}

func TestPathMapping(t *testing.T) {
	assert.Equal(t, "/", PathFor("home"))
	assert.Equal(t, "/invoices", PathFor("invoices"))
	assert.Equal(t, "home", SectionFor("/"))
	assert.Equal(t, "invoices", SectionFor("/invoices"))
}

func TestSetActiveSection_ForwardNavigationPushesOnce(t *testing.T) {
	c := newTestController(uistate.NewMemoryStore(), "invoices", "jobs")
	require.Equal(t, "home", c.Active())
	require.Equal(t, 1, c.History().Len())

	c.SetActiveSection("invoices")

	assert.Equal(t, "invoices", c.Active())
	assert.Equal(t, 2, c.History().Len())
	assert.Equal(t, "/invoices", c.History().Current())
}

func TestSetActiveSection_DoubleClickDoesNotDoublePush(t *testing.T) {
	c := newTestController(uistate.NewMemoryStore(), "invoices")

	c.SetActiveSection("invoices")
	c.SetActiveSection("invoices")

	assert.Equal(t, 2, c.History().Len())
}

func TestSetActiveSection_UnknownFallsBackToHome(t *testing.T) {
	c := newTestController(uistate.NewMemoryStore(), "invoices")
	c.SetActiveSection("invoices")

	c.SetActiveSection("no-such-section")

	assert.Equal(t, "home", c.Active())
}

func TestOnHistoryNavigation_BackSetsWithoutPush(t *testing.T) {
	c := newTestController(uistate.NewMemoryStore(), "invoices")
	c.SetActiveSection("invoices")
	require.Equal(t, 2, c.History().Len())

	// Browser back: the stack already moved, the controller only follows.
	path, ok := c.History().Back()
	require.True(t, ok)
	c.OnHistoryNavigation(path)

	assert.Equal(t, "home", c.Active())
	assert.Equal(t, 2, c.History().Len())
}

func TestOnHistoryNavigation_UnknownPathFallsBackToHome(t *testing.T) {
	c := newTestController(uistate.NewMemoryStore(), "invoices")
	c.SetActiveSection("invoices")

	c.OnHistoryNavigation("/stale-bookmark")

	assert.Equal(t, "home", c.Active())
	assert.Equal(t, 2, c.History().Len())
}

func TestRestoreOnMount_RoundTrip(t *testing.T) {
	store := uistate.NewMemoryStore()
	for _, id := range []string{"invoices", "jobs", "customers"} {
		c := newTestController(store, "invoices", "jobs", "customers")
		c.SetActiveSection(id)

		restored := newTestController(store, "invoices", "jobs", "customers")
		assert.Equal(t, id, restored.Active())
	}
}

func TestRestoreOnMount_InvalidPersistedValue(t *testing.T) {
	store := uistate.NewMemoryStore()
	store.Set(uistate.KeyActiveSection, "removed-section")

	c := newTestController(store, "invoices")

	assert.Equal(t, "home", c.Active())
}

func TestRestoreOnMount_CorruptPersistedValue(t *testing.T) {
	store := uistate.NewMemoryStore()
	uistate.Seed(store, uistate.KeyActiveSection, "{broken")

	c := newTestController(store, "invoices")

	assert.Equal(t, "home", c.Active())
}

func TestSectionChangedEventPublished(t *testing.T) {
	store := uistate.NewMemoryStore()
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))
	c := NewController(testRegistry("invoices"), store, bus, logging.ConsoleLogger(logrus.PanicLevel))

	var got []string
	bus.Subscribe(func(e *SectionChangedEvent) {
		got = append(got, e.SectionID)
	})

	c.SetActiveSection("invoices")
	c.OnHistoryNavigation("/")

	assert.Equal(t, []string{"invoices", "home"}, got)
}

func TestSidebarWidth(t *testing.T) {
	c := newTestController(uistate.NewMemoryStore())

	assert.Equal(t, defaultSidebarWidthPx, c.SidebarWidth())
	c.SetSidebarWidth(320)
	assert.Equal(t, 320, c.SidebarWidth())
	c.SetSidebarWidth(-1)
	assert.Equal(t, 320, c.SidebarWidth())
}
