package sidebar

import (
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsuite/fieldsuite/pkg/eventbus"
	"github.com/fieldsuite/fieldsuite/pkg/logging"
	"github.com/fieldsuite/fieldsuite/pkg/shell/navigation"
	"github.com/fieldsuite/fieldsuite/pkg/shell/registry"
	"github.com/fieldsuite/fieldsuite/pkg/shell/uistate"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

var testMembership = []types.Group{
	{ID: "customers", SectionIDs: []string{"customers"}, DefaultOpen: true},
	{ID: "jobs", SectionIDs: []string{"jobs", "schedule"}},
	{ID: "financial", SectionIDs: []string{"estimates", "invoices"}},
}

func testLabels(id string) string {
	labels := map[string]string{
		"customers": "Customers",
		"jobs":      "Jobs",
		"schedule":  "Schedule",
		"estimates": "Estimates",
		"invoices":  "Invoices",
	}
	return labels[id]
}

func quietLogger() *logrus.Logger {
	return logging.ConsoleLogger(logrus.PanicLevel)
}

func newTestController(store uistate.Store) (*Controller, eventbus.EventBus) {
	bus := eventbus.NewEventPublisher(quietLogger())
	return NewController(testMembership, store, bus, quietLogger()), bus
}

func TestDefaults(t *testing.T) {
	c, _ := newTestController(uistate.NewMemoryStore())

	assert.False(t, c.IsCollapsed())
	assert.Equal(t, []types.GroupID{"customers"}, c.OpenGroups())
	assert.Empty(t, c.SearchTerm())
}

func TestToggleCollapse_PersistsAndBroadcasts(t *testing.T) {
	store := uistate.NewMemoryStore()
	c, bus := newTestController(store)

	notified := 0
	bus.Subscribe(func(e *CollapseChangedEvent) {
		notified++
	})

	c.ToggleCollapse()

	assert.True(t, c.IsCollapsed())
	assert.Equal(t, 1, notified)

	var persisted bool
	require.True(t, store.Get(uistate.KeySidebarCollapsed, &persisted))
	assert.True(t, persisted)

	// A second independently-mounted consumer converges via the store.
	other, _ := newTestController(store)
	assert.True(t, other.IsCollapsed())
}

func TestToggleGroup_Idempotence(t *testing.T) {
	c, _ := newTestController(uistate.NewMemoryStore())
	before := c.OpenGroups()

	c.ToggleGroup("financial")
	assert.True(t, c.IsGroupOpen("financial"))

	c.ToggleGroup("financial")
	assert.Equal(t, before, c.OpenGroups())
}

func TestOpenGroups_Persisted(t *testing.T) {
	store := uistate.NewMemoryStore()
	c, _ := newTestController(store)
	c.ToggleGroup("jobs")

	restored, _ := newTestController(store)
	assert.True(t, restored.IsGroupOpen("customers"))
	assert.True(t, restored.IsGroupOpen("jobs"))
}

func TestCorruptOpenGroupsFallsBackToDefaults(t *testing.T) {
	store := uistate.NewMemoryStore()
	uistate.Seed(store, uistate.KeySidebarOpenGroups, `"not json"`)
	uistate.Seed(store, uistate.KeySidebarCollapsed, `{broken`)

	c, _ := newTestController(store)

	assert.False(t, c.IsCollapsed())
	assert.Equal(t, []types.GroupID{"customers"}, c.OpenGroups())
}

func TestPersistedUnknownGroupsDropped(t *testing.T) {
	store := uistate.NewMemoryStore()
	store.Set(uistate.KeySidebarOpenGroups, []string{"financial", "retired-group"})

	c, _ := newTestController(store)

	assert.Equal(t, []types.GroupID{"financial"}, c.OpenGroups())
}

func TestActiveSectionAutoOpensOwningGroup(t *testing.T) {
	store := uistate.NewMemoryStore()
	bus := eventbus.NewEventPublisher(quietLogger())
	c := NewController(testMembership, store, bus, quietLogger())
	require.False(t, c.IsGroupOpen("financial"))

	reg := registry.New()
	for _, id := range []string{"customers", "jobs", "schedule", "estimates", "invoices"} {
		reg.Register(types.Section{ID: id}, func(ctx context.Context) (templ.Component, error) {
			return templ.NopComponent, nil
		})
	}
	nav := navigation.NewController(reg, store, bus, quietLogger())

	nav.SetActiveSection("invoices")
	assert.True(t, c.IsGroupOpen("financial"))

	// Navigating away never auto-closes a group.
	nav.SetActiveSection("jobs")
	assert.True(t, c.IsGroupOpen("financial"))
	assert.True(t, c.IsGroupOpen("jobs"))
}

func TestFilterGroups(t *testing.T) {
	groups := []types.Group{
		{ID: "financial", SectionIDs: []string{"estimates", "invoices"}},
		{ID: "jobs", SectionIDs: []string{"jobs", "schedule"}},
	}

	filtered := FilterGroups(groups, testLabels, "invo")

	require.Len(t, filtered, 1)
	assert.Equal(t, types.GroupID("financial"), filtered[0].ID)
	assert.Equal(t, []string{"invoices"}, filtered[0].SectionIDs)
}

func TestFilterGroups_CaseInsensitive(t *testing.T) {
	groups := []types.Group{
		{ID: "jobs", SectionIDs: []string{"jobs", "schedule"}},
	}

	filtered := FilterGroups(groups, testLabels, "SCHED")

	require.Len(t, filtered, 1)
	assert.Equal(t, []string{"schedule"}, filtered[0].SectionIDs)
}

func TestFilterGroups_EmptyTermReturnsAll(t *testing.T) {
	groups := []types.Group{
		{ID: "jobs", SectionIDs: []string{"jobs", "schedule"}},
	}

	assert.Equal(t, groups, FilterGroups(groups, testLabels, ""))
}

func TestSearchTermIsEphemeral(t *testing.T) {
	store := uistate.NewMemoryStore()
	c, _ := newTestController(store)
	c.SetSearchTerm("invo")
	assert.Equal(t, "invo", c.SearchTerm())

	restored, _ := newTestController(store)
	assert.Empty(t, restored.SearchTerm())
}
