package services

import (
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/fieldsuite/fieldsuite/pkg/application"
	"github.com/fieldsuite/fieldsuite/pkg/configuration"
	"github.com/fieldsuite/fieldsuite/pkg/eventbus"
	"github.com/fieldsuite/fieldsuite/pkg/shell/navigation"
	"github.com/fieldsuite/fieldsuite/pkg/shell/registry"
	"github.com/fieldsuite/fieldsuite/pkg/shell/sidebar"
	"github.com/fieldsuite/fieldsuite/pkg/shell/uistate"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

// Instance is the live shell state of one session: a navigation controller,
// a sidebar controller, the event bus wiring them together, and the
// persisted key/value store they both write through. Instances survive
// across requests so history and ephemeral state behave like a long-lived
// client.
//
// One Instance is shared by every request goroutine of the session, and
// neither controller synchronizes itself. Callers hold Lock across a full
// state transition, from the first controller call to the last read that
// renders from it.
type Instance struct {
	mu sync.Mutex

	Nav     *navigation.Controller
	Sidebar *sidebar.Controller
	Bus     eventbus.EventBus
	Store   uistate.Store
}

func (i *Instance) Lock()   { i.mu.Lock() }
func (i *Instance) Unlock() { i.mu.Unlock() }

// ShellService owns one shell Instance per session token. State persisted
// through the store survives restarts; everything else is rebuilt on the
// first request after eviction.
type ShellService struct {
	app application.Application
	log *logrus.Logger

	mu        sync.Mutex
	instances map[string]*Instance

	// newStore is swappable so tests run against the memory store.
	newStore func(token string) uistate.Store
}

func NewShellService(app application.Application, log *logrus.Logger) *ShellService {
	conf := configuration.Use()
	return &ShellService{
		app:       app,
		log:       log,
		instances: make(map[string]*Instance),
		newStore: func(token string) uistate.Store {
			return uistate.NewFileStore(filepath.Join(conf.UIStatePath, token+".json"), log)
		},
	}
}

// Instance returns the session's shell, building it on first use. The
// sidebar controller republishes collapse changes to the session's
// websocket channel so every mounted shell converges.
func (s *ShellService) Instance(token string) *Instance {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inst, ok := s.instances[token]; ok {
		return inst
	}
	bus := eventbus.NewEventPublisher(s.log)
	store := s.newStore(token)
	inst := &Instance{
		Nav:     navigation.NewController(s.app.Registry(), store, bus, s.log),
		Sidebar: sidebar.NewController(s.app.Membership(), store, bus, s.log),
		Bus:     bus,
		Store:   store,
	}
	bus.Subscribe(func(e *sidebar.CollapseChangedEvent) {
		s.app.Websocket().Broadcast(
			application.SessionChannelPrefix+token,
			application.SidebarStateMessage,
		)
	})
	s.instances[token] = inst
	return inst
}

// Evict drops the session's shell. Called on logout; persisted state stays
// on disk and is restored if the same session key is ever rebuilt.
func (s *ShellService) Evict(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inst, ok := s.instances[token]; ok {
		inst.Bus.Clear()
		delete(s.instances, token)
	}
}

// GroupsFor exposes the registry's group assembly for the session's view.
func (s *ShellService) GroupsFor(sections []types.Section) []types.Group {
	return registry.GroupsFor(sections, s.app.Membership())
}
