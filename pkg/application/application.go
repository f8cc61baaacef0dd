package application

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"
	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/fieldsuite/fieldsuite/pkg/constants"
	"github.com/fieldsuite/fieldsuite/pkg/eventbus"
	"github.com/fieldsuite/fieldsuite/pkg/shell/registry"
	"github.com/fieldsuite/fieldsuite/pkg/spotlight"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

var ErrAppNotFound = errors.New("application not found in context")

// UseApp returns the application attached to the request context by the
// server middleware.
func UseApp(ctx context.Context) (Application, error) {
	app, ok := ctx.Value(constants.AppKey).(Application)
	if !ok {
		return nil, ErrAppNotFound
	}
	return app, nil
}

// Controller registers HTTP routes on the shared router.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module contributes sections, controllers and services to the application.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	Registry() *registry.Registry
	RegisterSection(section types.Section, producer registry.ViewProducer)
	RegisterUnderConstruction(section types.Section)
	RegisterGroups(groups ...types.Group)
	Membership() []types.Group
	// Sections returns every registered section with labels translated for
	// the given localizer, in registration order.
	Sections(localizer *i18n.Localizer) []types.Section

	RegisterControllers(controllers ...Controller)
	Controllers() []Controller
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	Middleware() []mux.MiddlewareFunc
	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}

	RegisterLocaleFiles(fs ...*embed.FS)
	Bundle() *i18n.Bundle
	GetSupportedLanguages() []string

	EventPublisher() eventbus.EventBus
	Spotlight() spotlight.Spotlight
	QuickLinks() *spotlight.QuickLinks
	Websocket() Huber
}

type ApplicationOptions struct {
	EventBus           eventbus.EventBus
	Logger             *logrus.Logger
	Bundle             *i18n.Bundle
	Huber              Huber
	SupportedLanguages []string
}

func LoadBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

func defaultSupportedLanguageCodes() []string {
	return []string{"en", "es"}
}

func New(opts *ApplicationOptions) Application {
	sl := spotlight.New()
	quickLinks := &spotlight.QuickLinks{}
	sl.Register(quickLinks)

	supportedLanguages := opts.SupportedLanguages
	if len(supportedLanguages) == 0 {
		supportedLanguages = defaultSupportedLanguageCodes()
	}

	return &application{
		registry:           registry.New(),
		eventPublisher:     opts.EventBus,
		websocket:          opts.Huber,
		controllers:        make(map[string]Controller),
		services:           make(map[reflect.Type]interface{}),
		quickLinks:         quickLinks,
		spotlight:          sl,
		bundle:             opts.Bundle,
		supportedLanguages: supportedLanguages,
	}
}

type application struct {
	registry           *registry.Registry
	membership         []types.Group
	eventPublisher     eventbus.EventBus
	websocket          Huber
	services           map[reflect.Type]interface{}
	controllers        map[string]Controller
	middleware         []mux.MiddlewareFunc
	bundle             *i18n.Bundle
	spotlight          spotlight.Spotlight
	quickLinks         *spotlight.QuickLinks
	supportedLanguages []string
}

func (app *application) Registry() *registry.Registry {
	return app.registry
}

func (app *application) RegisterSection(section types.Section, producer registry.ViewProducer) {
	app.registry.Register(section, producer)
}

func (app *application) RegisterUnderConstruction(section types.Section) {
	app.registry.RegisterUnderConstruction(section)
}

func (app *application) RegisterGroups(groups ...types.Group) {
	app.membership = append(app.membership, groups...)
}

func (app *application) Membership() []types.Group {
	out := make([]types.Group, len(app.membership))
	copy(out, app.membership)
	return out
}

func (app *application) Sections(localizer *i18n.Localizer) []types.Section {
	sections := app.registry.Sections()
	translated := make([]types.Section, 0, len(sections))
	for _, s := range sections {
		translated = append(translated, types.Section{
			ID: s.ID,
			Label: localizer.MustLocalize(&i18n.LocalizeConfig{
				MessageID: s.Label,
			}),
			Icon:        s.Icon,
			Permissions: s.Permissions,
		})
	}
	return translated
}

func (app *application) Spotlight() spotlight.Spotlight {
	return app.spotlight
}

func (app *application) QuickLinks() *spotlight.QuickLinks {
	return app.quickLinks
}

func (app *application) Websocket() Huber {
	return app.websocket
}

func (app *application) EventPublisher() eventbus.EventBus {
	return app.eventPublisher
}

func (app *application) Middleware() []mux.MiddlewareFunc {
	return app.middleware
}

func (app *application) Controllers() []Controller {
	controllers := make([]Controller, 0, len(app.controllers))
	for _, c := range app.controllers {
		controllers = append(controllers, c)
	}
	return controllers
}

func (app *application) RegisterControllers(controllers ...Controller) {
	for _, c := range controllers {
		app.controllers[c.Key()] = c
	}
}

func (app *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	app.middleware = append(app.middleware, middleware...)
}

func (app *application) RegisterLocaleFiles(fs ...*embed.FS) {
	for _, localeFs := range fs {
		files, err := listFiles(localeFs, ".")
		if err != nil {
			panic(err)
		}
		for _, file := range files {
			localeFile, err := localeFs.ReadFile(file)
			if err != nil {
				panic(err)
			}
			app.bundle.MustParseMessageFileBytes(localeFile, filepath.Base(file))
		}
	}
}

// RegisterServices registers services in the application by their type.
func (app *application) RegisterServices(services ...interface{}) {
	for _, service := range services {
		serviceType := reflect.TypeOf(service).Elem()
		app.services[serviceType] = service
	}
}

// Service retrieves a service by its type.
func (app *application) Service(service interface{}) interface{} {
	serviceType := reflect.TypeOf(service)
	svc, exists := app.services[serviceType]
	if !exists {
		panic(fmt.Sprintf("service %s not found", serviceType.Name()))
	}
	return svc
}

func (app *application) Bundle() *i18n.Bundle {
	return app.bundle
}

func (app *application) GetSupportedLanguages() []string {
	return app.supportedLanguages
}

func listFiles(fsys fs.FS, dir string) ([]string, error) {
	var fileList []string

	err := fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			fileList = append(fileList, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error reading directory %q: %w", dir, err)
	}

	return fileList, nil
}
