package server

import (
	"github.com/sirupsen/logrus"

	"github.com/fieldsuite/fieldsuite/modules/core"
	"github.com/fieldsuite/fieldsuite/modules/core/presentation/controllers"
	"github.com/fieldsuite/fieldsuite/modules/core/services"
	"github.com/fieldsuite/fieldsuite/pkg/application"
	"github.com/fieldsuite/fieldsuite/pkg/configuration"
	"github.com/fieldsuite/fieldsuite/pkg/constants"
	"github.com/fieldsuite/fieldsuite/pkg/metrics"
	"github.com/fieldsuite/fieldsuite/pkg/middleware"
	"github.com/fieldsuite/fieldsuite/pkg/server"
	"github.com/fieldsuite/fieldsuite/pkg/shell/composer"
	"github.com/fieldsuite/fieldsuite/pkg/shell/registry"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	conf := options.Configuration

	authService := app.Service(services.AuthService{}).(*services.AuthService)
	shellService := app.Service(services.ShellService{}).(*services.ShellService)

	app.RegisterMiddleware(
		middleware.WithLogger(options.Logger),
		middleware.TracedMiddleware("authorize"),
		middleware.Provide(constants.AppKey, app),
		middleware.Authorize(authService),
		middleware.TracedMiddleware("requestParams"),
		middleware.RequestParams(),
		middleware.WithLocalizer(app.Bundle()),
		middleware.NavSections(),
	)

	// The platform shell offers its own surface: tenant administration plus
	// workspace settings, landing on tenants. Everything else belongs to the
	// business shell.
	var businessSections, platformSections []types.Section
	for _, s := range app.Registry().Sections() {
		switch s.ID {
		case core.TenantsSection.ID:
			platformSections = append(platformSections, s)
		case core.SettingsSection.ID:
			businessSections = append(businessSections, s)
			platformSections = append(platformSections, s)
		default:
			businessSections = append(businessSections, s)
		}
	}

	comp := composer.New(composer.Options{
		Breakpoints: composer.Breakpoints{
			CompactWidthPx: conf.Sidebar.CompactWidthPx,
			TouchWidthPx:   conf.Sidebar.TouchWidthPx,
		},
		BusinessSections: businessSections,
		PlatformSections: platformSections,
		BusinessLanding:  registry.HomeSectionID,
		PlatformLanding:  core.TenantsSection.ID,
	})

	app.RegisterControllers(
		controllers.NewStaticController(),
		controllers.NewHealthController(),
		controllers.NewLoginController(authService, shellService),
		controllers.NewInviteController(),
		controllers.NewSpotlightController(app),
		controllers.NewWebsocketController(app.Websocket()),
		controllers.NewShellController(app, authService, shellService, comp),
	)
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}
	if conf.EnableDevEndpoints {
		app.RegisterControllers(controllers.NewDevSessionController(authService))
	}

	return server.NewHTTPServer(
		app,
		controllers.NotFound(),
		controllers.MethodNotAllowed(),
	), nil
}
