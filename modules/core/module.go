package core

import (
	"embed"

	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/core/presentation/views"
	"github.com/fieldsuite/fieldsuite/modules/core/services"
	"github.com/fieldsuite/fieldsuite/pkg/application"
	"github.com/fieldsuite/fieldsuite/pkg/configuration"
	"github.com/fieldsuite/fieldsuite/pkg/spotlight"
)

//go:embed presentation/locales/*.json
var LocaleFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "core"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)

	conf := configuration.Use()
	app.RegisterServices(
		services.NewAuthService(),
		services.NewShellService(app, conf.Logger()),
	)

	app.RegisterGroups(OverviewGroup, AdminGroup, PlatformGroup)
	app.RegisterSection(DashboardSection, views.Dashboard)
	app.RegisterSection(SettingsSection, views.Settings)
	app.RegisterSection(TenantsSection, views.Tenants)
	app.RegisterUnderConstruction(AutomationsSection)

	app.QuickLinks().Add(
		spotlight.NewQuickLink(icons.Gauge(icons.Props{Size: "20"}), DashboardSection.Label, "/"),
		spotlight.NewQuickLink(icons.Gear(icons.Props{Size: "20"}), SettingsSection.Label, "/settings").
			RequirePermissions(SettingsSection.Permissions...),
	)
	return nil
}
