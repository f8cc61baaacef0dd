package reporting

import (
	"embed"

	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/reporting/presentation/views"
	"github.com/fieldsuite/fieldsuite/pkg/application"
	"github.com/fieldsuite/fieldsuite/pkg/spotlight"
)

//go:embed presentation/locales/*.json
var LocaleFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "reporting"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterGroups(ReportingGroup)
	app.RegisterSection(ReportsSection, views.Reports)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(icons.ChartBar(icons.Props{Size: "20"}), ReportsSection.Label, "/reports").
			RequirePermissions(ReportsSection.Permissions...),
	)
	return nil
}
