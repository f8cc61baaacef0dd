package bichat

import (
	"embed"

	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/bichat/presentation/views"
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
	return "bichat"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterGroups(AIGroup)
	app.RegisterSection(AssistantSection, views.Assistant)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(icons.Robot(icons.Props{Size: "20"}), AssistantSection.Label, "/assistant").
			RequirePermissions(AssistantSection.Permissions...),
	)
	return nil
}
