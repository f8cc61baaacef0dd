package hrm

import (
	"embed"

	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/hrm/presentation/views"
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
	return "hrm"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterGroups(TeamGroup)
	app.RegisterSection(TeamSection, views.Team)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(icons.UsersThree(icons.Props{Size: "20"}), TeamSection.Label, "/team").
			RequirePermissions(TeamSection.Permissions...),
	)
	return nil
}
