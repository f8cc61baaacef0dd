package communication

import (
	"embed"

	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/communication/presentation/views"
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
	return "communication"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterGroups(CommunicationGroup)
	app.RegisterSection(InboxSection, views.Inbox)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(icons.Tray(icons.Props{Size: "20"}), InboxSection.Label, "/inbox").
			RequirePermissions(InboxSection.Permissions...),
	)
	return nil
}
