package crm

import (
	"embed"

	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/crm/presentation/views"
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
	return "crm"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterGroups(CustomerGroup)
	app.RegisterSection(CustomersSection, views.Customers)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(icons.AddressBook(icons.Props{Size: "20"}), CustomersSection.Label, "/customers").
			RequirePermissions(CustomersSection.Permissions...),
	)
	return nil
}
