package finance

import (
	"embed"

	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/finance/presentation/views"
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
	return "finance"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterGroups(FinancialGroup)
	app.RegisterSection(EstimatesSection, views.Estimates)
	app.RegisterSection(InvoicesSection, views.Invoices)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(icons.FileText(icons.Props{Size: "20"}), EstimatesSection.Label, "/estimates").
			RequirePermissions(EstimatesSection.Permissions...),
		spotlight.NewQuickLink(icons.Receipt(icons.Props{Size: "20"}), InvoicesSection.Label, "/invoices").
			RequirePermissions(InvoicesSection.Permissions...),
	)
	return nil
}
