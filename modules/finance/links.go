package finance

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/permission"
	"github.com/fieldsuite/fieldsuite/modules/core/permissions"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

var EstimatesSection = types.Section{
	ID:          "estimates",
	Label:       "NavigationLinks.Estimates",
	Icon:        icons.FileText(icons.Props{Size: "20"}),
	Permissions: []*permission.Permission{permissions.EstimateRead, permissions.EstimateManage},
}

var InvoicesSection = types.Section{
	ID:          "invoices",
	Label:       "NavigationLinks.Invoices",
	Icon:        icons.Receipt(icons.Props{Size: "20"}),
	Permissions: []*permission.Permission{permissions.InvoiceRead, permissions.InvoiceManage},
}

var FinancialGroup = types.Group{
	ID:         "financial",
	Label:      "Groups.Financial",
	Icon:       icons.CurrencyDollar(icons.Props{Size: "16"}),
	SectionIDs: []string{"estimates", "invoices"},
}
