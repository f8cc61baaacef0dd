package reporting

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/permission"
	"github.com/fieldsuite/fieldsuite/modules/core/permissions"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

var ReportsSection = types.Section{
	ID:          "reports",
	Label:       "NavigationLinks.Reports",
	Icon:        icons.ChartBar(icons.Props{Size: "20"}),
	Permissions: []*permission.Permission{permissions.ReportView},
}

var ReportingGroup = types.Group{
	ID:         "reporting",
	Label:      "Groups.Reporting",
	Icon:       icons.ChartBar(icons.Props{Size: "16"}),
	SectionIDs: []string{"reports"},
}
