package core

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/permission"
	"github.com/fieldsuite/fieldsuite/modules/core/permissions"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

var DashboardSection = types.Section{
	ID:    "home",
	Label: "NavigationLinks.Dashboard",
	Icon:  icons.Gauge(icons.Props{Size: "20"}),
}

var SettingsSection = types.Section{
	ID:          "settings",
	Label:       "NavigationLinks.Settings",
	Icon:        icons.Gear(icons.Props{Size: "20"}),
	Permissions: []*permission.Permission{permissions.SettingsManage},
}

var AutomationsSection = types.Section{
	ID:          "automations",
	Label:       "NavigationLinks.Automations",
	Icon:        icons.Lightning(icons.Props{Size: "20"}),
	Permissions: []*permission.Permission{permissions.SettingsManage},
}

// TenantsSection is offered by the platform shell only; the business shell
// never lists it.
var TenantsSection = types.Section{
	ID:          "tenants",
	Label:       "NavigationLinks.Tenants",
	Icon:        icons.Buildings(icons.Props{Size: "20"}),
	Permissions: []*permission.Permission{permissions.SettingsManage},
}

var OverviewGroup = types.Group{
	ID:          "overview",
	Label:       "Groups.Overview",
	Icon:        icons.House(icons.Props{Size: "16"}),
	SectionIDs:  []string{"home"},
	DefaultOpen: true,
}

var AdminGroup = types.Group{
	ID:         "admin",
	Label:      "Groups.Admin",
	Icon:       icons.Wrench(icons.Props{Size: "16"}),
	SectionIDs: []string{"settings", "automations"},
}

var PlatformGroup = types.Group{
	ID:          "platform",
	Label:       "Groups.Platform",
	Icon:        icons.Buildings(icons.Props{Size: "16"}),
	SectionIDs:  []string{"tenants"},
	DefaultOpen: true,
}
