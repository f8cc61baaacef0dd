package jobs

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/permission"
	"github.com/fieldsuite/fieldsuite/modules/core/permissions"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

var JobsSection = types.Section{
	ID:          "jobs",
	Label:       "NavigationLinks.Jobs",
	Icon:        icons.Briefcase(icons.Props{Size: "20"}),
	Permissions: []*permission.Permission{permissions.JobRead, permissions.JobManage},
}

var ScheduleSection = types.Section{
	ID:          "schedule",
	Label:       "NavigationLinks.Schedule",
	Icon:        icons.CalendarBlank(icons.Props{Size: "20"}),
	Permissions: []*permission.Permission{permissions.JobRead},
}

var WorkGroup = types.Group{
	ID:          "work",
	Label:       "Groups.Work",
	Icon:        icons.Briefcase(icons.Props{Size: "16"}),
	SectionIDs:  []string{"jobs", "schedule"},
	DefaultOpen: true,
}
