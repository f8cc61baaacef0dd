package hrm

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/permission"
	"github.com/fieldsuite/fieldsuite/modules/core/permissions"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

var TeamSection = types.Section{
	ID:          "team",
	Label:       "NavigationLinks.Team",
	Icon:        icons.UsersThree(icons.Props{Size: "20"}),
	Permissions: []*permission.Permission{permissions.TeamRead, permissions.TeamManage},
}

var TeamGroup = types.Group{
	ID:         "team",
	Label:      "Groups.Team",
	Icon:       icons.UsersThree(icons.Props{Size: "16"}),
	SectionIDs: []string{"team"},
}
