package communication

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/permission"
	"github.com/fieldsuite/fieldsuite/modules/core/permissions"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

var InboxSection = types.Section{
	ID:          "inbox",
	Label:       "NavigationLinks.Inbox",
	Icon:        icons.Tray(icons.Props{Size: "20"}),
	Permissions: []*permission.Permission{permissions.InboxRead},
}

var CommunicationGroup = types.Group{
	ID:         "communication",
	Label:      "Groups.Communication",
	Icon:       icons.ChatCircleDots(icons.Props{Size: "16"}),
	SectionIDs: []string{"inbox"},
	Badge:      "3",
}
