package bichat

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/permission"
	"github.com/fieldsuite/fieldsuite/modules/core/permissions"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

var AssistantSection = types.Section{
	ID:          "assistant",
	Label:       "NavigationLinks.Assistant",
	Icon:        icons.Robot(icons.Props{Size: "20"}),
	Permissions: []*permission.Permission{permissions.AssistantUse},
}

var AIGroup = types.Group{
	ID:         "ai",
	Label:      "Groups.AI",
	Icon:       icons.Sparkle(icons.Props{Size: "16"}),
	SectionIDs: []string{"assistant"},
	Badge:      "Beta",
}
