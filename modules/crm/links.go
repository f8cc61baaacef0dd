package crm

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/permission"
	"github.com/fieldsuite/fieldsuite/modules/core/permissions"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

var CustomersSection = types.Section{
	ID:          "customers",
	Label:       "NavigationLinks.Customers",
	Icon:        icons.AddressBook(icons.Props{Size: "20"}),
	Permissions: []*permission.Permission{permissions.CustomerRead, permissions.CustomerManage},
}

var CustomerGroup = types.Group{
	ID:          "customer",
	Label:       "Groups.Customers",
	Icon:        icons.Users(icons.Props{Size: "16"}),
	SectionIDs:  []string{"customers"},
	DefaultOpen: true,
}
