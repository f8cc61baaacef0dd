package modules

import (
	"github.com/fieldsuite/fieldsuite/modules/bichat"
	"github.com/fieldsuite/fieldsuite/modules/communication"
	"github.com/fieldsuite/fieldsuite/modules/core"
	"github.com/fieldsuite/fieldsuite/modules/crm"
	"github.com/fieldsuite/fieldsuite/modules/finance"
	"github.com/fieldsuite/fieldsuite/modules/hrm"
	"github.com/fieldsuite/fieldsuite/modules/jobs"
	"github.com/fieldsuite/fieldsuite/modules/reporting"
	"github.com/fieldsuite/fieldsuite/pkg/application"
)

// BuiltInModules is the registration order; sidebar groups follow it.
var BuiltInModules = []application.Module{
	core.NewModule(),
	crm.NewModule(),
	jobs.NewModule(),
	finance.NewModule(),
	hrm.NewModule(),
	bichat.NewModule(),
	reporting.NewModule(),
	communication.NewModule(),
}

func Load(app application.Application, mods ...application.Module) error {
	for _, module := range mods {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
