package jobs

import (
	"embed"

	icons "github.com/iota-uz/icons/phosphor"

	"github.com/fieldsuite/fieldsuite/modules/jobs/presentation/views"
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
	return "jobs"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterGroups(WorkGroup)
	app.RegisterSection(JobsSection, views.Jobs)
	app.RegisterSection(ScheduleSection, views.Schedule)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(icons.Briefcase(icons.Props{Size: "20"}), JobsSection.Label, "/jobs").
			RequirePermissions(JobsSection.Permissions...),
		spotlight.NewQuickLink(icons.CalendarBlank(icons.Props{Size: "20"}), ScheduleSection.Label, "/schedule").
			RequirePermissions(ScheduleSection.Permissions...),
	)
	return nil
}
