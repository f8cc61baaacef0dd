package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/fieldsuite/fieldsuite/modules/core/presentation/templates/layouts"
	"github.com/fieldsuite/fieldsuite/modules/core/services"
	"github.com/fieldsuite/fieldsuite/pkg/application"
	"github.com/fieldsuite/fieldsuite/pkg/composables"
	"github.com/fieldsuite/fieldsuite/pkg/intl"
	"github.com/fieldsuite/fieldsuite/pkg/metrics"
	"github.com/fieldsuite/fieldsuite/pkg/middleware"
	"github.com/fieldsuite/fieldsuite/pkg/shell/access"
	"github.com/fieldsuite/fieldsuite/pkg/shell/composer"
	"github.com/fieldsuite/fieldsuite/pkg/shell/navigation"
	"github.com/fieldsuite/fieldsuite/pkg/shell/registry"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

// HistoryNavigationHeader distinguishes back/forward traffic from ordinary
// section activation. History arrivals set the active section without
// pushing a new entry.
const HistoryNavigationHeader = "X-History-Navigation"

// reservedSegments are top-level path segments owned by other controllers.
// The shell matcher refuses them so registration order never decides who
// serves /login.
var reservedSegments = map[string]bool{
	"login":         true,
	"logout":        true,
	"ws":            true,
	"dev":           true,
	"shell":         true,
	"spotlight":     true,
	"health":        true,
	"debug":         true,
	"metrics":       true,
	"accept-invite": true,
	"static":        true,
}

type ShellController struct {
	app      application.Application
	auth     *services.AuthService
	shell    *services.ShellService
	composer *composer.Composer
}

func NewShellController(app application.Application, auth *services.AuthService, shell *services.ShellService, comp *composer.Composer) application.Controller {
	return &ShellController{app: app, auth: auth, shell: shell, composer: comp}
}

func (c *ShellController) Key() string {
	return "/"
}

func (c *ShellController) Register(r *mux.Router) {
	r.MatcherFunc(c.matchSection).Methods(http.MethodGet).HandlerFunc(c.section)

	fragments := r.PathPrefix("/shell/sidebar").Subrouter()
	fragments.HandleFunc("", c.sidebar).Methods(http.MethodGet)
	fragments.HandleFunc("/collapse", c.toggleCollapse).Methods(http.MethodPost)
	fragments.HandleFunc("/groups/{id}", c.toggleGroup).Methods(http.MethodPost)
}

// matchSection accepts the root, platform routes and any single-segment
// path that is not claimed by another controller. Section ids are resolved
// later; unknown ids still match and recover to the landing section.
func (c *ShellController) matchSection(r *http.Request, _ *mux.RouteMatch) bool {
	path := r.URL.Path
	if path == "/" || strings.HasPrefix(path, composer.PlatformRoutePrefix) {
		return true
	}
	trimmed := strings.Trim(path, "/")
	if trimmed == "" || strings.Contains(trimmed, "/") {
		return false
	}
	return !reservedSegments[trimmed]
}

func (c *ShellController) section(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := composables.UseSession(ctx)
	if err != nil {
		metrics.GateDecisions.WithLabelValues(access.Unauthenticated.String()).Inc()
		c.renderLogin(w, r)
		return
	}

	kind := composer.ParseSessionKind(c.auth.ConsumeMarker(sess.Token))
	out := c.composer.Compose(composer.Input{
		RoutePrefix: r.URL.Path,
		Kind:        kind,
		Viewport:    viewportFrom(r),
	})
	if out.RedirectToAuth {
		http.Redirect(w, r, "/login?return_to="+r.URL.Path, http.StatusSeeOther)
		return
	}

	inst := c.shell.Instance(sess.Token)
	inst.Lock()
	defer inst.Unlock()

	sectionPath := strings.TrimPrefix(r.URL.Path, composer.PlatformRoutePrefix)
	if sectionPath == "" {
		sectionPath = "/"
	}
	target := navigation.SectionFor(sectionPath)
	if sectionPath == "/" && out.Shell.DefaultLandingSectionID != "" {
		target = out.Shell.DefaultLandingSectionID
	}
	if r.Header.Get(HistoryNavigationHeader) != "" {
		inst.Nav.OnHistoryNavigation(sectionPath)
	} else {
		inst.Nav.SetActiveSection(target)
	}
	active := inst.Nav.Active()
	metrics.SectionTransitions.WithLabelValues(active).Inc()

	content, section := c.contentFor(ctx, active)
	c.renderShell(w, r, inst, out.Shell, active, section, content)
}

// contentFor resolves the active id against the registry and runs the
// access gate on found sections. The returned section is the zero value
// when the id is unknown.
func (c *ShellController) contentFor(ctx context.Context, active string) (templ.Component, types.Section) {
	producer, outcome := c.app.Registry().Resolve(active)
	section, _ := c.app.Registry().Lookup(active)
	switch outcome {
	case registry.NotFound:
		return layouts.NotFoundView(active), section
	case registry.UnderConstruction:
		return layouts.UnderConstructionView(c.labelFor(ctx, section)), section
	}

	u, _ := composables.UseUser(ctx)
	state := access.Evaluate(access.SessionContext{
		IsAuthenticated: u != nil,
		User:            u,
	}, section)
	metrics.GateDecisions.WithLabelValues(state.String()).Inc()
	switch state {
	case access.Unauthenticated:
		return layouts.LoginPrompt(navigation.PathFor(active)), section
	case access.Forbidden:
		return layouts.ForbiddenView(c.labelFor(ctx, section)), section
	}
	return layouts.ContentBoundary(active, producer), section
}

func (c *ShellController) renderShell(
	w http.ResponseWriter,
	r *http.Request,
	inst *services.Instance,
	def composer.Definition,
	active string,
	section types.Section,
	content templ.Component,
) {
	ctx := r.Context()
	props := layouts.ShellProps{
		Title:       c.titleFor(ctx, section),
		Header:      def.Header,
		SidebarMode: def.SidebarMode,
		Sidebar:     c.sidebarProps(r, inst, active, def),
		Content:     content,
		UserName:    c.userName(ctx),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layouts.Base(props).Render(ctx, w); err != nil {
		composables.UseLogger(ctx).WithError(err).Error("shell render failed")
	}
}

func (c *ShellController) renderLogin(w http.ResponseWriter, r *http.Request) {
	props := layouts.ShellProps{
		Title:   "FieldSuite",
		Header:  composer.HeaderBusiness,
		Content: layouts.LoginPrompt(r.URL.Path),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layouts.Base(props).Render(r.Context(), w); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("login render failed")
	}
}

// sidebarProps narrows the user's permission-filtered sections to the set
// the composed shell offers before the sidebar's own filtering applies.
func (c *ShellController) sidebarProps(r *http.Request, inst *services.Instance, active string, def composer.Definition) layouts.SidebarProps {
	ctx := r.Context()
	sections, _ := middleware.UseNavSections(ctx)
	groups, _ := middleware.UseNavGroups(ctx)

	offered := offeredSections(sections, def.Sections)
	if len(offered) != len(sections) {
		groups = c.localizedGroups(ctx, c.shell.GroupsFor(offered))
	}

	byID := make(map[string]types.Section, len(offered))
	for _, s := range offered {
		byID[s.ID] = s
	}
	visible := inst.Sidebar.FilteredGroups(groups, func(id string) string {
		return byID[id].Label
	})
	return layouts.SidebarProps{
		Groups:     visible,
		Sections:   byID,
		ActiveID:   active,
		Collapsed:  inst.Sidebar.IsCollapsed(),
		OpenGroups: inst.Sidebar.OpenGroups(),
		SearchTerm: inst.Sidebar.SearchTerm(),
		Platform:   def.Header == composer.HeaderPlatform,
	}
}

// offeredSections keeps the nav entries whose ids the shell offers,
// preserving the nav order and the already-localized labels.
func offeredSections(nav []types.Section, shell []types.Section) []types.Section {
	if shell == nil {
		return nav
	}
	allowed := make(map[string]bool, len(shell))
	for _, s := range shell {
		allowed[s.ID] = true
	}
	out := make([]types.Section, 0, len(nav))
	for _, s := range nav {
		if allowed[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

func (c *ShellController) localizedGroups(ctx context.Context, groups []types.Group) []types.Group {
	out := make([]types.Group, len(groups))
	for i, g := range groups {
		g.Label = c.translate(ctx, g.Label)
		out[i] = g
	}
	return out
}

// sidebar re-renders the navigation panel fragment. The search parameter is
// the ephemeral filter term; the shell parameter names the shell the
// fragment belongs to, so a platform page gets the platform section set
// back.
func (c *ShellController) sidebar(w http.ResponseWriter, r *http.Request) {
	inst, ok := c.instance(w, r)
	if !ok {
		return
	}
	inst.Lock()
	defer inst.Unlock()
	inst.Sidebar.SetSearchTerm(r.URL.Query().Get("search"))

	header := composer.HeaderBusiness
	if r.URL.Query().Get("shell") == string(composer.HeaderPlatform) {
		header = composer.HeaderPlatform
	}
	def := composer.Definition{Header: header, Sections: c.composer.SectionsFor(header)}

	props := c.sidebarProps(r, inst, inst.Nav.Active(), def)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layouts.Sidebar(props, composer.SidebarDocked).Render(r.Context(), w); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("sidebar render failed")
	}
}

func (c *ShellController) toggleCollapse(w http.ResponseWriter, r *http.Request) {
	inst, ok := c.instance(w, r)
	if !ok {
		return
	}
	inst.Lock()
	defer inst.Unlock()
	inst.Sidebar.ToggleCollapse()
	w.WriteHeader(http.StatusNoContent)
}

func (c *ShellController) toggleGroup(w http.ResponseWriter, r *http.Request) {
	inst, ok := c.instance(w, r)
	if !ok {
		return
	}
	inst.Lock()
	defer inst.Unlock()
	inst.Sidebar.ToggleGroup(types.GroupID(mux.Vars(r)["id"]))
	w.WriteHeader(http.StatusNoContent)
}

func (c *ShellController) instance(w http.ResponseWriter, r *http.Request) (*services.Instance, bool) {
	sess, err := composables.UseSession(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return nil, false
	}
	return c.shell.Instance(sess.Token), true
}

func (c *ShellController) labelFor(ctx context.Context, section types.Section) string {
	if section.Label == "" {
		return ""
	}
	return c.translate(ctx, section.Label)
}

func (c *ShellController) translate(ctx context.Context, key string) string {
	localizer, ok := intl.UseLocalizer(ctx)
	if !ok {
		return key
	}
	label, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return label
}

func (c *ShellController) titleFor(ctx context.Context, section types.Section) string {
	label := c.labelFor(ctx, section)
	if label == "" {
		return "FieldSuite"
	}
	return label + " | FieldSuite"
}

func (c *ShellController) userName(ctx context.Context) string {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return ""
	}
	return u.DisplayName()
}

// viewportFrom reads the viewport hints the client script stores in
// cookies. Without them the composer defaults to the docked sidebar.
func viewportFrom(r *http.Request) composer.Viewport {
	v := composer.Viewport{}
	if c, err := r.Cookie("vw"); err == nil {
		if px, err := strconv.Atoi(c.Value); err == nil {
			v.WidthPx = px
		}
	}
	if c, err := r.Cookie("touch"); err == nil {
		v.Touch = c.Value == "1"
	}
	return v
}
