// Package composer selects which shell (header + sidebar + content area)
// wraps the active section, based on the route prefix and the session kind.
package composer

import (
	"net/url"
	"strings"

	"github.com/fieldsuite/fieldsuite/pkg/types"
)

// SessionKind categorizes the login context. The platform kinds come from a
// short-lived session marker set at login time, separate from the
// long-lived authenticated-session flag.
type SessionKind string

const (
	KindBusiness      SessionKind = "business"
	KindPlatformAdmin SessionKind = "admin"
	KindTenant        SessionKind = "tenant"
	KindTrial         SessionKind = "trial"
)

func (k SessionKind) IsPlatform() bool {
	switch k {
	case KindPlatformAdmin, KindTenant, KindTrial:
		return true
	}
	return false
}

// ParseSessionKind maps a stored marker string to a kind, defaulting to the
// single-tenant business shell.
func ParseSessionKind(marker string) SessionKind {
	switch SessionKind(marker) {
	case KindPlatformAdmin, KindTenant, KindTrial:
		return SessionKind(marker)
	}
	return KindBusiness
}

type HeaderKind string

const (
	HeaderBusiness HeaderKind = "business"
	HeaderPlatform HeaderKind = "platform"
)

type SidebarMode int

const (
	// SidebarDocked: permanently visible panel.
	SidebarDocked SidebarMode = iota
	// SidebarOverlay: toggleable panel for compact viewports. Swapping the
	// mode never touches the navigation or sidebar controllers.
	SidebarOverlay
)

// PlatformRoutePrefix marks routes that demand a multi-tenant shell.
const PlatformRoutePrefix = "/platform"

// InviteAcceptPath is the reserved path carrying an invitation token; it is
// detected here, before normal section resolution applies.
const InviteAcceptPath = "/accept-invite"

// Viewport is the client's reported rendering context.
type Viewport struct {
	WidthPx int
	Touch   bool
}

type Breakpoints struct {
	CompactWidthPx int
	TouchWidthPx   int
}

func DefaultBreakpoints() Breakpoints {
	return Breakpoints{CompactWidthPx: 768, TouchWidthPx: 1024}
}

// Compact reports whether the viewport should get the overlay sidebar:
// narrow width alone is enough, and touch input widens the threshold. The
// two signals are OR'd, not chained.
func (b Breakpoints) Compact(v Viewport) bool {
	if v.WidthPx <= 0 {
		return false
	}
	if v.WidthPx <= b.CompactWidthPx {
		return true
	}
	return v.Touch && v.WidthPx <= b.TouchWidthPx
}

// Definition is the selected shell: which header to mount, which sections
// the sidebar offers, where navigation lands by default and how the sidebar
// renders.
type Definition struct {
	Header                  HeaderKind
	SidebarMode             SidebarMode
	Sections                []types.Section
	DefaultLandingSectionID string
}

type Input struct {
	RoutePrefix string
	Kind        SessionKind
	Viewport    Viewport
}

type Output struct {
	// RedirectToAuth is a routing decision, not a permission decision: a
	// platform route without a platform session marker never reaches the
	// access gate.
	RedirectToAuth bool
	Shell          Definition
}

type Composer struct {
	breakpoints      Breakpoints
	businessSections []types.Section
	platformSections []types.Section
	businessLanding  string
	platformLanding  string
}

type Options struct {
	Breakpoints      Breakpoints
	BusinessSections []types.Section
	PlatformSections []types.Section
	BusinessLanding  string
	PlatformLanding  string
}

func New(opts Options) *Composer {
	bp := opts.Breakpoints
	if bp.CompactWidthPx == 0 {
		bp = DefaultBreakpoints()
	}
	return &Composer{
		breakpoints:      bp,
		businessSections: opts.BusinessSections,
		platformSections: opts.PlatformSections,
		businessLanding:  opts.BusinessLanding,
		platformLanding:  opts.PlatformLanding,
	}
}

func (c *Composer) Compose(in Input) Output {
	mode := SidebarDocked
	if c.breakpoints.Compact(in.Viewport) {
		mode = SidebarOverlay
	}

	if strings.HasPrefix(in.RoutePrefix, PlatformRoutePrefix) {
		if !in.Kind.IsPlatform() {
			return Output{RedirectToAuth: true}
		}
		return Output{Shell: Definition{
			Header:                  HeaderPlatform,
			SidebarMode:             mode,
			Sections:                c.platformSections,
			DefaultLandingSectionID: c.platformLanding,
		}}
	}

	return Output{Shell: Definition{
		Header:                  HeaderBusiness,
		SidebarMode:             mode,
		Sections:                c.businessSections,
		DefaultLandingSectionID: c.businessLanding,
	}}
}

// SectionsFor returns the section set the given shell offers. Fragment
// endpoints use it to re-render the sidebar for the shell they came from.
func (c *Composer) SectionsFor(h HeaderKind) []types.Section {
	if h == HeaderPlatform {
		return c.platformSections
	}
	return c.businessSections
}

// InviteToken extracts the invitation token if u is the reserved
// invitation-acceptance URL.
func InviteToken(u *url.URL) (string, bool) {
	if u.Path != InviteAcceptPath {
		return "", false
	}
	token := u.Query().Get("token")
	if token == "" {
		return "", false
	}
	return token, true
}
