package composer

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsuite/fieldsuite/pkg/types"
)

func testComposer() *Composer {
	return New(Options{
		BusinessSections: []types.Section{{ID: "customers"}, {ID: "jobs"}},
		PlatformSections: []types.Section{{ID: "tenants"}},
		BusinessLanding:  "home",
		PlatformLanding:  "tenants",
	})
}

func TestCompose_BusinessShellByDefault(t *testing.T) {
	out := testComposer().Compose(Input{RoutePrefix: "/jobs", Kind: KindBusiness})

	require.False(t, out.RedirectToAuth)
	assert.Equal(t, HeaderBusiness, out.Shell.Header)
	assert.Equal(t, "home", out.Shell.DefaultLandingSectionID)
	assert.Len(t, out.Shell.Sections, 2)
}

func TestCompose_PlatformRouteWithMarker(t *testing.T) {
	for _, kind := range []SessionKind{KindPlatformAdmin, KindTenant, KindTrial} {
		out := testComposer().Compose(Input{RoutePrefix: "/platform/tenants", Kind: kind})

		require.False(t, out.RedirectToAuth, "kind %q", kind)
		assert.Equal(t, HeaderPlatform, out.Shell.Header)
		assert.Equal(t, "tenants", out.Shell.DefaultLandingSectionID)
	}
}

func TestCompose_PlatformRouteWithoutMarkerRedirects(t *testing.T) {
	out := testComposer().Compose(Input{RoutePrefix: "/platform/tenants", Kind: KindBusiness})

	assert.True(t, out.RedirectToAuth)
}

func TestSectionsFor(t *testing.T) {
	c := testComposer()

	assert.Len(t, c.SectionsFor(HeaderBusiness), 2)
	require.Len(t, c.SectionsFor(HeaderPlatform), 1)
	assert.Equal(t, "tenants", c.SectionsFor(HeaderPlatform)[0].ID)
}

func TestCompose_SidebarModeFromViewport(t *testing.T) {
	c := testComposer()

	out := c.Compose(Input{RoutePrefix: "/jobs", Kind: KindBusiness, Viewport: Viewport{WidthPx: 1440}})
	assert.Equal(t, SidebarDocked, out.Shell.SidebarMode)

	out = c.Compose(Input{RoutePrefix: "/jobs", Kind: KindBusiness, Viewport: Viewport{WidthPx: 640}})
	assert.Equal(t, SidebarOverlay, out.Shell.SidebarMode)

	// Touch widens the threshold.
	out = c.Compose(Input{RoutePrefix: "/jobs", Kind: KindBusiness, Viewport: Viewport{WidthPx: 900, Touch: true}})
	assert.Equal(t, SidebarOverlay, out.Shell.SidebarMode)

	out = c.Compose(Input{RoutePrefix: "/jobs", Kind: KindBusiness, Viewport: Viewport{WidthPx: 900}})
	assert.Equal(t, SidebarDocked, out.Shell.SidebarMode)
}

func TestBreakpoints_Compact(t *testing.T) {
	bp := DefaultBreakpoints()

	assert.True(t, bp.Compact(Viewport{WidthPx: 768}))
	assert.False(t, bp.Compact(Viewport{WidthPx: 769}))
	assert.True(t, bp.Compact(Viewport{WidthPx: 1024, Touch: true}))
	assert.False(t, bp.Compact(Viewport{WidthPx: 1025, Touch: true}))
	// Unknown width never forces the overlay.
	assert.False(t, bp.Compact(Viewport{WidthPx: 0, Touch: true}))
}

func TestParseSessionKind(t *testing.T) {
	assert.Equal(t, KindPlatformAdmin, ParseSessionKind("admin"))
	assert.Equal(t, KindTenant, ParseSessionKind("tenant"))
	assert.Equal(t, KindTrial, ParseSessionKind("trial"))
	assert.Equal(t, KindBusiness, ParseSessionKind(""))
	assert.Equal(t, KindBusiness, ParseSessionKind("junk"))
}

func TestInviteToken(t *testing.T) {
	u, _ := url.Parse("/accept-invite?token=abc123")
	token, ok := InviteToken(u)
	require.True(t, ok)
	assert.Equal(t, "abc123", token)

	u, _ = url.Parse("/accept-invite")
	_, ok = InviteToken(u)
	assert.False(t, ok)

	u, _ = url.Parse("/jobs?token=abc123")
	_, ok = InviteToken(u)
	assert.False(t, ok)
}
