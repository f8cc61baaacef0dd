package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsuite/fieldsuite/internal/server"
	"github.com/fieldsuite/fieldsuite/modules"
	"github.com/fieldsuite/fieldsuite/pkg/application"
	"github.com/fieldsuite/fieldsuite/pkg/configuration"
	"github.com/fieldsuite/fieldsuite/pkg/eventbus"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "fieldsuite-test")
	if err != nil {
		panic(err)
	}
	_ = os.Setenv("UI_STATE_PATH", filepath.Join(dir, "uistate"))
	_ = os.Setenv("LOG_PATH", filepath.Join(dir, "app.log"))
	_ = os.Setenv("LOG_LEVEL", "silent")
	_ = os.Setenv("ENABLE_DEV_ENDPOINTS", "true")
	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	conf := configuration.Use()
	logger := conf.Logger()
	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
		Bundle:   application.LoadBundle(),
		Huber:    application.NewHub(&application.HuberOptions{Logger: logger}),
	})
	require.NoError(t, modules.Load(app, modules.BuiltInModules...))
	srv, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	require.NoError(t, err)
	return srv.Router()
}

func login(t *testing.T, router http.Handler, email string) *http.Cookie {
	t.Helper()
	form := url.Values{"email": {email}, "password": {"demo"}, "return_to": {"/"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == configuration.Use().SidCookieKey {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func get(router http.Handler, path string, cookie *http.Cookie, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestShell_UnauthenticatedRootShowsLogin(t *testing.T) {
	router := newTestRouter(t)
	rec := get(router, "/", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gate-login")
}

func TestShell_LoginRouteNotShadowedBySections(t *testing.T) {
	router := newTestRouter(t)
	rec := get(router, "/login", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/login"`)
}

func TestShell_AuthenticatedDashboard(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")
	rec := get(router, "/", cookie, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Welcome back")
	assert.Contains(t, body, `id="sidebar"`)
	assert.Contains(t, body, "Olivia Reed")
}

func TestShell_PageCarriesContentSkeletonTemplate(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")
	rec := get(router, "/", cookie, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="content-skeleton"`)
	assert.Contains(t, body, "section-skeleton")
}

func TestShell_SectionNavigation(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")
	rec := get(router, "/customers", cookie, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Harbor Point Cafe")
}

func TestShell_HistoryNavigationHeaderAccepted(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")
	get(router, "/jobs", cookie, nil)
	rec := get(router, "/", cookie, map[string]string{"X-History-Navigation": "1"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome back")
}

func TestShell_ForbiddenSectionForEmployee(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "employee@fieldsuite.io")
	rec := get(router, "/team", cookie, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gate-forbidden")
}

func TestShell_AdminBypassesPermissionChecks(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "admin@fieldsuite.io")
	rec := get(router, "/team", cookie, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "gate-forbidden")
}

func TestShell_UnknownSectionRecoversToDashboard(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")
	rec := get(router, "/warehouse", cookie, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome back")
}

func TestShell_UnderConstructionSection(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")
	rec := get(router, "/automations", cookie, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "section-under-construction")
}

func TestShell_MultiSegmentPathIs404(t *testing.T) {
	router := newTestRouter(t)
	rec := get(router, "/no/such/page", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShell_PlatformRouteWithoutMarkerRedirects(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")
	rec := get(router, "/platform", cookie, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/login")
}

func TestShell_PlatformShellHasDistinctSurface(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")

	mark := get(router, "/dev/session/admin", cookie, nil)
	require.Equal(t, http.StatusSeeOther, mark.Code)
	require.Equal(t, "/platform", mark.Header().Get("Location"))

	rec := get(router, "/platform", cookie, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "header-platform")
	// The platform shell lands on tenant administration, not the dashboard.
	assert.Contains(t, body, "Tenant workspaces")
	assert.Contains(t, body, "Northwind Services")
	assert.Contains(t, body, `href="/tenants"`)
	assert.NotContains(t, body, `href="/customers"`)
}

func TestShell_BusinessSidebarOmitsPlatformSections(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")
	rec := get(router, "/", cookie, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `href="/tenants"`)
}

func TestShell_SidebarCollapseFragment(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")

	req := httptest.NewRequest(http.MethodPost, "/shell/sidebar/collapse", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	page := get(router, "/", cookie, nil)
	assert.Contains(t, page.Body.String(), "sidebar-collapsed")
}

func TestShell_SidebarFragmentRequiresSession(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/shell/sidebar/collapse", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestShell_SidebarSearchFiltersGroups(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")
	rec := get(router, "/shell/sidebar?search=invoi", cookie, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "/invoices")
	assert.NotContains(t, body, "/customers")
}

func TestShell_ConcurrentRequestsShareOneShellSafely(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")

	paths := []string{"/customers", "/jobs", "/", "/shell/sidebar?search=in"}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if n%4 == 3 {
					req := httptest.NewRequest(http.MethodPost, "/shell/sidebar/collapse", nil)
					req.AddCookie(cookie)
					router.ServeHTTP(httptest.NewRecorder(), req)
					continue
				}
				get(router, paths[n%4], cookie, nil)
			}
		}(i)
	}
	wg.Wait()

	rec := get(router, "/jobs", cookie, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="sidebar"`)
}

func TestShell_LogoutClearsSession(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	after := get(router, "/", cookie, nil)
	assert.Contains(t, after.Body.String(), "gate-login")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)
	rec := get(router, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestSpotlightSearch(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "owner@fieldsuite.io")
	rec := get(router, "/spotlight/search?q=invoices", cookie, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/invoices"`)
}
