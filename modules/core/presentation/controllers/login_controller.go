package controllers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/fieldsuite/fieldsuite/modules/core/presentation/templates/layouts"
	"github.com/fieldsuite/fieldsuite/modules/core/services"
	"github.com/fieldsuite/fieldsuite/pkg/composables"
	"github.com/fieldsuite/fieldsuite/pkg/configuration"
	"github.com/fieldsuite/fieldsuite/pkg/shell/composer"
)

type LoginController struct {
	auth  *services.AuthService
	shell *services.ShellService
}

func NewLoginController(auth *services.AuthService, shell *services.ShellService) *LoginController {
	return &LoginController{auth: auth, shell: shell}
}

func (c *LoginController) Key() string {
	return "/login"
}

func (c *LoginController) Register(r *mux.Router) {
	r.HandleFunc("/login", c.page).Methods(http.MethodGet)
	r.HandleFunc("/login", c.submit).Methods(http.MethodPost)
	r.HandleFunc("/logout", c.logout).Methods(http.MethodPost, http.MethodGet)
}

func (c *LoginController) page(w http.ResponseWriter, r *http.Request) {
	props := layouts.ShellProps{
		Title:   "Sign in | FieldSuite",
		Header:  composer.HeaderBusiness,
		Content: layouts.LoginPrompt(safeReturnTo(r.URL.Query().Get("return_to"))),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layouts.Base(props).Render(r.Context(), w); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("login page render failed")
	}
}

func (c *LoginController) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	sess, _, err := c.auth.Login(r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Info("login rejected")
		http.Redirect(w, r, "/login?return_to="+safeReturnTo(r.PostFormValue("return_to")), http.StatusSeeOther)
		return
	}
	conf := configuration.Use()
	http.SetCookie(w, &http.Cookie{
		Name:     conf.SidCookieKey,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   conf.Scheme() == "https",
	})
	http.Redirect(w, r, safeReturnTo(r.PostFormValue("return_to")), http.StatusSeeOther)
}

func (c *LoginController) logout(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	if cookie, err := r.Cookie(conf.SidCookieKey); err == nil {
		c.auth.Logout(cookie.Value)
		c.shell.Evict(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     conf.SidCookieKey,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// safeReturnTo keeps the post-login redirect on this origin. Anything that
// is not a local absolute path falls back to the root.
func safeReturnTo(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}
	return raw
}
