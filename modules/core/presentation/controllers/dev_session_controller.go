package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fieldsuite/fieldsuite/modules/core/services"
	"github.com/fieldsuite/fieldsuite/pkg/composables"
	"github.com/fieldsuite/fieldsuite/pkg/shell/composer"
)

// DevSessionController tags the current session with a platform session
// kind. It exists so the platform shells can be reached without a real
// multi-tenant login flow; the route is only registered when dev endpoints
// are enabled.
type DevSessionController struct {
	auth *services.AuthService
}

func NewDevSessionController(auth *services.AuthService) *DevSessionController {
	return &DevSessionController{auth: auth}
}

func (c *DevSessionController) Key() string {
	return "/dev/session"
}

func (c *DevSessionController) Register(r *mux.Router) {
	r.HandleFunc("/dev/session/{kind}", c.mark).Methods(http.MethodGet)
}

func (c *DevSessionController) mark(w http.ResponseWriter, r *http.Request) {
	sess, err := composables.UseSession(r.Context())
	if err != nil {
		http.Redirect(w, r, "/login?return_to="+r.URL.Path, http.StatusSeeOther)
		return
	}
	kind := composer.ParseSessionKind(mux.Vars(r)["kind"])
	if !kind.IsPlatform() {
		http.Error(w, "unknown session kind", http.StatusBadRequest)
		return
	}
	if err := c.auth.SetMarker(sess.Token, string(kind)); err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, composer.PlatformRoutePrefix, http.StatusSeeOther)
}
