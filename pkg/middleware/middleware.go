package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/aggregates/user"
	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/session"
	"github.com/fieldsuite/fieldsuite/pkg/composables"
	"github.com/fieldsuite/fieldsuite/pkg/configuration"
	"github.com/fieldsuite/fieldsuite/pkg/constants"
	"github.com/fieldsuite/fieldsuite/pkg/intl"
)

// Provide stores a fixed value in every request context.
func Provide(key constants.ContextKey, value interface{}) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), key, value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestParams captures the request facts handlers read through
// composables.
func RequestParams() mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := composables.UseSession(r.Context())
			params := &composables.Params{
				IP:            getRealIP(r, conf),
				UserAgent:     r.UserAgent(),
				Authenticated: err == nil,
				Request:       r,
				Writer:        w,
			}
			ctx := composables.WithParams(r.Context(), params)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionResolver turns a session token into the session and its user.
type SessionResolver interface {
	Resolve(token string) (*session.Session, user.User, error)
}

// Authorize reads the session cookie and, when it resolves, attaches the
// session and user to the context. An absent or stale cookie is not an
// error; downstream gates decide what unauthenticated requests see.
func Authorize(resolver SessionResolver) mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(conf.SidCookieKey)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			sess, u, err := resolver.Resolve(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := composables.WithSession(r.Context(), sess)
			ctx = composables.WithUser(ctx, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithLocalizer builds the request localizer from the user's UI language
// when known, falling back to Accept-Language and then the bundle default.
func WithLocalizer(bundle *i18n.Bundle) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			langs := make([]string, 0, 2)
			if u, err := composables.UseUser(r.Context()); err == nil {
				langs = append(langs, string(u.UILanguage()))
			}
			if accept := r.Header.Get("Accept-Language"); accept != "" {
				langs = append(langs, accept)
			}
			localizer := i18n.NewLocalizer(bundle, langs...)
			ctx := intl.WithLocalizer(r.Context(), localizer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
