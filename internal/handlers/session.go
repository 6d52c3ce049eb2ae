package handlers

import (
	"context"
	"net/http"

	"gansputra.dev/internal/services"
	"gansputra.dev/internal/state"
)

const sessionCookie = "sid"

type sessionKey struct{}

// withSession attaches the visitor session, issuing a cookie for new ones
func withSession(sessions *state.Sessions[*services.Session]) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(sessionCookie); err == nil {
				id = c.Value
			}

			sess, id, created := sessions.Get(id)
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFrom returns the session attached by withSession
func sessionFrom(r *http.Request) *services.Session {
	return r.Context().Value(sessionKey{}).(*services.Session)
}
