package middleware

import (
	"context"
	"net/http"

	"health-program-registry/internal/service"
)

const SessionCookieName = "registry_session"

// SessionMiddleware guards the server-rendered interface. Authorization is
// purely presence of a valid session; the user id is injected into the
// request context rather than read from any ambient state.
type SessionMiddleware struct {
	sessionService *service.SessionService
}

func NewSessionMiddleware(sessionService *service.SessionService) *SessionMiddleware {
	return &SessionMiddleware{sessionService: sessionService}
}

func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		userID, found, err := m.sessionService.Get(r.Context(), cookie.Value)
		if err != nil {
			http.Error(w, "Failed to validate session", http.StatusInternalServerError)
			return
		}
		if !found {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
