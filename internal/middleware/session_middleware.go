// internal/middleware/session_middleware.go
package middleware

import (
	"net/http"
	"time"

	"crmdesk-console/internal/guard"
	"crmdesk-console/internal/localstate"
	xerrors "crmdesk-console/internal/pkg/errors"
	"crmdesk-console/internal/pkg/response"
	"crmdesk-console/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware gates the data-plane routes on the console's one session.
// Unlike a per-request token check, the whole process shares a single
// authenticated principal, so the check is against the in-memory store.
type SessionMiddleware struct {
	store *session.Store
	state *localstate.State
}

func NewSessionMiddleware(store *session.Store, state *localstate.State) *SessionMiddleware {
	return &SessionMiddleware{store: store, state: state}
}

// RequireSession rejects requests while the console is anonymous or while the
// persisted token expiry is inside the leeway window.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := m.store.Snapshot()
		if !sess.IsAuthenticated || sess.User == nil {
			response.Error(c, http.StatusUnauthorized, "authentication required", xerrors.ErrUnauthorized)
			return
		}

		if expiry, ok := m.state.TokenExpiry(); ok {
			if !time.Now().Before(expiry.Add(-guard.ExpiryLeeway)) {
				m.state.Clear()
				m.store.Logout()
				response.Error(c, http.StatusUnauthorized, "session expired", xerrors.ErrSessionExpired)
				return
			}
		}

		c.Set("role", sess.Role)
		c.Set("user_id", sess.User.ID)
		c.Next()
	}
}

// RequireSuperAdmin must be used after RequireSession.
func (m *SessionMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsSuperAdmin(c) {
			response.Error(c, http.StatusForbidden, "insufficient permissions", xerrors.ErrForbidden)
			return
		}
		c.Next()
	}
}
