// internal/handlers/console/console_handler.go

// Package console exposes the navigation guard to the browser shell. The
// shell asks before rendering any route; the handler answers with either the
// view context or a redirect, so routing policy lives in one place.
package console

import (
	"net/http"
	"net/url"
	"time"

	"crmdesk-console/internal/guard"
	"crmdesk-console/internal/localstate"
	xerrors "crmdesk-console/internal/pkg/errors"
	"crmdesk-console/internal/pkg/response"
	"crmdesk-console/internal/session"

	"github.com/gin-gonic/gin"
)

type ConsoleHandler struct {
	store *session.Store
	state *localstate.State
}

func NewConsoleHandler(store *session.Store, state *localstate.State) *ConsoleHandler {
	return &ConsoleHandler{
		store: store,
		state: state,
	}
}

// ViewContext is what a render-allowed route gets back.
type ViewContext struct {
	Path             string        `json:"path"`
	Role             string        `json:"role"`
	User             *session.User `json:"user"`
	SidebarCollapsed bool          `json:"sidebar_collapsed"`
}

// Resolve evaluates a navigation to the wildcard path.
func (h *ConsoleHandler) Resolve(c *gin.Context) {
	path := c.Param("path")
	if path == "" {
		path = "/"
	}

	sess := h.store.Snapshot()
	expiry, hasExpiry := h.state.TokenExpiry()
	decision := guard.Evaluate(sess, path, time.Now(), expiry, hasExpiry)

	switch decision.Action {
	case guard.ActionExpire:
		// Stale credential: tear down both durable and in-memory state
		// before bouncing to login.
		h.state.Clear()
		h.store.Logout()
		c.Redirect(http.StatusSeeOther, guard.PathLogin)

	case guard.ActionRedirect:
		target := decision.Target
		if decision.ReturnTo != "" {
			target += "?return_to=" + url.QueryEscape(decision.ReturnTo)
		}
		c.Redirect(http.StatusSeeOther, target)

	case guard.ActionBlock:
		response.Error(c, http.StatusForbidden, "no role assigned", xerrors.ErrNoRole)

	default:
		response.Success(c, http.StatusOK, "render", ViewContext{
			Path:             path,
			Role:             sess.Role,
			User:             sess.User,
			SidebarCollapsed: h.state.SidebarCollapsed(),
		})
	}
}

// GetSidebar returns the persisted sidebar preference.
func (h *ConsoleHandler) GetSidebar(c *gin.Context) {
	response.Success(c, http.StatusOK, "sidebar preference", gin.H{
		"collapsed": h.state.SidebarCollapsed(),
	})
}

// SetSidebar persists the sidebar preference.
func (h *ConsoleHandler) SetSidebar(c *gin.Context) {
	var req struct {
		Collapsed bool `json:"collapsed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.state.SetSidebarCollapsed(req.Collapsed); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to persist preference", err)
		return
	}

	response.Success(c, http.StatusOK, "sidebar preference saved", gin.H{
		"collapsed": req.Collapsed,
	})
}
