// internal/guard/guard.go
package guard

import (
	"strings"
	"time"

	"crmdesk-console/internal/session"
)

// Navigation targets. The shell only ever navigates relative to these roots;
// concrete deployments mount them wherever they like.
const (
	PathLogin      = "/login"
	PathOverview   = "/overview"
	AreaSuperAdmin = "/superadmin"
	AreaDashboard  = "/dashboard"
)

// RoleSuperAdmin is the role tag that owns the /superadmin area.
const RoleSuperAdmin = "super_admin"

// ExpiryLeeway treats a token expiring within the next check interval as
// already expired, so the session never outlives its credential mid-cycle.
const ExpiryLeeway = 30 * time.Second

type Action int

const (
	// ActionRender lets the requested view render.
	ActionRender Action = iota
	// ActionRedirect sends the shell to Decision.Target.
	ActionRedirect
	// ActionBlock shows the blocking "no role assigned" panel instead of any
	// protected content.
	ActionBlock
	// ActionExpire means the credential is stale: the caller must clear
	// durable state, log the session out, and send the shell to the login view.
	ActionExpire
)

func (a Action) String() string {
	switch a {
	case ActionRender:
		return "render"
	case ActionRedirect:
		return "redirect"
	case ActionBlock:
		return "block"
	case ActionExpire:
		return "expire"
	default:
		return "unknown"
	}
}

// Decision is the outcome of one guard evaluation. Every path through
// Evaluate terminates in exactly one of the four actions; the guard never
// errors.
type Decision struct {
	Action   Action
	Target   string
	ReturnTo string
	Reason   string
}

// Evaluate runs the ordered decision table for a navigation to path:
// expiry check, authentication check, login-page bounce, missing-role block,
// role-area segregation. hasExpiry reports whether a durable expiry marker
// exists; expiry is ignored otherwise.
func Evaluate(sess session.Session, path string, now time.Time, expiry time.Time, hasExpiry bool) Decision {
	if hasExpiry && !now.Before(expiry.Add(-ExpiryLeeway)) {
		return Decision{Action: ActionExpire, Target: PathLogin, Reason: "credential expired"}
	}

	if !sess.IsAuthenticated {
		if isLoginPath(path) {
			return Decision{Action: ActionRender}
		}
		return Decision{
			Action:   ActionRedirect,
			Target:   PathLogin,
			ReturnTo: path,
			Reason:   "authentication required",
		}
	}

	if isLoginPath(path) {
		return Decision{Action: ActionRedirect, Target: PathOverview, Reason: "already authenticated"}
	}

	if sess.Role == "" {
		return Decision{Action: ActionBlock, Reason: "no role assigned"}
	}

	// Role-area segregation: super admins live under /superadmin, everyone
	// else under /dashboard. /overview is the neutral post-auth landing and
	// is reachable by both.
	inSuperArea := underArea(path, AreaSuperAdmin)
	switch {
	case sess.Role == RoleSuperAdmin && !inSuperArea && !underArea(path, PathOverview):
		return Decision{Action: ActionRedirect, Target: AreaSuperAdmin, Reason: "super admin area only"}
	case sess.Role != RoleSuperAdmin && inSuperArea:
		return Decision{Action: ActionRedirect, Target: AreaDashboard, Reason: "not a super admin"}
	}

	return Decision{Action: ActionRender}
}

func isLoginPath(path string) bool {
	return path == PathLogin || path == PathLogin+"/"
}

func underArea(path, area string) bool {
	return path == area || strings.HasPrefix(path, area+"/")
}
