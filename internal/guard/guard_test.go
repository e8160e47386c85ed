package guard

import (
	"testing"
	"time"

	"crmdesk-console/internal/session"

	"github.com/stretchr/testify/assert"
)

func anon() session.Session {
	return session.Session{}
}

func authed(role string) session.Session {
	return session.Session{
		User:            &session.User{ID: 1, RoleName: role},
		Token:           "t",
		Role:            role,
		IsAuthenticated: true,
	}
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		sess      session.Session
		path      string
		expiry    time.Time
		hasExpiry bool
		want      Decision
	}{
		{
			name: "anonymous can reach the login view",
			sess: anon(), path: PathLogin,
			want: Decision{Action: ActionRender},
		},
		{
			name: "anonymous is redirected to login and origin is remembered",
			sess: anon(), path: "/dashboard",
			want: Decision{Action: ActionRedirect, Target: PathLogin, ReturnTo: "/dashboard", Reason: "authentication required"},
		},
		{
			name: "expired marker wins over everything",
			sess: authed("admin"), path: "/dashboard",
			expiry: now.Add(-time.Second), hasExpiry: true,
			want: Decision{Action: ActionExpire, Target: PathLogin, Reason: "credential expired"},
		},
		{
			name: "marker expiring within the leeway window also expires",
			sess: authed("admin"), path: "/dashboard",
			expiry: now.Add(ExpiryLeeway - time.Second), hasExpiry: true,
			want: Decision{Action: ActionExpire, Target: PathLogin, Reason: "credential expired"},
		},
		{
			name: "marker outside the leeway window does not expire",
			sess: authed("admin"), path: "/dashboard",
			expiry: now.Add(ExpiryLeeway + time.Minute), hasExpiry: true,
			want: Decision{Action: ActionRender},
		},
		{
			name: "expiry check even applies on the login path",
			sess: anon(), path: PathLogin,
			expiry: now.Add(-time.Hour), hasExpiry: true,
			want: Decision{Action: ActionExpire, Target: PathLogin, Reason: "credential expired"},
		},
		{
			name: "authenticated user is bounced off the login view",
			sess: authed("admin"), path: PathLogin,
			want: Decision{Action: ActionRedirect, Target: PathOverview, Reason: "already authenticated"},
		},
		{
			name: "authenticated without a role is blocked",
			sess: authed(""), path: "/dashboard",
			want: Decision{Action: ActionBlock, Reason: "no role assigned"},
		},
		{
			name: "super admin outside their area is pulled in",
			sess: authed(RoleSuperAdmin), path: "/dashboard/profile",
			want: Decision{Action: ActionRedirect, Target: AreaSuperAdmin, Reason: "super admin area only"},
		},
		{
			name: "super admin may stay on the neutral landing",
			sess: authed(RoleSuperAdmin), path: PathOverview,
			want: Decision{Action: ActionRender},
		},
		{
			name: "super admin renders inside their area",
			sess: authed(RoleSuperAdmin), path: "/superadmin/admins",
			want: Decision{Action: ActionRender},
		},
		{
			name: "regular role is pushed out of the super admin area",
			sess: authed("admin"), path: "/superadmin/admins",
			want: Decision{Action: ActionRedirect, Target: AreaDashboard, Reason: "not a super admin"},
		},
		{
			name: "regular role renders in the dashboard area",
			sess: authed("user"), path: "/dashboard/leads",
			want: Decision{Action: ActionRender},
		},
		{
			name: "prefix matching does not leak across path segments",
			sess: authed("user"), path: "/superadministrivia",
			want: Decision{Action: ActionRender},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.sess, tt.path, now, tt.expiry, tt.hasExpiry)
			assert.Equal(t, tt.want, got)
		})
	}
}
