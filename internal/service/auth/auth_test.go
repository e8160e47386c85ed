package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdto "crmdesk-console/internal/domain/auth"
	"crmdesk-console/internal/crmapi"
	"crmdesk-console/internal/localstate"
	"crmdesk-console/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const loginOK = `{
	"success": true,
	"message": "login successful",
	"data": {
		"user": {"id": 1, "email": "ann@crmdesk.io", "fullName": "Ann Otieno", "roleName": "admin"},
		"token": "tok-abc"
	}
}`

func newService(t *testing.T, handler http.HandlerFunc) (*Service, *session.Store, *localstate.State) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewStore()
	state, err := localstate.Open(t.TempDir())
	require.NoError(t, err)

	api := crmapi.New(srv.URL, store, zap.NewNop())
	return NewService(api, store, state, time.Hour, zap.NewNop()), store, state
}

func TestLoginSuccessWritesSessionAndExpiryMarker(t *testing.T) {
	svc, store, state := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(loginOK))
	})

	before := time.Now()
	sess, err := svc.Login(context.Background(), authdto.LoginRequest{Email: "ann@crmdesk.io", Password: "pw"})
	require.NoError(t, err)

	assert.True(t, sess.IsAuthenticated)
	assert.Equal(t, "admin", sess.Role)
	assert.Equal(t, "login successful", sess.Message)
	assert.Equal(t, "tok-abc", store.Token())

	// Opaque token, so the marker comes from the fallback TTL.
	expiry, ok := state.TokenExpiry()
	require.True(t, ok)
	assert.WithinDuration(t, before.Add(time.Hour), expiry, 5*time.Second)
}

func TestLoginFailureResetsSessionWithUpstreamMessage(t *testing.T) {
	svc, store, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false, "message": "bad credentials"}`))
	})

	// An already-authenticated session is discarded by a failed re-login.
	store.LoginSuccess(session.LoginResult{User: &session.User{ID: 9, RoleName: "admin"}, Token: "old"})

	sess, err := svc.Login(context.Background(), authdto.LoginRequest{Email: "ann@crmdesk.io", Password: "wrong"})
	require.Error(t, err)

	assert.False(t, sess.IsAuthenticated)
	assert.Nil(t, sess.User)
	assert.Empty(t, sess.Token)
	assert.Equal(t, "bad credentials", sess.Error)
	assert.Equal(t, "bad credentials", sess.Message)
}

func TestLoginFailureDeletesExpiryMarker(t *testing.T) {
	svc, _, state := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false, "message": "bad credentials"}`))
	})

	require.NoError(t, state.SetTokenExpiry(time.Now().Add(time.Hour)))

	_, err := svc.Login(context.Background(), authdto.LoginRequest{Email: "ann@crmdesk.io", Password: "wrong"})
	require.Error(t, err)

	_, ok := state.TokenExpiry()
	assert.False(t, ok, "stale marker must not outlive the discarded session")
}

func TestLogoutClearsMarkerAndSession(t *testing.T) {
	svc, store, state := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(loginOK))
	})

	_, err := svc.Login(context.Background(), authdto.LoginRequest{Email: "ann@crmdesk.io", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout())

	_, ok := state.TokenExpiry()
	assert.False(t, ok)
	assert.Equal(t, session.Session{}, store.Snapshot())

	// Idempotent.
	require.NoError(t, svc.Logout())
}

func TestRegisterFailureLeavesAuthenticationAlone(t *testing.T) {
	svc, store, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/register" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success": false, "message": "email taken"}`))
			return
		}
		w.Write([]byte(loginOK))
	})

	_, err := svc.Login(context.Background(), authdto.LoginRequest{Email: "ann@crmdesk.io", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), authdto.RegisterRequest{
		Email: "new@crmdesk.io", Password: "password1", FullName: "New User",
	})
	require.Error(t, err)

	sess := store.Snapshot()
	assert.True(t, sess.IsAuthenticated, "a failed registration must not log the user out")
	assert.Equal(t, "email taken", sess.RegistrationError)
	assert.False(t, sess.Registering)
}

func TestRegisterSuccess(t *testing.T) {
	svc, store, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "message": "check your email"}`))
	})

	sess, err := svc.Register(context.Background(), authdto.RegisterRequest{
		Email: "new@crmdesk.io", Password: "password1", FullName: "New User",
	})
	require.NoError(t, err)
	assert.True(t, sess.RegistrationSuccess)
	assert.False(t, sess.IsAuthenticated, "registering never implicitly logs in")
	assert.Equal(t, "check your email", store.Snapshot().Message)
}

func TestUpdateProfileMergesConfirmedFields(t *testing.T) {
	svc, store, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			w.Write([]byte(`{"success": true, "message": "profile updated", "data": {"fullName": "Ann O."}}`))
			return
		}
		w.Write([]byte(loginOK))
	})

	_, err := svc.Login(context.Background(), authdto.LoginRequest{Email: "ann@crmdesk.io", Password: "pw"})
	require.NoError(t, err)

	name := "Ann O."
	sess, err := svc.UpdateProfile(context.Background(), authdto.UpdateProfileRequest{FullName: &name})
	require.NoError(t, err)

	assert.Equal(t, "Ann O.", sess.User.FullName)
	assert.Equal(t, "ann@crmdesk.io", sess.User.Email, "unpatched fields retained")
	assert.Equal(t, "admin", store.Snapshot().Role)
}

func TestRefreshProfileReplacesSessionUser(t *testing.T) {
	svc, _, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/me" {
			w.Write([]byte(`{"success": true, "message": "ok", "data": {
				"id": 1, "email": "ann@crmdesk.io", "fullName": "Ann Otieno-Smith", "roleName": "super_admin"
			}}`))
			return
		}
		w.Write([]byte(loginOK))
	})

	_, err := svc.Login(context.Background(), authdto.LoginRequest{Email: "ann@crmdesk.io", Password: "pw"})
	require.NoError(t, err)

	sess, err := svc.RefreshProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Ann Otieno-Smith", sess.User.FullName)
	assert.Equal(t, "super_admin", sess.Role, "role refresh reflects in the session role")
	assert.True(t, sess.IsAuthenticated)
}
