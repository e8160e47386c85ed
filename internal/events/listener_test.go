package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"crmdesk-console/internal/session"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func authedStore(t *testing.T) *session.Store {
	t.Helper()
	store := session.NewStore()
	store.LoginSuccess(session.LoginResult{
		User:  &session.User{ID: 1, Email: "ada@crmdesk.io", FullName: "Ada L", RoleName: "manager"},
		Token: "tok-1",
	})
	return store
}

func TestListenerAppliesProfileUpdate(t *testing.T) {
	defer goleak.VerifyNone(t)

	upgrader := websocket.Upgrader{}
	gotAuth := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth <- r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		err = conn.WriteMessage(websocket.TextMessage, []byte(`{
			"event": "profile.updated",
			"data": {"fullName": "Ada Lovelace", "roleName": "super_admin"}
		}`))
		require.NoError(t, err)
		// Hold the connection open until the client goes away.
		conn.ReadMessage()
	}))
	defer srv.Close()

	store := authedStore(t)
	lst := NewListener(wsURL(srv), store, zap.NewNop())
	lst.RegisterHandler(NewProfileHandler(store, zap.NewNop()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		lst.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		snap := store.Snapshot()
		return snap.User != nil && snap.User.FullName == "Ada Lovelace"
	}, 2*time.Second, 10*time.Millisecond)

	snap := store.Snapshot()
	assert.Equal(t, "super_admin", snap.Role)
	assert.Equal(t, "ada@crmdesk.io", snap.User.Email, "untouched fields survive the patch")
	assert.Equal(t, "Bearer tok-1", <-gotAuth)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop after cancel")
	}
}

func TestListenerIgnoresUnknownEvents(t *testing.T) {
	defer goleak.VerifyNone(t)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"deal.created","data":{}}`)))
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`not json`)))
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{
			"event": "profile.updated",
			"data": {"phone": "+15550100"}
		}`)))
		conn.ReadMessage()
	}))
	defer srv.Close()

	store := authedStore(t)
	lst := NewListener(wsURL(srv), store, zap.NewNop())
	lst.RegisterHandler(NewProfileHandler(store, zap.NewNop()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		lst.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		snap := store.Snapshot()
		return snap.User != nil && snap.User.Phone == "+15550100"
	}, 2*time.Second, 10*time.Millisecond)

	snap := store.Snapshot()
	assert.Equal(t, "Ada L", snap.User.FullName)

	cancel()
	<-done
}

func TestListenerWaitsWhileAnonymous(t *testing.T) {
	defer goleak.VerifyNone(t)

	dialed := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case dialed <- struct{}{}:
		default:
		}
		http.Error(w, "should not be called", http.StatusBadRequest)
	}))
	defer srv.Close()

	lst := NewListener(wsURL(srv), staticToken(""), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		lst.Run(ctx)
		close(done)
	}()

	select {
	case <-dialed:
		t.Fatal("listener dialed without a session token")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	<-done
}
