package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"crmdesk-console/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type fakeState struct {
	expiry    time.Time
	hasExpiry bool
	cleared   int
	clearErr  error
}

func (f *fakeState) TokenExpiry() (time.Time, bool) { return f.expiry, f.hasExpiry }

func (f *fakeState) Clear() error {
	f.cleared++
	f.hasExpiry = false
	return f.clearErr
}

func TestCheckNowExpiredMarkerForcesLogout(t *testing.T) {
	store := session.NewStore()
	store.LoginSuccess(session.LoginResult{User: &session.User{ID: 1, RoleName: "admin"}, Token: "t"})
	state := &fakeState{expiry: time.Now().Add(-time.Second), hasExpiry: true}

	w := NewWatcher(store, state, time.Second, zap.NewNop())
	expired := w.CheckNow(time.Now())

	assert.True(t, expired)
	assert.Equal(t, 1, state.cleared)
	sess := store.Snapshot()
	assert.False(t, sess.IsAuthenticated)
	assert.Nil(t, sess.User)
	assert.Empty(t, sess.Token)
}

func TestCheckNowNoMarkerIsANoop(t *testing.T) {
	store := session.NewStore()
	store.LoginSuccess(session.LoginResult{User: &session.User{ID: 1, RoleName: "admin"}, Token: "t"})
	state := &fakeState{}

	w := NewWatcher(store, state, time.Second, zap.NewNop())
	assert.False(t, w.CheckNow(time.Now()))
	assert.Zero(t, state.cleared)
	assert.True(t, store.Snapshot().IsAuthenticated)
}

func TestCheckNowFreshMarkerIsANoop(t *testing.T) {
	store := session.NewStore()
	store.LoginSuccess(session.LoginResult{User: &session.User{ID: 1, RoleName: "admin"}, Token: "t"})
	state := &fakeState{expiry: time.Now().Add(time.Hour), hasExpiry: true}

	w := NewWatcher(store, state, time.Second, zap.NewNop())
	assert.False(t, w.CheckNow(time.Now()))
	assert.True(t, store.Snapshot().IsAuthenticated)
}

func TestCheckNowLogsOutEvenWhenClearFails(t *testing.T) {
	store := session.NewStore()
	store.LoginSuccess(session.LoginResult{User: &session.User{ID: 1, RoleName: "admin"}, Token: "t"})
	state := &fakeState{expiry: time.Now().Add(-time.Minute), hasExpiry: true, clearErr: errors.New("disk full")}

	w := NewWatcher(store, state, time.Second, zap.NewNop())
	assert.True(t, w.CheckNow(time.Now()))
	assert.False(t, store.Snapshot().IsAuthenticated)
}

func TestWatcherStopLeavesNoGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := session.NewStore()
	state := &fakeState{}
	w := NewWatcher(store, state, 10*time.Millisecond, zap.NewNop())

	require.NoError(t, w.Start(context.Background()))
	time.Sleep(30 * time.Millisecond)
	w.Stop()
}

func TestWatcherCannotBeStartedTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := session.NewStore()
	w := NewWatcher(store, &fakeState{}, time.Minute, zap.NewNop())

	require.NoError(t, w.Start(context.Background()))
	assert.ErrorIs(t, w.Start(context.Background()), ErrAlreadyStarted)
	w.Stop()

	// A stopped watcher stays stopped; remounting means a fresh watcher.
	assert.ErrorIs(t, w.Start(context.Background()), ErrAlreadyStarted)
}

func TestWatcherStopWithoutStart(t *testing.T) {
	w := NewWatcher(session.NewStore(), &fakeState{}, time.Minute, zap.NewNop())
	w.Stop()
}

func TestWatcherExpiresOnMount(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := session.NewStore()
	store.LoginSuccess(session.LoginResult{User: &session.User{ID: 1, RoleName: "admin"}, Token: "t"})
	state := &fakeState{expiry: time.Now().Add(-time.Second), hasExpiry: true}

	w := NewWatcher(store, state, time.Hour, zap.NewNop())
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	assert.Eventually(t, func() bool {
		return !store.Snapshot().IsAuthenticated
	}, time.Second, 5*time.Millisecond, "the first check runs on mount, not one interval later")
}
