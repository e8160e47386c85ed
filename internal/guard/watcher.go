// internal/guard/watcher.go
package guard

import (
	"context"
	"errors"
	"time"

	"crmdesk-console/internal/session"

	"go.uber.org/zap"
)

// ErrAlreadyStarted is returned when Start is called on a running or
// previously stopped watcher. One watcher, one lifecycle: this is what keeps
// repeated mounts from stacking duplicate timers.
var ErrAlreadyStarted = errors.New("guard: watcher already started")

// ExpiryState is the durable local state the watcher consults and clears.
type ExpiryState interface {
	TokenExpiry() (time.Time, bool)
	Clear() error
}

// Watcher periodically re-runs the expiry branch of the guard while the
// console is mounted, forcing a logout the moment the locally persisted
// credential goes stale. It never makes network calls.
type Watcher struct {
	store    *session.Store
	state    ExpiryState
	interval time.Duration
	logger   *zap.Logger

	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewWatcher(store *session.Store, state ExpiryState, interval time.Duration, logger *zap.Logger) *Watcher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Watcher{
		store:    store,
		state:    state,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the periodic check. The first check runs immediately so a
// stale credential is caught on mount, not one interval later.
func (w *Watcher) Start(ctx context.Context) error {
	if w.started {
		return ErrAlreadyStarted
	}
	w.started = true

	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})

	go func() {
		defer close(w.done)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.CheckNow(time.Now())
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				w.CheckNow(now)
			}
		}
	}()
	return nil
}

// Stop cancels the periodic check and waits for the loop to exit.
func (w *Watcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

// CheckNow runs a single expiry check. It reports whether the session was
// expired and torn down. Expiry is unconditional: durable state is cleared
// and the session reset, with nothing for the user to retry or cancel.
func (w *Watcher) CheckNow(now time.Time) bool {
	expiry, ok := w.state.TokenExpiry()
	if !ok || now.Before(expiry.Add(-ExpiryLeeway)) {
		return false
	}

	if err := w.state.Clear(); err != nil {
		w.logger.Error("failed to clear durable session state", zap.Error(err))
	}
	w.store.Logout()
	w.logger.Info("session expired, forced logout",
		zap.Time("expiry", expiry),
		zap.Time("checked_at", now),
	)
	return true
}
