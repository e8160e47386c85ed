// internal/events/listener.go

// Package events consumes the upstream's websocket event feed. It exists for
// one contracted behavior: when the upstream reports that a profile mutation
// completed, the confirmed fields are merged into the console session through
// the store's own transition, not by reaching into session state.
package events

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event is one upstream event frame.
type Event struct {
	Type string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

// Handler processes the event types it declares. Unhandled types are dropped.
type Handler interface {
	HandleEvent(ctx context.Context, ev *Event) error
	EventTypes() []string
}

// TokenSource supplies the bearer token for the socket handshake. While the
// console is anonymous the listener stays disconnected.
type TokenSource interface {
	Token() string
}

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

type Listener struct {
	url      string
	tokens   TokenSource
	handlers map[string]Handler
	dialer   *websocket.Dialer
	logger   *zap.Logger
}

func NewListener(url string, tokens TokenSource, logger *zap.Logger) *Listener {
	return &Listener{
		url:      url,
		tokens:   tokens,
		handlers: make(map[string]Handler),
		dialer:   websocket.DefaultDialer,
		logger:   logger,
	}
}

// RegisterHandler registers a handler for its declared event types.
func (l *Listener) RegisterHandler(h Handler) {
	for _, t := range h.EventTypes() {
		l.handlers[t] = h
	}
}

// Run connects and consumes events until ctx is cancelled, reconnecting with
// capped backoff. Intended to run in its own goroutine.
func (l *Listener) Run(ctx context.Context) {
	backoff := initialBackoff
	for {
		if ctx.Err() != nil {
			return
		}

		token := l.tokens.Token()
		if token == "" {
			// Anonymous; poll for a session instead of connecting.
			if !sleep(ctx, initialBackoff) {
				return
			}
			continue
		}

		if err := l.consume(ctx, token); err != nil && ctx.Err() == nil {
			l.logger.Warn("event stream disconnected", zap.Error(err), zap.Duration("retry_in", backoff))
			if !sleep(ctx, backoff) {
				return
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			continue
		}
		backoff = initialBackoff
	}
}

func (l *Listener) consume(ctx context.Context, token string) error {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := l.dialer.DialContext(ctx, l.url, header)
	if err != nil {
		return err
	}
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	l.logger.Info("event stream connected", zap.String("url", l.url))

	// Unblock ReadMessage when ctx is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			l.logger.Warn("dropping malformed event frame", zap.Error(err))
			continue
		}

		h, ok := l.handlers[ev.Type]
		if !ok {
			continue
		}
		if err := h.HandleEvent(ctx, &ev); err != nil {
			l.logger.Warn("event handler failed", zap.String("event", ev.Type), zap.Error(err))
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
