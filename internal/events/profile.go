// internal/events/profile.go

package events

import (
	"context"

	"go.uber.org/zap"

	"crmdesk-console/internal/crmapi"
	"crmdesk-console/internal/session"
)

// EventProfileUpdated is emitted by the upstream after a profile write,
// whether it originated from this console or another client.
const EventProfileUpdated = "profile.updated"

// ProfileHandler merges upstream-confirmed profile fields into the session.
type ProfileHandler struct {
	store  *session.Store
	logger *zap.Logger
}

func NewProfileHandler(store *session.Store, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{store: store, logger: logger}
}

func (h *ProfileHandler) EventTypes() []string {
	return []string{EventProfileUpdated}
}

func (h *ProfileHandler) HandleEvent(_ context.Context, ev *Event) error {
	patch, err := crmapi.UserPatchFromWire(ev.Data)
	if err != nil {
		return err
	}
	h.store.ApplyExternalProfilePatch(patch)
	h.logger.Debug("applied external profile update")
	return nil
}
