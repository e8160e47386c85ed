// internal/session/store.go
package session

import "sync"

// Store is the single source of truth for the console's authenticated
// principal. All mutation goes through the named transitions below; readers
// take a Snapshot and never see intermediate state.
type Store struct {
	mu   sync.RWMutex
	sess Session
}

func NewStore() *Store {
	return &Store{sess: initialSession()}
}

// Snapshot returns a deep copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.clone()
}

// Token returns the current credential, or "" when anonymous. Satisfies the
// upstream client's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.Token
}

// ========== Login ==========

// LoginStart marks a login attempt as in flight and clears any stale error.
func (s *Store) LoginStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.Loading = true
	s.sess.Error = ""
	s.sess.Message = ""
}

// LoginSuccess installs the authenticated principal returned by the upstream.
func (s *Store) LoginSuccess(res LoginResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.Loading = false
	s.sess.User = res.User.clone()
	s.sess.Token = res.Token
	s.sess.IsAuthenticated = true
	s.sess.Success = true
	s.sess.Message = res.Message
	if res.User != nil {
		s.sess.Role = res.User.RoleName
	} else {
		s.sess.Role = ""
	}
}

// LoginFailure resets the whole session to its initial shape and overlays the
// failure message. A failed re-login therefore discards an existing
// authenticated session; that is the documented product behavior and the
// policy lives only here.
func (s *Store) LoginFailure(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = initialSession()
	s.sess.Error = msg
	s.sess.Message = msg
}

// Logout resets the session to its initial shape. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = initialSession()
}

// ========== Registration ==========
//
// The registration axis is fully independent of the authentication fields:
// registering never logs a user in or out.

func (s *Store) RegisterStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.Registering = true
	s.sess.RegistrationError = ""
	s.sess.RegistrationSuccess = false
}

func (s *Store) RegisterSuccess(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.Registering = false
	s.sess.RegistrationSuccess = true
	s.sess.RegistrationError = ""
	s.sess.Message = msg
}

func (s *Store) RegisterFailure(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.Registering = false
	s.sess.RegistrationSuccess = false
	s.sess.RegistrationError = msg
}

// ClearRegistrationState resets the registration axis only.
func (s *Store) ClearRegistrationState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.Registering = false
	s.sess.RegistrationError = ""
	s.sess.RegistrationSuccess = false
}

// ========== Profile and flags ==========

// ClearError clears the auth error and message; nothing else is touched.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.Error = ""
	s.sess.Message = ""
}

// UpdateUser shallow-merges the patch into the current user. No-op when there
// is no user or no patch. A RoleName in the patch also refreshes Role.
func (s *Store) UpdateUser(patch *UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyPatchLocked(patch)
}

// ApplyExternalProfilePatch merges profile fields reported by the upstream
// "profile updated" event. Same merge semantics as UpdateUser, kept as its
// own transition so the event listener stays inside the closed transition set.
func (s *Store) ApplyExternalProfilePatch(patch *UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyPatchLocked(patch)
}

// SetLoading sets the loading flag independently of any other transition.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.Loading = loading
}

func (s *Store) applyPatchLocked(patch *UserPatch) {
	if s.sess.User == nil || patch == nil {
		return
	}
	u := s.sess.User
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.AvatarURL != nil {
		u.AvatarURL = *patch.AvatarURL
	}
	if patch.RoleName != nil {
		u.RoleName = *patch.RoleName
		s.sess.Role = *patch.RoleName
	}
}
