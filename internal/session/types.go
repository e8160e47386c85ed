// internal/session/types.go
package session

// User is the profile record of the authenticated principal as returned by
// the upstream CRM API.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	RoleName  string `json:"role_name"`
}

func (u *User) clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// Session is the process-wide record of who is logged in plus the transient
// status flags the console UI displays. Either both User and Token are set or
// neither is; the store's transitions maintain that.
type Session struct {
	User            *User  `json:"user"`
	Token           string `json:"-"`
	Role            string `json:"role"`
	IsAuthenticated bool   `json:"is_authenticated"`

	Loading bool   `json:"loading"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	// Registration axis, independent of the authentication fields.
	Registering         bool   `json:"registering"`
	RegistrationError   string `json:"registration_error,omitempty"`
	RegistrationSuccess bool   `json:"registration_success"`
}

func (s Session) clone() Session {
	c := s
	c.User = s.User.clone()
	return c
}

func initialSession() Session {
	return Session{}
}

// LoginResult is the payload a successful upstream login resolves to.
type LoginResult struct {
	User    *User
	Token   string
	Message string
}

// UserPatch is a partial profile update; nil fields are left untouched.
type UserPatch struct {
	Email     *string `json:"email"`
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
	RoleName  *string `json:"role_name"`
}
