// internal/crmapi/auth.go
package crmapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"crmdesk-console/internal/domain/auth"
	"crmdesk-console/internal/session"
)

// wireUser is the profile record as the upstream serializes it. The upstream
// contract uses camelCase and carries the role under roleName.
type wireUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl"`
	RoleName  string `json:"roleName"`
}

func (w *wireUser) toSession() *session.User {
	if w == nil {
		return nil
	}
	return &session.User{
		ID:        w.ID,
		Email:     w.Email,
		FullName:  w.FullName,
		Phone:     w.Phone,
		AvatarURL: w.AvatarURL,
		RoleName:  w.RoleName,
	}
}

type wireUserPatch struct {
	Email     *string `json:"email"`
	FullName  *string `json:"fullName"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatarUrl"`
	RoleName  *string `json:"roleName"`
}

func (w *wireUserPatch) toSession() *session.UserPatch {
	if w == nil {
		return nil
	}
	return &session.UserPatch{
		Email:     w.Email,
		FullName:  w.FullName,
		Phone:     w.Phone,
		AvatarURL: w.AvatarURL,
		RoleName:  w.RoleName,
	}
}

// UserPatchFromWire decodes an upstream profile payload (wire casing) into a
// session patch. Shared with the event listener, which receives the same
// shape over the websocket.
func UserPatchFromWire(data []byte) (*session.UserPatch, error) {
	var w wireUserPatch
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to decode profile payload: %w", err)
	}
	return w.toSession(), nil
}

type loginPayload struct {
	User  *wireUser `json:"user"`
	Token string    `json:"token"`
}

// Login exchanges credentials for a token and the user's profile.
func (c *Client) Login(ctx context.Context, req auth.LoginRequest) (session.LoginResult, error) {
	var payload loginPayload
	msg, err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, req, &payload)
	if err != nil {
		return session.LoginResult{}, err
	}
	if payload.Token == "" || payload.User == nil {
		return session.LoginResult{}, &APIError{Status: http.StatusOK, Message: "incomplete login payload"}
	}
	return session.LoginResult{
		User:    payload.User.toSession(),
		Token:   payload.Token,
		Message: msg,
	}, nil
}

// Register creates an account upstream. Registration never logs anyone in;
// only the upstream's confirmation message comes back.
func (c *Client) Register(ctx context.Context, req auth.RegisterRequest) (string, error) {
	return c.do(ctx, http.MethodPost, "/api/v1/auth/register", nil, req, nil)
}

// Me fetches the current principal's profile.
func (c *Client) Me(ctx context.Context) (*session.User, error) {
	var w wireUser
	if err := c.get(ctx, "/api/v1/auth/me", nil, &w); err != nil {
		return nil, err
	}
	return w.toSession(), nil
}

// UpdateProfile patches the profile upstream and returns the fields the
// upstream confirmed, as a session patch.
func (c *Client) UpdateProfile(ctx context.Context, req auth.UpdateProfileRequest) (*session.UserPatch, error) {
	body := wireUserPatch{
		FullName:  req.FullName,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
	}
	var updated wireUserPatch
	if err := c.put(ctx, "/api/v1/auth/profile", body, &updated); err != nil {
		return nil, err
	}
	return updated.toSession(), nil
}
