// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	authdto "crmdesk-console/internal/domain/auth"
	"crmdesk-console/internal/pkg/response"
	service "crmdesk-console/internal/service/auth"
	"crmdesk-console/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.Service
	store       *session.Store
}

func NewAuthHandler(authService *service.Service, store *session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
	}
}

// Login authenticates against the upstream and installs the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	sess, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		// The session already carries the user-facing failure message.
		response.Error(c, http.StatusUnauthorized, sess.Error, nil)
		return
	}

	response.Success(c, http.StatusOK, sess.Message, sess)
}

// Logout resets the session and removes the persisted expiry marker.
// Safe to call when already logged out.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(); err != nil {
		response.Error(c, http.StatusInternalServerError, "logout failed", err)
		return
	}
	response.Success(c, http.StatusOK, "logged out", nil)
}

// Register creates an account upstream without signing the console in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	sess, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, sess.RegistrationError, nil)
		return
	}

	response.Success(c, http.StatusCreated, sess.Message, nil)
}

// Me returns the current session snapshot.
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, "session", h.store.Snapshot())
}

// UpdateProfile forwards the patch upstream and merges the confirmed fields.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req authdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	sess, err := h.authService.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "profile update failed", err)
		return
	}

	response.Success(c, http.StatusOK, "profile updated", sess)
}

// RefreshProfile re-fetches the profile from the upstream.
func (h *AuthHandler) RefreshProfile(c *gin.Context) {
	sess, err := h.authService.RefreshProfile(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "profile refresh failed", err)
		return
	}
	response.Success(c, http.StatusOK, "profile refreshed", sess)
}

// ClearError drops the transient login error and message.
func (h *AuthHandler) ClearError(c *gin.Context) {
	h.store.ClearError()
	response.Success(c, http.StatusOK, "error cleared", nil)
}

// ClearRegistrationState resets the registration axis, typically when the
// shell leaves the signup form.
func (h *AuthHandler) ClearRegistrationState(c *gin.Context) {
	h.store.ClearRegistrationState()
	response.Success(c, http.StatusOK, "registration state cleared", nil)
}
