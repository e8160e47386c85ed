package crmapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"crmdesk-console/internal/domain/auth"
	"crmdesk-console/internal/domain/lead"
	xerrors "crmdesk-console/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestLoginDecodesUserTokenAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Empty(t, r.Header.Get("Authorization"), "login is anonymous")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"message": "login successful",
			"data": {
				"user": {"id": 7, "email": "ann@crmdesk.io", "fullName": "Ann Otieno", "roleName": "admin"},
				"token": "tok-abc"
			}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""), zap.NewNop())
	res, err := c.Login(context.Background(), auth.LoginRequest{Email: "ann@crmdesk.io", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "tok-abc", res.Token)
	assert.Equal(t, "login successful", res.Message)
	require.NotNil(t, res.User)
	assert.Equal(t, int64(7), res.User.ID)
	assert.Equal(t, "admin", res.User.RoleName)
}

func TestLoginFailureCarriesUpstreamMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false, "message": "bad credentials", "error": "invalid email or password"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""), zap.NewNop())
	_, err := c.Login(context.Background(), auth.LoginRequest{Email: "ann@crmdesk.io", Password: "nope"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "bad credentials", apiErr.UserMessage())
	assert.Contains(t, apiErr.Error(), "invalid email or password")
	assert.True(t, xerrors.Is(err, xerrors.ErrUnauthorized))
}

func TestLoginRejectsIncompletePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "message": "ok", "data": {"token": ""}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""), zap.NewNop())
	_, err := c.Login(context.Background(), auth.LoginRequest{Email: "a@b.c", Password: "pw"})
	assert.Error(t, err)
}

func TestAuthenticatedCallSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/v1/leads", r.URL.Path)
		assert.Equal(t, "qualified", r.URL.Query().Get("status"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Write([]byte(`{"success": true, "message": "ok", "data": {"leads": [{"id": 1, "full_name": "Bob"}], "total": 1, "page": 2, "page_size": 20, "total_pages": 1}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("tok-abc"), zap.NewNop())
	out, err := c.ListLeads(context.Background(), lead.LeadListFilters{Status: "qualified", Page: 2, PageSize: 20})
	require.NoError(t, err)
	require.Len(t, out.Leads, 1)
	assert.Equal(t, "Bob", out.Leads[0].FullName)
	assert.Equal(t, int64(1), out.Total)
}

func TestNonEnvelopeBodyIsAnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""), zap.NewNop())
	_, err := c.Me(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestUserPatchFromWire(t *testing.T) {
	patch, err := UserPatchFromWire([]byte(`{"fullName": "Ann O.", "roleName": "super_admin"}`))
	require.NoError(t, err)
	require.NotNil(t, patch.FullName)
	assert.Equal(t, "Ann O.", *patch.FullName)
	require.NotNil(t, patch.RoleName)
	assert.Equal(t, "super_admin", *patch.RoleName)
	assert.Nil(t, patch.Email)

	_, err = UserPatchFromWire([]byte(`not json`))
	assert.Error(t, err)
}
