package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"portfolio-cms/app/server/models"
	"portfolio-cms/app/server/types"
	"strings"
	"testing"
	"time"
)

func TestLogin(t *testing.T) {
	s := newTestServer(t, RouteOptions{})

	rec := s.login(testUsername, testPassword)
	require.Equal(t, http.StatusOK, rec.Code)

	var res types.LoginToken
	decode(t, rec, &res)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, s.admin.ID, res.User.ID)
	assert.Equal(t, testUsername, res.User.Username)
	assert.Equal(t, "admin@example.com", res.User.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, 5*time.Second)
	assert.NotContains(t, rec.Body.String(), "password")

	for name, creds := range map[string][2]string{
		"wrong password": {testUsername, "wrong"},
		"unknown user":   {"nobody", testPassword},
	} {
		t.Run(name, func(t *testing.T) {
			rec := s.login(creds[0], creds[1])
			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var msg types.ErrorMessage
			decode(t, rec, &msg)
			assert.Equal(t, "Incorrect username or password", msg.Message)
		})
	}

	t.Run("missing fields", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": testUsername}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginRateLimit(t *testing.T) {
	s := newTestServer(t, RouteOptions{RateLimit: true})

	for i := 0; i < 5; i++ {
		rec := s.login(testUsername, "wrong")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := s.login(testUsername, testPassword)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLoginRateLimitIgnoresForwardedFor(t *testing.T) {
	s := newTestServer(t, RouteOptions{RateLimit: true})

	var codes []int
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"username":"`+testUsername+`","password":"wrong"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderXForwardedFor, fmt.Sprintf("10.0.0.%d", i))
		req.Header.Set(echo.HeaderXRealIP, fmt.Sprintf("10.0.1.%d", i))
		codes = append(codes, s.serve(req, "").Code)
	}

	assert.Contains(t, codes, http.StatusTooManyRequests)
	assert.Equal(t, http.StatusTooManyRequests, codes[len(codes)-1])
}

func TestProtectedRoutesRequireBearerToken(t *testing.T) {
	s := newTestServer(t, RouteOptions{})
	token := s.token()

	for name, header := range map[string]string{
		"missing":      "",
		"wrong scheme": "Basic " + token,
		"garbage":      "Bearer not-a-token",
		"extra parts":  "Bearer " + token + " extra",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptestRequest(http.MethodGet, "/api/auth/me")
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := s.serve(req, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	t.Run("lowercase scheme", func(t *testing.T) {
		req := httptestRequest(http.MethodGet, "/api/auth/me")
		req.Header.Set("Authorization", "bearer "+token)
		rec := s.serve(req, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("deleted admin", func(t *testing.T) {
		require.NoError(t, s.db.Delete(&models.Admin{}, s.admin.ID).Error)
		rec := s.do(http.MethodGet, "/api/auth/me", nil, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMe(t *testing.T) {
	s := newTestServer(t, RouteOptions{})

	rec := s.do(http.MethodGet, "/api/auth/me", nil, s.token())
	require.Equal(t, http.StatusOK, rec.Code)

	var admin models.Admin
	decode(t, rec, &admin)
	assert.Equal(t, s.admin.ID, admin.ID)
	assert.Equal(t, testUsername, admin.Username)
	assert.NotContains(t, rec.Body.String(), "password_hash")
	assert.NotContains(t, rec.Body.String(), "argon2id")
}

func TestChangePassword(t *testing.T) {
	s := newTestServer(t, RouteOptions{})
	token := s.token()

	t.Run("wrong current password", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/api/auth/change-password", map[string]string{
			"current_password": "wrong",
			"new_password":     "NewPass@2025",
		}, token)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var msg types.ErrorMessage
		decode(t, rec, &msg)
		assert.Equal(t, "Current password is incorrect", msg.Message)
	})

	t.Run("new password too short", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/api/auth/change-password", map[string]string{
			"current_password": testPassword,
			"new_password":     "short",
		}, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	// 失败的请求不能改动密码
	require.Equal(t, http.StatusOK, s.login(testUsername, testPassword).Code)

	rec := s.do(http.MethodPost, "/api/auth/change-password", map[string]string{
		"current_password": testPassword,
		"new_password":     "NewPass@2025",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusUnauthorized, s.login(testUsername, testPassword).Code)
	assert.Equal(t, http.StatusOK, s.login(testUsername, "NewPass@2025").Code)

	// 已签出的 token 在过期前仍然有效
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/auth/me", nil, token).Code)
}

func TestChangeEmail(t *testing.T) {
	s := newTestServer(t, RouteOptions{})
	token := s.token()

	rec := s.do(http.MethodPut, "/api/auth/email", map[string]string{"email": "not-an-email"}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPut, "/api/auth/email", map[string]string{"email": "owner@example.org"}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var admin models.Admin
	decode(t, s.do(http.MethodGet, "/api/auth/me", nil, token), &admin)
	assert.Equal(t, "owner@example.org", admin.Email)
	assert.False(t, admin.UpdatedAt.Before(s.admin.UpdatedAt))
}

func TestLogout(t *testing.T) {
	s := newTestServer(t, RouteOptions{})
	token := s.token()

	rec := s.do(http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var msg types.Message
	decode(t, rec, &msg)
	assert.Equal(t, "Logged out successfully", msg.Message)

	// 没有服务端状态，token 仍然可以使用
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/auth/me", nil, token).Code)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/auth/logout", nil, "").Code)
}
