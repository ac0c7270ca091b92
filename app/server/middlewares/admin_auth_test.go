package middlewares

import (
	"context"
	"errors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"net/http"
	"net/http/httptest"
	"portfolio-cms/app/server/auth"
	"portfolio-cms/app/server/constants"
	"portfolio-cms/app/server/jwt"
	"portfolio-cms/app/server/metrics"
	"portfolio-cms/app/server/models"
	"portfolio-cms/app/server/testutil"
	"testing"
	"time"
)

type failingStore struct {
	auth.AdminStore
}

func (failingStore) FindByUsername(context.Context, string) (*models.Admin, error) {
	return nil, errors.New("connection refused")
}

func newProtectedEcho(t *testing.T, guard *auth.Guard, m *metrics.Metrics) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		admin, ok := c.Get(constants.ContextKeyAdmin).(*models.Admin)
		require.True(t, ok)
		return c.String(http.StatusOK, admin.Username)
	}, AdminAuth(guard, m, zaptest.NewLogger(t)))

	return e
}

func request(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminAuth(t *testing.T) {
	db := testutil.DB(t)
	testutil.CreateAdmin(t, db, testutil.Hasher(), "admin", "Admin@2025")

	j, err := jwt.New("middleware-test-secret", time.Hour)
	require.NoError(t, err)
	token, _, err := j.SignToken("admin")
	require.NoError(t, err)

	m := metrics.New()
	e := newProtectedEcho(t, auth.NewGuard(j, auth.NewAdminStore(db)), m)

	rec := request(e, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())

	rec = request(e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, request(e, "Token "+token).Code)

	scrape := httptest.NewRecorder()
	m.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), "portfolio_auth_guard_rejections_total 2")
}

func TestAdminAuthStoreFailure(t *testing.T) {
	j, err := jwt.New("middleware-test-secret", time.Hour)
	require.NoError(t, err)
	token, _, err := j.SignToken("admin")
	require.NoError(t, err)

	e := newProtectedEcho(t, auth.NewGuard(j, failingStore{}), metrics.New())

	// 存储层故障不是认证失败
	rec := request(e, "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
