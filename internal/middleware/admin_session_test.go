package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"metahair/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, secret, role string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  exp.Unix(),
	})
	signed, err := tok.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestValidAdminToken(t *testing.T) {
	secret := "test-secret"
	future := time.Now().Add(time.Hour)

	assert.True(t, ValidAdminToken(signedToken(t, secret, "admin", future), secret))
	//role違い
	assert.False(t, ValidAdminToken(signedToken(t, secret, "user", future), secret))
	//別シークレットで署名
	assert.False(t, ValidAdminToken(signedToken(t, "other-secret", "admin", future), secret))
	//期限切れ
	assert.False(t, ValidAdminToken(signedToken(t, secret, "admin", time.Now().Add(-time.Hour)), secret))
	assert.False(t, ValidAdminToken("not-a-jwt", secret))
}

func adminProtectedEcho(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.GET("/admin/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, AdminSession(cfg))
	return e
}

func TestAdminSession_RejectsMissingCookie(t *testing.T) {
	e := adminProtectedEcho(config.Config{JWTSecret: "test-secret"})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminSession_AcceptsValidCookie(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	e := adminProtectedEcho(cfg)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{
		Name:  AdminCookieName,
		Value: signedToken(t, cfg.JWTSecret, "admin", time.Now().Add(time.Hour)),
	})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminSession_RejectsTamperedCookie(t *testing.T) {
	e := adminProtectedEcho(config.Config{JWTSecret: "test-secret"})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{
		Name:  AdminCookieName,
		Value: signedToken(t, "wrong-secret", "admin", time.Now().Add(time.Hour)),
	})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
