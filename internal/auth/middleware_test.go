package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/jewelry-store/internal/domain"
)

func newGateApp(t *testing.T) (*fiber.App, *TokenManager, *bool) {
	t.Helper()

	tm := NewTokenManager("gate-secret", time.Hour)
	gate := NewSessionGate(tm)

	handlerHit := false
	app := fiber.New()
	app.Use(gate.Handle)
	app.Get("/admin", func(c *fiber.Ctx) error {
		handlerHit = true
		return c.SendString("dashboard")
	})
	app.Get("/admin/login", func(c *fiber.Ctx) error {
		return c.SendString("login form")
	})
	app.Get("/admin/orders", func(c *fiber.Ctx) error {
		handlerHit = true
		return c.SendString("orders")
	})
	app.Get("/shop", func(c *fiber.Ctx) error {
		return c.SendString("shop")
	})

	return app, tm, &handlerHit
}

func validCookie(t *testing.T, tm *TokenManager) *http.Cookie {
	t.Helper()
	token, _, err := tm.Generate(&domain.Admin{ID: "adm-1", Email: "a@b.com", Role: domain.AdminRoleAdmin})
	require.NoError(t, err)
	return &http.Cookie{Name: CookieName, Value: token}
}

func TestGateRedirectsWithoutCookie(t *testing.T) {
	app, _, handlerHit := newGateApp(t)

	for _, path := range []string{"/admin", "/admin/orders", "/admin/anything/nested"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		require.Equal(t, "/admin/login", resp.Header.Get("Location"), path)
	}
	require.False(t, *handlerHit)
}

func TestGateClearsCookieOnInvalidToken(t *testing.T) {
	app, _, handlerHit := newGateApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-token"})
	resp, err := app.Test(req)
	require.NoError(t, err)

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/admin/login", resp.Header.Get("Location"))
	require.False(t, *handlerHit)

	var cleared bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == CookieName {
			require.Empty(t, cookie.Value)
			require.True(t, cookie.Expires.Before(time.Now()))
			cleared = true
		}
	}
	require.True(t, cleared, "expected the session cookie to be cleared")
}

func TestGatePassesThroughValidSession(t *testing.T) {
	app, tm, handlerHit := newGateApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(validCookie(t, tm))
	resp, err := app.Test(req)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, *handlerHit)
}

func TestGateExpiredSessionRedirects(t *testing.T) {
	app, tm, handlerHit := newGateApp(t)

	issuedAt := time.Now().Add(-2 * time.Hour)
	tm.WithClock(func() time.Time { return issuedAt })
	cookie := validCookie(t, tm)
	tm.WithClock(time.Now)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/admin/login", resp.Header.Get("Location"))
	require.False(t, *handlerHit)
}

func TestLoginPathBouncesAuthenticatedSession(t *testing.T) {
	app, tm, _ := newGateApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	req.AddCookie(validCookie(t, tm))
	resp, err := app.Test(req)
	require.NoError(t, err)

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/admin", resp.Header.Get("Location"))
}

func TestLoginPathRendersWithoutSession(t *testing.T) {
	app, _, _ := newGateApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGateIgnoresUnprotectedPaths(t *testing.T) {
	app, _, _ := newGateApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/shop", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGatePrefixMatchIsSegmentAware(t *testing.T) {
	app, _, _ := newGateApp(t)
	app.Get("/administrator", func(c *fiber.Ctx) error {
		return c.SendString("not an admin page")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/administrator", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
