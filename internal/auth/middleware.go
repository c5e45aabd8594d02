package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the HTTP-only cookie holding the admin session token.
const CookieName = "admin_token"

const (
	adminPrefix = "/admin"
	loginPath   = "/admin/login"

	claimsKey = "admin_claims"
)

// ErrNoSession indicates the request carried no session cookie at all.
var ErrNoSession = errors.New("no session cookie")

// SessionGate intercepts admin page navigation at the edge. It only inspects
// the cookie and the token signature; no store access happens here, so the
// gate is cheap enough to run on every request.
type SessionGate struct {
	tokens *TokenManager
}

// NewSessionGate constructs the gate.
func NewSessionGate(tokens *TokenManager) *SessionGate {
	return &SessionGate{tokens: tokens}
}

// Authenticate reads and verifies the session cookie, caching the claims in
// request locals. Both the gate and the admin API handlers go through this
// single entry point so edge and handler checks cannot diverge.
func (g *SessionGate) Authenticate(c *fiber.Ctx) (*Claims, error) {
	if cached, ok := c.Locals(claimsKey).(*Claims); ok {
		return cached, nil
	}

	raw := c.Cookies(CookieName)
	if raw == "" {
		return nil, ErrNoSession
	}

	claims, err := g.tokens.Parse(raw)
	if err != nil {
		return nil, ErrInvalidToken
	}

	c.Locals(claimsKey, claims)
	return claims, nil
}

// Handle enforces authentication for admin page paths. The login path is an
// exact-match exclusion and must be checked before the prefix match,
// otherwise the login form itself becomes unreachable.
func (g *SessionGate) Handle(c *fiber.Ctx) error {
	path := c.Path()

	if path == loginPath {
		if _, err := g.Authenticate(c); err == nil {
			return c.Redirect(adminPrefix, fiber.StatusSeeOther)
		}
		return c.Next()
	}

	if path == adminPrefix || strings.HasPrefix(path, adminPrefix+"/") {
		_, err := g.Authenticate(c)
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, ErrNoSession):
			return c.Redirect(loginPath, fiber.StatusSeeOther)
		default:
			ClearSessionCookie(c)
			return c.Redirect(loginPath, fiber.StatusSeeOther)
		}
	}

	return c.Next()
}

// ClaimsFromContext retrieves claims stored by a prior Authenticate call.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*Claims)
	return claims, ok
}

// SetSessionCookie attaches the signed token as an HTTP-only cookie.
func SetSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  expiresAt,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
