package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// AccessTokenCookie is the name of the session cookie carrying the token.
const AccessTokenCookie = "access_token"

// CookieManager sets and clears the access-token session cookie. Security
// attributes are fixed at construction, never caller-supplied. The cookie is
// a transport convenience only; the token itself stays the source of truth.
type CookieManager struct {
	secure   bool
	sameSite http.SameSite
}

// NewCookieManager creates a cookie manager with the deployment's transport
// attributes. SameSite=None requires secure cookies, so cross-site setups
// must pass secure=true.
func NewCookieManager(secure bool, sameSite http.SameSite) *CookieManager {
	return &CookieManager{secure: secure, sameSite: sameSite}
}

// Issue sets the session cookie with the given token, expiring with it.
func (m *CookieManager) Issue(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}

// Clear expires the session cookie immediately.
func (m *CookieManager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}
