package middleware

import (
	"errors"
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/gateway"
	"github.com/artjalyuzi/admin-panel/src/logging"
	"github.com/artjalyuzi/admin-panel/src/models"
	"github.com/artjalyuzi/admin-panel/src/session"
	"github.com/gin-gonic/gin"
)

// Context keys set by the session guard for downstream handlers.
const (
	tokenKey        = "auth_token"
	profileKey      = "auth_profile"
	profileKnownKey = "auth_profile_known"
	noticeKey       = "auth_notice"
)

// SessionGuard gates every protected page. The flow per request:
//
//   - no usable session cookie: redirect to /login, zero upstream calls
//   - cookie present: verify the identity against the backend
//   - verification rejected (401): clear the cookie, flash a
//     session-expired notice, redirect to /login
//   - verification failed any other way: attach a server-error notice
//     to the request and let the page render with an unknown profile
//
// Only a rejected credential forces a logout. A flaky backend must not
// destroy a valid session.
func SessionGuard(sm *session.Manager, auth *gateway.AuthGateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := session.Read(c)
		if raw == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		claims, err := sm.Parse(raw)
		if err != nil {
			// A tampered or expired cookie is rejected locally,
			// before any upstream call.
			sm.Clear(c)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		profile, err := auth.GetMe(c.Request.Context(), claims.Token)
		if err != nil {
			logger := logging.WithRequestID(GetRequestID(c))
			var authErr *gateway.AuthError
			if errors.As(err, &authErr) {
				logger.Warn().Msg("session credential rejected by backend")
				sm.Clear(c)
				session.SetFlash(c, "error", "Your session has expired. Please login again.")
				c.Redirect(http.StatusSeeOther, "/login")
				c.Abort()
				return
			}

			logger.Warn().Err(err).Msg("identity verification unavailable")
			// The notice rides on the gin context, not a flash cookie:
			// this same request renders the page, and the request's
			// cookies were sent before the failure happened.
			c.Set(noticeKey, "There was a problem connecting to the server. Please try again later.")
			c.Set(tokenKey, claims.Token)
			c.Set(profileKey, models.AdminProfile{Login: claims.Login})
			c.Set(profileKnownKey, false)
			c.Next()
			return
		}

		c.Set(tokenKey, claims.Token)
		c.Set(profileKey, profile)
		c.Set(profileKnownKey, true)
		c.Next()
	}
}

// Notice returns the error notice the session guard attached to the
// current request, if any.
func Notice(c *gin.Context) string {
	if v, ok := c.Get(noticeKey); ok {
		return v.(string)
	}
	return ""
}

// Token returns the upstream bearer token for the current request.
func Token(c *gin.Context) string {
	if v, ok := c.Get(tokenKey); ok {
		return v.(string)
	}
	return ""
}

// Profile returns the admin profile established by the session guard.
// The second return reports whether the backend actually verified it
// this request.
func Profile(c *gin.Context) (models.AdminProfile, bool) {
	p, ok := c.Get(profileKey)
	if !ok {
		return models.AdminProfile{}, false
	}
	known, _ := c.Get(profileKnownKey)
	verified, _ := known.(bool)
	return p.(models.AdminProfile), verified
}
