package handlers

import (
	"errors"
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/gateway"
	"github.com/artjalyuzi/admin-panel/src/middleware"
	"github.com/artjalyuzi/admin-panel/src/session"
	"github.com/gin-gonic/gin"
)

// basePage assembles the fields every dashboard template expects:
// title, active nav item, the admin login for the sidebar and any
// pending flash notice.
func basePage(c *gin.Context, title, active string) gin.H {
	profile, _ := middleware.Profile(c)
	flash := session.PopFlash(c)
	if flash == nil {
		if msg := middleware.Notice(c); msg != "" {
			flash = &session.Flash{Kind: "error", Message: msg}
		}
	}
	return gin.H{
		"Title":  title,
		"Active": active,
		"Login":  profile.Login,
		"Flash":  flash,
		"Error":  "",
	}
}

// forceLogoutOnAuthError handles a rejected credential surfaced by any
// gateway call: clear the session, flash the expiry notice, redirect
// to login. Returns true when the request was handled. Every other
// error kind stays with the caller; a flaky backend must not log the
// admin out.
func forceLogoutOnAuthError(c *gin.Context, sessions *session.Manager, err error) bool {
	var authErr *gateway.AuthError
	if !errors.As(err, &authErr) {
		return false
	}
	sessions.Clear(c)
	session.SetFlash(c, "error", "Your session has expired. Please login again.")
	c.Redirect(http.StatusSeeOther, "/login")
	return true
}
