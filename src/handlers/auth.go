package handlers

import (
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/gateway"
	"github.com/artjalyuzi/admin-panel/src/logging"
	"github.com/artjalyuzi/admin-panel/src/models"
	"github.com/artjalyuzi/admin-panel/src/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler serves the login page and the logout action.
type AuthHandler struct {
	auth     *gateway.AuthGateway
	sessions *session.Manager
	log      zerolog.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(auth *gateway.AuthGateway, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		log:      logging.NewLogger("auth"),
	}
}

type loginForm struct {
	Login    string `form:"login" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// HandleLoginPage renders the login form.
func (h *AuthHandler) HandleLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{
		"Title":      "Login",
		"Flash":      session.PopFlash(c),
		"Error":      "",
		"LoginValue": "",
	})
}

// HandleLogin exchanges the submitted credentials for a backend token
// and wraps it in the session cookie. Failures render inline on the
// form and persist nothing.
func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var form loginForm
	_ = c.ShouldBind(&form)

	renderError := func(msg string) {
		c.HTML(http.StatusOK, "login", gin.H{
			"Title":      "Login",
			"Flash":      nil,
			"Error":      msg,
			"LoginValue": form.Login,
		})
	}

	if err := validate.Struct(form); err != nil {
		renderError("Username and password are required")
		return
	}

	token, err := h.auth.Login(c.Request.Context(), models.Credentials{
		Login:    form.Login,
		Password: form.Password,
	})
	if err != nil {
		renderError(err.Error())
		return
	}

	value, err := h.sessions.Issue(token, form.Login)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to issue session")
		renderError("Login failed. Please try again.")
		return
	}

	h.sessions.Set(c, value)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// HandleLogout clears the session cookie and returns to the login page.
func (h *AuthHandler) HandleLogout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
