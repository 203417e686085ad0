package handlers

import (
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/gateway"
	"github.com/artjalyuzi/admin-panel/src/middleware"
	"github.com/artjalyuzi/admin-panel/src/models"
	"github.com/artjalyuzi/admin-panel/src/session"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin account page: change the login and/or
// password of the single admin user.
type AdminHandler struct {
	auth     *gateway.AuthGateway
	sessions *session.Manager
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(auth *gateway.AuthGateway, sessions *session.Manager) *AdminHandler {
	return &AdminHandler{auth: auth, sessions: sessions}
}

type adminForm struct {
	Login           string `form:"login" validate:"required"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

// HandleProfilePage renders the account form pre-filled with the
// current login from the verified profile.
func (h *AdminHandler) HandleProfilePage(c *gin.Context) {
	profile, _ := middleware.Profile(c)
	data := basePage(c, "Admin Account", "admin")
	data["LoginValue"] = profile.Login
	c.HTML(http.StatusOK, "admin_profile", data)
}

// HandleProfileUpdate updates the admin credentials. Password
// confirmation matching is enforced here; a mismatch never reaches
// the network.
func (h *AdminHandler) HandleProfileUpdate(c *gin.Context) {
	var form adminForm
	_ = c.ShouldBind(&form)

	renderError := func(msg string) {
		data := basePage(c, "Admin Account", "admin")
		data["Error"] = msg
		data["LoginValue"] = form.Login
		c.HTML(http.StatusOK, "admin_profile", data)
	}

	if err := validate.Struct(form); err != nil {
		renderError(formErrorMessage(err))
		return
	}
	if form.Password != form.ConfirmPassword {
		renderError("Passwords do not match")
		return
	}

	_, err := h.auth.UpdateMe(c.Request.Context(), middleware.Token(c), models.ProfileUpdate{
		Login:    form.Login,
		Password: form.Password,
	})
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		renderError(err.Error())
		return
	}

	session.SetFlash(c, "success", "Profile updated successfully")
	c.Redirect(http.StatusSeeOther, "/dashboard/admin")
}
