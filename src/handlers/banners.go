package handlers

import (
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/gateway"
	"github.com/artjalyuzi/admin-panel/src/middleware"
	"github.com/artjalyuzi/admin-panel/src/models"
	"github.com/artjalyuzi/admin-panel/src/session"
	"github.com/gin-gonic/gin"
)

// BannerHandler serves the banner list, create/edit forms and the
// delete confirmation flow. Banners differ from the gallery resources
// in carrying a single image and an optional link.
type BannerHandler struct {
	banners  *gateway.BannerGateway
	sessions *session.Manager
}

// NewBannerHandler creates a new banner handler
func NewBannerHandler(banners *gateway.BannerGateway, sessions *session.Manager) *BannerHandler {
	return &BannerHandler{banners: banners, sessions: sessions}
}

// HandleList renders the banner table.
func (h *BannerHandler) HandleList(c *gin.Context) {
	data := basePage(c, "Banners", "banners")

	items, err := h.banners.List(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		data["Error"] = err.Error()
		items = []models.Banner{}
	}

	data["Banners"] = items
	c.HTML(http.StatusOK, "banners_list", data)
}

// HandleNewForm renders an empty create form.
func (h *BannerHandler) HandleNewForm(c *gin.Context) {
	data := basePage(c, "New banner", "banners")
	data["Banner"] = models.Banner{}
	c.HTML(http.StatusOK, "banner_form", data)
}

// HandleCreate validates locally and creates the banner.
func (h *BannerHandler) HandleCreate(c *gin.Context) {
	h.handleSubmit(c, "")
}

// HandleEditForm fetches the banner and renders the form pre-filled.
func (h *BannerHandler) HandleEditForm(c *gin.Context) {
	data := basePage(c, "Edit banner", "banners")

	b, err := h.banners.Get(c.Request.Context(), middleware.Token(c), c.Param("id"))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		session.SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusSeeOther, "/dashboard/banners")
		return
	}

	data["Banner"] = b
	c.HTML(http.StatusOK, "banner_form", data)
}

// HandleUpdate validates and submits the edit form.
func (h *BannerHandler) HandleUpdate(c *gin.Context) {
	h.handleSubmit(c, c.Param("id"))
}

func (h *BannerHandler) handleSubmit(c *gin.Context, id string) {
	var form bannerForm
	_ = c.ShouldBind(&form)

	b := form.toBanner()
	b.ID = id

	renderError := func(msg string) {
		data := basePage(c, "Banner", "banners")
		data["Error"] = msg
		data["Banner"] = b
		c.HTML(http.StatusOK, "banner_form", data)
	}

	if err := validate.Struct(form); err != nil {
		renderError(formErrorMessage(err))
		return
	}

	var err error
	if id == "" {
		_, err = h.banners.Create(c.Request.Context(), middleware.Token(c), b)
	} else {
		_, err = h.banners.Update(c.Request.Context(), middleware.Token(c), id, b)
	}
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		renderError(err.Error())
		return
	}

	if id == "" {
		session.SetFlash(c, "success", "Banner created successfully")
	} else {
		session.SetFlash(c, "success", "Banner updated successfully")
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/banners")
}

// HandleDeleteConfirm renders the confirmation page.
func (h *BannerHandler) HandleDeleteConfirm(c *gin.Context) {
	b, err := h.banners.Get(c.Request.Context(), middleware.Token(c), c.Param("id"))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		session.SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusSeeOther, "/dashboard/banners")
		return
	}

	data := basePage(c, "Delete banner", "banners")
	data["Kind"] = "banner"
	data["Name"] = b.NameUz
	data["CancelURL"] = "/dashboard/banners"
	c.HTML(http.StatusOK, "confirm_delete", data)
}

// HandleDelete commits a confirmed delete.
func (h *BannerHandler) HandleDelete(c *gin.Context) {
	err := h.banners.Delete(c.Request.Context(), middleware.Token(c), c.Param("id"))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		session.SetFlash(c, "error", err.Error())
	} else {
		session.SetFlash(c, "success", "Banner deleted successfully")
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/banners")
}
