package handlers

import (
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/gateway"
	"github.com/artjalyuzi/admin-panel/src/middleware"
	"github.com/artjalyuzi/admin-panel/src/models"
	"github.com/artjalyuzi/admin-panel/src/session"
	"github.com/gin-gonic/gin"
)

// PortfolioHandler serves the portfolio list, create/edit forms and
// the delete confirmation flow.
type PortfolioHandler struct {
	portfolios *gateway.PortfolioGateway
	sessions   *session.Manager
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(portfolios *gateway.PortfolioGateway, sessions *session.Manager) *PortfolioHandler {
	return &PortfolioHandler{portfolios: portfolios, sessions: sessions}
}

// HandleList renders the portfolio table.
func (h *PortfolioHandler) HandleList(c *gin.Context) {
	data := basePage(c, "Portfolios", "portfolios")

	items, err := h.portfolios.List(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		data["Error"] = err.Error()
		items = []models.Portfolio{}
	}

	data["Portfolios"] = items
	c.HTML(http.StatusOK, "portfolios_list", data)
}

// HandleNewForm renders an empty create form.
func (h *PortfolioHandler) HandleNewForm(c *gin.Context) {
	data := basePage(c, "New portfolio", "portfolios")
	data["Portfolio"] = models.Portfolio{}
	data["ImageURLs"] = ""
	c.HTML(http.StatusOK, "portfolio_form", data)
}

// HandleCreate validates locally and creates the portfolio.
func (h *PortfolioHandler) HandleCreate(c *gin.Context) {
	h.handleSubmit(c, "")
}

// HandleEditForm fetches the portfolio and renders the form pre-filled.
func (h *PortfolioHandler) HandleEditForm(c *gin.Context) {
	data := basePage(c, "Edit portfolio", "portfolios")

	p, err := h.portfolios.Get(c.Request.Context(), middleware.Token(c), c.Param("id"))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		session.SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusSeeOther, "/dashboard/portfolios")
		return
	}

	data["Portfolio"] = p
	data["ImageURLs"] = imageURLLines(p.Image)
	c.HTML(http.StatusOK, "portfolio_form", data)
}

// HandleUpdate validates and submits the edit form.
func (h *PortfolioHandler) HandleUpdate(c *gin.Context) {
	h.handleSubmit(c, c.Param("id"))
}

func (h *PortfolioHandler) handleSubmit(c *gin.Context, id string) {
	var form galleryForm
	_ = c.ShouldBind(&form)

	p := models.Portfolio{
		ID:            id,
		NameUz:        form.NameUz,
		NameRu:        form.NameRu,
		DescriptionUz: form.DescriptionUz,
		DescriptionRu: form.DescriptionRu,
		Image:         form.images(),
	}

	renderError := func(msg string) {
		data := basePage(c, "Portfolio", "portfolios")
		data["Error"] = msg
		data["Portfolio"] = p
		data["ImageURLs"] = form.ImageURLs
		c.HTML(http.StatusOK, "portfolio_form", data)
	}

	if err := validate.Struct(form); err != nil {
		renderError(formErrorMessage(err))
		return
	}
	if len(p.Image) == 0 {
		renderError("Please upload at least one image")
		return
	}

	var err error
	if id == "" {
		_, err = h.portfolios.Create(c.Request.Context(), middleware.Token(c), p)
	} else {
		_, err = h.portfolios.Update(c.Request.Context(), middleware.Token(c), id, p)
	}
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		renderError(err.Error())
		return
	}

	if id == "" {
		session.SetFlash(c, "success", "Portfolio created successfully")
	} else {
		session.SetFlash(c, "success", "Portfolio updated successfully")
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/portfolios")
}

// HandleDeleteConfirm renders the confirmation page.
func (h *PortfolioHandler) HandleDeleteConfirm(c *gin.Context) {
	p, err := h.portfolios.Get(c.Request.Context(), middleware.Token(c), c.Param("id"))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		session.SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusSeeOther, "/dashboard/portfolios")
		return
	}

	data := basePage(c, "Delete portfolio", "portfolios")
	data["Kind"] = "portfolio"
	data["Name"] = p.NameUz
	data["CancelURL"] = "/dashboard/portfolios"
	c.HTML(http.StatusOK, "confirm_delete", data)
}

// HandleDelete commits a confirmed delete.
func (h *PortfolioHandler) HandleDelete(c *gin.Context) {
	err := h.portfolios.Delete(c.Request.Context(), middleware.Token(c), c.Param("id"))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		session.SetFlash(c, "error", err.Error())
	} else {
		session.SetFlash(c, "success", "Portfolio deleted successfully")
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/portfolios")
}
