package handlers

import (
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/gateway"
	"github.com/artjalyuzi/admin-panel/src/middleware"
	"github.com/artjalyuzi/admin-panel/src/models"
	"github.com/artjalyuzi/admin-panel/src/session"
	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the service list, create/edit forms and the
// delete confirmation flow.
type ServiceHandler struct {
	services *gateway.ServiceGateway
	sessions *session.Manager
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(services *gateway.ServiceGateway, sessions *session.Manager) *ServiceHandler {
	return &ServiceHandler{services: services, sessions: sessions}
}

// HandleList renders the service table. The page is re-fetched after
// every mutation, so it never diverges from backend truth.
func (h *ServiceHandler) HandleList(c *gin.Context) {
	data := basePage(c, "Services", "services")

	items, err := h.services.List(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		data["Error"] = err.Error()
		items = []models.Service{}
	}

	data["Services"] = items
	c.HTML(http.StatusOK, "services_list", data)
}

// HandleNewForm renders an empty create form.
func (h *ServiceHandler) HandleNewForm(c *gin.Context) {
	data := basePage(c, "New service", "services")
	data["Service"] = models.Service{}
	data["ImageURLs"] = ""
	c.HTML(http.StatusOK, "service_form", data)
}

// HandleCreate validates the form locally, then creates the service
// and returns to the list.
func (h *ServiceHandler) HandleCreate(c *gin.Context) {
	h.handleSubmit(c, "")
}

// HandleEditForm fetches the service and renders the form pre-filled.
func (h *ServiceHandler) HandleEditForm(c *gin.Context) {
	data := basePage(c, "Edit service", "services")

	svc, err := h.services.Get(c.Request.Context(), middleware.Token(c), c.Param("id"))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		session.SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusSeeOther, "/dashboard/services")
		return
	}

	data["Service"] = svc
	data["ImageURLs"] = imageURLLines(svc.Image)
	c.HTML(http.StatusOK, "service_form", data)
}

// HandleUpdate validates and submits the edit form.
func (h *ServiceHandler) HandleUpdate(c *gin.Context) {
	h.handleSubmit(c, c.Param("id"))
}

// handleSubmit is the shared create/update path. Required fields and
// the at-least-one-image rule are enforced here, before any network
// call is made.
func (h *ServiceHandler) handleSubmit(c *gin.Context, id string) {
	var form galleryForm
	_ = c.ShouldBind(&form)

	svc := models.Service{
		ID:            id,
		NameUz:        form.NameUz,
		NameRu:        form.NameRu,
		DescriptionUz: form.DescriptionUz,
		DescriptionRu: form.DescriptionRu,
		Image:         form.images(),
	}

	renderError := func(msg string) {
		data := basePage(c, "Service", "services")
		data["Error"] = msg
		data["Service"] = svc
		data["ImageURLs"] = form.ImageURLs
		c.HTML(http.StatusOK, "service_form", data)
	}

	if err := validate.Struct(form); err != nil {
		renderError(formErrorMessage(err))
		return
	}
	if len(svc.Image) == 0 {
		renderError("Please upload at least one image")
		return
	}

	var err error
	if id == "" {
		_, err = h.services.Create(c.Request.Context(), middleware.Token(c), svc)
	} else {
		_, err = h.services.Update(c.Request.Context(), middleware.Token(c), id, svc)
	}
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		renderError(err.Error())
		return
	}

	if id == "" {
		session.SetFlash(c, "success", "Service created successfully")
	} else {
		session.SetFlash(c, "success", "Service updated successfully")
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/services")
}

// HandleDeleteConfirm renders the confirmation page. Nothing is
// deleted until the confirmation form is posted back.
func (h *ServiceHandler) HandleDeleteConfirm(c *gin.Context) {
	svc, err := h.services.Get(c.Request.Context(), middleware.Token(c), c.Param("id"))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		session.SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusSeeOther, "/dashboard/services")
		return
	}

	data := basePage(c, "Delete service", "services")
	data["Kind"] = "service"
	data["Name"] = svc.NameUz
	data["CancelURL"] = "/dashboard/services"
	c.HTML(http.StatusOK, "confirm_delete", data)
}

// HandleDelete commits a confirmed delete and returns to the list.
func (h *ServiceHandler) HandleDelete(c *gin.Context) {
	err := h.services.Delete(c.Request.Context(), middleware.Token(c), c.Param("id"))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		session.SetFlash(c, "error", err.Error())
	} else {
		session.SetFlash(c, "success", "Service deleted successfully")
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/services")
}
