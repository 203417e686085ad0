package handlers

import (
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/gateway"
	"github.com/artjalyuzi/admin-panel/src/middleware"
	"github.com/artjalyuzi/admin-panel/src/models"
	"github.com/artjalyuzi/admin-panel/src/session"
	"github.com/gin-gonic/gin"
)

// ContactHandler serves the read-only contact submissions table.
type ContactHandler struct {
	contacts *gateway.ContactGateway
	sessions *session.Manager
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contacts *gateway.ContactGateway, sessions *session.Manager) *ContactHandler {
	return &ContactHandler{contacts: contacts, sessions: sessions}
}

// HandleList renders every contact submission.
func (h *ContactHandler) HandleList(c *gin.Context) {
	data := basePage(c, "Contacts", "contacts")

	items, err := h.contacts.List(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		data["Error"] = err.Error()
		items = []models.Contact{}
	}

	data["Contacts"] = items
	c.HTML(http.StatusOK, "contacts_list", data)
}
