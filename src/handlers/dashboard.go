package handlers

import (
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/gateway"
	"github.com/artjalyuzi/admin-panel/src/middleware"
	"github.com/artjalyuzi/admin-panel/src/models"
	"github.com/artjalyuzi/admin-panel/src/session"
	"github.com/gin-gonic/gin"
)

// recentContacts caps the dashboard home listing.
const recentContacts = 10

// DashboardHandler serves the dashboard home page with the most
// recent contact requests.
type DashboardHandler struct {
	contacts *gateway.ContactGateway
	sessions *session.Manager
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(contacts *gateway.ContactGateway, sessions *session.Manager) *DashboardHandler {
	return &DashboardHandler{contacts: contacts, sessions: sessions}
}

// HandleHome renders the dashboard home page.
func (h *DashboardHandler) HandleHome(c *gin.Context) {
	data := basePage(c, "Dashboard", "dashboard")

	items, err := h.contacts.List(c.Request.Context(), middleware.Token(c))
	if err != nil {
		if forceLogoutOnAuthError(c, h.sessions, err) {
			return
		}
		data["Error"] = err.Error()
		items = []models.Contact{}
	}
	if len(items) > recentContacts {
		items = items[:recentContacts]
	}

	data["Contacts"] = items
	c.HTML(http.StatusOK, "dashboard", data)
}
