package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/models"
)

// ContactGateway wraps the backend /contacts resource. Contacts are
// created by the public site; the admin panel only reads them.
type ContactGateway struct {
	client *Client
}

// NewContactGateway creates a contact gateway over the shared client.
func NewContactGateway(client *Client) *ContactGateway {
	return &ContactGateway{client: client}
}

// List fetches all contact submissions, coercing non-array payloads
// to empty.
func (g *ContactGateway) List(ctx context.Context, token string) ([]models.Contact, error) {
	var raw json.RawMessage
	if err := g.client.do(ctx, http.MethodGet, "/contacts", token, nil, &raw); err != nil {
		return nil, classify(err, "Failed to fetch contacts")
	}
	return decodeList[models.Contact](raw), nil
}
