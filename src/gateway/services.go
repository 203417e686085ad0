package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/models"
)

// ServiceGateway wraps the backend /services resource.
type ServiceGateway struct {
	client *Client
}

// NewServiceGateway creates a service gateway over the shared client.
func NewServiceGateway(client *Client) *ServiceGateway {
	return &ServiceGateway{client: client}
}

// List fetches all services. A non-array payload is coerced to an
// empty slice instead of an error.
func (g *ServiceGateway) List(ctx context.Context, token string) ([]models.Service, error) {
	var raw json.RawMessage
	if err := g.client.do(ctx, http.MethodGet, "/services", token, nil, &raw); err != nil {
		return nil, classify(err, "Failed to fetch services")
	}
	return decodeList[models.Service](raw), nil
}

// Get fetches one service. The image field arrives normalized to an
// array via models.ImageList.
func (g *ServiceGateway) Get(ctx context.Context, token, id string) (models.Service, error) {
	var svc models.Service
	if err := g.client.do(ctx, http.MethodGet, "/services/"+id, token, nil, &svc); err != nil {
		return models.Service{}, classify(err, "Failed to fetch service")
	}
	return svc, nil
}

// Create creates a service. A backend rejection surfaces as
// *ValidationError carrying the backend message.
func (g *ServiceGateway) Create(ctx context.Context, token string, svc models.Service) (models.Service, error) {
	var created models.Service
	if err := g.client.do(ctx, http.MethodPost, "/services", token, svc, &created); err != nil {
		return models.Service{}, classify(err, "Failed to create service")
	}
	return created, nil
}

// Update patches a service by id.
func (g *ServiceGateway) Update(ctx context.Context, token, id string, svc models.Service) (models.Service, error) {
	var updated models.Service
	if err := g.client.do(ctx, http.MethodPatch, "/services/"+id, token, svc, &updated); err != nil {
		return models.Service{}, classify(err, "Failed to update service")
	}
	return updated, nil
}

// Delete removes a service by id. Deleting an already-deleted id is an
// error to surface, not something to swallow.
func (g *ServiceGateway) Delete(ctx context.Context, token, id string) error {
	if err := g.client.do(ctx, http.MethodDelete, "/services/"+id, token, nil, nil); err != nil {
		return classify(err, "Failed to delete service")
	}
	return nil
}
