package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/models"
)

// PortfolioGateway wraps the backend /portfolios resource.
type PortfolioGateway struct {
	client *Client
}

// NewPortfolioGateway creates a portfolio gateway over the shared client.
func NewPortfolioGateway(client *Client) *PortfolioGateway {
	return &PortfolioGateway{client: client}
}

// List fetches all portfolios, coercing non-array payloads to empty.
func (g *PortfolioGateway) List(ctx context.Context, token string) ([]models.Portfolio, error) {
	var raw json.RawMessage
	if err := g.client.do(ctx, http.MethodGet, "/portfolios", token, nil, &raw); err != nil {
		return nil, classify(err, "Failed to fetch portfolios")
	}
	return decodeList[models.Portfolio](raw), nil
}

// Get fetches one portfolio with its image field normalized to an array.
func (g *PortfolioGateway) Get(ctx context.Context, token, id string) (models.Portfolio, error) {
	var p models.Portfolio
	if err := g.client.do(ctx, http.MethodGet, "/portfolios/"+id, token, nil, &p); err != nil {
		return models.Portfolio{}, classify(err, "Failed to fetch portfolio")
	}
	return p, nil
}

// Create creates a portfolio.
func (g *PortfolioGateway) Create(ctx context.Context, token string, p models.Portfolio) (models.Portfolio, error) {
	var created models.Portfolio
	if err := g.client.do(ctx, http.MethodPost, "/portfolios", token, p, &created); err != nil {
		return models.Portfolio{}, classify(err, "Failed to create portfolio")
	}
	return created, nil
}

// Update patches a portfolio by id.
func (g *PortfolioGateway) Update(ctx context.Context, token, id string, p models.Portfolio) (models.Portfolio, error) {
	var updated models.Portfolio
	if err := g.client.do(ctx, http.MethodPatch, "/portfolios/"+id, token, p, &updated); err != nil {
		return models.Portfolio{}, classify(err, "Failed to update portfolio")
	}
	return updated, nil
}

// Delete removes a portfolio by id.
func (g *PortfolioGateway) Delete(ctx context.Context, token, id string) error {
	if err := g.client.do(ctx, http.MethodDelete, "/portfolios/"+id, token, nil, nil); err != nil {
		return classify(err, "Failed to delete portfolio")
	}
	return nil
}
