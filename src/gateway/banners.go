package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/artjalyuzi/admin-panel/src/models"
)

// BannerGateway wraps the backend /banners resource. Banners carry a
// single image, so no array normalization applies here.
type BannerGateway struct {
	client *Client
}

// NewBannerGateway creates a banner gateway over the shared client.
func NewBannerGateway(client *Client) *BannerGateway {
	return &BannerGateway{client: client}
}

// List fetches all banners, coercing non-array payloads to empty.
func (g *BannerGateway) List(ctx context.Context, token string) ([]models.Banner, error) {
	var raw json.RawMessage
	if err := g.client.do(ctx, http.MethodGet, "/banners", token, nil, &raw); err != nil {
		return nil, classify(err, "Failed to fetch banners")
	}
	return decodeList[models.Banner](raw), nil
}

// Get fetches one banner.
func (g *BannerGateway) Get(ctx context.Context, token, id string) (models.Banner, error) {
	var b models.Banner
	if err := g.client.do(ctx, http.MethodGet, "/banners/"+id, token, nil, &b); err != nil {
		return models.Banner{}, classify(err, "Failed to fetch banner")
	}
	return b, nil
}

// Create creates a banner.
func (g *BannerGateway) Create(ctx context.Context, token string, b models.Banner) (models.Banner, error) {
	var created models.Banner
	if err := g.client.do(ctx, http.MethodPost, "/banners", token, b, &created); err != nil {
		return models.Banner{}, classify(err, "Failed to create banner")
	}
	return created, nil
}

// Update patches a banner by id.
func (g *BannerGateway) Update(ctx context.Context, token, id string, b models.Banner) (models.Banner, error) {
	var updated models.Banner
	if err := g.client.do(ctx, http.MethodPatch, "/banners/"+id, token, b, &updated); err != nil {
		return models.Banner{}, classify(err, "Failed to update banner")
	}
	return updated, nil
}

// Delete removes a banner by id.
func (g *BannerGateway) Delete(ctx context.Context, token, id string) error {
	if err := g.client.do(ctx, http.MethodDelete, "/banners/"+id, token, nil, nil); err != nil {
		return classify(err, "Failed to delete banner")
	}
	return nil
}
