package perenual

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"plantcare_backend/internal/feature/catalog/adapters/perenual/dto"
	"plantcare_backend/internal/feature/catalog/domain/entity"
	"plantcare_backend/internal/feature/catalog/usecase"
)

// Client is the SpeciesRepository implementation backed by the Perenual
// species-list endpoint.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements usecase.SpeciesRepository.
var _ usecase.SpeciesRepository = (*Client)(nil)

// NewClient creates a new Client instance with the given configuration and
// HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Search queries the species-list endpoint and maps the response to domain
// species entries.
func (c *Client) Search(ctx context.Context, query string) ([]entity.Species, error) {
	q := url.Values{}
	q.Set("key", c.cfg.APIKey)
	q.Set("q", query)

	u := fmt.Sprintf("%s/api/species-list?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("perenual http %d", res.StatusCode)
	}

	var body dto.SpeciesListResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	species := make([]entity.Species, 0, len(body.Data))
	for _, d := range body.Data {
		s := entity.Species{
			ID:             d.ID,
			CommonName:     d.CommonName,
			ScientificName: d.ScientificName,
			Cycle:          d.Cycle,
			Watering:       d.Watering,
			Sunlight:       d.Sunlight,
		}
		if d.DefaultImage != nil {
			s.ImageURL = d.DefaultImage.RegularURL
		}
		species = append(species, s)
	}
	return species, nil
}
