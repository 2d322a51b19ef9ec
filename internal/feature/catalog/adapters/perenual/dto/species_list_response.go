// Package dto defines the wire shapes returned by the Perenual species API.
package dto

// SpeciesListResponse is the top-level payload of the species-list endpoint.
type SpeciesListResponse struct {
	Data []SpeciesData `json:"data"`
}

// SpeciesData is one species entry as returned by the API.
type SpeciesData struct {
	ID             int           `json:"id"`
	CommonName     string        `json:"common_name"`
	ScientificName []string      `json:"scientific_name"`
	Cycle          string        `json:"cycle"`
	Watering       string        `json:"watering"`
	Sunlight       []string      `json:"sunlight"`
	DefaultImage   *SpeciesImage `json:"default_image"`
}

// SpeciesImage carries the image URLs attached to a species entry.
type SpeciesImage struct {
	OriginalURL string `json:"original_url"`
	RegularURL  string `json:"regular_url"`
	Thumbnail   string `json:"thumbnail"`
}
