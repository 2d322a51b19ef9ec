// Package entity defines the domain entities for the catalog feature.
package entity

// Species is one entry from the external plant catalog, carrying the fields
// a client needs to prefill a tracked plant.
type Species struct {
	// ID is the catalog's identifier for the species.
	ID int `json:"id"`

	// CommonName is the everyday name of the species.
	CommonName string `json:"common_name"`

	// ScientificName lists the botanical names of the species.
	ScientificName []string `json:"scientific_name"`

	// Cycle is the species' growth cycle.
	Cycle string `json:"cycle"`

	// Watering is the general watering frequency.
	Watering string `json:"watering"`

	// Sunlight lists the sunlight conditions the species tolerates.
	Sunlight []string `json:"sunlight"`

	// ImageURL points at a representative image of the species.
	ImageURL string `json:"image_url"`
}
