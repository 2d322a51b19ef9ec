// Package entity defines the domain entities for the plants feature.
package entity

// Plant represents a plant tracked by a single owner.
// OwnerKey references the access key of the owning user; a plant keeps the
// same owner for its whole lifetime.
type Plant struct {
	// ID is the unique identifier for the plant, assigned by storage.
	ID uint `gorm:"primaryKey"`

	// CommonName is the everyday name of the plant.
	CommonName string `gorm:"size:255"`

	// ScientificName is the botanical name of the plant.
	ScientificName string `gorm:"size:255"`

	// Type is the kind of plant (tree, herb, succulent, ...).
	Type string `gorm:"size:255"`

	// Cycle is the plant's growth cycle (annual, perennial, ...).
	Cycle string `gorm:"size:255"`

	// Watering is the general watering frequency.
	Watering string `gorm:"size:255"`

	// WateringPeriod is the time of day the plant should be watered.
	WateringPeriod string `gorm:"size:255"`

	// WateringBenchmarkValue is the amount of time between waterings.
	WateringBenchmarkValue string `gorm:"size:255"`

	// WateringBenchmarkUnit is the unit for the benchmark value.
	WateringBenchmarkUnit string `gorm:"size:255"`

	// Sunlight is the amount of sunlight the plant needs.
	Sunlight string `gorm:"size:255"`

	// PetPoison reports whether the plant is poisonous to pets.
	PetPoison bool

	// HumanPoison reports whether the plant is poisonous to humans.
	HumanPoison bool

	// Description is a free-form description of the plant.
	Description string

	// ImageURL points at an image of the plant.
	ImageURL string `gorm:"size:2048"`

	// OwnerKey is the access key of the user that owns the plant.
	// It must reference an existing user and never changes.
	OwnerKey string `gorm:"index;size:64;not null"`

	// LastWatering is the date the plant was last watered.
	LastWatering string `gorm:"size:32"`

	// HealthHistory is an ordered series of health rankings, each 1-10.
	HealthHistory []int `gorm:"serializer:json"`
}

// TableName maps the entity to the "plant" table.
func (Plant) TableName() string {
	return "plant"
}
