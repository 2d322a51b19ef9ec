// Package dto defines data transfer objects for the plants feature's HTTP
// transport layer, decoupling the wire shapes from the storage entities.
package dto

import "plantcare_backend/internal/feature/plants/domain/entity"

// PlantReq represents the plant payload accepted by the create, update and
// delete endpoints. For create the id is ignored; for update and delete the
// id and owner key select the stored row.
type PlantReq struct {
	ID                     uint   `json:"id"`
	CommonName             string `json:"common_name"`
	ScientificName         string `json:"scientific_name"`
	Type                   string `json:"type"`
	Cycle                  string `json:"cycle"`
	Watering               string `json:"watering"`
	WateringPeriod         string `json:"watering_period"`
	WateringBenchmarkValue string `json:"watering_benchmark_value"`
	WateringBenchmarkUnit  string `json:"watering_benchmark_unit"`
	Sunlight               string `json:"sunlight"`
	PetPoison              bool   `json:"pet_poison"`
	HumanPoison            bool   `json:"human_poison"`
	Description            string `json:"description"`
	ImageURL               string `json:"image_url"`
	OwnerKey               string `json:"owner_key"`
	LastWatering           string `json:"last_watering"`
	HealthHistory          []int  `json:"health_history"`
}

// ToEntity maps the request payload to a plant entity, field by field.
func (r PlantReq) ToEntity() *entity.Plant {
	return &entity.Plant{
		ID:                     r.ID,
		CommonName:             r.CommonName,
		ScientificName:         r.ScientificName,
		Type:                   r.Type,
		Cycle:                  r.Cycle,
		Watering:               r.Watering,
		WateringPeriod:         r.WateringPeriod,
		WateringBenchmarkValue: r.WateringBenchmarkValue,
		WateringBenchmarkUnit:  r.WateringBenchmarkUnit,
		Sunlight:               r.Sunlight,
		PetPoison:              r.PetPoison,
		HumanPoison:            r.HumanPoison,
		Description:            r.Description,
		ImageURL:               r.ImageURL,
		OwnerKey:               r.OwnerKey,
		LastWatering:           r.LastWatering,
		HealthHistory:          r.HealthHistory,
	}
}

// PlantResponse is the wire representation of a stored plant.
type PlantResponse struct {
	ID                     uint   `json:"id"`
	CommonName             string `json:"common_name"`
	ScientificName         string `json:"scientific_name"`
	Type                   string `json:"type"`
	Cycle                  string `json:"cycle"`
	Watering               string `json:"watering"`
	WateringPeriod         string `json:"watering_period"`
	WateringBenchmarkValue string `json:"watering_benchmark_value"`
	WateringBenchmarkUnit  string `json:"watering_benchmark_unit"`
	Sunlight               string `json:"sunlight"`
	PetPoison              bool   `json:"pet_poison"`
	HumanPoison            bool   `json:"human_poison"`
	Description            string `json:"description"`
	ImageURL               string `json:"image_url"`
	OwnerKey               string `json:"owner_key"`
	LastWatering           string `json:"last_watering"`
	HealthHistory          []int  `json:"health_history"`
}

// PlantResponseFromEntity maps a stored plant entity to its wire
// representation, field by field.
func PlantResponseFromEntity(p *entity.Plant) PlantResponse {
	return PlantResponse{
		ID:                     p.ID,
		CommonName:             p.CommonName,
		ScientificName:         p.ScientificName,
		Type:                   p.Type,
		Cycle:                  p.Cycle,
		Watering:               p.Watering,
		WateringPeriod:         p.WateringPeriod,
		WateringBenchmarkValue: p.WateringBenchmarkValue,
		WateringBenchmarkUnit:  p.WateringBenchmarkUnit,
		Sunlight:               p.Sunlight,
		PetPoison:              p.PetPoison,
		HumanPoison:            p.HumanPoison,
		Description:            p.Description,
		ImageURL:               p.ImageURL,
		OwnerKey:               p.OwnerKey,
		LastWatering:           p.LastWatering,
		HealthHistory:          p.HealthHistory,
	}
}

// PlantListResponseFromEntities maps a slice of stored plants to their wire
// representation. A user with no plants yields an empty list, not null.
func PlantListResponseFromEntities(plants []entity.Plant) []PlantResponse {
	out := make([]PlantResponse, 0, len(plants))
	for i := range plants {
		out = append(out, PlantResponseFromEntity(&plants[i]))
	}
	return out
}
