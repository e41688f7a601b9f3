package models

// House is the root entity every other record points at. It owns no children
// directly; systems, incidents, parkings, vehicles and contacts reference it
// by id and carry a denormalized copy of its name.
type House struct {
	ID            string `json:"id"`
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address"`
	MapsURL       string `json:"mapsUrl"`
	CoverImageURL string `json:"coverImageUrl"`
	Notes         string `json:"notes"`
}
