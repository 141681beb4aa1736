package trip

import (
	"time"
)

// Trip is a catalogued excursion of an agency. MainImageURL and
// MainThumbnailURL mirror the image currently flagged as main; they are empty
// when no image is main.
type Trip struct {
	ID               string    `json:"id"`
	AgencyID         string    `json:"agency_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Destination      string    `json:"destination"`
	Published        bool      `json:"published"`
	MainImageURL     string    `json:"main_image_url"`
	MainThumbnailURL string    `json:"main_thumbnail_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Image is a stored photo of a trip. At most one image of a trip has
// IsMain set; the owning trip mirrors its URLs.
type Image struct {
	ID           string    `json:"id"`
	TripID       string    `json:"trip_id"`
	ImageURL     string    `json:"image_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	IsMain       bool      `json:"is_main"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// Item is a single included or excluded entry of a trip's description.
type Item struct {
	ID         string    `json:"id"`
	TripID     string    `json:"trip_id"`
	Name       string    `json:"name"`
	IsIncluded bool      `json:"is_included"`
	CreatedAt  time.Time `json:"created_at"`
}
