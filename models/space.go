package models

import "time"

// Location is the geocoder projection stored with a space.
type Location struct {
	FormattedAddress string `gorm:"size:255" json:"formatted_address"`
	PlaceID          string `gorm:"size:255" json:"place_id"`
}

type Space struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   string `gorm:"type:uuid;index;not null" json:"ownerId"`
	SpaceName string `gorm:"size:200;not null" json:"space_name"`

	Description  string  `gorm:"size:500" json:"description"`
	SpaceType    string  `gorm:"size:40;not null" json:"space_type"`
	PricePerHour float64 `gorm:"not null" json:"price_per_hour"`
	Area         float64 `gorm:"not null" json:"area"`
	MaxPeople    int     `gorm:"not null" json:"max_people"`

	Location Location `gorm:"embedded;embeddedPrefix:location_" json:"location"`

	SpaceAmenities []string `gorm:"serializer:json;type:jsonb" json:"space_amenities"`
	SpaceRules     []string `gorm:"serializer:json;type:jsonb" json:"space_rules"`
	WeekDays       []string `gorm:"serializer:json;type:jsonb" json:"week_days"`
	Images         []string `gorm:"serializer:json;type:jsonb" json:"images"`

	OpeningTime string `gorm:"size:5" json:"opening_time"`
	ClosingTime string `gorm:"size:5" json:"closing_time"`

	OwnerName      string `gorm:"size:200" json:"owner_name"`
	OwnerPhone     string `gorm:"size:32" json:"owner_phone"`
	OwnerEmail     string `gorm:"size:255" json:"owner_email"`
	DocumentNumber string `gorm:"size:14" json:"document_number"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Space) TableName() string { return "spaces" }

// SpaceSummary is the display projection joined onto rentals, favorites
// and view history rows.
type SpaceSummary struct {
	ID           string   `json:"id"`
	SpaceName    string   `json:"space_name"`
	PricePerHour float64  `json:"price_per_hour"`
	Location     Location `json:"location"`
}

func (s *Space) Summary() SpaceSummary {
	return SpaceSummary{
		ID:           s.ID,
		SpaceName:    s.SpaceName,
		PricePerHour: s.PricePerHour,
		Location:     s.Location,
	}
}
