package models

import "time"

// Rental books a space for an inclusive calendar range plus an intraday
// HH:MM window. Dates are stored date-only; the time of day lives in
// StartTime/EndTime. Rentals are never updated in place.
type Rental struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  string `gorm:"type:uuid;index;not null" json:"userId"`
	SpaceID string `gorm:"type:uuid;index:idx_rentals_space_range,priority:1;not null" json:"spaceId"`

	StartDate time.Time `gorm:"type:date;index:idx_rentals_space_range,priority:2;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;index:idx_rentals_space_range,priority:3;not null" json:"end_date"`
	StartTime string    `gorm:"size:5;not null" json:"startTime"`
	EndTime   string    `gorm:"size:5;not null" json:"endTime"`

	Value float64 `gorm:"not null" json:"value"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Space *Space `gorm:"foreignKey:SpaceID" json:"space,omitempty"`
}

func (Rental) TableName() string { return "rentals" }

// UserSummary is the user projection attached to enriched rental rows.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EnrichedRental is the list shape: the rental plus display projections
// of its user and space.
type EnrichedRental struct {
	Rental
	UserInfo  *UserSummary  `json:"userInfo,omitempty"`
	SpaceInfo *SpaceSummary `json:"spaceInfo,omitempty"`
}
