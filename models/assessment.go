package models

import "time"

// Assessment is a 0..5 star review of a space.
type Assessment struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	SpaceID string `gorm:"type:uuid;index;not null" json:"spaceId"`
	UserID  string `gorm:"type:uuid;index;not null" json:"userId"`

	Score   float64 `gorm:"not null" json:"score"`
	Comment string  `gorm:"size:1000" json:"comment,omitempty"`

	EvaluationDate time.Time `gorm:"not null" json:"evaluation_date"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (Assessment) TableName() string { return "assessments" }

// TopRatedSpace is one row of the top-25-by-average ranking.
type TopRatedSpace struct {
	SpaceID      string   `json:"spaceId"`
	AverageScore float64  `json:"averageScore"`
	TotalReviews int64    `json:"totalReviews"`
	SpaceName    string   `json:"space_name"`
	PricePerHour float64  `json:"price_per_hour"`
	Location     Location `gorm:"embedded;embeddedPrefix:location_" json:"location"`
}
