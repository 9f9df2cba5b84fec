package models

import "time"

// Favorite marks a space as saved by a user. A composite unique index
// keeps one row per (user, space) pair.
type Favorite struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  string `gorm:"type:uuid;uniqueIndex:idx_favorites_user_space;not null" json:"userId"`
	SpaceID string `gorm:"type:uuid;uniqueIndex:idx_favorites_user_space;not null" json:"spaceId"`

	CreatedAt time.Time `json:"createdAt"`

	Space *Space `gorm:"foreignKey:SpaceID" json:"space,omitempty"`
}

func (Favorite) TableName() string { return "favorites" }
