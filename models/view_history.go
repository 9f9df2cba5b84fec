package models

import "time"

// ViewHistoryCap bounds the per-user history: inserting the 11th view
// evicts the oldest.
const ViewHistoryCap = 10

type ViewHistory struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  string `gorm:"type:uuid;index;not null" json:"user_id"`
	SpaceID string `gorm:"type:uuid;index;not null" json:"space_id"`

	ViewedAt  time.Time `gorm:"index;not null" json:"viewed_at"`
	CreatedAt time.Time `json:"createdAt"`

	Space *Space `gorm:"foreignKey:SpaceID" json:"space,omitempty"`
}

func (ViewHistory) TableName() string { return "view_history" }
