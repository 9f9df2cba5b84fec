package models

import "time"

const PaymentStatusPending = "pending"

// Payment is a stub record: the marketplace only registers the intent,
// settlement happens with the external provider.
type Payment struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  string `gorm:"type:uuid;index;not null" json:"userId"`
	SpaceID string `gorm:"type:uuid;index;not null" json:"spaceId"`

	Amount float64 `gorm:"not null" json:"amount"`
	Status string  `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Payment) TableName() string { return "payments" }
