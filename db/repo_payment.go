package db

import (
	"context"

	"spacerental/models"

	"github.com/google/uuid"
)

// CreatePayment registers a pending payment intent. Settlement is the
// external provider's problem.
func (r *Repo) CreatePayment(ctx context.Context, userID, spaceID string, amount float64) (*models.Payment, error) {
	p := &models.Payment{
		ID:      uuid.NewString(),
		UserID:  userID,
		SpaceID: spaceID,
		Amount:  amount,
		Status:  models.PaymentStatusPending,
	}
	if err := r.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}
