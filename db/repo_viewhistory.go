package db

import (
	"context"
	"errors"
	"time"

	"spacerental/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegisterView appends to the user's bounded viewing history. A repeat
// view of the same space returns the existing row untouched; inserting
// past the cap evicts the oldest entry first.
func (r *Repo) RegisterView(ctx context.Context, userID, spaceID string) (*models.ViewHistory, bool, error) {
	var view models.ViewHistory
	created := false

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND space_id = ?", userID, spaceID).First(&view).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var n int64
		if err := tx.Model(&models.ViewHistory{}).
			Where("user_id = ?", userID).
			Count(&n).Error; err != nil {
			return err
		}
		if n >= models.ViewHistoryCap {
			var oldest models.ViewHistory
			if err := tx.Where("user_id = ?", userID).
				Order("viewed_at ASC").
				First(&oldest).Error; err != nil {
				return err
			}
			if err := tx.Delete(&oldest).Error; err != nil {
				return err
			}
		}

		view = models.ViewHistory{
			ID:       uuid.NewString(),
			UserID:   userID,
			SpaceID:  spaceID,
			ViewedAt: time.Now(),
		}
		created = true
		return tx.Create(&view).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &view, created, nil
}

// ViewHistoryPage is a paginated slice of a user's history.
type ViewHistoryPage struct {
	Data  []models.ViewHistory `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

func (r *Repo) ListViewsByUser(ctx context.Context, userID string, page, limit int) (ViewHistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > models.ViewHistoryCap {
		limit = models.ViewHistoryCap
	}

	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.ViewHistory{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return ViewHistoryPage{}, err
	}

	var views []models.ViewHistory
	if err := r.DB.WithContext(ctx).
		Preload("Space").
		Where("user_id = ?", userID).
		Order("viewed_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&views).Error; err != nil {
		return ViewHistoryPage{}, err
	}

	return ViewHistoryPage{Data: views, Total: total, Page: page, Limit: limit}, nil
}
