package db

import (
	"context"
	"errors"

	"spacerental/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ToggleFavorite adds the (user, space) pair or removes it when already
// present. Returns the resulting favorited state.
func (r *Repo) ToggleFavorite(ctx context.Context, userID, spaceID string) (bool, error) {
	var favorited bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var fav models.Favorite
		err := tx.Where("user_id = ? AND space_id = ?", userID, spaceID).First(&fav).Error
		switch {
		case err == nil:
			favorited = false
			return tx.Delete(&fav).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			favorited = true
			return tx.Create(&models.Favorite{
				ID:      uuid.NewString(),
				UserID:  userID,
				SpaceID: spaceID,
			}).Error
		default:
			return err
		}
	})
	return favorited, err
}

func (r *Repo) ListFavoritesByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	var favs []models.Favorite
	err := r.DB.WithContext(ctx).
		Preload("Space").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favs).Error
	return favs, err
}
