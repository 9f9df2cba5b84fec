package db

import (
	"context"
	"errors"
	"time"

	"spacerental/models"
	"spacerental/schedule"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateRental runs the conflict check and the insert in one transaction
// while holding the space row under FOR UPDATE. Two concurrent requests
// for the same space serialize on that lock, so both cannot pass the
// check before either insert commits.
func (r *Repo) CreateRental(ctx context.Context, rental *models.Rental) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sp models.Space
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sp, "id = ?", rental.SpaceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrSpaceNotFound
			}
			return err
		}

		// Candidates whose stored [start_date, end_date] touches the
		// requested range, inclusive on both ends.
		var existing []models.Rental
		if err := tx.
			Where("space_id = ? AND start_date <= ? AND end_date >= ?",
				rental.SpaceID, rental.EndDate, rental.StartDate).
			Find(&existing).Error; err != nil {
			return err
		}

		for _, ex := range existing {
			if schedule.HasTimeConflict(
				ex.StartDate, ex.EndDate, ex.StartTime, ex.EndTime,
				rental.StartDate, rental.EndDate, rental.StartTime, rental.EndTime,
			) {
				return models.ErrRentalConflict
			}
		}

		return tx.Create(rental).Error
	})
}

// RentalFilter narrows the rental listing. Date bounds are inclusive.
type RentalFilter struct {
	StartFrom *time.Time // rentals starting on/after this date
	EndUntil  *time.Time // rentals ending on/before this date
	SpaceID   string
}

func (r *Repo) ListRentals(ctx context.Context, f RentalFilter) ([]models.Rental, error) {
	q := r.DB.WithContext(ctx).
		Preload("User").
		Preload("Space").
		Order("start_date ASC")
	if f.StartFrom != nil {
		q = q.Where("start_date >= ?", *f.StartFrom)
	}
	if f.EndUntil != nil {
		q = q.Where("end_date <= ?", *f.EndUntil)
	}
	if f.SpaceID != "" {
		q = q.Where("space_id = ?", f.SpaceID)
	}

	var rentals []models.Rental
	if err := q.Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *Repo) ListRentalsByUser(ctx context.Context, userID string) ([]models.Rental, error) {
	var rentals []models.Rental
	err := r.DB.WithContext(ctx).
		Preload("Space").
		Where("user_id = ?", userID).
		Order("start_date ASC").
		Find(&rentals).Error
	return rentals, err
}

func (r *Repo) FindRentalByID(ctx context.Context, id string) (*models.Rental, error) {
	var rental models.Rental
	if err := r.DB.WithContext(ctx).First(&rental, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRentalNotFound
		}
		return nil, err
	}
	return &rental, nil
}

func (r *Repo) DeleteRentalByID(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Rental{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrRentalNotFound
	}
	return nil
}

// ListRentalSpans returns only the date columns for a space, the feed for
// the rented-dates expansion.
func (r *Repo) ListRentalSpans(ctx context.Context, spaceID string) ([]models.Rental, error) {
	var spans []models.Rental
	err := r.DB.WithContext(ctx).
		Select("id", "start_date", "end_date").
		Where("space_id = ?", spaceID).
		Find(&spans).Error
	return spans, err
}
