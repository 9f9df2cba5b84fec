package db

import (
	"context"
	"errors"
	"strings"

	"spacerental/models"

	"gorm.io/gorm"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

// Users

func (r *Repo) CreateUser(ctx context.Context, u *models.User) error {
	err := r.DB.WithContext(ctx).Create(u).Error
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return models.ErrDuplicateEmail
	}
	return err
}

func (r *Repo) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// EmailTaken checks uniqueness excluding the user being updated.
func (r *Repo) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&n).Error
	return n > 0, err
}

func (r *Repo) UpdateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Save(u).Error
}

func (r *Repo) DeleteUserByID(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// UserWithRentedSpaces is the admin listing row: the user plus the spaces
// they have rented.
type UserWithRentedSpaces struct {
	models.User
	RentedSpaces []models.SpaceSummary `json:"rentedSpaces"`
}

func (r *Repo) ListUsersWithRentals(ctx context.Context) ([]UserWithRentedSpaces, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]UserWithRentedSpaces, 0, len(users))
	for _, u := range users {
		var rentals []models.Rental
		if err := r.DB.WithContext(ctx).
			Preload("Space").
			Where("user_id = ?", u.ID).
			Find(&rentals).Error; err != nil {
			return nil, err
		}
		row := UserWithRentedSpaces{User: u, RentedSpaces: []models.SpaceSummary{}}
		for _, rt := range rentals {
			if rt.Space != nil {
				row.RentedSpaces = append(row.RentedSpaces, rt.Space.Summary())
			}
		}
		out = append(out, row)
	}
	return out, nil
}
