package db

import (
	"context"
	"encoding/json"
	"errors"

	"spacerental/models"

	"gorm.io/gorm"
)

func (r *Repo) CreateSpace(ctx context.Context, s *models.Space) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *Repo) FindSpaceByID(ctx context.Context, id string) (*models.Space, error) {
	var s models.Space
	if err := r.DB.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrSpaceNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repo) UpdateSpace(ctx context.Context, s *models.Space) error {
	return r.DB.WithContext(ctx).Save(s).Error
}

func (r *Repo) DeleteSpaceByID(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Space{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrSpaceNotFound
	}
	return nil
}

func (r *Repo) ListSpaces(ctx context.Context) ([]models.Space, error) {
	var spaces []models.Space
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&spaces).Error
	return spaces, err
}

func (r *Repo) ListSpacesByOwner(ctx context.Context, ownerID string) ([]models.Space, error) {
	var spaces []models.Space
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&spaces).Error
	return spaces, err
}

// SpaceFilter narrows the catalog search. Slice filters are ALL-of:
// a space matches only when it carries every requested value.
type SpaceFilter struct {
	SpaceType string
	MinPrice  *float64
	MaxPrice  *float64
	MinArea   *float64
	MaxArea   *float64
	MinPeople *int
	Amenities []string
	Rules     []string
	WeekDays  []string
	OrderBy   string // asc | desc | recent | "" (rating)
}

const searchLimit = 100

func jsonArray(vs []string) string {
	b, _ := json.Marshal(vs)
	return string(b)
}

// ratingOrder sorts by average review score, unreviewed spaces last. Kept
// as a plain string: gorm's Order only accepts strings and OrderBy clauses.
const ratingOrder = "(SELECT AVG(a.score) FROM assessments a WHERE a.space_id = spaces.id) DESC NULLS LAST"

func (r *Repo) SearchSpaces(ctx context.Context, f SpaceFilter) ([]models.Space, error) {
	var spaces []models.Space
	if err := r.searchQuery(ctx, f).Find(&spaces).Error; err != nil {
		return nil, err
	}
	return spaces, nil
}

func (r *Repo) searchQuery(ctx context.Context, f SpaceFilter) *gorm.DB {
	q := r.DB.WithContext(ctx).Model(&models.Space{}).Limit(searchLimit)

	if f.SpaceType != "" {
		q = q.Where("space_type = ?", f.SpaceType)
	}
	if f.MinPrice != nil {
		q = q.Where("price_per_hour >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price_per_hour <= ?", *f.MaxPrice)
	}
	if f.MinArea != nil {
		q = q.Where("area >= ?", *f.MinArea)
	}
	if f.MaxArea != nil {
		q = q.Where("area <= ?", *f.MaxArea)
	}
	if f.MinPeople != nil {
		q = q.Where("max_people >= ?", *f.MinPeople)
	}
	if len(f.Amenities) > 0 {
		q = q.Where("space_amenities @> ?::jsonb", jsonArray(f.Amenities))
	}
	if len(f.Rules) > 0 {
		q = q.Where("space_rules @> ?::jsonb", jsonArray(f.Rules))
	}
	if len(f.WeekDays) > 0 {
		q = q.Where("week_days @> ?::jsonb", jsonArray(f.WeekDays))
	}

	switch f.OrderBy {
	case "asc":
		q = q.Order("price_per_hour ASC")
	case "desc":
		q = q.Order("price_per_hour DESC")
	case "recent":
		q = q.Order("created_at DESC")
	default:
		q = q.Order(ratingOrder)
	}

	return q
}
