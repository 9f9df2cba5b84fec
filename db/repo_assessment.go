package db

import (
	"context"
	"errors"

	"spacerental/models"

	"gorm.io/gorm"
)

func (r *Repo) CreateAssessment(ctx context.Context, a *models.Assessment) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *Repo) FindAssessmentByID(ctx context.Context, id string) (*models.Assessment, error) {
	var a models.Assessment
	if err := r.DB.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrAssessmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

// UpdateAssessment touches only score and comment; authorship and space
// binding never change.
func (r *Repo) UpdateAssessment(ctx context.Context, id string, score *float64, comment *string) (*models.Assessment, error) {
	updates := map[string]any{}
	if score != nil {
		updates["score"] = *score
	}
	if comment != nil {
		updates["comment"] = *comment
	}
	if len(updates) > 0 {
		res := r.DB.WithContext(ctx).Model(&models.Assessment{}).
			Where("id = ?", id).
			Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, models.ErrAssessmentNotFound
		}
	}
	return r.FindAssessmentByID(ctx, id)
}

func (r *Repo) DeleteAssessmentByID(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Assessment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrAssessmentNotFound
	}
	return nil
}

func (r *Repo) ListAssessmentsBySpace(ctx context.Context, spaceID string) ([]models.Assessment, error) {
	var as []models.Assessment
	err := r.DB.WithContext(ctx).
		Where("space_id = ?", spaceID).
		Order("evaluation_date DESC").
		Find(&as).Error
	return as, err
}

func (r *Repo) ListAssessments(ctx context.Context) ([]models.Assessment, error) {
	var as []models.Assessment
	err := r.DB.WithContext(ctx).Order("evaluation_date DESC").Find(&as).Error
	return as, err
}

// TopRatedSpaces ranks spaces by average score: GROUP BY space, AVG,
// ORDER BY average descending, LIMIT 25, joined with the space display
// projection.
func (r *Repo) TopRatedSpaces(ctx context.Context) ([]models.TopRatedSpace, error) {
	var rows []models.TopRatedSpace
	err := r.DB.WithContext(ctx).
		Table("assessments").
		Select(`assessments.space_id AS space_id,
			AVG(assessments.score) AS average_score,
			COUNT(*) AS total_reviews,
			spaces.space_name AS space_name,
			spaces.price_per_hour AS price_per_hour,
			spaces.location_formatted_address AS location_formatted_address,
			spaces.location_place_id AS location_place_id`).
		Joins("JOIN spaces ON spaces.id = assessments.space_id").
		Group("assessments.space_id, spaces.space_name, spaces.price_per_hour, spaces.location_formatted_address, spaces.location_place_id").
		Order("average_score DESC").
		Limit(25).
		Scan(&rows).Error
	return rows, err
}
