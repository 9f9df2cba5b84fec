package controllers

import (
	"errors"
	"net/http"
	"time"

	"spacerental/app"
	"spacerental/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssessmentController struct{ *Srv }

func NewAssessmentController(s *Srv) *AssessmentController { return &AssessmentController{Srv: s} }

type createAssessmentReq struct {
	SpaceID string   `json:"spaceID"`
	UserID  string   `json:"userID"`
	Score   *float64 `json:"score"`
	Comment string   `json:"comment"`
}

func (asc *AssessmentController) CreateAssessment(c *gin.Context) {
	var in createAssessmentReq
	if err := c.ShouldBindJSON(&in); err != nil || in.SpaceID == "" || in.UserID == "" || in.Score == nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "spaceID, userID and score are required"})
		return
	}
	if *in.Score < 0 || *in.Score > 5 {
		c.JSON(http.StatusBadRequest, app.H{"error": "score must be between 0 and 5 stars"})
		return
	}
	if !validID(in.SpaceID) || !validID(in.UserID) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid id"})
		return
	}

	a := &models.Assessment{
		ID:             uuid.NewString(),
		SpaceID:        in.SpaceID,
		UserID:         in.UserID,
		Score:          *in.Score,
		Comment:        in.Comment,
		EvaluationDate: time.Now(),
	}
	if err := asc.Repo.CreateAssessment(c.Request.Context(), a); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to create assessment"})
		return
	}
	// A new review changes the ranking.
	_ = asc.Cache.Invalidate(c.Request.Context(), "top-rated-spaces")

	c.JSON(http.StatusCreated, a)
}

type updateAssessmentReq struct {
	Score   *float64 `json:"score"`
	Comment *string  `json:"comment"`
}

func (asc *AssessmentController) UpdateAssessment(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid assessment id"})
		return
	}

	var in updateAssessmentReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid request body"})
		return
	}
	if in.Score != nil && (*in.Score < 0 || *in.Score > 5) {
		c.JSON(http.StatusBadRequest, app.H{"error": "score must be between 0 and 5 stars"})
		return
	}

	a, err := asc.Repo.UpdateAssessment(c.Request.Context(), id, in.Score, in.Comment)
	if err != nil {
		if errors.Is(err, models.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "assessment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update assessment"})
		return
	}
	_ = asc.Cache.Invalidate(c.Request.Context(), "top-rated-spaces")

	c.JSON(http.StatusOK, a)
}

// DeleteAssessment allows only the author or an admin.
func (asc *AssessmentController) DeleteAssessment(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid assessment id"})
		return
	}

	a, err := asc.Repo.FindAssessmentByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "assessment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete assessment"})
		return
	}
	if a.UserID != currentUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, app.H{"error": "only the author or an admin can delete an assessment"})
		return
	}

	if err := asc.Repo.DeleteAssessmentByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete assessment"})
		return
	}
	_ = asc.Cache.Invalidate(c.Request.Context(), "top-rated-spaces")

	c.JSON(http.StatusOK, app.H{"message": "assessment deleted"})
}

func (asc *AssessmentController) ListBySpace(c *gin.Context) {
	spaceID := c.Param("spaceId")
	if !validID(spaceID) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid space id"})
		return
	}
	as, err := asc.Repo.ListAssessmentsBySpace(c.Request.Context(), spaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list assessments"})
		return
	}
	c.JSON(http.StatusOK, as)
}

func (asc *AssessmentController) ListAll(c *gin.Context) {
	as, err := asc.Repo.ListAssessments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list assessments"})
		return
	}
	c.JSON(http.StatusOK, as)
}

// TopRated serves the top 25 spaces by average score, cached briefly in
// redis since the ranking tolerates staleness.
func (asc *AssessmentController) TopRated(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.TopRatedSpace
	if ok, _ := asc.Cache.Get(ctx, "top-rated-spaces", &cached); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := asc.Repo.TopRatedSpaces(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to rank spaces"})
		return
	}
	_ = asc.Cache.Set(ctx, "top-rated-spaces", rows)
	c.JSON(http.StatusOK, rows)
}
