package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"spacerental/app"
	"spacerental/models"

	"github.com/gin-gonic/gin"
)

type ViewHistoryController struct{ *Srv }

func NewViewHistoryController(s *Srv) *ViewHistoryController {
	return &ViewHistoryController{Srv: s}
}

type registerViewReq struct {
	UserID  string `json:"user_id"`
	SpaceID string `json:"space_id"`
}

// RegisterView appends a space view to the user's history. A redis
// throttle short-circuits repeated hits for the same pair so browsing
// back and forth does not hammer the database.
func (vc *ViewHistoryController) RegisterView(c *gin.Context) {
	var in registerViewReq
	if err := c.ShouldBindJSON(&in); err != nil || in.UserID == "" || in.SpaceID == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "user_id and space_id are required"})
		return
	}
	if !validID(in.UserID) || !validID(in.SpaceID) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid id"})
		return
	}

	ctx := c.Request.Context()

	if !vc.Throttle.Once(ctx, "view:"+in.UserID+":"+in.SpaceID) {
		c.JSON(http.StatusOK, app.H{"message": "view already registered"})
		return
	}

	if _, err := vc.Repo.FindUserByID(ctx, in.UserID); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to register view"})
		return
	}

	view, created, err := vc.Repo.RegisterView(ctx, in.UserID, in.SpaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to register view"})
		return
	}
	if !created {
		c.JSON(http.StatusOK, app.H{"message": "view already registered", "view": view})
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (vc *ViewHistoryController) ListByUser(c *gin.Context) {
	userID := c.Param("userId")
	if !validID(userID) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid user id"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := vc.Repo.ListViewsByUser(c.Request.Context(), userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to fetch view history"})
		return
	}

	totalPages := (result.Total + int64(result.Limit) - 1) / int64(result.Limit)
	c.JSON(http.StatusOK, app.H{
		"data": result.Data,
		"pagination": app.H{
			"total":           result.Total,
			"totalPages":      totalPages,
			"currentPage":     result.Page,
			"limit":           result.Limit,
			"hasNextPage":     int64(result.Page) < totalPages,
			"hasPreviousPage": result.Page > 1,
		},
	})
}
