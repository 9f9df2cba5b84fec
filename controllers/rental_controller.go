package controllers

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"spacerental/app"
	"spacerental/db"
	"spacerental/models"
	"spacerental/schedule"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RentalStore is the slice of the repo the rental endpoints need; tests
// substitute a mock.
type RentalStore interface {
	CreateRental(ctx context.Context, rental *models.Rental) error
	ListRentals(ctx context.Context, f db.RentalFilter) ([]models.Rental, error)
	ListRentalsByUser(ctx context.Context, userID string) ([]models.Rental, error)
	FindRentalByID(ctx context.Context, id string) (*models.Rental, error)
	DeleteRentalByID(ctx context.Context, id string) error
	ListRentalSpans(ctx context.Context, spaceID string) ([]models.Rental, error)
	FindSpaceByID(ctx context.Context, id string) (*models.Space, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
}

type RentalController struct{ Store RentalStore }

func NewRentalController(store RentalStore) *RentalController {
	return &RentalController{Store: store}
}

type createRentalReq struct {
	UserID    string  `json:"userId"`
	SpaceID   string  `json:"spaceId"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Value     float64 `json:"value"` // accepted for wire compatibility, price is computed server side
}

// CreateRental validates the request, prices it from the space's hourly
// rate and hands the conflict check to the store.
func (rc *RentalController) CreateRental(c *gin.Context) {
	var in createRentalReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid request body"})
		return
	}
	if in.UserID == "" || in.SpaceID == "" || in.StartDate == "" || in.EndDate == "" ||
		in.StartTime == "" || in.EndTime == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "all fields are required"})
		return
	}
	if !validID(in.UserID) || !validID(in.SpaceID) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid id"})
		return
	}

	startDate, err := schedule.ParseDate(in.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	endDate, err := schedule.ParseDate(in.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}
	if endDate.Before(startDate) {
		c.JSON(http.StatusBadRequest, app.H{"error": "end_date must be on or after start_date"})
		return
	}
	if !schedule.ValidClock(in.StartTime) || !schedule.ValidClock(in.EndTime) {
		c.JSON(http.StatusBadRequest, app.H{"error": "times must be HH:MM"})
		return
	}
	// The daily window must be positive regardless of span length, or the
	// computed price goes negative.
	if schedule.Hours(in.StartTime, in.EndTime) <= 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": "endTime must be after startTime"})
		return
	}

	ctx := c.Request.Context()

	if _, err := rc.Store.FindUserByID(ctx, in.UserID); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to create rental"})
		return
	}
	space, err := rc.Store.FindSpaceByID(ctx, in.SpaceID)
	if err != nil {
		if errors.Is(err, models.ErrSpaceNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "space not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to create rental"})
		return
	}

	rental := &models.Rental{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		SpaceID:   in.SpaceID,
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Value:     schedule.TotalValue(startDate, endDate, in.StartTime, in.EndTime, space.PricePerHour),
	}

	if err := rc.Store.CreateRental(ctx, rental); err != nil {
		switch {
		case errors.Is(err, models.ErrRentalConflict):
			c.JSON(http.StatusConflict, app.H{"error": "time conflict: the space is already rented in this period"})
		case errors.Is(err, models.ErrSpaceNotFound):
			c.JSON(http.StatusNotFound, app.H{"error": "space not found"})
		default:
			c.JSON(http.StatusInternalServerError, app.H{"error": "failed to create rental"})
		}
		return
	}
	c.JSON(http.StatusCreated, rental)
}

// ListRentals filters by optional start_date (>=), end_date (<=) and
// spaceId, enriched with user and space projections.
func (rc *RentalController) ListRentals(c *gin.Context) {
	var f db.RentalFilter

	if v := c.Query("start_date"); v != "" {
		d, err := schedule.ParseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
		f.StartFrom = &d
	}
	if v := c.Query("end_date"); v != "" {
		d, err := schedule.ParseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "end_date must be YYYY-MM-DD"})
			return
		}
		f.EndUntil = &d
	}
	if v := c.Query("spaceId"); v != "" {
		if !validID(v) {
			c.JSON(http.StatusBadRequest, app.H{"error": "invalid space id"})
			return
		}
		f.SpaceID = v
	}

	rentals, err := rc.Store.ListRentals(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list rentals"})
		return
	}
	c.JSON(http.StatusOK, enrichRentals(rentals, true))
}

func (rc *RentalController) ListRentalsByUser(c *gin.Context) {
	userID := c.Param("userId")
	if !validID(userID) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid user id"})
		return
	}
	rentals, err := rc.Store.ListRentalsByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list rentals"})
		return
	}
	c.JSON(http.StatusOK, enrichRentals(rentals, false))
}

// DeleteRental removes a booking. Only the renter or an admin may do it.
func (rc *RentalController) DeleteRental(c *gin.Context) {
	rentalID := c.Param("rentalId")
	if !validID(rentalID) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid rental id"})
		return
	}

	rental, err := rc.Store.FindRentalByID(c.Request.Context(), rentalID)
	if err != nil {
		if errors.Is(err, models.ErrRentalNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "rental not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete rental"})
		return
	}
	if rental.UserID != currentUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, app.H{"error": "only the renter or an admin can delete a rental"})
		return
	}

	if err := rc.Store.DeleteRentalByID(c.Request.Context(), rentalID); err != nil {
		if errors.Is(err, models.ErrRentalNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "rental not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete rental"})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "rental deleted"})
}

// ListRentedDates expands every rental on the space into its constituent
// days: the calendar feed that greys out unavailable dates. A partially
// booked day counts as occupied.
func (rc *RentalController) ListRentedDates(c *gin.Context) {
	spaceID := c.Param("spaceId")
	if !validID(spaceID) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid space id"})
		return
	}

	spans, err := rc.Store.ListRentalSpans(c.Request.Context(), spaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list rented dates"})
		return
	}

	c.JSON(http.StatusOK, app.H{"dates": rentedDates(spans)})
}

func rentedDates(spans []models.Rental) []string {
	seen := make(map[string]struct{})
	for _, span := range spans {
		for _, d := range schedule.DatesBetween(span.StartDate, span.EndDate) {
			seen[schedule.FormatDate(d)] = struct{}{}
		}
	}
	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

func enrichRentals(rentals []models.Rental, withUser bool) []models.EnrichedRental {
	out := make([]models.EnrichedRental, 0, len(rentals))
	for _, r := range rentals {
		row := models.EnrichedRental{Rental: r}
		if withUser && r.User != nil {
			row.UserInfo = &models.UserSummary{ID: r.User.ID, Name: r.User.Name, Email: r.User.Email}
		}
		if r.Space != nil {
			s := r.Space.Summary()
			row.SpaceInfo = &s
		}
		row.User = nil
		row.Space = nil
		out = append(out, row)
	}
	return out
}
