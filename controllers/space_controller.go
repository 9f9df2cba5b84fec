package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"spacerental/app"
	"spacerental/db"
	"spacerental/geo"
	"spacerental/models"
	"spacerental/schedule"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpaceController struct{ *Srv }

func NewSpaceController(s *Srv) *SpaceController { return &SpaceController{Srv: s} }

type createSpaceReq struct {
	SpaceName      string   `json:"space_name" binding:"required"`
	Description    string   `json:"description" binding:"required,max=500"`
	SpaceType      string   `json:"space_type" binding:"required"`
	PricePerHour   float64  `json:"price_per_hour" binding:"required"`
	Area           float64  `json:"area" binding:"required"`
	MaxPeople      int      `json:"max_people" binding:"required"`
	Address        string   `json:"address" binding:"required"`
	SpaceAmenities []string `json:"space_amenities"`
	SpaceRules     []string `json:"space_rules"`
	WeekDays       []string `json:"week_days"`
	OpeningTime    string   `json:"opening_time"`
	ClosingTime    string   `json:"closing_time"`
	Images         []string `json:"images"`
	OwnerName      string   `json:"owner_name"`
	OwnerPhone     string   `json:"owner_phone"`
	OwnerEmail     string   `json:"owner_email"`
	DocumentNumber string   `json:"document_number"`
}

func validDocument(v string) bool {
	if len(v) != 11 && len(v) != 14 {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (sc *SpaceController) validateTaxonomies(c *gin.Context, amenities, rules, weekDays []string) bool {
	if bad := models.InvalidAmenities(amenities); len(bad) > 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid amenities", "invalidAmenities": bad})
		return false
	}
	if bad := models.InvalidRules(rules); len(bad) > 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid rules", "invalidRules": bad})
		return false
	}
	if bad := models.InvalidWeekDays(weekDays); len(bad) > 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid week days", "invalidDays": bad})
		return false
	}
	return true
}

func (sc *SpaceController) CreateSpace(c *gin.Context) {
	var in createSpaceReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "all required fields must be filled"})
		return
	}
	if in.PricePerHour <= 0 || in.Area <= 0 || in.MaxPeople <= 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": "price_per_hour, area and max_people must be positive"})
		return
	}
	if !models.IsAllowedSpaceType(in.SpaceType) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid space type"})
		return
	}
	if !sc.validateTaxonomies(c, in.SpaceAmenities, in.SpaceRules, in.WeekDays) {
		return
	}
	if in.OpeningTime != "" && !schedule.ValidClock(in.OpeningTime) {
		c.JSON(http.StatusBadRequest, app.H{"error": "opening_time must be HH:MM"})
		return
	}
	if in.ClosingTime != "" && !schedule.ValidClock(in.ClosingTime) {
		c.JSON(http.StatusBadRequest, app.H{"error": "closing_time must be HH:MM"})
		return
	}
	if in.DocumentNumber != "" && !validDocument(in.DocumentNumber) {
		c.JSON(http.StatusBadRequest, app.H{"error": "document_number must be a CPF (11 digits) or CNPJ (14 digits)"})
		return
	}

	location := models.Location{FormattedAddress: in.Address}
	if sc.Geo != nil {
		res, err := sc.Geo.ValidateAddress(c.Request.Context(), in.Address)
		if err != nil {
			if errors.Is(err, geo.ErrAddressNotFound) {
				c.JSON(http.StatusBadRequest, app.H{"error": "address could not be validated"})
				return
			}
			c.JSON(http.StatusInternalServerError, app.H{"error": "address validation failed"})
			return
		}
		location = models.Location{FormattedAddress: res.FormattedAddress, PlaceID: res.PlaceID}
	}

	sp := &models.Space{
		ID:             uuid.NewString(),
		OwnerID:        currentUserID(c),
		SpaceName:      in.SpaceName,
		Description:    in.Description,
		SpaceType:      in.SpaceType,
		PricePerHour:   in.PricePerHour,
		Area:           in.Area,
		MaxPeople:      in.MaxPeople,
		Location:       location,
		SpaceAmenities: orEmpty(in.SpaceAmenities),
		SpaceRules:     orEmpty(in.SpaceRules),
		WeekDays:       lowerAll(orEmpty(in.WeekDays)),
		Images:         orEmpty(in.Images),
		OpeningTime:    in.OpeningTime,
		ClosingTime:    in.ClosingTime,
		OwnerName:      in.OwnerName,
		OwnerPhone:     in.OwnerPhone,
		OwnerEmail:     in.OwnerEmail,
		DocumentNumber: in.DocumentNumber,
	}
	if err := sc.Repo.CreateSpace(c.Request.Context(), sp); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to create space"})
		return
	}
	c.JSON(http.StatusCreated, sp)
}

func (sc *SpaceController) GetSpace(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid space id"})
		return
	}
	sp, err := sc.Repo.FindSpaceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrSpaceNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "space not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to fetch space"})
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (sc *SpaceController) ListSpaces(c *gin.Context) {
	spaces, err := sc.Repo.ListSpaces(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list spaces"})
		return
	}
	c.JSON(http.StatusOK, spaces)
}

func (sc *SpaceController) ListSpacesByOwner(c *gin.Context) {
	ownerID := c.Param("ownerId")
	if !validID(ownerID) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid owner id"})
		return
	}
	spaces, err := sc.Repo.ListSpacesByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list spaces"})
		return
	}
	c.JSON(http.StatusOK, spaces)
}

// csvParam splits a comma separated query value, trimming blanks.
// Duplicates are the caller's error, not silently collapsed.
func csvParam(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func positiveFloat(c *gin.Context, name string) (*float64, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": name + " must be a positive number"})
		return nil, false
	}
	return &f, true
}

// SearchSpaces filters the catalog. Slice filters are ALL-of; unknown or
// duplicated taxonomy values are rejected.
func (sc *SpaceController) SearchSpaces(c *gin.Context) {
	f := db.SpaceFilter{
		SpaceType: c.Query("space_type"),
		OrderBy:   c.Query("order_by"),
	}

	var ok bool
	if f.MinPrice, ok = positiveFloat(c, "min_price"); !ok {
		return
	}
	if f.MaxPrice, ok = positiveFloat(c, "max_price"); !ok {
		return
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MaxPrice < *f.MinPrice {
		c.JSON(http.StatusBadRequest, app.H{"error": "max_price must be greater than min_price"})
		return
	}
	if f.MinArea, ok = positiveFloat(c, "min_area"); !ok {
		return
	}
	if f.MaxArea, ok = positiveFloat(c, "max_area"); !ok {
		return
	}
	if f.MinArea != nil && f.MaxArea != nil && *f.MaxArea < *f.MinArea {
		c.JSON(http.StatusBadRequest, app.H{"error": "max_area must be greater than min_area"})
		return
	}
	if v := c.Query("min_people"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, app.H{"error": "min_people must be a positive integer"})
			return
		}
		f.MinPeople = &n
	}

	if v := c.Query("amenities"); v != "" {
		f.Amenities = csvParam(v)
		if models.HasDuplicates(f.Amenities) {
			c.JSON(http.StatusBadRequest, app.H{"error": "duplicated amenities are not allowed"})
			return
		}
	}
	if v := c.Query("space_rules"); v != "" {
		f.Rules = csvParam(v)
		if models.HasDuplicates(f.Rules) {
			c.JSON(http.StatusBadRequest, app.H{"error": "duplicated rules are not allowed"})
			return
		}
	}
	if v := c.Query("week_days"); v != "" {
		f.WeekDays = lowerAll(csvParam(v))
		if models.HasDuplicates(f.WeekDays) {
			c.JSON(http.StatusBadRequest, app.H{"error": "duplicated week days are not allowed"})
			return
		}
	}
	if !sc.validateTaxonomies(c, f.Amenities, f.Rules, f.WeekDays) {
		return
	}

	spaces, err := sc.Repo.SearchSpaces(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to search spaces"})
		return
	}
	c.JSON(http.StatusOK, spaces)
}

type updateSpaceReq struct {
	SpaceName      *string  `json:"space_name"`
	Description    *string  `json:"description"`
	PricePerHour   *float64 `json:"price_per_hour"`
	Area           *float64 `json:"area"`
	MaxPeople      *int     `json:"max_people"`
	SpaceAmenities []string `json:"space_amenities"`
	SpaceRules     []string `json:"space_rules"`
	WeekDays       []string `json:"week_days"`
	Images         []string `json:"images"`
	OpeningTime    *string  `json:"opening_time"`
	ClosingTime    *string  `json:"closing_time"`
}

func (sc *SpaceController) UpdateSpace(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid space id"})
		return
	}

	sp, err := sc.Repo.FindSpaceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrSpaceNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "space not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update space"})
		return
	}
	if sp.OwnerID != currentUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, app.H{"error": "only the owner or an admin can update a space"})
		return
	}

	var in updateSpaceReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid request body"})
		return
	}
	if !sc.validateTaxonomies(c, in.SpaceAmenities, in.SpaceRules, in.WeekDays) {
		return
	}

	if in.SpaceName != nil {
		sp.SpaceName = *in.SpaceName
	}
	if in.Description != nil {
		sp.Description = *in.Description
	}
	if in.PricePerHour != nil {
		if *in.PricePerHour <= 0 {
			c.JSON(http.StatusBadRequest, app.H{"error": "price_per_hour must be positive"})
			return
		}
		sp.PricePerHour = *in.PricePerHour
	}
	if in.Area != nil {
		if *in.Area <= 0 {
			c.JSON(http.StatusBadRequest, app.H{"error": "area must be positive"})
			return
		}
		sp.Area = *in.Area
	}
	if in.MaxPeople != nil {
		if *in.MaxPeople <= 0 {
			c.JSON(http.StatusBadRequest, app.H{"error": "max_people must be positive"})
			return
		}
		sp.MaxPeople = *in.MaxPeople
	}
	if in.SpaceAmenities != nil {
		sp.SpaceAmenities = in.SpaceAmenities
	}
	if in.SpaceRules != nil {
		sp.SpaceRules = in.SpaceRules
	}
	if in.WeekDays != nil {
		sp.WeekDays = lowerAll(in.WeekDays)
	}
	if in.Images != nil {
		sp.Images = in.Images
	}
	if in.OpeningTime != nil {
		if !schedule.ValidClock(*in.OpeningTime) {
			c.JSON(http.StatusBadRequest, app.H{"error": "opening_time must be HH:MM"})
			return
		}
		sp.OpeningTime = *in.OpeningTime
	}
	if in.ClosingTime != nil {
		if !schedule.ValidClock(*in.ClosingTime) {
			c.JSON(http.StatusBadRequest, app.H{"error": "closing_time must be HH:MM"})
			return
		}
		sp.ClosingTime = *in.ClosingTime
	}

	if err := sc.Repo.UpdateSpace(c.Request.Context(), sp); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update space"})
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (sc *SpaceController) DeleteSpace(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid space id"})
		return
	}

	sp, err := sc.Repo.FindSpaceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrSpaceNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "space not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete space"})
		return
	}
	if sp.OwnerID != currentUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, app.H{"error": "only the owner or an admin can delete a space"})
		return
	}

	if err := sc.Repo.DeleteSpaceByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete space"})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "space deleted"})
}

func orEmpty(vs []string) []string {
	if vs == nil {
		return []string{}
	}
	return vs
}

func lowerAll(vs []string) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strings.ToLower(v)
	}
	return out
}
