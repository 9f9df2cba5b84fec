package controllers

import (
	"errors"
	"net/http"

	"spacerental/app"
	"spacerental/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

type createUserReq struct {
	Name      string `json:"name" binding:"required"`
	Surname   string `json:"surname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Telephone string `json:"telephone" binding:"required"`
	Role      string `json:"role" binding:"required"`
	CpfCnpj   string `json:"cpfCnpj"`
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var in createUserReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "all required fields must be filled"})
		return
	}
	if !models.IsValidRole(in.Role) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid role"})
		return
	}
	// A locatario signs contracts, so the document is mandatory.
	if in.Role == models.RoleLocatario && in.CpfCnpj == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "cpfCnpj is required for locatario accounts"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to create user"})
		return
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Surname:      in.Surname,
		Email:        in.Email,
		PasswordHash: string(hash),
		Telephone:    in.Telephone,
		Role:         in.Role,
		CpfCnpj:      in.CpfCnpj,
	}
	if err := uc.Repo.CreateUser(c.Request.Context(), u); err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, app.H{"error": "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

type updateUserReq struct {
	Name      string `json:"name" binding:"required"`
	Surname   string `json:"surname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Telephone string `json:"telephone" binding:"required"`
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid user id"})
		return
	}

	var in updateUserReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "all required fields must be filled"})
		return
	}

	taken, err := uc.Repo.EmailTaken(c.Request.Context(), in.Email, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update user"})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, app.H{"error": "email already in use by another user"})
		return
	}

	u, err := uc.Repo.FindUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update user"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update user"})
		return
	}

	u.Name = in.Name
	u.Surname = in.Surname
	u.Email = in.Email
	u.PasswordHash = string(hash)
	u.Telephone = in.Telephone
	if err := uc.Repo.UpdateUser(c.Request.Context(), u); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update user"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteUser removes an account: admins may delete anyone, everyone else
// only themselves.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid user id"})
		return
	}
	if !isAdmin(c) && currentUserID(c) != id {
		c.JSON(http.StatusForbidden, app.H{"error": "you can only delete your own account"})
		return
	}

	if err := uc.Repo.DeleteUserByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "account deleted"})
}

// ListUsers is admin-only and joins each user with the spaces they rented.
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.Repo.ListUsersWithRentals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

type toggleFavoriteReq struct {
	SpaceID string `json:"spaceId" binding:"required"`
}

func (uc *UserController) ToggleFavorite(c *gin.Context) {
	userID := c.Param("userId")
	var in toggleFavoriteReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "spaceId is required"})
		return
	}
	if !validID(userID) || !validID(in.SpaceID) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid id"})
		return
	}

	if _, err := uc.Repo.FindUserByID(c.Request.Context(), userID); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update favorites"})
		return
	}

	favorited, err := uc.Repo.ToggleFavorite(c.Request.Context(), userID, in.SpaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update favorites"})
		return
	}
	msg := "space removed from favorites"
	if favorited {
		msg = "space added to favorites"
	}
	c.JSON(http.StatusOK, app.H{"message": msg, "isFavorited": favorited})
}

func (uc *UserController) ListFavorites(c *gin.Context) {
	userID := c.Param("userId")
	if !validID(userID) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid user id"})
		return
	}
	favs, err := uc.Repo.ListFavoritesByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list favorites"})
		return
	}
	c.JSON(http.StatusOK, favs)
}
