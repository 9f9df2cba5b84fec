package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"spacerental/app"
	"spacerental/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct{ *Srv }

func NewAuthController(s *Srv) *AuthController { return &AuthController{Srv: s} }

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the password and issues a signed token, returned in the
// body and as an httpOnly cookie. Attempts are rate limited per IP.
func (ac *AuthController) Login(c *gin.Context) {
	if !ac.Limiter.Allow(c.Request.Context(), "login", c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, app.H{"error": "too many login attempts, try again later"})
		return
	}

	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "email and password are required"})
		return
	}

	u, err := ac.Repo.FindUserByEmail(c.Request.Context(), in.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, app.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "login failed"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "invalid email or password"})
		return
	}

	token, _, err := app.IssueToken(ac.Cfg, u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "login failed"})
		return
	}

	secure := strings.HasPrefix(ac.Cfg.WebOrigin, "https://")
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   secure,
		MaxAge:   int(ac.Cfg.TokenTTL / time.Second),
	})

	c.JSON(http.StatusOK, app.H{
		"message": "login successful",
		"token":   token,
		"user":    app.H{"id": u.ID, "name": u.Name, "role": u.Role},
	})
}

// Logout revokes the presented token until its natural expiry and clears
// the cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	raw := ""
	if h := c.GetHeader("Authorization"); h != "" {
		raw = strings.TrimPrefix(h, "Bearer ")
	} else if ck, err := c.Request.Cookie(app.TokenCookie); err == nil {
		raw = ck.Value
	}
	if raw != "" {
		if claims, err := app.ParseToken(ac.Cfg, raw); err == nil {
			ttl := time.Until(claims.ExpiresAt.Time)
			_ = ac.Deny.Revoke(c.Request.Context(), claims.ID, ttl)
		}
	}

	secure := strings.HasPrefix(ac.Cfg.WebOrigin, "https://")
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   secure,
	})
	c.JSON(http.StatusOK, app.H{"message": "logged out"})
}

// Me returns the identity bound to the verified token.
func (ac *AuthController) Me(c *gin.Context) {
	u, err := ac.Repo.FindUserByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, app.H{"id": u.ID, "name": u.Name, "email": u.Email, "role": u.Role})
}
