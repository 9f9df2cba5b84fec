package controllers

import (
	"net/http"

	"spacerental/app"

	"github.com/gin-gonic/gin"
)

type PaymentController struct{ *Srv }

func NewPaymentController(s *Srv) *PaymentController { return &PaymentController{Srv: s} }

type createPaymentReq struct {
	UserID  string  `json:"userId" binding:"required"`
	SpaceID string  `json:"spaceId" binding:"required"`
	Amount  float64 `json:"amount" binding:"required"`
}

// CreatePayment records a pending payment intent; the external provider
// settles it.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var in createPaymentReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "userId, spaceId and amount are required"})
		return
	}
	if !validID(in.UserID) || !validID(in.SpaceID) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid id"})
		return
	}
	if in.Amount <= 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": "amount must be positive"})
		return
	}

	p, err := pc.Repo.CreatePayment(c.Request.Context(), in.UserID, in.SpaceID, in.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to create payment"})
		return
	}
	c.JSON(http.StatusCreated, app.H{
		"message":   "payment request created",
		"paymentId": p.ID,
		"status":    p.Status,
	})
}
