package routes

import (
	"spacerental/app"
	"spacerental/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	authCtl := controllers.NewAuthController(s)
	userCtl := controllers.NewUserController(s)
	spaceCtl := controllers.NewSpaceController(s)
	rentalCtl := controllers.NewRentalController(s.Repo)
	assessCtl := controllers.NewAssessmentController(s)
	viewCtl := controllers.NewViewHistoryController(s)
	payCtl := controllers.NewPaymentController(s)

	authMW := app.AuthRequired(a.Config, s.Deny)
	adminMW := app.AdminOnly()

	// ------------------------------
	// Auth
	// ------------------------------
	auth := r.Group("/auth")
	{
		auth.POST("/login", authCtl.Login)
		auth.POST("/logout", authCtl.Logout)
		auth.GET("/me", authMW, authCtl.Me)
	}

	// ------------------------------
	// Users + favorites
	// ------------------------------
	users := r.Group("/users")
	{
		users.POST("", userCtl.CreateUser)
		users.GET("", authMW, adminMW, userCtl.ListUsers)
		users.PUT("/:id", authMW, userCtl.UpdateUser)
		users.DELETE("/:id", authMW, userCtl.DeleteUser)

		users.POST("/:userId/favorite", authMW, userCtl.ToggleFavorite)
		users.GET("/:userId/favorites", authMW, userCtl.ListFavorites)
	}

	// ------------------------------
	// Spaces
	// ------------------------------
	spaces := r.Group("/spaces")
	{
		spaces.GET("", spaceCtl.ListSpaces)
		spaces.GET("/search", spaceCtl.SearchSpaces)
		spaces.GET("/owner/:ownerId", spaceCtl.ListSpacesByOwner)
		spaces.GET("/:id", spaceCtl.GetSpace)

		spaces.POST("", authMW, spaceCtl.CreateSpace)
		spaces.PUT("/:id", authMW, spaceCtl.UpdateSpace)
		spaces.DELETE("/:id", authMW, spaceCtl.DeleteSpace)
	}

	// ------------------------------
	// Rentals (scheduler)
	// ------------------------------
	rentals := r.Group("/rentals")
	{
		// The availability calendar is public; everything else carries
		// a caller-identity token.
		rentals.GET("/space/:spaceId/dates", rentalCtl.ListRentedDates)

		rentals.POST("", authMW, rentalCtl.CreateRental)
		rentals.GET("", authMW, rentalCtl.ListRentals)
		rentals.GET("/user/:userId", authMW, rentalCtl.ListRentalsByUser)
		rentals.DELETE("/:rentalId", authMW, rentalCtl.DeleteRental)
	}

	// ------------------------------
	// Assessments
	// ------------------------------
	assess := r.Group("/assessment")
	{
		assess.GET("/space/:spaceId", assessCtl.ListBySpace)
		assess.GET("/top-rated", assessCtl.TopRated)

		assess.POST("", authMW, assessCtl.CreateAssessment)
		assess.PUT("/:id", authMW, assessCtl.UpdateAssessment)
		assess.DELETE("/:id", authMW, assessCtl.DeleteAssessment)
		assess.GET("", authMW, adminMW, assessCtl.ListAll)
	}

	// ------------------------------
	// View history
	// ------------------------------
	views := r.Group("/view-history", authMW)
	{
		views.POST("", viewCtl.RegisterView)
		views.GET("/user/:userId", viewCtl.ListByUser)
	}

	// ------------------------------
	// Payments (pending stub)
	// ------------------------------
	payments := r.Group("/payments", authMW)
	{
		payments.POST("", payCtl.CreatePayment)
	}
}
