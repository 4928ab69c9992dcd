package routes

import (
	"github.com/DELasso/Airbnb-Project/internal/container"
	"github.com/DELasso/Airbnb-Project/internal/handlers"
	"github.com/DELasso/Airbnb-Project/internal/helpers"
	"github.com/DELasso/Airbnb-Project/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.SessionID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "stayfinder-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.CreateUser(container.UserService))
		v1.POST("/login", handlers.AuthenticateUser(container.UserService))
		v1.POST("/logout", handlers.Logout())
		v1.GET("/auth/google", handlers.GoogleAuth(container.UserService))
		v1.GET("/auth/google/callback", handlers.GoogleAuthCallback(container.UserService))

		// the catalog is browsable without an account
		v1.GET("/listings", handlers.SearchListings(container.ListingService))
		v1.GET("/listings/cities", handlers.ListCities(container.ListingService))
		v1.GET("/listings/amenities", handlers.ListAmenities(container.ListingService))
		v1.GET("/listings/:id", handlers.GetListingByID(container.ListingService, container.Logger))
		v1.GET("/listings/:id/reviews", handlers.GetListingReviews(container.ReviewService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.SupabaseClient, container.UserService, container.Logger))

	protected.GET("/profile", func(c *gin.Context) {
		user, exist := c.Get("user")
		if !exist {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		enhancedClaims, ok := user.(*helpers.EnhancedClaims)
		if !ok {
			c.JSON(500, gin.H{"error": "Invalid user claims format"})
			return
		}

		c.JSON(200, gin.H{
			"status":   "OK",
			"user_id":  enhancedClaims.UserID,
			"email":    enhancedClaims.Email,
			"role":     enhancedClaims.Role,
			"username": enhancedClaims.Username,
			"is_admin": enhancedClaims.IsAdmin(),
		})
	})

	userRoutes := protected.Group("/users")
	{
		userRoutes.GET("/:id", handlers.GetUser(container.UserService))
		userRoutes.PATCH("/:id", handlers.UpdateUser(container.UserService))
		userRoutes.DELETE("/:id", handlers.DeleteUser(container.UserService))
		userRoutes.POST("/avatar", handlers.UploadAvatar(container.UserService))
	}

	// submitting a review requires a session so authorship can be
	// attributed
	protected.POST("/listings/:id/reviews", handlers.SubmitReview(container.ReviewService))
	protected.GET("/listings/:id/stats", handlers.GetListingStats(container.ListingService))

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.POST("/", handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("/", handlers.ListUserBookings(container.BookingService))
		bookingRoutes.GET("/:id", handlers.GetBooking(container.BookingService))
	}

	if container.FavouritesService != nil {
		favRoutes := protected.Group("/favourites")
		{
			favRoutes.GET("/", handlers.GetUserFavourites(container.FavouritesService))
			favRoutes.POST("/:id", handlers.AddToFavourites(container.FavouritesService))
			favRoutes.DELETE("/:id", handlers.RemoveFromFavourite(container.FavouritesService))
		}
	}

	return r
}
