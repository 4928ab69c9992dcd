package container

import (
	"log/slog"

	"github.com/DELasso/Airbnb-Project/internal/models"
	"github.com/DELasso/Airbnb-Project/internal/services"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary

	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client

	UserService       *services.UserService
	ListingService    *services.ListingService
	ReviewService     *services.ReviewService
	BookingService    *services.BookingService
	FavouritesService *services.FavouriteService
}

// NewContainer wires repositories and services. The listing catalog and
// its seed reviews live in memory; Mongo only backs favourites and view
// tracking and may be nil when not configured.
func NewContainer(
	logger *slog.Logger,
	cloudinary *cloudinary.Cloudinary,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	supaUrl, supaKey string,
) *Container {
	supa := models.SupabaseNewRepo(supabaseClient, supaUrl, supaKey)
	catalog := models.NewCatalogRepo(models.SeedListings(), models.SeedReviews())
	bookings := models.NewBookingStore()

	var viewsRepo models.ListingViewsRepo
	var favsRepo models.FavouriteRepo
	if mongoDBClient != nil {
		mongoRepo := models.MongodbNewRepo(mongoDBClient)
		viewsRepo = mongoRepo
		favsRepo = mongoRepo
	}

	userService := services.NewUserService(supa)
	listingService := services.NewListingService(catalog, viewsRepo)
	reviewService := services.NewReviewService(catalog, catalog)
	bookingService := services.NewBookingService(bookings, catalog)

	var favouriteService *services.FavouriteService
	if favsRepo != nil {
		favouriteService = services.NewFavouriteService(favsRepo, catalog)
	}

	return &Container{
		Logger:            logger,
		Cloudinary:        cloudinary,
		SupabaseClient:    supabaseClient,
		MongoDBClient:     mongoDBClient,
		UserService:       userService,
		ListingService:    listingService,
		ReviewService:     reviewService,
		BookingService:    bookingService,
		FavouritesService: favouriteService,
	}
}
