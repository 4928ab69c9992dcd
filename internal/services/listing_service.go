package services

import (
	"context"
	"fmt"

	"github.com/DELasso/Airbnb-Project/internal/models"
)

type ListingService struct {
	listingsRepo models.ListingsRepo
	viewsRepo    models.ListingViewsRepo
}

func NewListingService(listingsRepo models.ListingsRepo, viewsRepo models.ListingViewsRepo) *ListingService {
	return &ListingService{
		listingsRepo: listingsRepo,
		viewsRepo:    viewsRepo,
	}
}

// SearchListings filters the catalog with the given criteria and pages the
// result. An empty criteria returns the whole catalog.
func (ls *ListingService) SearchListings(ctx context.Context, criteria models.SearchCriteria, offset, limit int) ([]models.Listing, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	return ls.listingsRepo.ListListings(ctx, criteria, offset, limit)
}

func (ls *ListingService) GetListingByID(ctx context.Context, id int) (*models.Listing, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid listing ID")
	}

	return ls.listingsRepo.GetListingByID(ctx, id)
}

// TrackView records a detail-page view. Failures are returned so the
// handler can log them, but they never fail the page request.
func (ls *ListingService) TrackView(ctx context.Context, view *models.ListingView) error {
	if ls.viewsRepo == nil {
		return nil
	}
	if view.ListingID <= 0 || view.SessionID == "" {
		return fmt.Errorf("listing ID and session ID are required")
	}
	return ls.viewsRepo.TrackListingView(ctx, view)
}

func (ls *ListingService) GetViewStats(ctx context.Context, listingId int) (*models.ListingViewStats, error) {
	if ls.viewsRepo == nil {
		return nil, fmt.Errorf("view tracking is not configured")
	}
	if listingId <= 0 {
		return nil, fmt.Errorf("invalid listing ID")
	}
	return ls.viewsRepo.GetListingViewStats(ctx, listingId)
}

func (ls *ListingService) Cities(ctx context.Context) ([]string, error) {
	return ls.listingsRepo.Cities(ctx)
}

func (ls *ListingService) Amenities(ctx context.Context) ([]string, error) {
	return ls.listingsRepo.Amenities(ctx)
}
