package services

import (
	"context"
	"fmt"

	"github.com/DELasso/Airbnb-Project/internal/models"
	"github.com/google/uuid"
)

type FavouriteService struct {
	favouritesRepo models.FavouriteRepo
	listingsRepo   models.ListingsRepo
}

func NewFavouriteService(favouritesRepo models.FavouriteRepo, listingsRepo models.ListingsRepo) *FavouriteService {
	return &FavouriteService{
		favouritesRepo: favouritesRepo,
		listingsRepo:   listingsRepo,
	}
}

func (fs *FavouriteService) AddToFavourites(ctx context.Context, userId uuid.UUID, listingId int) (*models.Favourite, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	if listingId <= 0 {
		return nil, fmt.Errorf("invalid listing ID")
	}

	listing, err := fs.listingsRepo.GetListingByID(ctx, listingId)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("listing not found")
	}

	return fs.favouritesRepo.AddToFavourites(ctx, userId, listingId)
}

func (fs *FavouriteService) RemoveFromFavourites(ctx context.Context, userId uuid.UUID, listingId int) error {
	if userId == uuid.Nil {
		return fmt.Errorf("invalid user ID")
	}
	if listingId <= 0 {
		return fmt.Errorf("invalid listing ID")
	}

	return fs.favouritesRepo.RemoveFromFavourites(ctx, userId, listingId)
}

func (fs *FavouriteService) GetFavouritesByUserID(ctx context.Context, userId uuid.UUID) (*models.Favourite, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	return fs.favouritesRepo.GetFavouritesByUserID(ctx, userId)
}
