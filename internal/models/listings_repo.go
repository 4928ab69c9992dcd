package models

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

type ListingsRepo interface {
	ListListings(ctx context.Context, criteria SearchCriteria, offset, limit int) ([]Listing, int, error)
	GetListingByID(ctx context.Context, id int) (*Listing, error)
	Cities(ctx context.Context) ([]string, error)
	Amenities(ctx context.Context) ([]string, error)
}

type ReviewsRepo interface {
	GetReviewsByListing(ctx context.Context, listingID int) ([]Review, error)
	AddReview(ctx context.Context, listingID int, draft ReviewDraft) (*Review, error)
}

// CatalogRepo serves the listing catalog from memory. Listings are seeded
// once at construction and never mutated; reviews are session-scoped and
// lost on restart. The mutex only guards the review map; the listing
// slice is read-only after New.
type CatalogRepo struct {
	mu       sync.RWMutex
	listings []Listing
	reviews  map[int][]Review
	nextID   int
}

func NewCatalogRepo(listings []Listing, reviews map[int][]Review) *CatalogRepo {
	repo := &CatalogRepo{
		listings: listings,
		reviews:  make(map[int][]Review, len(reviews)),
		nextID:   1,
	}
	for listingID, rs := range reviews {
		repo.reviews[listingID] = append([]Review(nil), rs...)
		for _, r := range rs {
			if r.ID >= repo.nextID {
				repo.nextID = r.ID + 1
			}
		}
	}
	return repo
}

// ListListings filters the catalog and pages the result. The filtered set
// keeps the fixture's original order.
func (cr *CatalogRepo) ListListings(ctx context.Context, criteria SearchCriteria, offset, limit int) ([]Listing, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	matched := FilterListings(cr.listings, criteria)
	total := len(matched)

	if offset >= total {
		return []Listing{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (cr *CatalogRepo) GetListingByID(ctx context.Context, id int) (*Listing, error) {
	for i := range cr.listings {
		if cr.listings[i].ID == id {
			l := cr.listings[i]
			return &l, nil
		}
	}
	return nil, nil
}

// Cities returns the distinct cities in the catalog, sorted, for the
// search bar autocomplete.
func (cr *CatalogRepo) Cities(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	cities := make([]string, 0)
	for _, l := range cr.listings {
		key := strings.ToLower(l.City)
		if !seen[key] {
			seen[key] = true
			cities = append(cities, l.City)
		}
	}
	sort.Strings(cities)
	return cities, nil
}

// Amenities returns the distinct amenity vocabulary across the catalog,
// sorted, for the filter bar chips.
func (cr *CatalogRepo) Amenities(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	amenities := make([]string, 0)
	for _, l := range cr.listings {
		for _, a := range l.Amenities {
			key := strings.ToLower(a)
			if !seen[key] {
				seen[key] = true
				amenities = append(amenities, a)
			}
		}
	}
	sort.Strings(amenities)
	return amenities, nil
}

// GetReviewsByListing returns the listing's reviews, most recent first.
func (cr *CatalogRepo) GetReviewsByListing(ctx context.Context, listingID int) ([]Review, error) {
	cr.mu.RLock()
	defer cr.mu.RUnlock()
	return append([]Review(nil), cr.reviews[listingID]...), nil
}

// AddReview runs the draft through AppendReview and stores the updated
// sequence for the listing.
func (cr *CatalogRepo) AddReview(ctx context.Context, listingID int, draft ReviewDraft) (*Review, error) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	updated, _, err := AppendReview(cr.reviews[listingID], draft)
	if err != nil {
		return nil, err
	}

	review := &updated[0]
	review.ID = cr.nextID
	review.ListingID = listingID
	review.StayedAt = time.Now().Format("2006-01-02")
	cr.nextID++

	cr.reviews[listingID] = updated
	return review, nil
}
