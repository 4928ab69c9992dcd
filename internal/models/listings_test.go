package models

import (
	"context"
	"testing"
)

func testCatalog() []Listing {
	return []Listing{
		{ID: 1, Name: "Apartamento moderno", City: "Medellín", GuestCapacity: 4, PricePerNight: 120000,
			Amenities: []string{"Wifi", "Cocina", "Aire acondicionado"}},
		{ID: 2, Name: "Cabaña junto al lago", City: "Guatapé", GuestCapacity: 6, PricePerNight: 200000,
			Amenities: []string{"Wifi", "Chimenea", "Vista al lago"}},
		{ID: 3, Name: "Estudio céntrico", City: "Bogotá", GuestCapacity: 2, PricePerNight: 180000,
			Amenities: []string{"Wifi", "Cocina"}},
	}
}

// An empty criteria must return the full catalog unchanged.
func TestFilterEmptyCriteriaIsIdentity(t *testing.T) {
	listings := testCatalog()

	got := FilterListings(listings, SearchCriteria{})
	if len(got) != len(listings) {
		t.Fatalf("expected %d listings, got %d", len(listings), len(got))
	}
	for i := range got {
		if got[i].ID != listings[i].ID {
			t.Errorf("order changed at position %d: expected id %d, got %d", i, listings[i].ID, got[i].ID)
		}
	}
}

// Check-in/check-out dates are collected but never constrain results.
func TestFilterIgnoresDates(t *testing.T) {
	listings := testCatalog()

	got := FilterListings(listings, SearchCriteria{CheckIn: "2025-01-10", CheckOut: "2025-01-15"})
	if len(got) != len(listings) {
		t.Errorf("date-only criteria should match everything, got %d of %d", len(got), len(listings))
	}
}

func TestFilterByGuestCapacity(t *testing.T) {
	got := FilterListings(testCatalog(), SearchCriteria{MinGuests: 3})

	if len(got) != 2 {
		t.Fatalf("expected 2 listings with capacity >= 3, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("expected listings 1 and 2, got %d and %d", got[0].ID, got[1].ID)
	}
}

func TestFilterCitySubstringCaseInsensitive(t *testing.T) {
	got := FilterListings(testCatalog(), SearchCriteria{City: "mede"})

	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("partial lowercase city should match Medellín, got %v", got)
	}
}

func TestFilterPriceBoundsInclusive(t *testing.T) {
	listings := testCatalog()

	// Exact boundary values must be included.
	got := FilterListings(listings, SearchCriteria{MinPrice: 120000, MaxPrice: 180000})
	if len(got) != 2 {
		t.Fatalf("expected listings at 120000 and 180000, got %d results", len(got))
	}

	// min > max is evaluated literally and matches nothing.
	got = FilterListings(listings, SearchCriteria{MinPrice: 300000, MaxPrice: 100000})
	if len(got) != 0 {
		t.Errorf("contradictory bounds should yield no results, got %d", len(got))
	}
}

func TestFilterAmenitySubstring(t *testing.T) {
	// "aire" should match "Aire acondicionado" by containment.
	got := FilterListings(testCatalog(), SearchCriteria{RequiredAmenities: []string{"aire"}})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only listing 1 to have air conditioning, got %v", got)
	}

	// All required amenities must be present.
	got = FilterListings(testCatalog(), SearchCriteria{RequiredAmenities: []string{"Wifi", "Chimenea"}})
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("expected only listing 2 to match both amenities, got %v", got)
	}
}

// Adding a constraint can only shrink the result set.
func TestFilterNarrowsMonotonically(t *testing.T) {
	listings := testCatalog()

	broad := FilterListings(listings, SearchCriteria{City: "a"})
	narrow := FilterListings(listings, SearchCriteria{City: "a", MinGuests: 5})
	if len(narrow) > len(broad) {
		t.Errorf("adding a constraint grew the result set: %d > %d", len(narrow), len(broad))
	}
}

func TestCatalogRepoPaging(t *testing.T) {
	repo := NewCatalogRepo(testCatalog(), nil)
	ctx := context.Background()

	page, total, err := repo.ListListings(ctx, SearchCriteria{}, 0, 2)
	if err != nil {
		t.Fatalf("ListListings failed: %v", err)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if len(page) != 2 {
		t.Errorf("expected page of 2, got %d", len(page))
	}

	page, total, err = repo.ListListings(ctx, SearchCriteria{}, 10, 2)
	if err != nil {
		t.Fatalf("ListListings failed: %v", err)
	}
	if total != 3 || len(page) != 0 {
		t.Errorf("offset past the end should return an empty page, got %d items", len(page))
	}

	if _, _, err := repo.ListListings(ctx, SearchCriteria{}, -1, 2); err == nil {
		t.Error("negative offset should be rejected")
	}
}

func TestCatalogRepoGetListingByID(t *testing.T) {
	repo := NewCatalogRepo(testCatalog(), nil)
	ctx := context.Background()

	listing, err := repo.GetListingByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetListingByID failed: %v", err)
	}
	if listing == nil || listing.City != "Guatapé" {
		t.Errorf("expected the Guatapé listing, got %v", listing)
	}

	listing, err = repo.GetListingByID(ctx, 999)
	if err != nil {
		t.Fatalf("GetListingByID failed: %v", err)
	}
	if listing != nil {
		t.Errorf("unknown id should return nil, got %v", listing)
	}
}

func TestCatalogRepoCitiesAndAmenities(t *testing.T) {
	repo := NewCatalogRepo(testCatalog(), nil)
	ctx := context.Background()

	cities, err := repo.Cities(ctx)
	if err != nil {
		t.Fatalf("Cities failed: %v", err)
	}
	if len(cities) != 3 {
		t.Errorf("expected 3 distinct cities, got %v", cities)
	}
	for i := 1; i < len(cities); i++ {
		if cities[i-1] > cities[i] {
			t.Errorf("cities not sorted: %v", cities)
		}
	}

	amenities, err := repo.Amenities(ctx)
	if err != nil {
		t.Fatalf("Amenities failed: %v", err)
	}
	// Wifi appears in all three listings but must only be listed once.
	count := 0
	for _, a := range amenities {
		if a == "Wifi" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected Wifi deduplicated to one entry, got %d in %v", count, amenities)
	}
}

func TestSeedListingsAreSearchable(t *testing.T) {
	listings := SeedListings()
	if len(listings) != 6 {
		t.Fatalf("expected 6 seeded listings, got %d", len(listings))
	}

	got := FilterListings(listings, SearchCriteria{City: "Cartagena"})
	if len(got) != 1 || got[0].PricePerNight != 350000 {
		t.Errorf("expected the Cartagena house at 350000 per night, got %v", got)
	}
}
