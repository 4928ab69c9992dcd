package models

import (
	"strings"
	"time"
)

// Coordinates for map pins on the listing detail page.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Host is the person renting out a listing. Display-only data.
type Host struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Since     string `json:"since,omitempty"` // e.g. "marzo de 2019"
}

type DateRange struct {
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end"`   // YYYY-MM-DD; optional, if empty = same as Start
}

// Listing is a single rentable property. The catalog is seeded once at
// startup from a static fixture and never mutated afterwards.
type Listing struct {
	ID          int      `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`

	City        string      `json:"city" validate:"required"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`

	GuestCapacity int `json:"guest_capacity" validate:"required,min=1"`
	Bedrooms      int `json:"bedrooms,omitempty"`
	Beds          int `json:"beds,omitempty"`
	Bathrooms     int `json:"bathrooms,omitempty"`

	// Integer currency units per night (COP in the seed data).
	PricePerNight int `json:"price_per_night" validate:"gte=0"`

	Amenities []string `json:"amenities,omitempty"`
	Host      Host     `json:"host"`

	Available      bool        `json:"available"`
	AvailableDates []DateRange `json:"available_dates,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// SearchCriteria is one filter invocation's worth of constraints. Zero
// values mean "no constraint on that dimension", so an empty criteria
// matches everything. CheckIn/CheckOut are collected from the search bar
// but not evaluated against availability windows; they ride along for the
// UI only.
type SearchCriteria struct {
	City              string   `form:"city" json:"city,omitempty"`
	CheckIn           string   `form:"check_in" json:"check_in,omitempty"`
	CheckOut          string   `form:"check_out" json:"check_out,omitempty"`
	MinGuests         int      `form:"guests" json:"guests,omitempty"`
	MinPrice          int      `form:"min_price" json:"min_price,omitempty"`
	MaxPrice          int      `form:"max_price" json:"max_price,omitempty"`
	RequiredAmenities []string `form:"amenities" json:"amenities,omitempty"`
}

// IsEmpty reports whether the criteria carries no active constraint.
func (c SearchCriteria) IsEmpty() bool {
	return c.City == "" && c.MinGuests == 0 && c.MinPrice == 0 &&
		c.MaxPrice == 0 && len(c.RequiredAmenities) == 0
}

// Matches reports whether the listing satisfies every specified constraint.
// City and amenity matching is case-insensitive substring containment, not
// equality: a criteria amenity of "Aire" matches "Aire acondicionado".
// Contradictory bounds (min > max) are evaluated literally; there is no
// cross-field validation.
func (l Listing) Matches(c SearchCriteria) bool {
	if c.City != "" && !strings.Contains(strings.ToLower(l.City), strings.ToLower(c.City)) {
		return false
	}

	if c.MinGuests > 0 && l.GuestCapacity < c.MinGuests {
		return false
	}

	if c.MinPrice > 0 && l.PricePerNight < c.MinPrice {
		return false
	}
	if c.MaxPrice > 0 && l.PricePerNight > c.MaxPrice {
		return false
	}

	for _, want := range c.RequiredAmenities {
		if !l.hasAmenity(want) {
			return false
		}
	}

	return true
}

func (l Listing) hasAmenity(want string) bool {
	want = strings.ToLower(want)
	for _, a := range l.Amenities {
		if strings.Contains(strings.ToLower(a), want) {
			return true
		}
	}
	return false
}

// FilterListings returns the subsequence of listings satisfying all
// specified criteria fields, preserving original relative order. Pure
// function: no shared state, safe to call concurrently.
func FilterListings(listings []Listing, c SearchCriteria) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.Matches(c) {
			out = append(out, l)
		}
	}
	return out
}
