package models

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCanceled  = "canceled"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Booking is the result of the checkout flow. Payment is simulated: no
// processor is ever contacted, the booking just moves pending -> paid.
type Booking struct {
	ID            uuid.UUID `json:"id"`
	ListingID     int       `json:"listing_id"`
	UserID        uuid.UUID `json:"user_id"`
	CheckIn       string    `json:"check_in" validate:"required"` // YYYY-MM-DD
	CheckOut      string    `json:"check_out" validate:"required"`
	Guests        int       `json:"guests" validate:"required,min=1"`
	Nights        int       `json:"nights"`
	TotalPrice    int       `json:"total_price"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Nights between check-in and check-out. Returns an error on malformed or
// inverted dates; same-day stays count as one night.
func (b *Booking) ComputeNights() (int, error) {
	in, err := time.Parse("2006-01-02", b.CheckIn)
	if err != nil {
		return 0, fmt.Errorf("invalid check_in date: %v", err)
	}
	out, err := time.Parse("2006-01-02", b.CheckOut)
	if err != nil {
		return 0, fmt.Errorf("invalid check_out date: %v", err)
	}
	if out.Before(in) {
		return 0, fmt.Errorf("check_out must not be before check_in")
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights == 0 {
		nights = 1
	}
	return nights, nil
}

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]*Booking, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*Booking, error)
}

// BookingStore keeps bookings in memory for the session. Nothing is
// charged and nothing survives a restart.
type BookingStore struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]*Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[uuid.UUID]*Booking),
	}
}

func (bs *BookingStore) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	bs.mu.Lock()
	defer bs.mu.Unlock()
	stored := *booking
	bs.bookings[booking.ID] = &stored
	return booking, nil
}

func (bs *BookingStore) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	booking, ok := bs.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (bs *BookingStore) ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]*Booking, error) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	var out []*Booking
	for _, b := range bs.bookings {
		if b.UserID == userID {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (bs *BookingStore) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*Booking, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	booking, ok := bs.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking not found")
	}
	booking.PaymentStatus = status
	if status == PaymentStatusPaid {
		booking.Status = BookingStatusConfirmed
	}
	booking.UpdatedAt = time.Now()
	copied := *booking
	return &copied, nil
}
