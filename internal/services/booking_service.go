package services

import (
	"context"
	"fmt"
	"time"

	"github.com/DELasso/Airbnb-Project/internal/models"
	"github.com/google/uuid"
)

// paymentDelay imitates the latency of a payment provider round trip. The
// flow is entirely simulated; no processor is contacted.
const paymentDelay = 1 * time.Second

type BookingService struct {
	bookingsRepo models.BookingsRepo
	listingsRepo models.ListingsRepo
}

func NewBookingService(bookingsRepo models.BookingsRepo, listingsRepo models.ListingsRepo) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
		listingsRepo: listingsRepo,
	}
}

// CreateBooking validates the stay against the listing, prices it, then
// walks the mocked payment steps: the booking is created pending and
// flipped to paid after the simulated processing delay.
func (bs *BookingService) CreateBooking(ctx context.Context, booking *models.Booking, userId uuid.UUID) (*models.Booking, error) {
	if err := models.Validate.Struct(booking); err != nil {
		return nil, fmt.Errorf("invalid booking data provided: %v", err)
	}

	listing, err := bs.listingsRepo.GetListingByID(ctx, booking.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("listing not found")
	}
	if booking.Guests > listing.GuestCapacity {
		return nil, fmt.Errorf("listing sleeps at most %d guests", listing.GuestCapacity)
	}

	nights, err := booking.ComputeNights()
	if err != nil {
		return nil, err
	}

	booking.ID = uuid.New()
	booking.UserID = userId
	booking.Nights = nights
	booking.TotalPrice = nights * listing.PricePerNight
	booking.Status = models.BookingStatusPending
	booking.PaymentStatus = models.PaymentStatusPending

	created, err := bs.bookingsRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	select {
	case <-time.After(paymentDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return bs.bookingsRepo.UpdatePaymentStatus(ctx, created.ID, models.PaymentStatusPaid)
}

func (bs *BookingService) GetBooking(ctx context.Context, id uuid.UUID, userId uuid.UUID) (*models.Booking, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid booking ID")
	}

	booking, err := bs.bookingsRepo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}
	if booking.UserID != userId {
		return nil, fmt.Errorf("booking belongs to another user")
	}
	return booking, nil
}

func (bs *BookingService) ListUserBookings(ctx context.Context, userId uuid.UUID) ([]*models.Booking, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	return bs.bookingsRepo.ListBookingsByUser(ctx, userId)
}
