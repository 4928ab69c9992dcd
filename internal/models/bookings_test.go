package models

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestComputeNights(t *testing.T) {
	b := &Booking{CheckIn: "2025-03-10", CheckOut: "2025-03-14"}
	nights, err := b.ComputeNights()
	if err != nil {
		t.Fatalf("ComputeNights failed: %v", err)
	}
	if nights != 4 {
		t.Errorf("expected 4 nights, got %d", nights)
	}

	// Same-day stays count as one night.
	b = &Booking{CheckIn: "2025-03-10", CheckOut: "2025-03-10"}
	nights, err = b.ComputeNights()
	if err != nil {
		t.Fatalf("ComputeNights failed: %v", err)
	}
	if nights != 1 {
		t.Errorf("same-day stay: expected 1 night, got %d", nights)
	}

	b = &Booking{CheckIn: "2025-03-14", CheckOut: "2025-03-10"}
	if _, err := b.ComputeNights(); err == nil {
		t.Error("inverted dates should be rejected")
	}

	b = &Booking{CheckIn: "10/03/2025", CheckOut: "2025-03-14"}
	if _, err := b.ComputeNights(); err == nil {
		t.Error("malformed check_in should be rejected")
	}
}

func TestBookingStoreLifecycle(t *testing.T) {
	store := NewBookingStore()
	ctx := context.Background()
	userID := uuid.New()

	created, err := store.CreateBooking(ctx, &Booking{
		ListingID:     1,
		UserID:        userID,
		CheckIn:       "2025-03-10",
		CheckOut:      "2025-03-12",
		Guests:        2,
		Status:        BookingStatusPending,
		PaymentStatus: PaymentStatusPending,
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected an id to be assigned")
	}

	updated, err := store.UpdatePaymentStatus(ctx, created.ID, PaymentStatusPaid)
	if err != nil {
		t.Fatalf("UpdatePaymentStatus failed: %v", err)
	}
	if updated.PaymentStatus != PaymentStatusPaid {
		t.Errorf("expected payment status paid, got %s", updated.PaymentStatus)
	}
	if updated.Status != BookingStatusConfirmed {
		t.Errorf("a paid booking should be confirmed, got %s", updated.Status)
	}

	got, err := store.GetBookingByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetBookingByID failed: %v", err)
	}
	if got == nil || got.Status != BookingStatusConfirmed {
		t.Errorf("stored booking not updated, got %+v", got)
	}

	mine, err := store.ListBookingsByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListBookingsByUser failed: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("expected 1 booking for user, got %d", len(mine))
	}

	other, err := store.ListBookingsByUser(ctx, uuid.New())
	if err != nil {
		t.Fatalf("ListBookingsByUser failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("unrelated user should have no bookings, got %d", len(other))
	}

	missing, err := store.GetBookingByID(ctx, uuid.New())
	if err != nil {
		t.Fatalf("GetBookingByID failed: %v", err)
	}
	if missing != nil {
		t.Errorf("unknown id should return nil, got %+v", missing)
	}
}
