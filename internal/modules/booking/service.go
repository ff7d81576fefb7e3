// README: Booking service: seat-safe creation, safety transfer, lifecycle.
package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Blast-git/Journey-Sync/internal/kafka"
	"github.com/Blast-git/Journey-Sync/internal/modules/ride"
	"github.com/Blast-git/Journey-Sync/internal/types"
)

var (
	ErrBadRequest    = errors.New("bad request")
	ErrAlreadyBooked = errors.New("passenger has an active booking for this ride")
	ErrNotPending    = errors.New("booking is not pending")
	ErrNotActive     = errors.New("booking is not active")
)

// Repository is the subset of the store the service uses.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	Get(ctx context.Context, id types.ID) (*Booking, error)
	HasActiveForRide(ctx context.Context, passengerID, rideID types.ID) (bool, error)
	UpdateStatus(ctx context.Context, id types.ID, from, to Status) (bool, error)
	ReleaseSeats(ctx context.Context, rideID types.ID, seats int) error
}

// RideCatalog resolves the ride being booked and invalidates search caches
// after seat counts change.
type RideCatalog interface {
	Get(ctx context.Context, id types.ID) (*ride.Listing, error)
	Invalidate(ctx context.Context)
}

// Demographics records booking-form gender/age onto the passenger profile.
type Demographics interface {
	UpdateDemographics(ctx context.Context, id types.ID, gender string, age int) error
}

// Publisher emits booking lifecycle events for the email worker.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}

type Service struct {
	store    Repository
	rides    RideCatalog
	profiles Demographics
	safety   SafetyTransfer
	events   Publisher
	topic    string
	log      *slog.Logger
}

func NewService(
	store Repository,
	rides RideCatalog,
	profiles Demographics,
	safety SafetyTransfer,
	events Publisher,
	topic string,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store:    store,
		rides:    rides,
		profiles: profiles,
		safety:   safety,
		events:   events,
		topic:    topic,
		log:      log,
	}
}

type BookCommand struct {
	RideID         types.ID
	PassengerID    types.ID
	Seats          int
	PassengerName  string
	PassengerPhone string
	PassengerEmail string
	Gender         string
	Age            int
	Notes          string
	PreferredSeat  string
}

// BookResult is the booking plus the optional safety-transfer offer.
type BookResult struct {
	Booking   *Booking
	Reference string
	Transfer  *TransferOffer
}

// Book validates the command, creates the booking with an atomic seat
// decrement, and for female passengers invokes the safety-transfer function.
// Transfer and event-publish failures are logged, never fatal: the booking
// already exists.
func (s *Service) Book(ctx context.Context, cmd BookCommand) (*BookResult, error) {
	if cmd.RideID == "" || cmd.PassengerID == "" || cmd.Seats <= 0 {
		return nil, ErrBadRequest
	}
	if cmd.PassengerName == "" || cmd.PassengerPhone == "" || cmd.Gender == "" || cmd.Age <= 0 {
		return nil, ErrBadRequest
	}

	listing, err := s.rides.Get(ctx, cmd.RideID)
	if err != nil {
		return nil, err
	}

	active, err := s.store.HasActiveForRide(ctx, cmd.PassengerID, cmd.RideID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, ErrAlreadyBooked
	}

	if err := s.profiles.UpdateDemographics(ctx, cmd.PassengerID, cmd.Gender, cmd.Age); err != nil {
		s.log.Warn("update passenger demographics failed",
			"passenger", cmd.PassengerID.Short(), "err", err)
	}

	b := &Booking{
		ID:          types.ID(uuid.NewString()),
		RideID:      cmd.RideID,
		PassengerID: cmd.PassengerID,
		SeatsBooked: cmd.Seats,
		TotalPrice: types.Money{
			Amount:   int64(cmd.Seats) * listing.Ride.PricePerSeat.Amount,
			Currency: listing.Ride.PricePerSeat.Currency,
		},
		PassengerNotes: cmd.Notes,
		PreferredSeat:  cmd.PreferredSeat,
		Status:         StatusPending,
	}
	if err := s.store.Create(ctx, b); err != nil {
		return nil, err
	}
	s.rides.Invalidate(ctx)

	result := &BookResult{Booking: b, Reference: b.Reference()}

	if cmd.Gender == "female" && s.safety != nil {
		offer, err := s.safety.Request(ctx, TransferRequest{
			BookingID:              string(b.ID),
			PassengerGender:        cmd.Gender,
			PassengerAge:           cmd.Age,
			RouteFrom:              listing.Ride.FromCity,
			RouteTo:                listing.Ride.ToCity,
			DepartureDate:          listing.Ride.DepartureDate,
			DepartureTime:          listing.Ride.DepartureTime,
			PreferredSeat:          cmd.PreferredSeat,
			OriginalVehicleBrand:   listing.Vehicle.Brand,
			OriginalVehicleSegment: listing.Vehicle.CarType,
		})
		if err != nil {
			s.log.Warn("safety transfer request failed",
				"booking", b.ID.Short(), "err", err)
		} else {
			result.Transfer = offer
		}
	}

	s.publish(ctx, "booking_created", b, cmd)
	return result, nil
}

// Confirm moves a pending booking to confirmed.
func (s *Service) Confirm(ctx context.Context, id types.ID) (*Booking, error) {
	ok, err := s.store.UpdateStatus(ctx, id, StatusPending, StatusConfirmed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotPending
	}
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_confirmed", b, BookCommand{})
	return b, nil
}

// Cancel releases the seats and marks the booking cancelled. Cancelling a
// booking that is already cancelled or completed is a no-op error.
func (s *Service) Cancel(ctx context.Context, id types.ID) (*Booking, error) {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusPending && b.Status != StatusConfirmed {
		return nil, ErrNotActive
	}
	ok, err := s.store.UpdateStatus(ctx, id, b.Status, StatusCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotActive
	}
	if err := s.store.ReleaseSeats(ctx, b.RideID, b.SeatsBooked); err != nil {
		s.log.Error("release seats failed", "booking", b.ID.Short(), "err", err)
	}
	s.rides.Invalidate(ctx)
	b.Status = StatusCancelled
	s.publish(ctx, "booking_cancelled", b, BookCommand{})
	return b, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Booking, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) publish(ctx context.Context, eventType string, b *Booking, cmd BookCommand) {
	if s.events == nil {
		return
	}
	err := s.events.Publish(ctx, s.topic, string(b.ID), kafka.BookingEvent{
		Type:           eventType,
		BookingID:      string(b.ID),
		Reference:      b.Reference(),
		RideID:         string(b.RideID),
		SeatsBooked:    b.SeatsBooked,
		PassengerName:  cmd.PassengerName,
		PassengerEmail: cmd.PassengerEmail,
		Status:         string(b.Status),
		CreatedAt:      time.Now(),
	})
	if err != nil {
		s.log.Warn("publish booking event failed",
			"type", eventType, "booking", b.ID.Short(), "err", err)
	}
}
