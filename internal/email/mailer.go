// README: Booking-event mailer; confirmation to the passenger, notice to the driver.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Blast-git/Journey-Sync/internal/kafka"
	"github.com/Blast-git/Journey-Sync/internal/modules/profile"
	"github.com/Blast-git/Journey-Sync/internal/modules/ride"
	"github.com/Blast-git/Journey-Sync/internal/types"
)

// RideDirectory resolves the booked ride's listing.
type RideDirectory interface {
	Get(ctx context.Context, id types.ID) (*ride.Listing, error)
}

// ProfileDirectory resolves the driver profile for the notice email.
type ProfileDirectory interface {
	Get(ctx context.Context, id types.ID) (*profile.Profile, error)
}

type MessageSender interface {
	Send(to string, msg Message) error
}

// BookingMailer turns a booking_created event into the two transactional
// emails: the passenger confirmation is the primary send and its failure
// propagates; the driver notice is best-effort.
type BookingMailer struct {
	rides    RideDirectory
	profiles ProfileDirectory
	sender   MessageSender
	log      *slog.Logger
}

func NewBookingMailer(rides RideDirectory, profiles ProfileDirectory, sender MessageSender, log *slog.Logger) *BookingMailer {
	if log == nil {
		log = slog.Default()
	}
	return &BookingMailer{rides: rides, profiles: profiles, sender: sender, log: log}
}

func (m *BookingMailer) HandleBookingCreated(ctx context.Context, event kafka.BookingEvent) error {
	if event.Type != "booking_created" || event.PassengerEmail == "" {
		return nil
	}
	listing, err := m.rides.Get(ctx, types.ID(event.RideID))
	if err != nil {
		return fmt.Errorf("resolve ride %s: %w", event.RideID, err)
	}

	data := ConfirmationData{
		BookingID:      event.BookingID,
		Reference:      event.Reference,
		PassengerName:  event.PassengerName,
		PassengerEmail: event.PassengerEmail,
		DriverName:     listing.DriverName,
		DriverPhone:    listing.DriverPhone,
		VehicleMake:    listing.Vehicle.Brand,
		VehicleModel:   listing.Vehicle.CarModel,
		VehicleColor:   listing.Vehicle.Color,
		LicensePlate:   listing.Vehicle.LicensePlate,
		FromCity:       listing.Ride.FromCity,
		ToCity:         listing.Ride.ToCity,
		PickupPoint:    listing.Ride.PickupPoint,
		DepartureDate:  listing.Ride.DepartureDate,
		DepartureTime:  listing.Ride.DepartureTime,
		SeatsBooked:    event.SeatsBooked,
		TotalFare:      int64(event.SeatsBooked) * listing.Ride.PricePerSeat.Amount,
	}

	if err := m.sender.Send(event.PassengerEmail, RenderPassengerConfirmation(data)); err != nil {
		return fmt.Errorf("passenger confirmation: %w", err)
	}

	m.sendDriverNotice(ctx, listing.Ride.DriverID, event.Reference, data)
	return nil
}

func (m *BookingMailer) sendDriverNotice(ctx context.Context, driverID types.ID, reference string, data ConfirmationData) {
	driver, err := m.profiles.Get(ctx, driverID)
	if err != nil {
		m.log.Warn("driver profile lookup failed", "booking", reference, "err", err)
		return
	}
	if driver.Email == "" {
		return
	}
	if err := m.sender.Send(driver.Email, RenderDriverNotice(data)); err != nil {
		m.log.Warn("driver notice failed", "booking", reference, "err", err)
	}
}
