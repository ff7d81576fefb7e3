// README: Pure reminder content generation per (booking, tier, audience).
package notification

import (
	"fmt"
	"time"
)

type Content struct {
	Title   string
	Message string
}

const (
	longDateLayout = "Monday, January 2, 2006"
	clockLayout    = "03:04 PM"
)

// estimatedArrivalOffset is a deliberate simplification inherited from the
// upstream product: a flat two hours instead of a route-based estimate.
const estimatedArrivalOffset = 2 * time.Hour

// Generate maps a booking snapshot to the reminder content for one audience.
// It has no side effects and returns ErrIncompleteSnapshot when joined ride,
// vehicle or profile data is missing rather than emitting partial content.
func Generate(s *Snapshot, tier Tier, aud Audience) (Content, error) {
	if err := validate(s); err != nil {
		return Content{}, err
	}
	switch aud {
	case AudiencePassenger:
		return passengerContent(s, tier)
	case AudienceDriver:
		return driverContent(s, tier)
	}
	return Content{}, fmt.Errorf("unknown audience %q", aud)
}

func validate(s *Snapshot) error {
	if s == nil || s.Ride == nil || s.Vehicle == nil || s.Driver == nil || s.Passenger == nil {
		return ErrIncompleteSnapshot
	}
	if _, err := s.Ride.DepartureAt(); err != nil {
		return fmt.Errorf("%w: %v", ErrIncompleteSnapshot, err)
	}
	return nil
}

func passengerContent(s *Snapshot, tier Tier) (Content, error) {
	departure, _ := s.Ride.DepartureAt()
	shortID := s.BookingID.Short()
	driver := s.Driver
	car := s.Vehicle.Brand + " " + s.Vehicle.CarModel
	boarding := s.Ride.PickupPoint

	switch tier {
	case TierOneHour:
		return Content{
			Title: fmt.Sprintf("Your Upcoming Ride Details (Booking ID: %s)", shortID),
			Message: fmt.Sprintf(`Hi %s,

Here are the details for your upcoming ride from %s to %s:

Driver Information:
- Driver Name: %s
- Phone Number: %s

Vehicle Information:
- Car Model: %s
- License Plate: %s
- Color: %s

Journey Details:
- Date: %s
- Departure Time: %s
- Estimated Arrival Time: %s
- Boarding Point: %s

Important Notes:
- Please arrive at the boarding point at least 10 minutes before the departure time.
- You can contact your driver directly at the phone number provided above.
- You can track your ride in real-time through the app.

We wish you a safe and pleasant journey!`,
				s.Passenger.FullName,
				s.Ride.FromCity, s.Ride.ToCity,
				driver.FullName, driver.Phone,
				car, s.Vehicle.LicensePlate, s.Vehicle.Color,
				departure.Format(longDateLayout),
				departure.Format(clockLayout),
				departure.Add(estimatedArrivalOffset).Format(clockLayout),
				boarding,
			),
		}, nil
	case TierThirtyMinutes:
		return Content{
			Title: fmt.Sprintf("Your ride is 30 minutes away! (%s)", shortID),
			Message: fmt.Sprintf(
				"%s, your ride with %s is now 30 minutes away. Please ensure you are ready for pickup at %s. Driver contact: %s",
				s.Passenger.FullName, driver.FullName, boarding, driver.Phone,
			),
		}, nil
	case TierFifteenMinutes:
		return Content{
			Title: fmt.Sprintf("Driver arriving soon! (%s)", shortID),
			Message: fmt.Sprintf(
				"Your driver, %s, is approximately 15 minutes away from %s. Please be at the pickup point. Contact driver: %s",
				driver.FullName, boarding, driver.Phone,
			),
		}, nil
	}
	return Content{}, fmt.Errorf("unknown tier %q", tier)
}

func driverContent(s *Snapshot, tier Tier) (Content, error) {
	shortID := s.BookingID.Short()
	passenger := s.Passenger
	pickup := s.Ride.PickupPoint
	dropoff := s.Ride.ToCity

	switch tier {
	case TierOneHour:
		return Content{
			Title: fmt.Sprintf("Upcoming Trip in 1 Hour (%s)", shortID),
			Message: fmt.Sprintf(
				"Hi, you have an upcoming trip with %s in approximately 1 hour. Pickup at %s, Drop-off at %s. Please ensure your vehicle is ready.",
				passenger.FullName, pickup, dropoff,
			),
		}, nil
	case TierThirtyMinutes:
		return Content{
			Title: fmt.Sprintf("Trip Reminder: 30 Minutes to Pickup (%s)", shortID),
			Message: fmt.Sprintf(
				"Your trip with %s is 30 minutes away. Head towards %s. Passenger contact: %s",
				passenger.FullName, pickup, passenger.Phone,
			),
		}, nil
	case TierFifteenMinutes:
		return Content{
			Title: fmt.Sprintf("Passenger Pickup Soon! (%s)", shortID),
			Message: fmt.Sprintf(
				"You are approximately 15 minutes from %s's pickup location at %s. Please confirm your arrival once you reach the pickup point.",
				passenger.FullName, pickup,
			),
		}, nil
	}
	return Content{}, fmt.Errorf("unknown tier %q", tier)
}
