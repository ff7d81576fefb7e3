// README: Transactional email rendering; pure functions over booking data.
package email

import (
	"fmt"
	"strings"
	"time"
)

// ConfirmationData carries everything the confirmation templates show.
type ConfirmationData struct {
	BookingID      string
	Reference      string
	PassengerName  string
	PassengerEmail string
	DriverName     string
	DriverPhone    string
	VehicleMake    string
	VehicleModel   string
	VehicleColor   string
	LicensePlate   string
	FromCity       string
	ToCity         string
	PickupPoint    string
	DepartureDate  string // YYYY-MM-DD
	DepartureTime  string // HH:MM
	SeatsBooked    int
	TotalFare      int64
}

type Message struct {
	Subject string
	Body    string
}

// RenderPassengerConfirmation produces the plain-text confirmation email sent
// when a booking is created.
func RenderPassengerConfirmation(d ConfirmationData) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", d.PassengerName)
	fmt.Fprintf(&b, "Your ride from %s to %s is confirmed!\n\n", d.FromCity, d.ToCity)
	fmt.Fprintf(&b, "Booking Reference: %s\n", d.Reference)
	fmt.Fprintf(&b, "Booking ID: %s\n", strings.ToUpper(shortID(d.BookingID)))
	fmt.Fprintf(&b, "Seats Booked: %d\n\n", d.SeatsBooked)
	fmt.Fprintf(&b, "Trip Details:\n")
	fmt.Fprintf(&b, "  Date & Time: %s at %s\n", formatLongDate(d.DepartureDate), d.DepartureTime)
	fmt.Fprintf(&b, "  Boarding Point: %s\n\n", d.PickupPoint)
	fmt.Fprintf(&b, "Driver: %s (%s)\n", d.DriverName, d.DriverPhone)
	fmt.Fprintf(&b, "Vehicle: %s %s, %s, plate %s\n\n", d.VehicleMake, d.VehicleModel, d.VehicleColor, d.LicensePlate)
	fmt.Fprintf(&b, "Total Fare: INR %d\n\n", d.TotalFare)
	b.WriteString("Please arrive at the boarding point at least 10 minutes before departure.\n")
	b.WriteString("We wish you a safe and pleasant journey!\n")

	return Message{
		Subject: fmt.Sprintf("Booking confirmed: %s to %s (%s)", d.FromCity, d.ToCity, d.Reference),
		Body:    b.String(),
	}
}

// RenderDriverNotice produces the heads-up email for the driver after a seat
// on their ride is booked.
func RenderDriverNotice(d ConfirmationData) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", d.DriverName)
	fmt.Fprintf(&b, "%s booked %d seat(s) on your ride from %s to %s.\n\n",
		d.PassengerName, d.SeatsBooked, d.FromCity, d.ToCity)
	fmt.Fprintf(&b, "Departure: %s at %s\n", formatLongDate(d.DepartureDate), d.DepartureTime)
	fmt.Fprintf(&b, "Pickup: %s\n", d.PickupPoint)
	fmt.Fprintf(&b, "Booking Reference: %s\n", d.Reference)

	return Message{
		Subject: fmt.Sprintf("New booking on your ride (%s)", d.Reference),
		Body:    b.String(),
	}
}

func formatLongDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

func shortID(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}
