// README: Email template rendering tests.
package email

import (
	"strings"
	"testing"
)

func sampleData() ConfirmationData {
	return ConfirmationData{
		BookingID:      "aabbccdd-1111-2222-3333-444455556666",
		Reference:      "RSAABBCCDD",
		PassengerName:  "Asha Mehta",
		PassengerEmail: "asha@example.com",
		DriverName:     "Ravi Kumar",
		DriverPhone:    "+911234567890",
		VehicleMake:    "Maruti",
		VehicleModel:   "Swift",
		VehicleColor:   "White",
		LicensePlate:   "MH 01 AB 1234",
		FromCity:       "Mumbai",
		ToCity:         "Pune",
		PickupPoint:    "Dadar Station",
		DepartureDate:  "2025-03-15",
		DepartureTime:  "14:30",
		SeatsBooked:    2,
		TotalFare:      1000,
	}
}

func TestRenderPassengerConfirmation(t *testing.T) {
	m := RenderPassengerConfirmation(sampleData())

	if m.Subject != "Booking confirmed: Mumbai to Pune (RSAABBCCDD)" {
		t.Errorf("subject = %q", m.Subject)
	}
	for _, want := range []string{
		"Hi Asha Mehta,",
		"Booking Reference: RSAABBCCDD",
		"Booking ID: AABBCCDD",
		"Seats Booked: 2",
		"Date & Time: Saturday, March 15, 2025 at 14:30",
		"Boarding Point: Dadar Station",
		"Driver: Ravi Kumar (+911234567890)",
		"Vehicle: Maruti Swift, White, plate MH 01 AB 1234",
		"Total Fare: INR 1000",
	} {
		if !strings.Contains(m.Body, want) {
			t.Errorf("body missing %q\n%s", want, m.Body)
		}
	}
}

func TestRenderDriverNotice(t *testing.T) {
	m := RenderDriverNotice(sampleData())

	if m.Subject != "New booking on your ride (RSAABBCCDD)" {
		t.Errorf("subject = %q", m.Subject)
	}
	for _, want := range []string{
		"Hi Ravi Kumar,",
		"Asha Mehta booked 2 seat(s) on your ride from Mumbai to Pune.",
		"Departure: Saturday, March 15, 2025 at 14:30",
	} {
		if !strings.Contains(m.Body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestFormatLongDate_BadInputPassesThrough(t *testing.T) {
	if got := formatLongDate("15/03/2025"); got != "15/03/2025" {
		t.Errorf("got %q", got)
	}
}
