// README: Reminder content generation tests.
package notification

import (
	"errors"
	"strings"
	"testing"

	"github.com/Blast-git/Journey-Sync/internal/modules/ride"
	"github.com/Blast-git/Journey-Sync/internal/types"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		BookingID:   types.ID("aabbccdd-1111-2222-3333-444455556666"),
		PassengerID: types.ID("passenger-1"),
		Status:      "confirmed",
		Ride: &ride.Ride{
			ID:            types.ID("ride-1"),
			DriverID:      types.ID("driver-1"),
			FromCity:      "Mumbai",
			ToCity:        "Pune",
			PickupPoint:   "Dadar Station Gate 2",
			DepartureDate: "2025-03-15",
			DepartureTime: "14:30",
		},
		Vehicle: &ride.Vehicle{
			Brand:        "Maruti",
			CarModel:     "Swift",
			LicensePlate: "MH 01 AB 1234",
			Color:        "White",
		},
		Driver:    &ContactInfo{FullName: "Ravi Kumar", Phone: "+911234567890"},
		Passenger: &ContactInfo{FullName: "Asha Mehta", Phone: "+919876543210"},
	}
}

func TestGenerate_PassengerOneHour(t *testing.T) {
	c, err := Generate(testSnapshot(), TierOneHour, AudiencePassenger)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if c.Title != "Your Upcoming Ride Details (Booking ID: aabbccdd)" {
		t.Errorf("title = %q", c.Title)
	}
	for _, want := range []string{
		"Hi Asha Mehta,",
		"from Mumbai to Pune",
		"- Driver Name: Ravi Kumar",
		"- Phone Number: +911234567890",
		"- Car Model: Maruti Swift",
		"- License Plate: MH 01 AB 1234",
		"- Color: White",
		"- Date: Saturday, March 15, 2025",
		"- Departure Time: 02:30 PM",
		"- Estimated Arrival Time: 04:30 PM",
		"- Boarding Point: Dadar Station Gate 2",
	} {
		if !strings.Contains(c.Message, want) {
			t.Errorf("message missing %q\n%s", want, c.Message)
		}
	}
}

func TestGenerate_PassengerThirtyAndFifteen(t *testing.T) {
	s := testSnapshot()

	c, err := Generate(s, TierThirtyMinutes, AudiencePassenger)
	if err != nil {
		t.Fatalf("30min: %v", err)
	}
	if c.Title != "Your ride is 30 minutes away! (aabbccdd)" {
		t.Errorf("30min title = %q", c.Title)
	}
	if !strings.Contains(c.Message, "ready for pickup at Dadar Station Gate 2") {
		t.Errorf("30min message = %q", c.Message)
	}

	c, err = Generate(s, TierFifteenMinutes, AudiencePassenger)
	if err != nil {
		t.Fatalf("15min: %v", err)
	}
	if c.Title != "Driver arriving soon! (aabbccdd)" {
		t.Errorf("15min title = %q", c.Title)
	}
	if !strings.Contains(c.Message, "Your driver, Ravi Kumar,") {
		t.Errorf("15min message = %q", c.Message)
	}
}

func TestGenerate_DriverTiers(t *testing.T) {
	s := testSnapshot()
	cases := []struct {
		tier      Tier
		title     string
		fragments []string
	}{
		{TierOneHour, "Upcoming Trip in 1 Hour (aabbccdd)",
			[]string{"trip with Asha Mehta", "Pickup at Dadar Station Gate 2", "Drop-off at Pune"}},
		{TierThirtyMinutes, "Trip Reminder: 30 Minutes to Pickup (aabbccdd)",
			[]string{"Head towards Dadar Station Gate 2", "Passenger contact: +919876543210"}},
		{TierFifteenMinutes, "Passenger Pickup Soon! (aabbccdd)",
			[]string{"15 minutes from Asha Mehta's pickup location"}},
	}
	for _, c := range cases {
		got, err := Generate(s, c.tier, AudienceDriver)
		if err != nil {
			t.Fatalf("%s: %v", c.tier, err)
		}
		if got.Title != c.title {
			t.Errorf("%s title = %q, want %q", c.tier, got.Title, c.title)
		}
		for _, f := range c.fragments {
			if !strings.Contains(got.Message, f) {
				t.Errorf("%s message missing %q", c.tier, f)
			}
		}
	}
}

func TestGenerate_IncompleteSnapshot(t *testing.T) {
	mutations := map[string]func(*Snapshot){
		"nil ride":      func(s *Snapshot) { s.Ride = nil },
		"nil vehicle":   func(s *Snapshot) { s.Vehicle = nil },
		"nil driver":    func(s *Snapshot) { s.Driver = nil },
		"nil passenger": func(s *Snapshot) { s.Passenger = nil },
		"bad departure": func(s *Snapshot) { s.Ride.DepartureTime = "half past nine" },
	}
	for name, mutate := range mutations {
		s := testSnapshot()
		mutate(s)
		if _, err := Generate(s, TierOneHour, AudiencePassenger); !errors.Is(err, ErrIncompleteSnapshot) {
			t.Errorf("%s: err = %v, want ErrIncompleteSnapshot", name, err)
		}
	}
}

func TestGenerate_UnknownAudience(t *testing.T) {
	if _, err := Generate(testSnapshot(), TierOneHour, Audience("admin")); err == nil {
		t.Fatal("expected error for unknown audience")
	}
}
