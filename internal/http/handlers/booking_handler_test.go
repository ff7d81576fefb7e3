// README: Booking handler tests; ownership enforcement over stubbed auth.
package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Blast-git/Journey-Sync/internal/http/handlers"
	"github.com/Blast-git/Journey-Sync/internal/http/middleware"
	"github.com/Blast-git/Journey-Sync/internal/infra"
	"github.com/Blast-git/Journey-Sync/internal/modules/booking"
	"github.com/Blast-git/Journey-Sync/internal/modules/ride"
	"github.com/Blast-git/Journey-Sync/internal/types"
)

// tokenEcho verifies any bearer token by treating it as the caller uid.
type tokenEcho struct{}

func (tokenEcho) VerifyIDToken(_ context.Context, idToken string) (*infra.FirebaseToken, error) {
	return &infra.FirebaseToken{UID: idToken}, nil
}

type memBookings struct {
	byID    map[types.ID]*booking.Booking
	created int
}

func (m *memBookings) Create(_ context.Context, b *booking.Booking) error {
	m.created++
	m.byID[b.ID] = b
	return nil
}

func (m *memBookings) Get(_ context.Context, id types.ID) (*booking.Booking, error) {
	b, ok := m.byID[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memBookings) HasActiveForRide(_ context.Context, _, _ types.ID) (bool, error) {
	return false, nil
}

func (m *memBookings) UpdateStatus(_ context.Context, id types.ID, from, to booking.Status) (bool, error) {
	b, ok := m.byID[id]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	return true, nil
}

func (m *memBookings) ReleaseSeats(_ context.Context, _ types.ID, _ int) error { return nil }

type stubCatalog struct{ listing *ride.Listing }

func (s *stubCatalog) Get(_ context.Context, _ types.ID) (*ride.Listing, error) {
	return s.listing, nil
}
func (s *stubCatalog) Invalidate(_ context.Context) {}

type noopDemographics struct{}

func (noopDemographics) UpdateDemographics(_ context.Context, _ types.ID, _ string, _ int) error {
	return nil
}

func buildBookingRouter(repo booking.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog := &stubCatalog{listing: &ride.Listing{
		Ride: ride.Ride{ID: "ride-1", PricePerSeat: types.Money{Amount: 500, Currency: "INR"}},
	}}
	svc := booking.NewService(repo, catalog, noopDemographics{}, nil, nil, "", nil)
	h := handlers.NewBookingHandler(svc)

	r := gin.New()
	authed := r.Group("/api", middleware.Auth(tokenEcho{}))
	authed.POST("/bookings", h.Create)
	authed.GET("/bookings/:id", h.Get)
	authed.POST("/bookings/:id/cancel", h.Cancel)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, uid, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+uid)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seededRepo() *memBookings {
	return &memBookings{byID: map[types.ID]*booking.Booking{
		"b-1": {
			ID:          "b-1",
			RideID:      "ride-1",
			PassengerID: "user-1",
			SeatsBooked: 1,
			Status:      booking.StatusConfirmed,
		},
	}}
}

func TestCreateBooking_WrongPassengerID(t *testing.T) {
	repo := &memBookings{byID: map[types.ID]*booking.Booking{}}
	r := buildBookingRouter(repo)

	body := `{"ride_id":"ride-1","passenger_id":"user-2","seats":1,` +
		`"passenger_name":"Asha","passenger_phone":"+911234","gender":"female","age":28}`
	w := doJSON(t, r, http.MethodPost, "/api/bookings", "user-1", body)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if repo.created != 0 {
		t.Errorf("booking was created for a foreign passenger id")
	}
}

func TestGetBooking_NotOwner(t *testing.T) {
	r := buildBookingRouter(seededRepo())

	w := doJSON(t, r, http.MethodGet, "/api/bookings/b-1", "user-2", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestCancelBooking_NotOwner(t *testing.T) {
	repo := seededRepo()
	r := buildBookingRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/b-1/cancel", "user-2", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if repo.byID["b-1"].Status != booking.StatusConfirmed {
		t.Errorf("foreign cancel changed status to %s", repo.byID["b-1"].Status)
	}
}

func TestCancelBooking_Owner(t *testing.T) {
	repo := seededRepo()
	r := buildBookingRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/b-1/cancel", "user-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if repo.byID["b-1"].Status != booking.StatusCancelled {
		t.Errorf("status = %s, want cancelled", repo.byID["b-1"].Status)
	}
}
