// README: Reminder scheduler; one idempotent pass per invocation.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Blast-git/Journey-Sync/internal/types"
)

// BookingSource is the booking store as the scheduler sees it.
type BookingSource interface {
	// ActiveSnapshots returns every booking in an eligible status
	// (pending/confirmed) whose ride is active, with joined details.
	ActiveSnapshots(ctx context.Context) ([]Snapshot, error)
	// ClaimReminder atomically flips the tier's sent flag from false to true
	// and records the timestamp. It returns true only for the caller that
	// performed the flip; that claim is the sole emission gate, so two
	// overlapping invocations can never both send the same reminder.
	ClaimReminder(ctx context.Context, bookingID types.ID, tier Tier, at time.Time) (bool, error)
}

// Sink persists generated notifications and forwards them for delivery.
type Sink interface {
	Create(ctx context.Context, n *Notification) error
}

// Report summarises one scheduler pass.
type Report struct {
	Checked int
	Sent    int
	Skipped int
	Failed  int
}

type Scheduler struct {
	source BookingSource
	sink   Sink
	now    func() time.Time
	log    *slog.Logger
}

func NewScheduler(source BookingSource, sink Sink, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{source: source, sink: sink, now: time.Now, log: log}
}

// WithClock overrides the wall clock, for tests.
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// Run executes a single pass: fetch the eligible snapshot, classify each
// booking into a tier, and emit the passenger and driver reminders for every
// tier this invocation claims. A snapshot fetch failure aborts the pass; a
// per-booking failure is logged and does not stop the loop.
func (s *Scheduler) Run(ctx context.Context) (Report, error) {
	var rep Report

	snapshots, err := s.source.ActiveSnapshots(ctx)
	if err != nil {
		return rep, fmt.Errorf("fetch active bookings: %w", err)
	}

	now := s.now()
	for i := range snapshots {
		snap := &snapshots[i]
		if snap.Ride == nil {
			continue
		}
		rep.Checked++

		sent, err := s.processBooking(ctx, snap, now)
		if err != nil {
			rep.Failed++
			s.log.Error("reminder processing failed",
				"booking", snap.BookingID.Short(), "err", err)
			continue
		}
		if sent == 0 {
			rep.Skipped++
		}
		rep.Sent += sent
	}
	return rep, nil
}

// processBooking handles one booking and returns how many notifications it
// emitted (0 when no tier is due or the tier was already claimed).
func (s *Scheduler) processBooking(ctx context.Context, snap *Snapshot, now time.Time) (int, error) {
	departure, err := snap.Ride.DepartureAt()
	if err != nil {
		return 0, err
	}

	minutes := minutesUntil(departure, now)
	tier, ok := ClassifyMinutes(minutes)
	if !ok {
		return 0, nil
	}
	if snap.TierSent(tier) {
		return 0, nil
	}

	// Generate (and thereby validate) both messages before claiming the flag,
	// so a malformed booking never consumes its only send.
	passengerContent, err := Generate(snap, tier, AudiencePassenger)
	if err != nil {
		return 0, err
	}
	driverContent, err := Generate(snap, tier, AudienceDriver)
	if err != nil {
		return 0, err
	}

	claimed, err := s.source.ClaimReminder(ctx, snap.BookingID, tier, now)
	if err != nil {
		return 0, fmt.Errorf("claim %s reminder: %w", tier, err)
	}
	if !claimed {
		return 0, nil
	}

	sent := 0
	for _, target := range []struct {
		userID   types.ID
		audience Audience
		content  Content
	}{
		{snap.PassengerID, AudiencePassenger, passengerContent},
		{snap.Ride.DriverID, AudienceDriver, driverContent},
	} {
		n := &Notification{
			ID:        types.ID(uuid.NewString()),
			BookingID: snap.BookingID,
			UserID:    target.userID,
			Audience:  target.audience,
			Tier:      tier,
			Title:     target.content.Title,
			Message:   target.content.Message,
			CreatedAt: now,
		}
		if err := s.sink.Create(ctx, n); err != nil {
			// The flag is already claimed; losing this write means the
			// reminder is dropped rather than duplicated next pass.
			s.log.Error("persist notification failed",
				"booking", snap.BookingID.Short(), "audience", target.audience, "err", err)
			continue
		}
		sent++
	}
	return sent, nil
}

// RunTicker re-runs the pass on a fixed interval until ctx is cancelled.
func (s *Scheduler) RunTicker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rep, err := s.Run(ctx)
			if err != nil {
				s.log.Error("reminder pass failed", "err", err)
				continue
			}
			if rep.Sent > 0 || rep.Failed > 0 {
				s.log.Info("reminder pass",
					"checked", rep.Checked, "sent", rep.Sent,
					"skipped", rep.Skipped, "failed", rep.Failed)
			}
		}
	}
}

// minutesUntil floors the signed distance to departure in whole minutes,
// matching the classification windows' inclusive bounds.
func minutesUntil(departure, now time.Time) int {
	return int(math.Floor(departure.Sub(now).Minutes()))
}
