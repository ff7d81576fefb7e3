// README: SOS service: builds the alert message and fans out SMS.
package sos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Blast-git/Journey-Sync/internal/types"
)

var (
	ErrNoContacts     = errors.New("no emergency contacts registered")
	ErrInvalidContact = errors.New("contact name and phone are required")
)

type Contacts interface {
	ListByUser(ctx context.Context, userID types.ID) ([]Contact, error)
	Add(ctx context.Context, c *Contact) error
	Update(ctx context.Context, c *Contact) error
	Delete(ctx context.Context, userID, contactID types.ID) error
	RecordAlert(ctx context.Context, a *Alert) error
}

type Service struct {
	store Contacts
	sms   SMSSender
	now   func() time.Time
	log   *slog.Logger
}

func NewService(store Contacts, sms SMSSender, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, sms: sms, now: time.Now, log: log}
}

func (s *Service) Contacts(ctx context.Context, userID types.ID) ([]Contact, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) AddContact(ctx context.Context, userID types.ID, name, phone, relation string) (*Contact, error) {
	if name == "" || phone == "" {
		return nil, ErrInvalidContact
	}
	c := &Contact{
		ID:       types.ID(uuid.NewString()),
		UserID:   userID,
		Name:     name,
		Phone:    phone,
		Relation: relation,
	}
	if err := s.store.Add(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateContact(ctx context.Context, c *Contact) error {
	if c.Name == "" || c.Phone == "" {
		return ErrInvalidContact
	}
	return s.store.Update(ctx, c)
}

func (s *Service) DeleteContact(ctx context.Context, userID, contactID types.ID) error {
	return s.store.Delete(ctx, userID, contactID)
}

type TriggerCommand struct {
	UserID   types.ID
	FullName string
	Lat, Lng float64
}

// Trigger sends the SOS message to every registered contact. Individual SMS
// failures are logged and counted; the alert succeeds if at least one contact
// was reached.
func (s *Service) Trigger(ctx context.Context, cmd TriggerCommand) (*Alert, error) {
	contacts, err := s.store.ListByUser(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, ErrNoContacts
	}

	now := s.now()
	locationLink := fmt.Sprintf("https://maps.google.com/?q=%f,%f", cmd.Lat, cmd.Lng)
	message := fmt.Sprintf(
		"EMERGENCY ALERT\n\n%s has triggered an SOS alert.\n\nLocation: %s\n\nTime: %s\n\nThis is an automated emergency message. Please check on them immediately.",
		cmd.FullName, locationLink, now.Format("1/2/2006, 3:04:05 PM"),
	)

	reached := 0
	for _, c := range contacts {
		if err := s.sms.Send(c.Phone, message); err != nil {
			s.log.Error("sos sms failed", "contact", c.Name, "err", err)
			continue
		}
		reached++
	}
	if reached == 0 {
		return nil, errors.New("sos delivery failed for every contact")
	}

	alert := &Alert{
		ID:          types.ID(uuid.NewString()),
		UserID:      cmd.UserID,
		Message:     message,
		LocationURL: locationLink,
		Contacted:   reached,
		CreatedAt:   now,
	}
	if err := s.store.RecordAlert(ctx, alert); err != nil {
		s.log.Error("record sos alert failed", "err", err)
	}
	return alert, nil
}
