// README: Message composition tests for the SMTP sender.
package email

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompose_Envelope(t *testing.T) {
	m := compose("bookings@journeysync.app", "asha@example.com", Message{
		Subject: "Booking confirmed: Mumbai to Pune (RSAABBCCDD)",
		Body:    "Hi Asha,\n\nYour ride is confirmed.\n",
	})

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("write message: %v", err)
	}
	wire := buf.String()

	for _, want := range []string{
		"From: bookings@journeysync.app",
		"To: asha@example.com",
		"Subject: Booking confirmed: Mumbai to Pune (RSAABBCCDD)",
		"Content-Type: text/plain",
		"Your ride is confirmed.",
	} {
		if !strings.Contains(wire, want) {
			t.Errorf("wire message missing %q\n%s", want, wire)
		}
	}
}

func TestSend_EmptyRecipient(t *testing.T) {
	s := NewSender("localhost", 587, "", "", "bookings@journeysync.app")
	if err := s.Send("", Message{Subject: "x", Body: "y"}); err == nil {
		t.Fatal("expected error for empty recipient")
	}
}
