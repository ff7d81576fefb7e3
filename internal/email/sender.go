// README: SMTP delivery for transactional email via gomail.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type Sender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSender(host string, port int, username, password, from string) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *Sender) Send(to string, msg Message) error {
	if to == "" {
		return fmt.Errorf("empty recipient")
	}
	return s.dialer.DialAndSend(compose(s.from, to, msg))
}

// compose builds the wire message; header encoding is gomail's job.
func compose(from, to string, msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	return m
}
