// README: SMS delivery via Twilio.
package sos

import (
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender delivers one alert message to one phone number.
type SMSSender interface {
	Send(to, body string) error
}

// TwilioSender reads account credentials from the TWILIO_* env vars, as the
// SDK's default client does.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(fromNumber string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClient(),
		from:   fromNumber,
	}
}

func (t *TwilioSender) Send(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)
	_, err := t.client.Api.CreateMessage(params)
	return err
}
