// README: Production sink: persist first, then best-effort push via FCM.
package notification

import (
	"context"
	"log/slog"

	"firebase.google.com/go/v4/messaging"
)

// Pusher forwards a stored notification to the push channel.
type Pusher interface {
	Push(ctx context.Context, n *Notification) error
}

// DeliverySink persists every notification and then hands it to the pusher.
// Persistence failures propagate; push failures are logged only, since the
// stored record remains the source of truth for the in-app inbox.
type DeliverySink struct {
	store  Sink
	pusher Pusher
	log    *slog.Logger
}

func NewDeliverySink(store Sink, pusher Pusher, log *slog.Logger) *DeliverySink {
	if log == nil {
		log = slog.Default()
	}
	return &DeliverySink{store: store, pusher: pusher, log: log}
}

func (d *DeliverySink) Create(ctx context.Context, n *Notification) error {
	if err := d.store.Create(ctx, n); err != nil {
		return err
	}
	if d.pusher != nil {
		if err := d.pusher.Push(ctx, n); err != nil {
			d.log.Warn("push delivery failed",
				"booking", n.BookingID.Short(), "audience", n.Audience, "err", err)
		}
	}
	return nil
}

// FCMPusher publishes to the per-user topic each mobile client subscribes to.
type FCMPusher struct {
	client *messaging.Client
}

func NewFCMPusher(client *messaging.Client) *FCMPusher {
	return &FCMPusher{client: client}
}

func (p *FCMPusher) Push(ctx context.Context, n *Notification) error {
	_, err := p.client.Send(ctx, &messaging.Message{
		Topic: "user-" + string(n.UserID),
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		Data: map[string]string{
			"booking_id": string(n.BookingID),
			"tier":       string(n.Tier),
			"audience":   string(n.Audience),
		},
	})
	return err
}
