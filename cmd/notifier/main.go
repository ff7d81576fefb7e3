// README: Notifier worker: reminder ticker plus booking-event email consumer.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/Blast-git/Journey-Sync/internal/config"
	"github.com/Blast-git/Journey-Sync/internal/email"
	"github.com/Blast-git/Journey-Sync/internal/infra"
	"github.com/Blast-git/Journey-Sync/internal/kafka"
	"github.com/Blast-git/Journey-Sync/internal/modules/booking"
	"github.com/Blast-git/Journey-Sync/internal/modules/notification"
	"github.com/Blast-git/Journey-Sync/internal/modules/profile"
	"github.com/Blast-git/Journey-Sync/internal/modules/ride"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Error("connect postgres", "err", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	var pusher notification.Pusher
	if cfg.Firebase.ProjectID != "" {
		fb, err := infra.NewFirebase(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Error("firebase init", "err", err)
			os.Exit(1)
		}
		pusher = notification.NewFCMPusher(fb.FCM)
	} else {
		log.Warn("JS_FIREBASE_PROJECT_ID unset; push disabled")
	}

	bookingStore := booking.NewStore(dbPool)
	notifStore := notification.NewStore(dbPool)
	sink := notification.NewDeliverySink(notifStore, pusher, log)
	scheduler := notification.NewScheduler(bookingStore, sink, log)

	rideStore := ride.NewStore(dbPool)
	profileStore := profile.NewStore(dbPool)
	sender := email.NewSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	mailer := email.NewBookingMailer(rideStore, profileStore, sender, log)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingsTopic)
	defer consumer.Close()

	go func() {
		err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.BookingEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Error("decode booking event", "err", err)
				return nil
			}
			if err := mailer.HandleBookingCreated(ctx, event); err != nil {
				log.Error("booking email", "booking", event.Reference, "err", err)
			}
			return nil
		})
		if err != nil && ctx.Err() == nil {
			log.Error("consumer stopped", "err", err)
		}
	}()

	log.Info("notifier running", "tick_seconds", cfg.Reminder.TickSeconds)
	scheduler.RunTicker(ctx, time.Duration(cfg.Reminder.TickSeconds)*time.Second)
}
