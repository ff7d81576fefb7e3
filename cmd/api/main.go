// README: API entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Blast-git/Journey-Sync/internal/config"
	httptransport "github.com/Blast-git/Journey-Sync/internal/http"
	"github.com/Blast-git/Journey-Sync/internal/infra"
	"github.com/Blast-git/Journey-Sync/internal/kafka"
	"github.com/Blast-git/Journey-Sync/internal/modules/booking"
	"github.com/Blast-git/Journey-Sync/internal/modules/notification"
	"github.com/Blast-git/Journey-Sync/internal/modules/profile"
	"github.com/Blast-git/Journey-Sync/internal/modules/ride"
	"github.com/Blast-git/Journey-Sync/internal/modules/sos"
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

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	var verifier infra.TokenVerifier
	var pusher notification.Pusher
	if cfg.Firebase.ProjectID != "" {
		fb, err := infra.NewFirebase(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Error("firebase init", "err", err)
			os.Exit(1)
		}
		verifier = fb.Auth
		pusher = notification.NewFCMPusher(fb.FCM)
	} else {
		log.Warn("JS_FIREBASE_PROJECT_ID unset; auth and push disabled")
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	rideStore := ride.NewStore(dbPool)
	rideSvc := ride.NewService(rideStore, redisClient, 30*time.Second, log)

	profileStore := profile.NewStore(dbPool)

	var safety booking.SafetyTransfer
	if cfg.Safety.TransferURL != "" {
		safety = booking.NewSafetyClient(cfg.Safety.TransferURL)
	}

	bookingStore := booking.NewStore(dbPool)
	bookingSvc := booking.NewService(
		bookingStore, rideSvc, profileStore, safety,
		producer, cfg.Kafka.BookingsTopic, log,
	)

	sosStore := sos.NewStore(dbPool)
	sosSvc := sos.NewService(sosStore, sos.NewTwilioSender(cfg.Twilio.FromNumber), log)

	notifStore := notification.NewStore(dbPool)
	sink := notification.NewDeliverySink(notifStore, pusher, log)
	scheduler := notification.NewScheduler(bookingStore, sink, log)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Rides:     rideSvc,
		Bookings:  bookingSvc,
		SOS:       sosSvc,
		Reminders: scheduler,
		Verifier:  verifier,
		Log:       log,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info("api listening", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "err", err)
		os.Exit(1)
	}
}
