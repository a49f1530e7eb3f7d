package main

import (
	bookinghandler "smartparking/internal/bookings/handler"
	"smartparking/internal/bookings/repository"
	bookingservice "smartparking/internal/bookings/service"
	"smartparking/internal/bookings/validator"
	paymenthandler "smartparking/internal/payments/handler"
	paymentservice "smartparking/internal/payments/service"
	"smartparking/internal/payments/stripe"
	"smartparking/internal/sweep"
	"smartparking/pkg/app"
	"smartparking/pkg/config"
	"smartparking/pkg/kafka"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetRedis()

	cfg.Log.Info("Starting Smart Parking booking service")

	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	bookingSvc := bookingservice.NewBookingService(bookingRepo, bookingValidator, cfg)

	producer := initProducer(cfg)
	var publisher kafka.Publisher
	if producer != nil {
		publisher = producer
	}

	var provider paymentservice.CheckoutProvider
	if cfg.StripeSecretKey != "" {
		provider = stripe.NewClient(
			cfg.StripeSecretKey,
			cfg.CheckoutCurrency,
			cfg.CheckoutSuccessURL,
			cfg.CheckoutCancelURL,
		)
	} else {
		cfg.Log.Warn("Stripe secret key not set; checkout endpoint will report the provider unavailable")
	}
	paymentSvc := paymentservice.NewPaymentService(bookingSvc, provider, publisher, cfg)

	sweeper := sweep.NewSweeper(sweep.Config{
		Store:       bookingRepo,
		Publisher:   publisher,
		Log:         cfg.Log,
		RatePerHour: cfg.PenaltyRatePerHour,
		Interval:    cfg.SweepInterval,
		TickTimeout: cfg.SweepTimeout,
	})

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		bookinghandler.NewBookingHandler(bookingSvc, cfg.Log),
		paymenthandler.NewPaymentHandler(paymentSvc, cfg.Log),
	)
	serverApp.AddWorker(sweeper.Run)
	serverApp.Run()

	if producer != nil {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}
}

func initProducer(cfg *config.Config) *kafka.Producer {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured; lifecycle events disabled")
		return nil
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.KafkaTopic)
	return producer
}
