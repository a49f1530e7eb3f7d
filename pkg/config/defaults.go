package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "smart_parking"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "5001"
	DefaultLogLevel = "info"

	// Flat rate in whole currency units per overdue hour, rounded up.
	DefaultPenaltyRatePerHour = 50
	DefaultSweepInterval      = 60 * time.Second
	DefaultSweepTimeout       = 30 * time.Second

	DefaultCheckoutCurrency   = "inr"
	DefaultCheckoutSuccessURL = "http://localhost:3000/success"
	DefaultCheckoutCancelURL  = "http://localhost:3000/cancel"

	DefaultKafkaTopic = "parking.bookings"

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPaginationLimit = 100
)

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		limit = 10
	} else if limit > DefaultPaginationLimit {
		limit = DefaultPaginationLimit
	}
	return limit
}

func NormalizeOffset(offset int64) int64 {
	return max(0, offset)
}
