package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvPenaltyRatePerHour = "PENALTY_RATE_PER_HOUR"
	EnvSweepInterval      = "SWEEP_INTERVAL"
	EnvSweepTimeout       = "SWEEP_TIMEOUT"

	EnvStripeSecretKey    = "STRIPE_SECRET_KEY"
	EnvCheckoutCurrency   = "CHECKOUT_CURRENCY"
	EnvCheckoutSuccessURL = "CHECKOUT_SUCCESS_URL"
	EnvCheckoutCancelURL  = "CHECKOUT_CANCEL_URL"

	EnvKafkaBrokers = "KAFKA_BROKERS"
	EnvKafkaTopic   = "KAFKA_TOPIC"

	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
