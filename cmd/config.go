package cmd

import "time"

// Config carries everything the application needs from the environment.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	KafkaBrokers           string
	KafkaOrderChangedTopic string
}
