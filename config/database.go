package config

import "time"

// MongoConfig contains document store configuration.
type MongoConfig struct {
	// URL is the MongoDB connection string. When empty, the document store
	// is disabled and features depending on it degrade (role lookups fall
	// back to the bootstrap admin list only).
	URL string `env:"MONGODB_URL"`

	// Database is the database name holding user and content collections.
	Database string `env:"MONGODB_DATABASE" envDefault:"storefront"`

	// ConnectTimeout bounds the initial connection and ping.
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
}

// RedisConfig contains Redis configuration for the shared rate-limit store.
type RedisConfig struct {
	// URL is a redis:// connection string. Only required when
	// RATE_LIMIT_STORE=redis.
	URL string `env:"REDIS_URL"`
}
