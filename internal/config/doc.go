// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Environment variables use the HBNB_ prefix with nested keys joined by
// underscores, e.g. HBNB_DATABASE_URL or HBNB_AUTH_JWT_SECRET.
package config
