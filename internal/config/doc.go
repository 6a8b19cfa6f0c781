// Package config defines the application configuration structures and
// loads them from environment variables, an optional .env file, and an
// optional config.yaml, with validation of the result.
package config
