package auth

import (
	"github.com/dpereira/taskflow-api/internal/config"
)

// testAuthConfig returns an AuthConfig with the given secret and sane
// defaults for the remaining fields.
func testAuthConfig(secret string) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: 60,
		BcryptCost:           4,
	}
}
