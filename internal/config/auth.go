package config

import "fmt"

// Identity modes.
const (
	// AuthModeHeader trusts X-User-ID and X-User-Role set by an upstream gateway.
	AuthModeHeader = "header"
	// AuthModeJWT verifies an HS256 bearer token.
	AuthModeJWT = "jwt"
)

// AuthConfig selects how the verified (user, role) pair is obtained for each call.
type AuthConfig struct {
	Mode      string
	JWTSecret string
	// JWTIssuer, when set, must match the token "iss" claim.
	JWTIssuer string
}

// LoadAuthConfigFromEnv loads identity configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		Mode:      GetEnv("AUTH_MODE", AuthModeHeader),
		JWTSecret: GetEnv("AUTH_JWT_SECRET", ""),
		JWTIssuer: GetEnv("AUTH_JWT_ISSUER", ""),
	}
}

// Validate validates identity configuration.
func (c AuthConfig) Validate() error {
	switch c.Mode {
	case AuthModeHeader:
		return nil
	case AuthModeJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("AUTH_JWT_SECRET is required when AUTH_MODE=jwt")
		}
		return nil
	default:
		return fmt.Errorf("invalid AUTH_MODE: %s (must be: header, jwt)", c.Mode)
	}
}
