package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

type Config struct {
	Port           string
	DatabaseURL    string
	DatabaseName   string
	JwtSigningKey  []byte
	Env            string   // either prod or dev, disables secure cookies and few other bits
	AllowedOrigins []string // origins allowed to make credentialed cross-origin requests
	SentryDSN      string
}

func LoadConfig() (Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL cannot be empty")
	}
	databaseName := os.Getenv("DATABASE_NAME")
	if databaseName == "" {
		return Config{}, fmt.Errorf("DATABASE_NAME cannot be empty")
	}
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		return Config{}, fmt.Errorf("JWT_SIGNING_KEY cannot be empty")
	}
	jwtSigningKeyBytes, err := base64.StdEncoding.DecodeString(jwtSigningKey)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to decode jwt signing key to bytes")
	}
	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		return Config{}, fmt.Errorf("ENV cannot be empty")
	}
	allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsStr == "" {
		return Config{}, fmt.Errorf("ALLOWED_ORIGINS cannot be empty")
	}
	allowedOrigins := make([]string, 0)
	for _, origin := range strings.Split(allowedOriginsStr, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins = append(allowedOrigins, origin)
		}
	}
	sentryDSN := os.Getenv("SENTRY_DSN")

	return Config{
		Port:           port,
		DatabaseURL:    databaseURL,
		DatabaseName:   databaseName,
		JwtSigningKey:  jwtSigningKeyBytes,
		Env:            env,
		AllowedOrigins: allowedOrigins,
		SentryDSN:      sentryDSN,
	}, nil
}
