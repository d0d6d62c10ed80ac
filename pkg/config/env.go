package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	// EnvAccessToken carries the bearer token extracted from the brokerage
	// session; the exporter never obtains it itself.
	EnvAccessToken = "WS_ACCESS_TOKEN"
	// EnvIdentityID is the identity canonical id the accounts belong to.
	EnvIdentityID = "WS_IDENTITY_ID"
)

// Credentials reads the access token and identity id from the environment,
// loading a .env file first if one is present.
func Credentials() (token string, identityID string, err error) {
	_ = godotenv.Load()

	token = os.Getenv(EnvAccessToken)
	if token == "" {
		return "", "", fmt.Errorf("%s is not set", EnvAccessToken)
	}

	identityID = os.Getenv(EnvIdentityID)
	if identityID == "" {
		return "", "", fmt.Errorf("%s is not set", EnvIdentityID)
	}

	return token, identityID, nil
}
