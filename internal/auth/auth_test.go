package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeRejectsNonServiceAccountKey(t *testing.T) {
	// A client_credentials.json style blob is not a service-account key.
	_, _, err := Exchange(context.Background(), map[string]string{
		"type":      "authorized_user",
		"client_id": "1234",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing service account")
}

func TestExchangeRejectsGarbagePrivateKey(t *testing.T) {
	// The key is parsed before any network round trip, so a corrupted PEM
	// fails locally.
	_, _, err := Exchange(context.Background(), map[string]string{
		"type":         "service_account",
		"project_id":   "my-project",
		"private_key":  "not a pem block",
		"client_email": "doctor@my-project.iam.gserviceaccount.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requesting token")
}

func TestScopesCoverSheetsAndDrive(t *testing.T) {
	assert.Equal(t, []string{
		"https://www.googleapis.com/auth/spreadsheets",
		"https://www.googleapis.com/auth/drive",
	}, Scopes)
}
