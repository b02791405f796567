// Package auth exchanges service-account key material for a Google access
// token using the OAuth2 service-account (JWT bearer) flow.
package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

// Scopes are the authorizations requested with every token. Opening a shared
// spreadsheet needs both the Sheets scope and the Drive scope.
var Scopes = []string{sheets.SpreadsheetsScope, drive.DriveScope}

// Exchange builds a JWT config from the service-account table and performs
// the network round trip for an access token. The returned source reuses the
// token until it expires.
func Exchange(ctx context.Context, account map[string]string) (*oauth2.Token, oauth2.TokenSource, error) {
	blob, err := json.Marshal(account)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding service account: %w", err)
	}

	cfg, err := google.JWTConfigFromJSON(blob, Scopes...)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing service account: %w", err)
	}

	ts := cfg.TokenSource(ctx)
	token, err := ts.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("requesting token: %w", err)
	}
	return token, ts, nil
}
