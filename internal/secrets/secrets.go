// Package secrets loads the deployment's secrets file, a TOML document laid
// out the way the hosting platform stores it:
//
//	[gcp_service_account]
//	type = "service_account"
//	project_id = "..."
//	...
//
//	[connections.gsheets]
//	spreadsheet = "https://docs.google.com/spreadsheets/d/<id>/edit"
package secrets

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Secrets is the decoded secrets file. The presence flags distinguish a
// missing table from an empty one, which the checkup reports differently.
type Secrets struct {
	ServiceAccount map[string]string
	Spreadsheet    string

	HasServiceAccount bool
	HasConnections    bool
	HasSpreadsheet    bool
}

type secretsFile struct {
	GCPServiceAccount map[string]string `toml:"gcp_service_account"`
	Connections       struct {
		GSheets map[string]string `toml:"gsheets"`
	} `toml:"connections"`
}

// Load reads and decodes the secrets file at path.
func Load(path string) (*Secrets, error) {
	var raw secretsFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("secrets file not found: %s", path)
		}
		return nil, fmt.Errorf("parsing secrets file %s: %w", path, err)
	}

	s := &Secrets{
		ServiceAccount:    raw.GCPServiceAccount,
		HasServiceAccount: meta.IsDefined("gcp_service_account"),
		HasConnections:    meta.IsDefined("connections", "gsheets"),
	}
	if s.ServiceAccount == nil {
		s.ServiceAccount = map[string]string{}
	}
	if raw.Connections.GSheets != nil {
		s.Spreadsheet = raw.Connections.GSheets["spreadsheet"]
		s.HasSpreadsheet = meta.IsDefined("connections", "gsheets", "spreadsheet")
	}
	return s, nil
}

// ResolvePath picks the secrets file location: explicit flag value first,
// then the GSHEET_DOCTOR_SECRETS environment variable, then the saved
// config, then the conventional locations relative to the working directory.
func ResolvePath(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("GSHEET_DOCTOR_SECRETS"); env != "" {
		return env
	}
	if configValue != "" {
		return configValue
	}
	for _, candidate := range []string{".streamlit/secrets.toml", "secrets.toml"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "secrets.toml"
}
