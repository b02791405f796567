package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gsheetdoctor/internal/structures"
)

func TestResolveOptionsPrecedence(t *testing.T) {
	t.Setenv("GSHEET_DOCTOR_SECRETS", "")
	t.Setenv("GSHEET_DOCTOR_SPREADSHEET", "")
	t.Setenv("GSHEET_DOCTOR_WORKSHEET", "")

	cfg := structures.Config{
		SecretsPath: "/etc/app/secrets.toml",
		Spreadsheet: "config-sheet-id",
		Worksheet:   "ConfigTab",
	}

	// Saved config wins when nothing else is set.
	opts := resolveOptions(cfg)
	assert.Equal(t, "/etc/app/secrets.toml", opts.SecretsPath)
	assert.Equal(t, "config-sheet-id", opts.Spreadsheet)
	assert.Equal(t, "ConfigTab", opts.Worksheet)

	// Environment beats the saved config.
	t.Setenv("GSHEET_DOCTOR_SPREADSHEET", "env-sheet-id")
	t.Setenv("GSHEET_DOCTOR_WORKSHEET", "EnvTab")
	opts = resolveOptions(cfg)
	assert.Equal(t, "env-sheet-id", opts.Spreadsheet)
	assert.Equal(t, "EnvTab", opts.Worksheet)

	// Flags beat everything.
	checkSpreadsheet = "flag-sheet-id"
	checkWorksheet = "FlagTab"
	t.Cleanup(func() {
		checkSpreadsheet = ""
		checkWorksheet = ""
	})
	opts = resolveOptions(cfg)
	assert.Equal(t, "flag-sheet-id", opts.Spreadsheet)
	assert.Equal(t, "FlagTab", opts.Worksheet)
}

func TestResolveOptionsWorksheetDefault(t *testing.T) {
	t.Setenv("GSHEET_DOCTOR_WORKSHEET", "")
	opts := resolveOptions(structures.Config{})
	assert.Equal(t, "Sheet1", opts.Worksheet)
}
