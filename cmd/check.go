package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"gsheetdoctor/internal/checkup"
	"gsheetdoctor/internal/config"
	"gsheetdoctor/internal/notification"
	"gsheetdoctor/internal/secrets"
	"gsheetdoctor/internal/structures"
)

var (
	checkSecretsPath string
	checkSpreadsheet string
	checkWorksheet   string
	checkJSON        bool
	checkNotify      bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the three-step connection diagnosis",
	Long: `Run the connection diagnosis and print the report.

What it checks, in order:

  1. Stored secrets — the [gcp_service_account] table exists, carries the
     required keys, the client_email looks like a service-account address,
     and the private_key kept its PEM header, footer, and newlines.
  2. Authentication — the key material is exchanged for a Google access
     token; validity and expiry are reported.
  3. Sheet access — the configured spreadsheet is opened by ID, the named
     worksheet is located, and a preview of its first rows is read.

A fatal failure in a step stops the steps after it; findings within a step
are all reported.

Exit codes:
  0   All checks passed
  1   Configuration findings (warnings or shape failures)
  2   Token exchange or sheet access failed`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fatalf("failed to load config: %v", err)
		}

		opts := resolveOptions(cfg)
		report := checkup.Run(cmd.Context(), opts)

		if checkJSON {
			if err := report.RenderJSON(os.Stdout); err != nil {
				fatalf("failed to encode report: %v", err)
			}
		} else {
			report.Render(os.Stdout)
		}

		if checkNotify {
			notification.Send("gsheet-doctor", report.Summary())
		}
		os.Exit(report.ExitCode)
	},
}

// resolveOptions applies the flag > environment > saved config > default
// precedence for every setting.
func resolveOptions(cfg structures.Config) checkup.Options {
	spreadsheet := checkSpreadsheet
	if spreadsheet == "" {
		spreadsheet = os.Getenv("GSHEET_DOCTOR_SPREADSHEET")
	}
	if spreadsheet == "" {
		spreadsheet = cfg.Spreadsheet
	}

	worksheet := checkWorksheet
	if worksheet == "" {
		worksheet = os.Getenv("GSHEET_DOCTOR_WORKSHEET")
	}
	if worksheet == "" {
		worksheet = cfg.Worksheet
	}
	if worksheet == "" {
		worksheet = config.DefaultWorksheet
	}

	return checkup.Options{
		SecretsPath: secrets.ResolvePath(checkSecretsPath, cfg.SecretsPath),
		Spreadsheet: spreadsheet,
		Worksheet:   worksheet,
	}
}

func init() {
	checkCmd.Flags().StringVarP(&checkSecretsPath, "secrets", "s", "", "Path to the secrets file (default: saved config, then ./secrets.toml)")
	checkCmd.Flags().StringVar(&checkSpreadsheet, "spreadsheet", "", "Spreadsheet URL or ID (default: [connections.gsheets] in the secrets file)")
	checkCmd.Flags().StringVarP(&checkWorksheet, "worksheet", "w", "", "Worksheet tab to preview (default: Sheet1)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output the report as JSON for scripting")
	checkCmd.Flags().BoolVar(&checkNotify, "notify", false, "Send a desktop notification with the outcome")
	rootCmd.AddCommand(checkCmd)
}
