package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gsheet-doctor",
	Short: "A diagnostic checklist for Google Sheets service-account access",
	Long: `gsheet-doctor diagnoses the connection between a deployment and a private
Google Sheet. It verifies, step by step, that the stored service-account
secrets are well formed, that Google accepts them in exchange for an access
token, and that the token can open and read the configured spreadsheet.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
