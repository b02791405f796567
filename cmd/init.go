package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gsheetdoctor/internal/config"
	"gsheetdoctor/internal/structures"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize gsheet-doctor configuration",
	Long:  `Save the secrets file location and spreadsheet defaults so check and serve can run without flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		reader := bufio.NewReader(os.Stdin)

		fmt.Print("Enter path to the secrets file (secrets.toml): ")
		secretsPath, _ := reader.ReadString('\n')
		secretsPath = strings.TrimSpace(secretsPath)
		if secretsPath == "" {
			fatalf("secrets file path cannot be empty")
		}

		absPath, err := filepath.Abs(secretsPath)
		if err != nil {
			fatalf("Invalid path: %v", err)
		}
		if _, err := os.Stat(absPath); err != nil {
			fmt.Printf("Note: %s does not exist yet; the check will report it.\n", absPath)
		}

		fmt.Print("Enter spreadsheet URL or ID (press Enter to use the one in the secrets file): ")
		spreadsheet, _ := reader.ReadString('\n')
		spreadsheet = strings.TrimSpace(spreadsheet)

		fmt.Printf("Enter worksheet name (default: %s): ", config.DefaultWorksheet)
		worksheet, _ := reader.ReadString('\n')
		worksheet = strings.TrimSpace(worksheet)
		if worksheet == "" {
			worksheet = config.DefaultWorksheet
		}

		cfg := structures.Config{
			SecretsPath: absPath,
			Spreadsheet: spreadsheet,
			Worksheet:   worksheet,
			ListenAddr:  config.DefaultListenAddr,
		}

		if err := config.Save(cfg); err != nil {
			fatalf("Failed to save config: %v", err)
		}

		fmt.Println("🩺 Configuration saved. Run 'gsheet-doctor check' to diagnose the connection.")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
