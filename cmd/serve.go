package cmd

import (
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"gsheetdoctor/internal/checkup"
	"gsheetdoctor/internal/config"
	"gsheetdoctor/internal/ui"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the diagnosis as a plain-text report page",
	Long: `Serve the diagnosis over HTTP. The full checkup re-runs top to bottom on
every request, so an operator can refresh the page while fixing the
deployment's secrets.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fatalf("failed to load config: %v", err)
		}

		addr := serveAddr
		if addr == "" {
			addr = os.Getenv("GSHEET_DOCTOR_ADDR")
		}
		if addr == "" {
			addr = cfg.ListenAddr
		}
		if addr == "" {
			addr = config.DefaultListenAddr
		}

		// The report goes to HTTP clients, not a terminal.
		ui.SetColorEnabled(false)

		opts := resolveOptions(cfg)
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/" {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			report := checkup.Run(r.Context(), opts)
			report.Render(w)
		})

		log.Printf("Serving diagnosis report at http://%s/", addr)
		log.Fatal(http.ListenAndServe(addr, nil))
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: localhost:8080)")
	rootCmd.AddCommand(serveCmd)
}
