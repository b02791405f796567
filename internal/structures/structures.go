package structures

// Config holds the application configuration
type Config struct {
	SecretsPath string `json:"secrets_path"`
	Spreadsheet string `json:"spreadsheet"`
	Worksheet   string `json:"worksheet"`
	ListenAddr  string `json:"listen_addr"`
}
