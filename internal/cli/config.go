package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	SessionFile string
	AdminKey    string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("PICKEM_SERVER", "http://localhost:8080"),
		SessionFile: getEnvOrDefault("PICKEM_SESSION_FILE", defaultSessionFile()),
		AdminKey:    os.Getenv("PICKEM_ADMIN_KEY"),
		Output:      "text",
		Verbose:     false,
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pickem/session.json"
	}
	return filepath.Join(home, ".pickem", "session.json")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
