package initializers

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config carries everything main wires into the stores and handlers.
type Config struct {
	Port          string
	DataDir       string
	UploadDir     string
	PublicBaseURL string
	CORSOrigin    string
}

// LoadConfig reads a .env file when present, then the environment, falling
// back to the defaults the reference deployment uses.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	port := envOr("PORT", "3001")
	return Config{
		Port:          port,
		DataDir:       envOr("DATA_DIR", "data"),
		UploadDir:     envOr("UPLOAD_DIR", "uploads"),
		PublicBaseURL: envOr("PUBLIC_BASE_URL", "http://localhost:"+port),
		CORSOrigin:    envOr("CORS_ORIGIN", "http://localhost:3000"),
	}
}

// DBPath is the location of the JSON database file under the data dir.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "files.json")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
