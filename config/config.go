package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv pulls a local .env into the process environment. Missing file
// is fine in deployed environments where vars come from the platform.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			return
		}
		log.Printf("config: .env not loaded: %v", err)
	}
}
