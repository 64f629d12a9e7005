package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Credentials holds the secrets for the notification sinks. They come from
// the environment, not from the YAML config, so the config file can be
// committed. Loaded once at startup and passed into the sinks explicitly.
type Credentials struct {
	TelegramToken  string
	TelegramChatID string
	EmailEnabled   bool
	EmailUser      string
	EmailPassword  string
	EmailReceiver  string
}

// LoadCredentials reads credentials from the environment, optionally
// seeding it from a .env file first. A missing .env file is not an error:
// in cron or container setups the variables are set directly.
func LoadCredentials(envPath ...string) (*Credentials, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: no .env file loaded (%v), using process environment", err)
	}

	creds := &Credentials{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),
		EmailEnabled:   getEnvAsBool("EMAIL_ENABLED", false),
		EmailUser:      os.Getenv("EMAIL_USER"),
		EmailPassword:  os.Getenv("EMAIL_PASSWORD"),
		EmailReceiver:  os.Getenv("EMAIL_RECEIVER"),
	}

	if creds.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN environment variable is required")
	}
	if creds.TelegramChatID == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID environment variable is required")
	}

	if creds.EmailEnabled {
		if creds.EmailUser == "" || creds.EmailPassword == "" || creds.EmailReceiver == "" {
			return nil, fmt.Errorf("EMAIL_ENABLED is true but EMAIL_USER, EMAIL_PASSWORD or EMAIL_RECEIVER is not set")
		}
	}

	return creds, nil
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value == "true" || value == "1"
}
