// event-app10/config/config.go

package config

import (
	"fmt"
	"os"
	"time"
)

// AppConfig holds every externally supplied setting. It is loaded once in main
// and handed to the components that need it; nothing reads the environment
// after startup.
type AppConfig struct {
	Addr    string // HTTP listen address
	BaseURL string // external base URL used in LINE messages

	DatabaseURL string

	// LINE Messaging API. Empty values disable push delivery; sends then fail
	// at call time and are logged by the caller.
	LineChannelToken string
	LineGroupID      string

	// SendGrid transactional mail.
	SendGridAPIKey string
	FromEmail      string
	FromName       string

	// Location is the local timezone events are entered in. Conversions to
	// UTC for calendar output go through this zone.
	Location *time.Location

	// ReminderCron optionally schedules the day-before reminder in-process
	// (cron syntax). The POST /cron_reminder endpoint works either way.
	ReminderCron string

	Roster Roster
}

// Load reads the process environment (plus the roster file) into an AppConfig.
func Load() (*AppConfig, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	tzName := envOr("LOCAL_TZ", "Asia/Tokyo")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tzName, err)
	}

	roster, err := LoadRoster(envOr("MEMBERS_FILE", "members.yaml"))
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	return &AppConfig{
		Addr:             envOr("ADDR", ":8080"),
		BaseURL:          envOr("BASE_URL", "http://localhost:8080"),
		DatabaseURL:      dsn,
		LineChannelToken: os.Getenv("LINE_CHANNEL_ACCESS_TOKEN"),
		LineGroupID:      os.Getenv("LINE_GROUP_ID"),
		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		FromEmail:        os.Getenv("FROM_EMAIL"),
		FromName:         envOr("FROM_NAME", "Event App"),
		Location:         loc,
		ReminderCron:     os.Getenv("REMINDER_CRON"),
		Roster:           roster,
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
