// event-app10/cmd/server/main.go

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/matsumurashin0125/event-app10/config"
	"github.com/matsumurashin0125/event-app10/internal/handlers"
	"github.com/matsumurashin0125/event-app10/internal/notify"
	"github.com/matsumurashin0125/event-app10/internal/routes"
	"github.com/matsumurashin0125/event-app10/internal/session"
	"github.com/matsumurashin0125/event-app10/models"
)

func main() {
	// Load .env first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		os.Exit(1)
	}
	if err := db.AutoMigrate(&models.Candidate{}, &models.Confirmed{}, &models.Attendance{}); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	sessions := session.NewStore(config.ConnectRedis())

	notifier := notify.NewService(notify.Config{
		LineChannelToken: cfg.LineChannelToken,
		LineGroupID:      cfg.LineGroupID,
		SendGridAPIKey:   cfg.SendGridAPIKey,
		FromEmail:        cfg.FromEmail,
		FromName:         cfg.FromName,
		Location:         cfg.Location,
	})

	h := handlers.New(db, notifier, cfg, sessions)

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")
	routes.Setup(r, h)

	// Optional in-process schedule for the day-before reminder. The external
	// POST /cron_reminder trigger keeps working either way.
	if cfg.ReminderCron != "" {
		c := cron.New(cron.WithLocation(cfg.Location))
		_, err := c.AddFunc(cfg.ReminderCron, func() {
			if err := h.RunReminder(context.Background()); err != nil {
				slog.Error("scheduled reminder failed", "error", err)
			}
		})
		if err != nil {
			slog.Error("invalid REMINDER_CRON", "value", cfg.ReminderCron, "error", err)
			os.Exit(1)
		}
		c.Start()
		slog.Info("reminder schedule active", "cron", cfg.ReminderCron)
	}

	slog.Info("server starting", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
