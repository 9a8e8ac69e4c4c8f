// event-app10/internal/handlers/handlers.go

// Package handlers implements the full HTTP surface: candidate proposal,
// confirmation, attendance registration and the reminder trigger. Handlers
// receive their collaborators explicitly; nothing is read from package
// globals.
package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/matsumurashin0125/event-app10/config"
	"github.com/matsumurashin0125/event-app10/internal/notify"
	"github.com/matsumurashin0125/event-app10/internal/session"
)

const sessionCookie = "session_id"

// Handler carries the injected dependencies of every route.
type Handler struct {
	DB       *gorm.DB
	Notifier notify.Notifier
	Cfg      *config.AppConfig
	Sessions *session.Store
}

func New(db *gorm.DB, n notify.Notifier, cfg *config.AppConfig, s *session.Store) *Handler {
	return &Handler{DB: db, Notifier: n, Cfg: cfg, Sessions: s}
}

// sessionID returns the browser's session id, minting a new cookie when none
// is present yet.
func (h *Handler) sessionID(c *gin.Context) string {
	if sid, err := c.Cookie(sessionCookie); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(sessionCookie, sid, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
	return sid
}

// pushOrLog fires a LINE push and absorbs any failure. Notifications are a
// best-effort side channel; the triggering request must not fail with them.
func (h *Handler) pushOrLog(ctx context.Context, text string) {
	if err := h.Notifier.Push(ctx, text); err != nil {
		slog.Error("LINE push failed", "error", err)
	}
}

// proposalTimes builds the half-hour time-of-day menu 18:00..22:00.
func proposalTimes() []string {
	times := make([]string, 0, 10)
	for hh := 18; hh <= 22; hh++ {
		times = append(times, formatHM(hh, 0), formatHM(hh, 30))
	}
	return times[:len(times)-1] // drop 22:30, sessions end by 22:00
}

func formatHM(h, m int) string {
	return time.Date(0, 1, 1, h, m, 0, 0, time.UTC).Format("15:04")
}

// proposalBase is the default month of the proposal form: the first day of
// the month roughly three months out.
func proposalBase(now time.Time) time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	shifted := first.AddDate(0, 0, 92)
	return time.Date(shifted.Year(), shifted.Month(), 1, 0, 0, 0, 0, now.Location())
}

func proposalYears(base time.Time) []int {
	return []int{base.Year() - 1, base.Year(), base.Year() + 1}
}

func rangeInts(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
