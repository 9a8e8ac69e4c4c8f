// event-app10/internal/handlers/reminder_handler.go

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matsumurashin0125/event-app10/internal/schedule"
	"github.com/matsumurashin0125/event-app10/models"
)

// CronReminderHandler is the external trigger for the day-before reminder.
// It reports {"status":"ok"} or a 500 with the failure message.
func (h *Handler) CronReminderHandler(c *gin.Context) {
	if err := h.RunReminder(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RunReminder pushes one message per confirmed event taking place tomorrow
// in the configured local timezone. Push failures are absorbed per event;
// only persistence errors fail the run.
func (h *Handler) RunReminder(ctx context.Context) error {
	tomorrow := time.Now().In(h.Cfg.Location).AddDate(0, 0, 1)

	var cands []models.Candidate
	err := h.DB.
		Where("year = ? AND month = ? AND day = ?", tomorrow.Year(), int(tomorrow.Month()), tomorrow.Day()).
		Find(&cands).Error
	if err != nil {
		return fmt.Errorf("load tomorrow's candidates: %w", err)
	}

	for _, cand := range cands {
		eventID := h.confirmedIDFor(cand.ID)
		if eventID == 0 {
			continue
		}
		summary := h.summaryForEvent(eventID)

		names := "まだ未登録"
		if len(summary.AttendMembers) > 0 {
			names = strings.Join(summary.AttendMembers, ", ")
		}

		h.pushOrLog(ctx, fmt.Sprintf(
			"⏰ 明日はイベントです！\n%d/%d @ %s %s\n参加予定: %d名\n%s",
			cand.Month, cand.Day, cand.Gym,
			schedule.FormatTimeRange(cand.Start, cand.End),
			summary.AttendCount, names,
		))
	}
	return nil
}
