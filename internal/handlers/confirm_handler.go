// event-app10/internal/handlers/confirm_handler.go

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/matsumurashin0125/event-app10/internal/ics"
	"github.com/matsumurashin0125/event-app10/internal/schedule"
	"github.com/matsumurashin0125/event-app10/models"
)

// ConfirmPageHandler renders the admin view: all candidates and all
// confirmed events grouped by month, with attendance summaries.
func (h *Handler) ConfirmPageHandler(c *gin.Context) {
	cands, err := h.orderedCandidates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list candidates"})
		return
	}

	all := make([]candidateView, 0, len(cands))
	confirmed := make([]candidateView, 0)
	for _, cand := range cands {
		v := h.candidateView(cand)
		v.ConfirmedID = h.confirmedIDFor(cand.ID)
		all = append(all, v)
		if v.ConfirmedID != 0 {
			v.Summary = h.summaryForEvent(v.ConfirmedID)
			confirmed = append(confirmed, v)
		}
	}

	candGroups := groupByMonth(all)
	activeMonth := 0
	if len(candGroups) > 0 {
		activeMonth = candGroups[0].Month
	}
	if m, err := strconv.Atoi(c.Query("month")); err == nil {
		activeMonth = m
	}

	c.HTML(http.StatusOK, "confirm.html", gin.H{
		"CandidatesByMonth": candGroups,
		"ConfirmedByMonth":  groupByMonth(confirmed),
		"ActiveMonth":       activeMonth,
	})
}

// ConfirmCandidateHandler marks a candidate as the chosen event. A second
// confirm of the same candidate is a no-op: no new row, no notification.
func (h *Handler) ConfirmCandidateHandler(c *gin.Context) {
	candidateID, err := strconv.Atoi(c.PostForm("candidate_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid candidate_id"})
		return
	}

	var cand models.Candidate
	if err := h.DB.First(&cand, candidateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load candidate"})
		}
		return
	}

	if h.confirmedIDFor(cand.ID) == 0 {
		if err := h.DB.Create(&models.Confirmed{CandidateID: cand.ID}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm candidate"})
			return
		}
		h.pushOrLog(c.Request.Context(), h.confirmMessage(cand))
	}

	c.Redirect(http.StatusSeeOther, "/confirm")
}

func (h *Handler) confirmMessage(cand models.Candidate) string {
	md, err := schedule.FormatDate(cand.Year, cand.Month, cand.Day)
	if err != nil {
		md = fmt.Sprintf("%d/%d", cand.Month, cand.Day)
	}
	dateStr := fmt.Sprintf("%s %s", md, schedule.FormatTimeRange(cand.Start, cand.End))

	registerURL := h.Cfg.BaseURL + "/set_name"
	calendarURL := ""
	if start, end, err := ics.EventTimes(cand, h.Cfg.Location); err == nil {
		calendarURL = ics.GoogleCalendarURL(cand.Gym, cand.Gym, cand.Gym, start, end)
	} else {
		slog.Error("calendar link skipped", "candidate_id", cand.ID, "error", err)
	}

	return fmt.Sprintf(
		"📌 イベントが確定しました！\n\n🗓 %s\n\n🏠 %s\n\n📥 参加登録はこちら👇\n%s\n\n📅 Googleカレンダーに追加👇\n%s",
		dateStr, cand.Gym, registerURL, calendarURL,
	)
}

// UnconfirmHandler reverts a candidate to proposed, destroying the event's
// attendance history. No notification is sent.
func (h *Handler) UnconfirmHandler(c *gin.Context) {
	candidateID, err := strconv.Atoi(c.Param("candidateID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid candidate id"})
		return
	}

	var conf models.Confirmed
	if err := h.DB.Where("candidate_id = ?", candidateID).First(&conf).Error; err == nil {
		h.DB.Where("event_id = ?", conf.ID).Delete(&models.Attendance{})
		h.DB.Delete(&conf)
	}

	c.Redirect(http.StatusSeeOther, "/confirm")
}

// ManageEventHandler renders the per-event attendance management page.
func (h *Handler) ManageEventHandler(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("eventID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var conf models.Confirmed
	if err := h.DB.First(&conf, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load event"})
		}
		return
	}
	var cand models.Candidate
	if err := h.DB.First(&cand, conf.CandidateID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
		return
	}

	var rows []models.Attendance
	h.DB.Where("event_id = ?", conf.ID).Find(&rows)

	c.HTML(http.StatusOK, "manage_event_attendance.html", gin.H{
		"EventInfo":  h.candidateView(cand),
		"Attendance": rows,
	})
}
