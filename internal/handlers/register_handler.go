// event-app10/internal/handlers/register_handler.go

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/matsumurashin0125/event-app10/internal/schedule"
	"github.com/matsumurashin0125/event-app10/models"
)

// RegisterPageHandler lists the confirmed events a member can RSVP to,
// grouped by month, with current summaries.
func (h *Handler) RegisterPageHandler(c *gin.Context) {
	userName, _ := h.Sessions.Name(c.Request.Context(), h.sessionID(c))

	cands, err := h.orderedCandidates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}

	views := make([]candidateView, 0, len(cands))
	for _, cand := range cands {
		eventID := h.confirmedIDFor(cand.ID)
		if eventID == 0 {
			continue
		}
		v := h.candidateView(cand)
		v.ConfirmedID = eventID
		v.Summary = h.summaryForEvent(eventID)
		views = append(views, v)
	}

	groups := groupByMonth(views)
	activeMonth := 0
	if len(groups) > 0 {
		activeMonth = groups[0].Month
	}
	if m, err := strconv.Atoi(c.Query("month")); err == nil {
		activeMonth = m
	}

	c.HTML(http.StatusOK, "register_select.html", gin.H{
		"Groups":      groups,
		"UserName":    userName,
		"ActiveMonth": activeMonth,
	})
}

// RegisterEventPageHandler renders the RSVP form for one event. A candidate
// reached directly without a confirmed row is confirmed on the spot, silently.
func (h *Handler) RegisterEventPageHandler(c *gin.Context) {
	cand, event, ok := h.loadRegistrationTarget(c)
	if !ok {
		return
	}

	var rows []models.Attendance
	h.DB.Where("event_id = ?", event.ID).Find(&rows)

	defaultName, _ := h.Sessions.Name(c.Request.Context(), h.sessionID(c))

	c.HTML(http.StatusOK, "register_form.html", gin.H{
		"Candidate":   h.candidateView(cand),
		"Attendance":  rows,
		"Members":     h.Cfg.Roster.Names(),
		"DefaultName": defaultName,
	})
}

// RegisterEventHandler records one member's RSVP: normalize the status,
// upsert by (event, name) atomically, push the updated counts, and for an
// attend answer with a known address send the calendar invite. The invite is
// best-effort; registration succeeds regardless.
func (h *Handler) RegisterEventHandler(c *gin.Context) {
	cand, event, ok := h.loadRegistrationTarget(c)
	if !ok {
		return
	}

	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	status := schedule.NormalizeStatus(c.PostForm("status"))

	att := models.Attendance{EventID: event.ID, Name: name, Status: status}
	err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(&att).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save attendance"})
		return
	}

	summary := h.summaryForEvent(event.ID)
	h.pushOrLog(c.Request.Context(), fmt.Sprintf(
		"📝 参加登録\n%s : %s\n現在の状況 → 参加 %d / 不参加 %d\n%d/%d @ %s %s",
		name, status, summary.AttendCount, summary.AbsentCount,
		cand.Month, cand.Day, cand.Gym, schedule.FormatTimeRange(cand.Start, cand.End),
	))

	if status == schedule.StatusAttend {
		if email, found := h.Cfg.Roster.Email(name); found {
			if err := h.Notifier.SendInvite(c.Request.Context(), cand, name, email); err != nil {
				slog.Error("calendar invite failed", "name", name, "error", err)
			}
		}
		// No address on file: skip silently, registration already succeeded.
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/register?month=%d", cand.Month))
}

// loadRegistrationTarget resolves the :candidateID route param to its
// candidate and confirmed event, creating the confirmed row when missing.
func (h *Handler) loadRegistrationTarget(c *gin.Context) (models.Candidate, models.Confirmed, bool) {
	candidateID, err := strconv.Atoi(c.Param("candidateID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid candidate id"})
		return models.Candidate{}, models.Confirmed{}, false
	}

	var cand models.Candidate
	if err := h.DB.First(&cand, candidateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load candidate"})
		}
		return models.Candidate{}, models.Confirmed{}, false
	}

	var event models.Confirmed
	err = h.DB.Where("candidate_id = ?", cand.ID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		event = models.Confirmed{CandidateID: cand.ID}
		err = h.DB.Create(&event).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load event"})
		return models.Candidate{}, models.Confirmed{}, false
	}
	return cand, event, true
}
