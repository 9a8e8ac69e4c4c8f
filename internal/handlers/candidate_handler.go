// event-app10/internal/handlers/candidate_handler.go

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/matsumurashin0125/event-app10/internal/schedule"
	"github.com/matsumurashin0125/event-app10/models"
)

// candidateForm is the shared slot-proposal form payload.
type candidateForm struct {
	Year  int    `form:"year" binding:"required"`
	Month int    `form:"month" binding:"required"`
	Day   int    `form:"day" binding:"required"`
	Gym   string `form:"gym" binding:"required"`
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

// CandidatePageHandler renders the proposal form plus the current candidate
// list.
func (h *Handler) CandidatePageHandler(c *gin.Context) {
	base := proposalBase(time.Now().In(h.Cfg.Location))
	h.renderCandidatePage(c, models.Candidate{
		Year:  base.Year(),
		Month: int(base.Month()),
		Day:   base.Day(),
		Gym:   firstGym(h.Cfg.Roster.Gyms),
		Start: "18:00",
		End:   "19:00",
	})
}

// CreateCandidateHandler stores a new proposed slot. Dates are checked
// against the calendar here, so later formatting can not blow up on a
// nonexistent day.
func (h *Handler) CreateCandidateHandler(c *gin.Context) {
	var form candidateForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form: " + err.Error()})
		return
	}
	if err := schedule.ValidateDate(form.Year, form.Month, form.Day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cand := models.Candidate{
		Year:  form.Year,
		Month: form.Month,
		Day:   form.Day,
		Gym:   form.Gym,
		Start: form.Start,
		End:   form.End,
	}
	if err := h.DB.Create(&cand).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create candidate"})
		return
	}

	h.renderCandidatePage(c, cand)
}

func (h *Handler) renderCandidatePage(c *gin.Context, selected models.Candidate) {
	base := proposalBase(time.Now().In(h.Cfg.Location))

	cands, err := h.orderedCandidates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list candidates"})
		return
	}
	views := make([]candidateView, 0, len(cands))
	for _, cand := range cands {
		v := h.candidateView(cand)
		v.ConfirmedID = h.confirmedIDFor(cand.ID)
		views = append(views, v)
	}

	c.HTML(http.StatusOK, "candidate.html", gin.H{
		"Years":      proposalYears(base),
		"Months":     rangeInts(1, 12),
		"Days":       rangeInts(1, 31),
		"Gyms":       h.Cfg.Roster.Gyms,
		"Times":      proposalTimes(),
		"Selected":   selected,
		"Candidates": views,
	})
}

// EditCandidatePageHandler renders the edit form for one candidate.
func (h *Handler) EditCandidatePageHandler(c *gin.Context) {
	cand, ok := h.findCandidate(c)
	if !ok {
		return
	}
	base := proposalBase(time.Now().In(h.Cfg.Location))
	c.HTML(http.StatusOK, "edit_candidate.html", gin.H{
		"Cand":   cand,
		"Years":  proposalYears(base),
		"Months": rangeInts(1, 12),
		"Days":   rangeInts(1, 31),
		"Gyms":   h.Cfg.Roster.Gyms,
		"Times":  proposalTimes(),
	})
}

// UpdateCandidateHandler applies an edit. Editing a confirmed slot keeps its
// attendance and announces the change; editing an unconfirmed one is silent.
func (h *Handler) UpdateCandidateHandler(c *gin.Context) {
	cand, ok := h.findCandidate(c)
	if !ok {
		return
	}

	var form candidateForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form: " + err.Error()})
		return
	}
	if err := schedule.ValidateDate(form.Year, form.Month, form.Day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cand.Year = form.Year
	cand.Month = form.Month
	cand.Day = form.Day
	cand.Gym = form.Gym
	cand.Start = form.Start
	cand.End = form.End
	if err := h.DB.Save(&cand).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update candidate"})
		return
	}

	if h.confirmedIDFor(cand.ID) != 0 {
		h.pushOrLog(c.Request.Context(), fmt.Sprintf(
			"✏️ 確定日程が変更されました\n%d/%d %s\n%s〜%s",
			cand.Month, cand.Day, cand.Gym, cand.Start, cand.End,
		))
	}

	c.Redirect(http.StatusSeeOther, "/confirm")
}

// DeleteCandidateHandler removes a candidate and cascades to its confirmed
// event and attendance.
func (h *Handler) DeleteCandidateHandler(c *gin.Context) {
	cand, ok := h.findCandidate(c)
	if !ok {
		return
	}

	h.DB.Where("event_id IN (?)",
		h.DB.Model(&models.Confirmed{}).Select("id").Where("candidate_id = ?", cand.ID),
	).Delete(&models.Attendance{})
	h.DB.Where("candidate_id = ?", cand.ID).Delete(&models.Confirmed{})
	if err := h.DB.Delete(&cand).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete candidate"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/confirm")
}

func (h *Handler) findCandidate(c *gin.Context) (models.Candidate, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid candidate id"})
		return models.Candidate{}, false
	}
	var cand models.Candidate
	if err := h.DB.First(&cand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load candidate"})
		}
		return models.Candidate{}, false
	}
	return cand, true
}

// confirmedIDFor returns the confirmed event id of a candidate, or 0.
func (h *Handler) confirmedIDFor(candidateID uint) uint {
	var conf models.Confirmed
	if err := h.DB.Where("candidate_id = ?", candidateID).First(&conf).Error; err != nil {
		return 0
	}
	return conf.ID
}

func firstGym(gyms []string) string {
	if len(gyms) == 0 {
		return ""
	}
	return gyms[0]
}
