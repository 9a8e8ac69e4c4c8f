// event-app10/internal/handlers/attendance_handler.go

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/matsumurashin0125/event-app10/internal/schedule"
	"github.com/matsumurashin0125/event-app10/models"
)

// UpdateAttendanceHandler is the strict status flip on the admin page: the
// submitted value must normalize to a definite attend/absent answer.
func (h *Handler) UpdateAttendanceHandler(c *gin.Context) {
	att, ok := h.findAttendance(c, c.Param("attendanceID"))
	if !ok {
		return
	}

	raw := c.PostForm("status")
	if !schedule.IsExplicit(raw) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	att.Status = schedule.NormalizeStatus(raw)
	if err := h.DB.Save(&att).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update attendance"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/confirm")
}

// EditAttendancePageHandler renders the lenient edit form.
func (h *Handler) EditAttendancePageHandler(c *gin.Context) {
	att, ok := h.findAttendance(c, c.Param("id"))
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "edit_attendance.html", gin.H{
		"Att":     att,
		"Members": h.Cfg.Roster.Names(),
	})
}

// EditAttendanceHandler applies a name/status edit. Any status token is
// accepted here and normalized; unrecognized values become pending.
func (h *Handler) EditAttendanceHandler(c *gin.Context) {
	att, ok := h.findAttendance(c, c.Param("id"))
	if !ok {
		return
	}

	if name := strings.TrimSpace(c.PostForm("name")); name != "" {
		att.Name = name
	}
	att.Status = schedule.NormalizeStatus(strings.TrimSpace(c.PostForm("status")))

	if err := h.DB.Save(&att).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update attendance"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/candidate")
}

// DeleteAttendanceHandler removes a single RSVP row.
func (h *Handler) DeleteAttendanceHandler(c *gin.Context) {
	att, ok := h.findAttendance(c, c.Param("id"))
	if !ok {
		return
	}
	if err := h.DB.Delete(&att).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete attendance"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/confirm")
}

func (h *Handler) findAttendance(c *gin.Context, rawID string) (models.Attendance, bool) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attendance id"})
		return models.Attendance{}, false
	}
	var att models.Attendance
	if err := h.DB.First(&att, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "attendance not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load attendance"})
		}
		return models.Attendance{}, false
	}
	return att, true
}
