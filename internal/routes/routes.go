// event-app10/internal/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/matsumurashin0125/event-app10/internal/handlers"
)

// Setup registers every route of the application. There is no auth layer:
// any visitor can reach the admin actions, matching the deployment model of
// a five-member group behind an unshared URL.
func Setup(r *gin.Engine, h *handlers.Handler) {
	// Member-facing pages
	r.GET("/", h.HomeHandler)
	r.GET("/home", h.HomeHandler)
	r.GET("/set_name", h.SetNamePageHandler)
	r.POST("/set_name", h.SetNameHandler)
	r.GET("/register", h.RegisterPageHandler)
	r.GET("/register/event/:candidateID", h.RegisterEventPageHandler)
	r.POST("/register/event/:candidateID", h.RegisterEventHandler)

	// Admin pages
	r.GET("/admin", h.AdminMenuHandler)

	candidate := r.Group("/candidate")
	{
		candidate.GET("", h.CandidatePageHandler)
		candidate.POST("", h.CreateCandidateHandler)
		candidate.GET("/:id/edit", h.EditCandidatePageHandler)
		candidate.POST("/:id/edit", h.UpdateCandidateHandler)
		candidate.POST("/:id/delete", h.DeleteCandidateHandler)
	}

	confirm := r.Group("/confirm")
	{
		confirm.GET("", h.ConfirmPageHandler)
		confirm.POST("", h.ConfirmCandidateHandler)
		confirm.POST("/:candidateID/unconfirm", h.UnconfirmHandler)
	}

	r.GET("/manage_event/:eventID", h.ManageEventHandler)
	r.POST("/update_attendance/:attendanceID", h.UpdateAttendanceHandler)

	attendance := r.Group("/attendance")
	{
		attendance.GET("/:id/edit", h.EditAttendancePageHandler)
		attendance.POST("/:id/edit", h.EditAttendanceHandler)
		attendance.POST("/:id/delete", h.DeleteAttendanceHandler)
	}

	// External triggers
	r.POST("/cron_reminder", h.CronReminderHandler)
	r.POST("/line_webhook", h.LineWebhookHandler)
}
