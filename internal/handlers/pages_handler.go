// event-app10/internal/handlers/pages_handler.go

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeHandler renders the landing page.
func (h *Handler) HomeHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

// AdminMenuHandler renders the admin menu.
func (h *Handler) AdminMenuHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_menu.html", gin.H{})
}

// SetNamePageHandler renders the member picker.
func (h *Handler) SetNamePageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "set_name.html", gin.H{
		"Members": h.Cfg.Roster.Names(),
	})
}

// SetNameHandler stores the selected member name in the session and sends
// the member on to the registration list.
func (h *Handler) SetNameHandler(c *gin.Context) {
	name := c.PostForm("user_name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_name is required"})
		return
	}
	sid := h.sessionID(c)
	h.Sessions.SetName(c.Request.Context(), sid, name)
	c.Redirect(http.StatusSeeOther, "/register")
}

// LineWebhookHandler is the sink for LINE platform callbacks. The app only
// pushes, so the payload is just logged.
func (h *Handler) LineWebhookHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err == nil && len(body) > 0 {
		slog.Info("LINE webhook received", "body", string(body))
	}
	c.String(http.StatusOK, "OK")
}
