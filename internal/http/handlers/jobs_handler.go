// README: Scheduled-job trigger endpoints.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Blast-git/Journey-Sync/internal/modules/notification"
)

// ReminderRunner is the scheduler as the trigger endpoint sees it.
type ReminderRunner interface {
	Run(ctx context.Context) (notification.Report, error)
}

type JobsHandler struct {
	reminders ReminderRunner
}

func NewJobsHandler(reminders ReminderRunner) *JobsHandler {
	return &JobsHandler{reminders: reminders}
}

// ProcessNotifications runs one reminder pass. The endpoint takes no body and
// answers the success/error envelope the cron infrastructure expects; a fetch
// failure maps to 500, per-booking failures are already absorbed by the pass.
func (h *JobsHandler) ProcessNotifications(c *gin.Context) {
	rep, err := h.reminders.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notifications processed successfully",
		"checked": rep.Checked,
		"sent":    rep.Sent,
		"failed":  rep.Failed,
	})
}
