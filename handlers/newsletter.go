package handlers

import (
	"net/http"
	"strings"

	"webnest/models"
	"webnest/services/tasks"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskEnqueuer is the slice of the asynq client the handler needs.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// NewsletterHandler accepts course-updates signups and queues the
// welcome email for the background mail worker.
type NewsletterHandler struct {
	Queue  TaskEnqueuer
	Logger *zap.Logger
}

func NewNewsletterHandler(queue TaskEnqueuer, logger *zap.Logger) *NewsletterHandler {
	return &NewsletterHandler{Queue: queue, Logger: logger}
}

// NewsletterSignupHandler handles POST /api/newsletter.
func (h *NewsletterHandler) NewsletterSignupHandler(c *gin.Context) {
	var signup models.NewsletterSignup
	if err := c.ShouldBindJSON(&signup); err != nil {
		c.JSON(http.StatusBadRequest, models.SubmitResponse{
			Success: false,
			Message: "Please provide a valid email address.",
		})
		return
	}

	// Honeypot: answer bots with a fake success, queue nothing.
	if strings.TrimSpace(signup.Website) != "" {
		h.Logger.Warn("Honeypot field filled on newsletter signup")
		c.JSON(http.StatusOK, models.SubmitResponse{Success: true, Message: "You're on the list!"})
		return
	}

	task, opts, err := tasks.NewWelcomeTask(models.WelcomeMailPayload{Email: signup.Email, Name: signup.Name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.SubmitResponse{
			Success: false,
			Message: "Something went wrong. Please try again later.",
		})
		return
	}
	if _, err := h.Queue.Enqueue(task, opts...); err != nil {
		h.Logger.Error("Failed to enqueue welcome email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.SubmitResponse{
			Success: false,
			Message: "Something went wrong. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, models.SubmitResponse{Success: true, Message: "You're on the list!"})
}
