package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/pts/internal/logic"
	"github.com/blues/pts/internal/middleware"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationLogic *logic.NotificationLogic
}

func NewNotificationHandler(notificationLogic *logic.NotificationLogic) *NotificationHandler {
	return &NotificationHandler{notificationLogic: notificationLogic}
}

// GetNotifications returns the caller's notifications, newest first.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	notifications, err := h.notificationLogic.List(caller.ID, limit)
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "notifications", notifications)
}
