package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/kolink/internal/service"
	"github.com/maheshrc27/kolink/internal/transfer"
)

type NotificationHandler struct {
	s service.NotificationService
}

func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{s: service}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	notifications, err := h.s.List(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(notifications)
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	n, err := h.s.UnreadCount(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(transfer.UnreadCount{Unread: n})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.s.MarkRead(c.UserContext(), c.Params("id")); err != nil {
		return RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.s.MarkAllRead(c.UserContext()); err != nil {
		return RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) ClearRead(c *fiber.Ctx) error {
	n, err := h.s.ClearRead(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(transfer.Cleared{Removed: n})
}
