package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/service"
	"github.com/maheshrc27/kolink/internal/transfer"
)

type AccountHandler struct {
	s service.AccountService
}

func NewAccountHandler(service service.AccountService) *AccountHandler {
	return &AccountHandler{s: service}
}

func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	account, err := h.s.Get(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(account)
}

func (h *AccountHandler) SelectPlan(c *fiber.Ctx) error {
	var body transfer.PlanSelection
	if err := parseBody(c, &body); err != nil {
		return RespondWithError(c, err)
	}

	account, err := h.s.SelectPlan(c.UserContext(), body.Plan)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(account)
}

func (h *AccountHandler) CompleteOnboarding(c *fiber.Ctx) error {
	account, err := h.s.CompleteOnboarding(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(account)
}

func (h *AccountHandler) UpdateSettings(c *fiber.Ctx) error {
	var settings transfer.SettingsUpdate
	if err := parseBody(c, &settings); err != nil {
		return RespondWithError(c, err)
	}

	account, err := h.s.UpdateSettings(c.UserContext(), settings.Language, settings.Timezone)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(account)
}

func (h *AccountHandler) GetNotificationPreferences(c *fiber.Ctx) error {
	prefs, err := h.s.GetNotificationPreferences(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(prefs)
}

func (h *AccountHandler) UpdateNotificationPreferences(c *fiber.Ctx) error {
	var prefs models.NotificationPreferences
	if err := parseBody(c, &prefs); err != nil {
		return RespondWithError(c, err)
	}

	updated, err := h.s.UpdateNotificationPreferences(c.UserContext(), &prefs)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(updated)
}
