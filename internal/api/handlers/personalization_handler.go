package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/service"
	"github.com/maheshrc27/kolink/internal/transfer"
)

type PersonalizationHandler struct {
	s service.PersonalizationService
}

func NewPersonalizationHandler(service service.PersonalizationService) *PersonalizationHandler {
	return &PersonalizationHandler{s: service}
}

func (h *PersonalizationHandler) GetIdentity(c *fiber.Ctx) error {
	identity, err := h.s.GetIdentity(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(identity)
}

func (h *PersonalizationHandler) UpdateIdentity(c *fiber.Ctx) error {
	var identity models.Identity
	if err := parseBody(c, &identity); err != nil {
		return RespondWithError(c, err)
	}

	updated, err := h.s.UpdateIdentity(c.UserContext(), &identity)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(updated)
}

func (h *PersonalizationHandler) ListPractices(c *fiber.Ctx) error {
	practices, err := h.s.ListPractices(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(practices)
}

func (h *PersonalizationHandler) TogglePractice(c *fiber.Ctx) error {
	practice, err := h.s.TogglePractice(c.UserContext(), c.Params("id"))
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(practice)
}

func (h *PersonalizationHandler) AddPractice(c *fiber.Ctx) error {
	var body transfer.PracticeInput
	if err := parseBody(c, &body); err != nil {
		return RespondWithError(c, err)
	}

	practice, err := h.s.AddPractice(c.UserContext(), body.Text)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(practice)
}

func (h *PersonalizationHandler) RemovePractice(c *fiber.Ctx) error {
	if err := h.s.RemovePractice(c.UserContext(), c.Params("id")); err != nil {
		return RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
