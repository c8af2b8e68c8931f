package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/kolink/internal/service"
	"github.com/maheshrc27/kolink/internal/transfer"
)

type GeneratorHandler struct {
	s service.GeneratorService
}

func NewGeneratorHandler(service service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{s: service}
}

func (h *GeneratorHandler) Generate(c *fiber.Ctx) error {
	var req service.GenerateRequest
	if err := parseBody(c, &req); err != nil {
		return RespondWithError(c, err)
	}

	result, err := h.s.Generate(c.UserContext(), req)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(result)
}

func (h *GeneratorHandler) Enhance(c *fiber.Ctx) error {
	var body transfer.EnhanceInput
	if err := parseBody(c, &body); err != nil {
		return RespondWithError(c, err)
	}

	result, err := h.s.Enhance(c.UserContext(), body.Prompt)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(result)
}

func (h *GeneratorHandler) SaveDraft(c *fiber.Ctx) error {
	var body transfer.DraftCreation
	if err := parseBody(c, &body); err != nil {
		return RespondWithError(c, err)
	}

	post, err := h.s.SaveDraft(c.UserContext(), body.Content)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *GeneratorHandler) History(c *fiber.Ctx) error {
	items, err := h.s.History(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(items)
}
