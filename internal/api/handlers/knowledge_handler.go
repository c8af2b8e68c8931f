package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/kolink/internal/service"
	"github.com/maheshrc27/kolink/internal/transfer"
)

type KnowledgeHandler struct {
	s service.KnowledgeService
}

func NewKnowledgeHandler(service service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{s: service}
}

func (h *KnowledgeHandler) List(c *fiber.Ctx) error {
	items, err := h.s.List(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(items)
}

func (h *KnowledgeHandler) Get(c *fiber.Ctx) error {
	item, err := h.s.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(item)
}

func (h *KnowledgeHandler) Create(c *fiber.Ctx) error {
	var body transfer.KnowledgeInput
	if err := parseBody(c, &body); err != nil {
		return RespondWithError(c, err)
	}

	item, err := h.s.Create(c.UserContext(), body.Title, body.Content)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *KnowledgeHandler) Update(c *fiber.Ctx) error {
	var body transfer.KnowledgeInput
	if err := parseBody(c, &body); err != nil {
		return RespondWithError(c, err)
	}

	item, err := h.s.Update(c.UserContext(), c.Params("id"), body.Title, body.Content)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(item)
}

func (h *KnowledgeHandler) Remove(c *fiber.Ctx) error {
	if err := h.s.Delete(c.UserContext(), c.Params("id")); err != nil {
		return RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type InspirationHandler struct {
	s service.InspirationService
}

func NewInspirationHandler(service service.InspirationService) *InspirationHandler {
	return &InspirationHandler{s: service}
}

func (h *InspirationHandler) List(c *fiber.Ctx) error {
	posts, err := h.s.List(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(posts)
}

func (h *InspirationHandler) Create(c *fiber.Ctx) error {
	var body transfer.InspirationInput
	if err := parseBody(c, &body); err != nil {
		return RespondWithError(c, err)
	}

	post, err := h.s.Create(c.UserContext(), body.Content)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *InspirationHandler) Update(c *fiber.Ctx) error {
	var body transfer.InspirationInput
	if err := parseBody(c, &body); err != nil {
		return RespondWithError(c, err)
	}

	post, err := h.s.Update(c.UserContext(), c.Params("id"), body.Content)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(post)
}

func (h *InspirationHandler) Remove(c *fiber.Ctx) error {
	if err := h.s.Delete(c.UserContext(), c.Params("id")); err != nil {
		return RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
