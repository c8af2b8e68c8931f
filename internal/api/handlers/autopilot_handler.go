package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/kolink/internal/service"
	"github.com/maheshrc27/kolink/internal/transfer"
)

type AutopilotHandler struct {
	s service.AutopilotService
}

func NewAutopilotHandler(service service.AutopilotService) *AutopilotHandler {
	return &AutopilotHandler{s: service}
}

func (h *AutopilotHandler) Keywords(c *fiber.Ctx) error {
	keywords, err := h.s.Keywords(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(keywords)
}

func (h *AutopilotHandler) AddKeyword(c *fiber.Ctx) error {
	var body transfer.KeywordInput
	if err := parseBody(c, &body); err != nil {
		return RespondWithError(c, err)
	}

	keywords, err := h.s.AddKeyword(c.UserContext(), body.Keyword)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(keywords)
}

func (h *AutopilotHandler) RemoveKeyword(c *fiber.Ctx) error {
	keyword, err := url.PathUnescape(c.Params("keyword"))
	if err != nil {
		return badRequest(c, "Invalid keyword")
	}

	keywords, err := h.s.RemoveKeyword(c.UserContext(), keyword)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(keywords)
}

func (h *AutopilotHandler) ClearKeywords(c *fiber.Ctx) error {
	if err := h.s.ClearKeywords(c.UserContext()); err != nil {
		return RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AutopilotHandler) Analyze(c *fiber.Ctx) error {
	keywords, err := h.s.AnalyzeThemes(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(keywords)
}

func (h *AutopilotHandler) Generate(c *fiber.Ctx) error {
	var req service.AutopilotRequest
	if err := parseBody(c, &req); err != nil {
		return RespondWithError(c, err)
	}

	result, err := h.s.Generate(c.UserContext(), req)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(result)
}

func (h *AutopilotHandler) Suggestions(c *fiber.Ctx) error {
	suggestions, err := h.s.Suggestions(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(suggestions)
}

func (h *AutopilotHandler) Approve(c *fiber.Ctx) error {
	post, err := h.s.Approve(c.UserContext(), c.Params("id"))
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *AutopilotHandler) Reject(c *fiber.Ctx) error {
	suggestion, err := h.s.Reject(c.UserContext(), c.Params("id"))
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(suggestion)
}
