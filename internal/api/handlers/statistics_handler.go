package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/kolink/internal/service"
)

type StatisticsHandler struct {
	s service.StatisticsService
}

func NewStatisticsHandler(service service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{s: service}
}

func (h *StatisticsHandler) Report(c *fiber.Ctx) error {
	report, err := h.s.Report(c.UserContext(), c.Query("range"))
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(report)
}

func (h *StatisticsHandler) Overview(c *fiber.Ctx) error {
	summary, err := h.s.Overview(c.UserContext())
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(summary)
}
