package handlers

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/kolink/internal/service"
	"github.com/maheshrc27/kolink/internal/transfer"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{s: service}
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.s.List(c.UserContext(), service.PostFilter{
		Status: c.Query("status"),
		Search: c.Query("q"),
	})
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(posts)
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var body transfer.PostCreation
	if err := parseBody(c, &body); err != nil {
		return RespondWithError(c, err)
	}

	post, err := h.s.Create(c.UserContext(), body.Content, body.Image)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) Calendar(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	days, err := h.s.Calendar(c.UserContext(), year, time.Month(month))
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(days)
}

func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.s.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) Preview(c *fiber.Ctx) error {
	id := c.Params("id")
	html, err := h.s.Preview(c.UserContext(), id)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(transfer.PostPreview{ID: id, HTML: html})
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	var update service.PostUpdate
	if err := parseBody(c, &update); err != nil {
		return RespondWithError(c, err)
	}

	post, err := h.s.Update(c.UserContext(), c.Params("id"), update)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) SchedulePost(c *fiber.Ctx) error {
	var body transfer.PostSchedule
	if err := parseBody(c, &body); err != nil {
		return RespondWithError(c, err)
	}

	post, err := h.s.Schedule(c.UserContext(), c.Params("id"), body.ScheduledAt)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) UnschedulePost(c *fiber.Ctx) error {
	post, err := h.s.Unschedule(c.UserContext(), c.Params("id"))
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	var body transfer.TaskStatusUpdate
	if err := parseBody(c, &body); err != nil {
		return RespondWithError(c, err)
	}

	post, err := h.s.SetTaskStatus(c.UserContext(), c.Params("id"), body.TaskStatus)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file selected")
	}

	f, err := file.Open()
	if err != nil {
		return RespondWithError(c, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, service.MaxImageSize+1))
	if err != nil {
		return RespondWithError(c, err)
	}

	post, err := h.s.AttachImage(c.UserContext(), c.Params("id"), data)
	if err != nil {
		return RespondWithError(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	if err := h.s.Delete(c.UserContext(), c.Params("id")); err != nil {
		return RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
