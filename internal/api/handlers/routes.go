package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/kolink/internal/service"
)

// Services is everything the /api routes are served from.
type Services struct {
	Posts           service.PostService
	Statistics      service.StatisticsService
	Generator       service.GeneratorService
	Autopilot       service.AutopilotService
	Knowledge       service.KnowledgeService
	Inspiration     service.InspirationService
	Personalization service.PersonalizationService
	Accounts        service.AccountService
	Notifications   service.NotificationService
}

func RegisterRoutes(api fiber.Router, s Services) {
	post := NewPostHandler(s.Posts)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts", post.CreatePost)
	api.Get("/posts/calendar", post.Calendar)
	api.Get("/posts/:id", post.GetPost)
	api.Get("/posts/:id/preview", post.Preview)
	api.Patch("/posts/:id", post.UpdatePost)
	api.Post("/posts/:id/schedule", post.SchedulePost)
	api.Post("/posts/:id/unschedule", post.UnschedulePost)
	api.Patch("/posts/:id/task", post.UpdateTaskStatus)
	api.Post("/posts/:id/image", post.UploadImage)
	api.Delete("/posts/:id", post.RemovePost)

	statistics := NewStatisticsHandler(s.Statistics)
	api.Get("/statistics", statistics.Report)
	api.Get("/statistics/overview", statistics.Overview)

	generator := NewGeneratorHandler(s.Generator)
	api.Post("/generator/generate", generator.Generate)
	api.Post("/generator/enhance", generator.Enhance)
	api.Post("/generator/drafts", generator.SaveDraft)
	api.Get("/generator/history", generator.History)

	autopilot := NewAutopilotHandler(s.Autopilot)
	api.Get("/autopilot/keywords", autopilot.Keywords)
	api.Post("/autopilot/keywords", autopilot.AddKeyword)
	api.Delete("/autopilot/keywords", autopilot.ClearKeywords)
	api.Delete("/autopilot/keywords/:keyword", autopilot.RemoveKeyword)
	api.Post("/autopilot/analyze", autopilot.Analyze)
	api.Post("/autopilot/generate", autopilot.Generate)
	api.Get("/autopilot/suggestions", autopilot.Suggestions)
	api.Post("/autopilot/suggestions/:id/approve", autopilot.Approve)
	api.Post("/autopilot/suggestions/:id/reject", autopilot.Reject)

	knowledge := NewKnowledgeHandler(s.Knowledge)
	api.Get("/knowledge", knowledge.List)
	api.Post("/knowledge", knowledge.Create)
	api.Get("/knowledge/:id", knowledge.Get)
	api.Patch("/knowledge/:id", knowledge.Update)
	api.Delete("/knowledge/:id", knowledge.Remove)

	inspiration := NewInspirationHandler(s.Inspiration)
	api.Get("/inspiration", inspiration.List)
	api.Post("/inspiration", inspiration.Create)
	api.Patch("/inspiration/:id", inspiration.Update)
	api.Delete("/inspiration/:id", inspiration.Remove)

	personalization := NewPersonalizationHandler(s.Personalization)
	api.Get("/personalization/identity", personalization.GetIdentity)
	api.Put("/personalization/identity", personalization.UpdateIdentity)
	api.Get("/personalization/practices", personalization.ListPractices)
	api.Post("/personalization/practices", personalization.AddPractice)
	api.Post("/personalization/practices/:id/toggle", personalization.TogglePractice)
	api.Delete("/personalization/practices/:id", personalization.RemovePractice)

	account := NewAccountHandler(s.Accounts)
	api.Get("/account", account.GetAccount)
	api.Post("/account/plan", account.SelectPlan)
	api.Post("/account/onboarding/complete", account.CompleteOnboarding)
	api.Put("/account/settings", account.UpdateSettings)
	api.Get("/account/notification-preferences", account.GetNotificationPreferences)
	api.Put("/account/notification-preferences", account.UpdateNotificationPreferences)

	notifications := NewNotificationHandler(s.Notifications)
	api.Get("/notifications", notifications.List)
	api.Get("/notifications/unread-count", notifications.UnreadCount)
	api.Post("/notifications/read-all", notifications.MarkAllRead)
	api.Post("/notifications/:id/read", notifications.MarkRead)
	api.Delete("/notifications/read", notifications.ClearRead)
}
