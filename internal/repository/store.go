package repository

import (
	"database/sql"
	"time"

	"github.com/maheshrc27/kolink/internal/models"
)

// Store bundles every repository the services need.
type Store struct {
	Posts           PostRepository
	Account         AccountRepository
	Knowledge       KnowledgeRepository
	Inspiration     InspirationRepository
	Personalization PersonalizationRepository
	Notifications   NotificationRepository
	History         GenerationHistoryRepository
	Autopilot       AutopilotRepository
}

func NewPostgresStore(db *sql.DB) *Store {
	return &Store{
		Posts:           NewPostRepository(db),
		Account:         NewAccountRepository(db),
		Knowledge:       NewKnowledgeRepository(db),
		Inspiration:     NewInspirationRepository(db),
		Personalization: NewPersonalizationRepository(db),
		Notifications:   NewNotificationRepository(db),
		History:         NewGenerationHistoryRepository(db),
		Autopilot:       NewAutopilotRepository(db),
	}
}

// NewMemoryStore builds a process-local store. With seed set it starts from the
// demo workspace, otherwise only the account defaults and base practices exist.
func NewMemoryStore(account models.Account, seed bool, now time.Time) *Store {
	if !seed {
		return &Store{
			Posts:           NewMemoryPostRepository(nil),
			Account:         NewMemoryAccountRepository(account),
			Knowledge:       NewMemoryKnowledgeRepository(nil),
			Inspiration:     NewMemoryInspirationRepository(nil),
			Personalization: NewMemoryPersonalizationRepository(models.Identity{}, models.BasePractices()),
			Notifications:   NewMemoryNotificationRepository(nil),
			History:         NewMemoryGenerationHistoryRepository(nil),
			Autopilot:       NewMemoryAutopilotRepository(nil),
		}
	}

	return &Store{
		Posts:           NewMemoryPostRepository(DemoPosts(now)),
		Account:         NewMemoryAccountRepository(account),
		Knowledge:       NewMemoryKnowledgeRepository(DemoKnowledge()),
		Inspiration:     NewMemoryInspirationRepository(DemoInspiration()),
		Personalization: NewMemoryPersonalizationRepository(DemoIdentity(), models.BasePractices()),
		Notifications:   NewMemoryNotificationRepository(DemoNotifications(now)),
		History:         NewMemoryGenerationHistoryRepository(DemoHistory(now)),
		Autopilot:       NewMemoryAutopilotRepository(DemoKeywords()),
	}
}
