package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maheshrc27/kolink/internal/i18n"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/repository"
	"github.com/maheshrc27/kolink/pkg/utils"
)

const practiceKeyPrefix = "personalization.practices."

type PersonalizationService interface {
	GetIdentity(ctx context.Context) (*models.Identity, error)
	UpdateIdentity(ctx context.Context, identity *models.Identity) (*models.Identity, error)
	// ListPractices returns every practice with base texts rendered in the
	// account language.
	ListPractices(ctx context.Context) ([]models.BestPractice, error)
	TogglePractice(ctx context.Context, id string) (*models.BestPractice, error)
	AddPractice(ctx context.Context, text string) (*models.BestPractice, error)
	RemovePractice(ctx context.Context, id string) error
	// ActivePractices returns the texts of the active practices, ready to be
	// placed in a prompt.
	ActivePractices(ctx context.Context) ([]string, error)
}

type personalizationService struct {
	pr repository.PersonalizationRepository
	ar repository.AccountRepository
}

func NewPersonalizationService(pr repository.PersonalizationRepository, ar repository.AccountRepository) PersonalizationService {
	return &personalizationService{pr: pr, ar: ar}
}

func (s *personalizationService) GetIdentity(ctx context.Context) (*models.Identity, error) {
	identity, err := s.pr.GetIdentity(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return identity, nil
}

func (s *personalizationService) UpdateIdentity(ctx context.Context, identity *models.Identity) (*models.Identity, error) {
	if identity == nil {
		return nil, models.NewValidationError("identity is required")
	}
	identity.Name = strings.TrimSpace(identity.Name)
	identity.Occupation = strings.TrimSpace(identity.Occupation)

	if err := s.pr.UpdateIdentity(ctx, identity); err != nil {
		return nil, models.NewInternalError(err)
	}
	return identity, nil
}

func (s *personalizationService) ListPractices(ctx context.Context) ([]models.BestPractice, error) {
	loc, err := loadLocale(ctx, s.ar)
	if err != nil {
		return nil, err
	}

	practices, err := s.pr.ListPractices(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	for i := range practices {
		if practices[i].Type == models.PracticeTypeBase && practices[i].Key != "" {
			practices[i].Text = i18n.T(loc.lang, practiceKeyPrefix+practices[i].Key, nil)
		}
	}
	return practices, nil
}

func (s *personalizationService) find(ctx context.Context, id string) (*models.BestPractice, error) {
	practices, err := s.ListPractices(ctx)
	if err != nil {
		return nil, err
	}
	for i := range practices {
		if practices[i].ID == id {
			return &practices[i], nil
		}
	}
	return nil, models.NewNotFoundError("best practice", id)
}

func (s *personalizationService) TogglePractice(ctx context.Context, id string) (*models.BestPractice, error) {
	practice, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if practice.Type != models.PracticeTypeBase {
		return nil, models.NewValidationError("custom practices are always active")
	}

	practice.Active = !practice.Active
	if err := s.pr.SetPracticeActive(ctx, id, practice.Active); err != nil {
		return nil, storeError("best practice", id, err)
	}
	return practice, nil
}

func (s *personalizationService) AddPractice(ctx context.Context, text string) (*models.BestPractice, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("practice text is required")
	}

	id, err := utils.NewID("bp")
	if err != nil {
		return nil, models.NewInternalError(fmt.Errorf("generate id: %w", err))
	}
	practice := &models.BestPractice{ID: id, Text: text, Type: models.PracticeTypeCustom, Active: true}
	if err := s.pr.AddPractice(ctx, practice); err != nil {
		return nil, models.NewInternalError(err)
	}
	return practice, nil
}

func (s *personalizationService) RemovePractice(ctx context.Context, id string) error {
	if err := s.pr.RemovePractice(ctx, id); err != nil {
		return storeError("custom practice", id, err)
	}
	return nil
}

func (s *personalizationService) ActivePractices(ctx context.Context) ([]string, error) {
	practices, err := s.ListPractices(ctx)
	if err != nil {
		return nil, err
	}

	var texts []string
	for _, p := range practices {
		if p.Active {
			texts = append(texts, p.Text)
		}
	}
	return texts, nil
}
