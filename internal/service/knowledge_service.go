package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/repository"
	"github.com/maheshrc27/kolink/pkg/utils"
)

type KnowledgeService interface {
	List(ctx context.Context) ([]models.KnowledgeItem, error)
	Get(ctx context.Context, id string) (*models.KnowledgeItem, error)
	Create(ctx context.Context, title, content string) (*models.KnowledgeItem, error)
	Update(ctx context.Context, id, title, content string) (*models.KnowledgeItem, error)
	Delete(ctx context.Context, id string) error
}

type knowledgeService struct {
	kr repository.KnowledgeRepository
}

func NewKnowledgeService(kr repository.KnowledgeRepository) KnowledgeService {
	return &knowledgeService{kr: kr}
}

func validateKnowledge(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return models.NewValidationError("title is required")
	}
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("content is required")
	}
	return nil
}

func (s *knowledgeService) List(ctx context.Context) ([]models.KnowledgeItem, error) {
	items, err := s.kr.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (s *knowledgeService) Get(ctx context.Context, id string) (*models.KnowledgeItem, error) {
	item, err := s.kr.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if item == nil {
		return nil, models.NewNotFoundError("knowledge item", id)
	}
	return item, nil
}

func (s *knowledgeService) Create(ctx context.Context, title, content string) (*models.KnowledgeItem, error) {
	if err := validateKnowledge(title, content); err != nil {
		return nil, err
	}

	id, err := utils.NewID("kb")
	if err != nil {
		return nil, models.NewInternalError(fmt.Errorf("generate id: %w", err))
	}
	item := &models.KnowledgeItem{ID: id, Title: strings.TrimSpace(title), Content: content}
	if err := s.kr.Create(ctx, item); err != nil {
		return nil, models.NewInternalError(err)
	}
	return item, nil
}

func (s *knowledgeService) Update(ctx context.Context, id, title, content string) (*models.KnowledgeItem, error) {
	if err := validateKnowledge(title, content); err != nil {
		return nil, err
	}

	item := &models.KnowledgeItem{ID: id, Title: strings.TrimSpace(title), Content: content}
	if err := s.kr.Update(ctx, item); err != nil {
		return nil, storeError("knowledge item", id, err)
	}
	return item, nil
}

func (s *knowledgeService) Delete(ctx context.Context, id string) error {
	if err := s.kr.Remove(ctx, id); err != nil {
		return storeError("knowledge item", id, err)
	}
	return nil
}

type InspirationService interface {
	List(ctx context.Context) ([]models.InspirationPost, error)
	Create(ctx context.Context, content string) (*models.InspirationPost, error)
	Update(ctx context.Context, id, content string) (*models.InspirationPost, error)
	Delete(ctx context.Context, id string) error
}

type inspirationService struct {
	ir repository.InspirationRepository
}

func NewInspirationService(ir repository.InspirationRepository) InspirationService {
	return &inspirationService{ir: ir}
}

func (s *inspirationService) List(ctx context.Context) ([]models.InspirationPost, error) {
	posts, err := s.ir.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (s *inspirationService) Create(ctx context.Context, content string) (*models.InspirationPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("content is required")
	}

	id, err := utils.NewID("insp")
	if err != nil {
		return nil, models.NewInternalError(fmt.Errorf("generate id: %w", err))
	}
	post := &models.InspirationPost{ID: id, Content: content}
	if err := s.ir.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

func (s *inspirationService) Update(ctx context.Context, id, content string) (*models.InspirationPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("content is required")
	}

	post := &models.InspirationPost{ID: id, Content: content}
	if err := s.ir.Update(ctx, post); err != nil {
		return nil, storeError("inspiration post", id, err)
	}
	return post, nil
}

func (s *inspirationService) Delete(ctx context.Context, id string) error {
	if err := s.ir.Remove(ctx, id); err != nil {
		return storeError("inspiration post", id, err)
	}
	return nil
}
