package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"moodtrip/internal/models/db_models"
	"moodtrip/internal/repositories"
	"moodtrip/pkg/utils"
)

type HistoryService interface {
	RecordSearch(ctx context.Context, accountID uuid.UUID, mood string, query string, destinations []string) (*db_models.SearchHistory, error)
	ListRecent(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.SearchHistory, error)
	SetRating(ctx context.Context, accountID uuid.UUID, searchID uuid.UUID, rating int) error
	SetFavorite(ctx context.Context, accountID uuid.UUID, searchID uuid.UUID, favorite bool) error
}

type historyService struct {
	historyRepo repositories.SearchHistoryRepository
}

func NewHistoryService(historyRepo repositories.SearchHistoryRepository) HistoryService {
	return &historyService{historyRepo: historyRepo}
}

func (s *historyService) RecordSearch(ctx context.Context, accountID uuid.UUID, mood string, query string, destinations []string) (*db_models.SearchHistory, error) {
	entry := &db_models.SearchHistory{
		AccountID:    accountID,
		Mood:         mood,
		Query:        query,
		Destinations: destinations,
	}
	if err := s.historyRepo.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return entry, nil
}

func (s *historyService) ListRecent(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.SearchHistory, error) {
	entries, err := s.historyRepo.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return entries, nil
}

func (s *historyService) SetRating(ctx context.Context, accountID uuid.UUID, searchID uuid.UUID, rating int) error {
	if rating < 1 || rating > 5 {
		return utils.ErrInvalidInput
	}
	entry, err := s.ownedSearch(ctx, accountID, searchID)
	if err != nil {
		return err
	}
	if err := s.historyRepo.UpdateRating(ctx, entry.ID, rating); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *historyService) SetFavorite(ctx context.Context, accountID uuid.UUID, searchID uuid.UUID, favorite bool) error {
	entry, err := s.ownedSearch(ctx, accountID, searchID)
	if err != nil {
		return err
	}
	if err := s.historyRepo.UpdateFavorite(ctx, entry.ID, favorite); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *historyService) ownedSearch(ctx context.Context, accountID uuid.UUID, searchID uuid.UUID) (*db_models.SearchHistory, error) {
	entry, err := s.historyRepo.FindById(ctx, searchID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if entry == nil || entry.AccountID != accountID {
		return nil, utils.ErrSearchNotFound
	}
	return entry, nil
}
