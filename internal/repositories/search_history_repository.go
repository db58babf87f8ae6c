package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moodtrip/internal/models/db_models"
)

type SearchHistoryRepository interface {
	Insert(ctx context.Context, entry *db_models.SearchHistory) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.SearchHistory, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.SearchHistory, error)
	UpdateRating(ctx context.Context, id uuid.UUID, rating int) error
	UpdateFavorite(ctx context.Context, id uuid.UUID, favorite bool) error
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
}

type searchHistoryRepository struct {
	db *gorm.DB
}

func NewSearchHistoryRepository(db *gorm.DB) SearchHistoryRepository {
	return &searchHistoryRepository{db: db}
}

func (r *searchHistoryRepository) Insert(ctx context.Context, entry *db_models.SearchHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *searchHistoryRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.SearchHistory, error) {
	var entry db_models.SearchHistory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *searchHistoryRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.SearchHistory, error) {
	var entries []db_models.SearchHistory
	query := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *searchHistoryRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating int) error {
	return r.db.WithContext(ctx).
		Model(&db_models.SearchHistory{}).
		Where("id = ?", id).
		Update("rating", rating).Error
}

func (r *searchHistoryRepository) UpdateFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	return r.db.WithContext(ctx).
		Model(&db_models.SearchHistory{}).
		Where("id = ?", id).
		Update("is_favorite", favorite).Error
}

func (r *searchHistoryRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.SearchHistory{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}
