package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moodtrip/internal/models/db_models"
)

type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *db_models.Itinerary) error
	FindByIdForAccount(ctx context.Context, id uuid.UUID, accountID uuid.UUID) (*db_models.Itinerary, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.Itinerary, error)
	Update(ctx context.Context, itinerary *db_models.Itinerary) error
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) FindByIdForAccount(ctx context.Context, id uuid.UUID, accountID uuid.UUID) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&itinerary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	query := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&itineraries).Error; err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) Update(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Save(itinerary).Error
}

func (r *itineraryRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Itinerary{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}
