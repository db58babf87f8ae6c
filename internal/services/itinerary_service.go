package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"moodtrip/internal/catalog"
	"moodtrip/internal/models/db_models"
	"moodtrip/internal/models/response_models"
	"moodtrip/internal/repositories"
	"moodtrip/pkg/utils"
)

type ItineraryService interface {
	CreateItinerary(ctx context.Context, accountID uuid.UUID, destination string, duration int, startDate time.Time, moodTag string) (*db_models.Itinerary, *response_models.ItineraryPlan, error)
	ListItineraries(ctx context.Context, accountID uuid.UUID) ([]db_models.Itinerary, error)
	GetItinerary(ctx context.Context, accountID uuid.UUID, id uuid.UUID) (*db_models.Itinerary, error)
	OptimizeBudget(ctx context.Context, accountID uuid.UUID, id uuid.UUID) (*response_models.OptimizationResult, error)
	ApplyOptimization(ctx context.Context, accountID uuid.UUID, id uuid.UUID, level string) (*response_models.ItineraryPlan, error)
}

type itineraryService struct {
	catalog       *catalog.Catalog
	optimizer     OptimizerService
	itineraryRepo repositories.ItineraryRepository
	newRand       func() *rand.Rand
}

func NewItineraryService(cat *catalog.Catalog, optimizer OptimizerService, itineraryRepo repositories.ItineraryRepository) ItineraryService {
	return &itineraryService{
		catalog:       cat,
		optimizer:     optimizer,
		itineraryRepo: itineraryRepo,
		newRand:       defaultRand,
	}
}

// CreateItinerary generates a full plan for a known destination and persists
// it. The stored row keeps the catalog budget range while the plan carries
// the computed estimate.
func (s *itineraryService) CreateItinerary(ctx context.Context, accountID uuid.UUID, destination string, duration int, startDate time.Time, moodTag string) (*db_models.Itinerary, *response_models.ItineraryPlan, error) {
	dest, found := s.catalog.FindDestination(destination)
	if !found {
		return nil, nil, utils.ErrDestinationNotFound
	}

	plan := buildPlan(s.catalog, s.newRand(), dest, duration)

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, nil, err
	}

	itinerary := &db_models.Itinerary{
		AccountID:    accountID,
		Title:        fmt.Sprintf("%d Days in %s", duration, dest.Name),
		Destination:  dest.Name,
		StartDate:    startDate,
		EndDate:      startDate.AddDate(0, 0, duration-1),
		DurationDays: duration,
		Budget:       dest.Budget,
		MoodTag:      moodTag,
		Description:  dest.Description,
		DetailedPlan: planJSON,
	}
	if err := s.itineraryRepo.Insert(ctx, itinerary); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return itinerary, &plan, nil
}

func (s *itineraryService) ListItineraries(ctx context.Context, accountID uuid.UUID) ([]db_models.Itinerary, error) {
	itineraries, err := s.itineraryRepo.ListByAccount(ctx, accountID, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return itineraries, nil
}

func (s *itineraryService) GetItinerary(ctx context.Context, accountID uuid.UUID, id uuid.UUID) (*db_models.Itinerary, error) {
	itinerary, err := s.itineraryRepo.FindByIdForAccount(ctx, id, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return itinerary, nil
}

// OptimizeBudget proposes savings tiers for a saved itinerary without
// modifying it.
func (s *itineraryService) OptimizeBudget(ctx context.Context, accountID uuid.UUID, id uuid.UUID) (*response_models.OptimizationResult, error) {
	itinerary, err := s.GetItinerary(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	result := s.optimizer.Suggest(itinerary.Destination, itinerary.DurationDays, itinerary.Budget)
	return &result, nil
}

// ApplyOptimization rewrites the stored plan for the chosen savings level.
// Applying repeatedly compounds, each pass starting from the budget the
// previous one left behind.
func (s *itineraryService) ApplyOptimization(ctx context.Context, accountID uuid.UUID, id uuid.UUID, level string) (*response_models.ItineraryPlan, error) {
	itinerary, err := s.GetItinerary(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	var plan response_models.ItineraryPlan
	if err := json.Unmarshal(itinerary.DetailedPlan, &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	s.optimizer.Apply(&plan, itinerary.Destination, level)

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}
	itinerary.DetailedPlan = planJSON
	itinerary.Budget = plan.EstimatedBudget
	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &plan, nil
}
