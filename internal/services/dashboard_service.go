package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"moodtrip/internal/models/db_models"
	"moodtrip/internal/models/response_models"
	"moodtrip/internal/repositories"
	"moodtrip/pkg/utils"
)

const dashboardRecentLimit = 5

type DashboardService interface {
	GetDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardResponse, error)
}

type dashboardService struct {
	accountRepo   repositories.AccountRepository
	historyRepo   repositories.SearchHistoryRepository
	itineraryRepo repositories.ItineraryRepository
}

func NewDashboardService(accountRepo repositories.AccountRepository, historyRepo repositories.SearchHistoryRepository, itineraryRepo repositories.ItineraryRepository) DashboardService {
	return &dashboardService{
		accountRepo:   accountRepo,
		historyRepo:   historyRepo,
		itineraryRepo: itineraryRepo,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardResponse, error) {
	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	searchCount, err := s.historyRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	itineraryCount, err := s.itineraryRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	searches, err := s.historyRepo.ListByAccount(ctx, accountID, dashboardRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	itineraries, err := s.itineraryRepo.ListByAccount(ctx, accountID, dashboardRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.DashboardResponse{
		DisplayName:       account.Name,
		MemberSince:       utils.FormatMonthYearIST(utils.FromUnixSecondsIST(account.CreatedAt)),
		TotalSearches:     searchCount,
		TotalItineraries:  itineraryCount,
		RecentSearches:    SearchHistoryResponses(searches),
		RecentItineraries: ItinerarySummaries(itineraries),
	}, nil
}

// SearchHistoryResponses converts history rows into their API shape.
func SearchHistoryResponses(entries []db_models.SearchHistory) []response_models.SearchHistoryResponse {
	out := make([]response_models.SearchHistoryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, response_models.SearchHistoryResponse{
			ID:           entry.ID.String(),
			Mood:         entry.Mood,
			Query:        entry.Query,
			Destinations: entry.Destinations,
			Rating:       entry.Rating,
			IsFavorite:   entry.IsFavorite,
			CreatedAt:    utils.FormatRFC3339IST(utils.FromUnixSecondsIST(entry.CreatedAt)),
		})
	}
	return out
}

// ItinerarySummaries converts itinerary rows into their list shape, leaving
// the detailed plan out.
func ItinerarySummaries(itineraries []db_models.Itinerary) []response_models.ItinerarySummary {
	out := make([]response_models.ItinerarySummary, 0, len(itineraries))
	for _, itinerary := range itineraries {
		out = append(out, response_models.ItinerarySummary{
			ID:           itinerary.ID.String(),
			Title:        itinerary.Title,
			Destination:  itinerary.Destination,
			StartDate:    itinerary.StartDate.Format("2006-01-02"),
			EndDate:      itinerary.EndDate.Format("2006-01-02"),
			DurationDays: itinerary.DurationDays,
			Budget:       itinerary.Budget,
			MoodTag:      itinerary.MoodTag,
			IsCompleted:  itinerary.IsCompleted,
			IsFavorite:   itinerary.IsFavorite,
		})
	}
	return out
}
