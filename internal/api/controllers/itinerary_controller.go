package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryService
}

func NewItineraryController(itineraryService services.ItineraryService) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

func (ctrl *ItineraryController) Create(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination and start date are required")
		return
	}

	duration := req.Duration
	if duration == 0 {
		duration = 3
	}
	if duration < 1 || duration > 30 {
		utils.RespondError(c, http.StatusBadRequest, "Duration must be between 1 and 30 days")
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	moodTag := req.Mood
	if moodTag == "" {
		moodTag = "happy"
	}

	itinerary, plan, err := ctrl.itineraryService.CreateItinerary(c.Request.Context(), accountID, req.Destination, duration, startDate, moodTag)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"itinerary_id": itinerary.ID.String(),
		"itinerary":    plan,
	}, "Itinerary created successfully!")
}

func (ctrl *ItineraryController) List(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	itineraries, err := ctrl.itineraryService.ListItineraries(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, services.ItinerarySummaries(itineraries), "")
}

func (ctrl *ItineraryController) Get(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	itinerary, err := ctrl.itineraryService.GetItinerary(c.Request.Context(), accountID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itinerary, "")
}

func (ctrl *ItineraryController) Optimize(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := ctrl.itineraryService.OptimizeBudget(c.Request.Context(), accountID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "")
}

func (ctrl *ItineraryController) ApplyOptimization(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.ApplyOptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Optimization level must be medium or high")
		return
	}

	plan, err := ctrl.itineraryService.ApplyOptimization(c.Request.Context(), accountID, id, req.OptimizationLevel)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"itinerary": plan}, titleCase(req.OptimizationLevel)+" optimization applied successfully!")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
