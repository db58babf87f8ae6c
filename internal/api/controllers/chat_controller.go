package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type ChatController struct {
	recommendationService services.RecommendationService
	historyService        services.HistoryService
}

func NewChatController(recommendationService services.RecommendationService, historyService services.HistoryService) *ChatController {
	return &ChatController{
		recommendationService: recommendationService,
		historyService:        historyService,
	}
}

// Chat detects the mood of a free-text message, recommends destinations for
// it and records the search.
func (ctrl *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	mood := ctrl.recommendationService.DetectMood(message)
	recommendation := ctrl.recommendationService.Recommend(mood, message)

	names := make([]string, 0, len(recommendation.Destinations))
	for _, dest := range recommendation.Destinations {
		names = append(names, dest.Name)
	}
	if _, err := ctrl.historyService.RecordSearch(c.Request.Context(), accountID, recommendation.Mood, message, names); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommendation, "")
}
