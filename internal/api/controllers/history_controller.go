package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type HistoryController struct {
	historyService services.HistoryService
}

func NewHistoryController(historyService services.HistoryService) *HistoryController {
	return &HistoryController{historyService: historyService}
}

func (ctrl *HistoryController) List(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := ctrl.historyService.ListRecent(c.Request.Context(), accountID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, services.SearchHistoryResponses(entries), "")
}

func (ctrl *HistoryController) Rate(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	searchID, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.RateSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	if err := ctrl.historyService.SetRating(c.Request.Context(), accountID, searchID, req.Rating); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Rating saved")
}

func (ctrl *HistoryController) Favorite(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	searchID, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Favorite flag is required")
		return
	}

	if err := ctrl.historyService.SetFavorite(c.Request.Context(), accountID, searchID, *req.Favorite); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Favorite updated")
}
