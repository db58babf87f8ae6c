package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"moodtrip/pkg/utils"
)

// currentAccountID reads the authenticated account from the context set by
// the JWT middleware. Responds 401 itself when the value is missing or
// malformed.
func currentAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return uuid.Nil, false
	}
	return accountID, true
}

// pathID parses a :id path parameter. Responds 400 on malformed input.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
