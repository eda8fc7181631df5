package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"avion/config"
	"avion/utils"
)

const sessionDuration = 24 * time.Hour

// SessionRequest asks for a development session token. Real identity
// lives with the session collaborator; this endpoint only exists outside
// production so the chat flow can be exercised end to end.
type SessionRequest struct {
	UserID string `json:"userId" binding:"required"`
	Email  string `json:"email"`
}

// IssueSession handles POST /api/session.
func IssueSession(c *gin.Context) {
	if config.IsProduction() {
		utils.JSONError(c, http.StatusNotFound, "Not available", "")
		return
	}

	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	token, err := utils.GenerateToken(req.UserID, req.Email, sessionDuration)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(sessionDuration.Seconds())})
}

// RevokeSession handles DELETE /api/session: the presented token stops
// working immediately, ahead of its expiry.
func RevokeSession(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		utils.JSONError(c, http.StatusBadRequest, "Missing bearer token", "")
		return
	}

	if err := utils.RevokeToken(c.Request.Context(), utils.HashToken(tokenString), sessionDuration); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to revoke token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"revoked": true})
}
