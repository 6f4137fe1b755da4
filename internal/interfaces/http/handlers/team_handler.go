package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "growline.backend/internal/domain/errors"
	"growline.backend/internal/interfaces/http/response"
	"growline.backend/internal/usecases"
)

// TeamHandler exposes a member's downline
type TeamHandler struct {
	teamUsecase *usecases.TeamUsecase
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamUsecase *usecases.TeamUsecase) *TeamHandler {
	return &TeamHandler{teamUsecase: teamUsecase}
}

// GetTeam returns three levels of the member's referral tree.
// GET /team?firebase_uid=...
func (h *TeamHandler) GetTeam(c *gin.Context) {
	firebaseUID := c.Query("firebase_uid")
	if firebaseUID == "" {
		response.Error(c, domainerrors.BadRequest("firebase_uid query parameter is required"))
		return
	}

	team, err := h.teamUsecase.GetTeam(c.Request.Context(), firebaseUID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, team)
}
