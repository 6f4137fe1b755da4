package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"growline.backend/internal/domain/entities"
	domainerrors "growline.backend/internal/domain/errors"
	"growline.backend/internal/interfaces/http/response"
	"growline.backend/internal/usecases"
)

// UserHandler handles member registration and profile reads
type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// UpsertUser registers a member or updates their profile.
// POST /user_data
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var input entities.UpsertUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.userUsecase.UpsertUser(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidReferenceCode) {
			response.Error(c, domainerrors.BadRequest("Invalid reference code"))
			return
		}
		response.Error(c, err)
		return
	}

	// 200 for create and update alike; clients of the previous API
	// version treat anything else as a failure.
	response.Success(c, http.StatusOK, result)
}

// GetUser returns a member's profile.
// GET /user_data/:firebase_uid
func (h *UserHandler) GetUser(c *gin.Context) {
	firebaseUID := c.Param("firebase_uid")

	user, err := h.userUsecase.GetUser(c.Request.Context(), firebaseUID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}
