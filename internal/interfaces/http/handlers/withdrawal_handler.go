package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"growline.backend/internal/domain/entities"
	domainerrors "growline.backend/internal/domain/errors"
	"growline.backend/internal/interfaces/http/response"
	"growline.backend/internal/usecases"
	"growline.backend/pkg/utils"
)

// WithdrawalHandler handles payout request submission and listing
type WithdrawalHandler struct {
	withdrawalUsecase *usecases.WithdrawalUsecase
}

// NewWithdrawalHandler creates a new withdrawal handler
func NewWithdrawalHandler(withdrawalUsecase *usecases.WithdrawalUsecase) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalUsecase: withdrawalUsecase}
}

// CreateWithdrawal submits a payout request.
// POST /withdrawal_request
func (h *WithdrawalHandler) CreateWithdrawal(c *gin.Context) {
	var input entities.CreateWithdrawalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	req, err := h.withdrawalUsecase.RequestWithdrawal(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":            "Withdrawal request created",
		"withdrawal_request": req,
	})
}

// ListWithdrawals returns the member's payout requests, newest first.
// Omitting limit (or limit=0) returns everything, which is what the
// frontend has always requested.
// GET /withdrawal_requests?firebase_uid=...&page=...&limit=...
func (h *WithdrawalHandler) ListWithdrawals(c *gin.Context) {
	firebaseUID := c.Query("firebase_uid")
	if firebaseUID == "" {
		response.Error(c, domainerrors.BadRequest("firebase_uid query parameter is required"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	pagination := utils.GetPaginationParams(page, limit)

	items, total, err := h.withdrawalUsecase.ListWithdrawals(c.Request.Context(), firebaseUID, pagination)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
		"meta":  utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	})
}
