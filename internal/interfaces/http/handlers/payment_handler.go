package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "growline.backend/internal/domain/errors"
	"growline.backend/internal/interfaces/http/response"
	"growline.backend/internal/usecases"
)

// PaymentHandler exposes member payment records
type PaymentHandler struct {
	paymentUsecase *usecases.PaymentUsecase
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUsecase *usecases.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// GetPayments returns the member's payment record, creating an empty
// one on first read.
// GET /payments?firebase_uid=...
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	firebaseUID := c.Query("firebase_uid")
	if firebaseUID == "" {
		response.Error(c, domainerrors.BadRequest("firebase_uid query parameter is required"))
		return
	}

	record, err := h.paymentUsecase.GetPayments(c.Request.Context(), firebaseUID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, record)
}
