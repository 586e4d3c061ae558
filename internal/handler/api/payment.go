package api

import (
	"errors"
	"net/http"

	"fleetbook/internal/domain/payment"
	reqdto "fleetbook/internal/handler/dto/request"
	resdto "fleetbook/internal/handler/dto/response"
	"fleetbook/internal/handler/httperr"
	"fleetbook/internal/handler/middleware"
	"fleetbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Settle payment intent
// @Description Record the provider outcome for a payment intent; repeat calls are no-ops
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment intent ID"
// @Param request body reqdto.SettlePaymentRequest true "Settlement outcome"
// @Success 200 {object} resdto.SettlePaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/{id}/settle [post]
func (h *PaymentHandler) Settle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment intent ID", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}
	var req reqdto.SettlePaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	outcome, err := payment.NewOutcome(req.Outcome)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Outcome must be success or failure", nil)
		return
	}

	result, err := h.cmds.SettlePayment(c.Request.Context(), actor, commands.SettlePaymentRequest{
		IntentID:       id,
		Outcome:        outcome,
		ExternalTxnRef: req.ExternalTxnRef,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment intent not found", nil)
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SettlePaymentResponse{
		AlreadySettled: result.AlreadySettled,
		Status:         result.Status,
	})
}

// @Summary Sweep expired holds
// @Description Cancel hold reservations whose deposit deadline has passed
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepHoldsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/holds/sweep [post]
func (h *PaymentHandler) SweepHolds(c *gin.Context) {
	cancelled, err := h.cmds.SweepExpiredHolds(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.SweepHoldsResponse{Cancelled: cancelled})
}
