package api

import (
	"errors"
	"net/http"
	"strconv"

	"fleetbook/internal/domain/extension"
	"fleetbook/internal/domain/promo"
	"fleetbook/internal/domain/reservation"
	reqdto "fleetbook/internal/handler/dto/request"
	resdto "fleetbook/internal/handler/dto/response"
	"fleetbook/internal/handler/httperr"
	"fleetbook/internal/handler/middleware"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// errMissingAuthContext signals a route that reached a handler without
// RequireAuth having populated the context. A wiring bug, not a user error.
var errMissingAuthContext = errs.New("auth context missing")

type ReservationHandler struct {
	cmds commands.ReservationCommands
	ext  commands.ExtensionCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, ext commands.ExtensionCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, ext: ext, q: q}
}

// @Summary Create reservation
// @Description Book a vehicle for a window and open the booking payment intent
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidPeriod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental window", nil)
		case errors.Is(err, commands.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		case errors.Is(err, commands.ErrVehicleUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle not available for this window", nil)
		case errors.Is(err, commands.ErrPromoInvalid):
			var detail any
			if reason, ok := promo.ReasonForError(err); ok {
				detail = gin.H{"reason": reason.String()}
			}
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Promo code not applicable", detail)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Header("Location", "/api/v1/reservations/"+result.ReservationID.String())
	c.JSON(http.StatusCreated, resdto.CreateReservationResponse{
		ID:              result.ReservationID,
		PaymentIntentID: result.PaymentIntentID,
	})
}

// @Summary List own reservations
// @Description List the caller's reservations with keyset pagination
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListByUser(c.Request.Context(), actor, actor.ID, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	resp := gin.H{"reservations": resdto.FromReservationList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get reservation
// @Description Get a reservation with its payment and extension history
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, queries.ErrReservationAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Pay remaining balance
// @Description Open a balance payment intent for a reservation on hold
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.BalancePaymentRequest true "Balance payment request"
// @Success 201 {object} resdto.BalancePaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/balance-payment [post]
func (h *ReservationHandler) BalancePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}
	var req reqdto.BalancePaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateBalancePayment(c.Request.Context(), userID, id, commands.BalancePaymentRequest{
		Method: req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, commands.ErrNotPayable):
			httperr.AbortWithError(c, http.StatusConflict, err, "No outstanding balance to pay", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.BalancePaymentResponse{
		PaymentIntentID: result.PaymentIntentID,
		AmountCents:     result.AmountCents,
	})
}

// @Summary Request extension
// @Description Extend a confirmed, still-running reservation and open its payment intent
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ExtensionRequest true "Extension request"
// @Success 201 {object} resdto.ExtensionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /reservations/{id}/extensions [post]
func (h *ReservationHandler) RequestExtension(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}
	var req reqdto.ExtensionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.ext.RequestExtension(c.Request.Context(), userID, id, commands.ExtensionRequest{
		AddedHours: req.AddedHours,
		Method:     req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, extension.ErrInvalidDuration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Added hours must be a positive multiple of 12", nil)
		case errors.Is(err, commands.ErrReservationNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, commands.ErrAlreadyEnded):
			httperr.AbortWithError(c, http.StatusGone, err, "Reservation already ended", nil)
		case errors.Is(err, commands.ErrNotExtendable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation cannot be extended", nil)
		case errors.Is(err, commands.ErrVehicleUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle not available for the extended window", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.ExtensionResponse{
		ID:              result.ExtensionID,
		PaymentIntentID: result.PaymentIntentID,
		NewEndsAt:       result.NewEndsAt,
		PriceCents:      result.PriceCents,
	})
}
