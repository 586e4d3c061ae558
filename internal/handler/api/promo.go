package api

import (
	"net/http"

	reqdto "fleetbook/internal/handler/dto/request"
	resdto "fleetbook/internal/handler/dto/response"
	"fleetbook/internal/handler/httperr"
	"fleetbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	q queries.PromoQueries
}

func NewPromoHandler(q queries.PromoQueries) *PromoHandler {
	return &PromoHandler{q: q}
}

// @Summary Validate a promo code
// @Description Advisory verdict on a code; ineligibility is a 200 with valid=false
// @Tags promo-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidatePromoRequest true "Code to check"
// @Success 200 {object} resdto.PromoValidationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /promo-codes/validate [post]
func (h *PromoHandler) Validate(c *gin.Context) {
	var req reqdto.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.q.Validate(c.Request.Context(), req.Code)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromoValidation(view))
}
