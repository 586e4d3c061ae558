package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	resdto "fleetbook/internal/handler/dto/response"
	"fleetbook/internal/handler/httperr"
	"fleetbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	q queries.VehicleQueries
}

func NewVehicleHandler(q queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{q: q}
}

// @Summary List vehicles
// @Description List the rentable catalog (draft vehicles are hidden)
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]resdto.VehicleResponse
// @Failure 401 {object} map[string]string
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": resdto.FromVehicleList(items)})
}

// @Summary Vehicle availability
// @Description List vehicles free for a window; optionally restricted to given ids
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param starts_at query string true "Window start (RFC3339)"
// @Param ends_at query string true "Window end (RFC3339)"
// @Param vehicle_ids query string false "Comma-separated vehicle UUIDs"
// @Success 200 {object} map[string][]resdto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /vehicles/availability [get]
func (h *VehicleHandler) Availability(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("starts_at"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid starts_at", nil)
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("ends_at"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ends_at", nil)
		return
	}

	var vehicleIDs []uuid.UUID
	if raw := c.Query("vehicle_ids"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			id, perr := uuid.Parse(strings.TrimSpace(s))
			if perr != nil {
				httperr.AbortWithError(c, http.StatusBadRequest, perr, "Invalid vehicle_ids", nil)
				return
			}
			vehicleIDs = append(vehicleIDs, id)
		}
	}

	items, err := h.q.Available(c.Request.Context(), start, end, vehicleIDs)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid window", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": resdto.FromVehicleList(items)})
}
