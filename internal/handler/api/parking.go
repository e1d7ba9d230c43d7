package api

import (
	"errors"
	"net/http"

	resdto "parkease/internal/handler/dto/response"
	"parkease/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewParkingHandler(catalogUseCase usecase.CatalogUseCase) *ParkingHandler {
	return &ParkingHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List parkings
// @Description List all parking facilities
// @Tags parkings
// @Produce json
// @Success 200 {object} resdto.ParkingsResponse
// @Router /parkings [get]
func (h *ParkingHandler) GetParkings(c *gin.Context) {
	facilities, err := h.catalogUseCase.GetFacilities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.ParkingsResponse{Parkings: facilities})
}

// @Summary List slots
// @Description List the slot inventory of one facility, ordered by slot number
// @Tags parkings
// @Produce json
// @Param parkingId path string true "Facility ID"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 404 {object} map[string]string
// @Router /slots/{parkingId} [get]
func (h *ParkingHandler) GetSlots(c *gin.Context) {
	facilityID := c.Param("parkingId")

	slots, err := h.catalogUseCase.GetSlots(c.Request.Context(), facilityID)
	if err != nil {
		if errors.Is(err, usecase.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.SlotsResponse{Slots: slots})
}
