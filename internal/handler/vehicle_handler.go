package handler

import (
	"errors"
	"net/http"

	"cardsbackend/internal/service"
	"cardsbackend/pkg/response"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService service.VehicleService
}

func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

func (h *VehicleHandler) RegisterRoutes(router *gin.RouterGroup) {
	vehicle := router.Group("/card-vehicle")
	{
		vehicle.POST("/save", h.SaveVehicleCard)
		vehicle.PUT("/save", h.UpdateVehicleCard)
		vehicle.GET("/getAll", h.GetAllVehicleCards)
	}
}

// SaveVehicleCard issues a vehicle permit
// @Summary      Issue a vehicle permit
// @Tags         card-vehicle
// @Accept       json
// @Produce      json
// @Param        payload  body  service.SaveVehicleCardRequest  true  "Permit payload"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Failure      501  {object}  response.Body
// @Router       /card-vehicle/save [post]
func (h *VehicleHandler) SaveVehicleCard(c *gin.Context) {
	var req service.SaveVehicleCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}

	if err := h.vehicleService.CreateVehicleCard(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrEntityNotFound) {
			c.JSON(http.StatusNotFound, response.Fail("Entity or Vehicle not found"))
			return
		}
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success())
}

// UpdateVehicleCard overwrites the permit selected by license plate
// @Summary      Update a vehicle permit
// @Tags         card-vehicle
// @Accept       json
// @Produce      json
// @Param        payload  body  service.SaveVehicleCardRequest  true  "Permit payload with top-level licensePlate key"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Failure      501  {object}  response.Body
// @Router       /card-vehicle/save [put]
func (h *VehicleHandler) UpdateVehicleCard(c *gin.Context) {
	var req service.SaveVehicleCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}

	if err := h.vehicleService.UpdateVehicleCard(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrVehicleCardNotFound):
			c.JSON(http.StatusNotFound, response.Fail("CardVehicle not found"))
		case errors.Is(err, service.ErrEntityNotFound):
			c.JSON(http.StatusNotFound, response.Fail("Entity or Vehicle not found"))
		default:
			c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("CardVehicle updated successfully"))
}

// GetAllVehicleCards lists every vehicle permit
// @Summary      List vehicle permits
// @Tags         card-vehicle
// @Produce      json
// @Success      200  {array}  model.CardVehicle
// @Router       /card-vehicle/getAll [get]
func (h *VehicleHandler) GetAllVehicleCards(c *gin.Context) {
	cards, err := h.vehicleService.ListVehicleCards(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, cards)
}
