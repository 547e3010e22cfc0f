package handler

import (
	"net/http"

	"cardsbackend/internal/service"
	"cardsbackend/pkg/response"

	"github.com/gin-gonic/gin"
)

// SetupHandler serves the setup tables: sponsoring entities plus the
// function, escort and vehicle-brand pick lists.
type SetupHandler struct {
	setupService service.SetupService
}

func NewSetupHandler(setupService service.SetupService) *SetupHandler {
	return &SetupHandler{setupService: setupService}
}

func (h *SetupHandler) RegisterRoutes(router *gin.RouterGroup) {
	setup := router.Group("/setup")
	{
		setup.POST("/entity/save", h.SaveEntity)
		setup.GET("/entity/getAll", h.GetAllEntities)
		setup.POST("/function/save", h.SaveFunction)
		setup.GET("/function/getAll", h.GetAllFunctions)
		setup.POST("/escort/save", h.SaveEscort)
		setup.GET("/escort/getAll", h.GetAllEscorts)
		setup.POST("/vehicle/save", h.SaveVehicleBrand)
		setup.GET("/vehicle/getAll", h.GetAllVehicleBrands)
	}
}

// SaveEntity creates a sponsoring entity
// @Summary  Create entity
// @Tags     setup
// @Accept   json
// @Produce  json
// @Param    payload  body  service.CreateEntityRequest  true  "Entity payload"
// @Success  200  {object}  response.Body
// @Router   /setup/entity/save [post]
func (h *SetupHandler) SaveEntity(c *gin.Context) {
	var req service.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}
	if err := h.setupService.CreateEntity(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success())
}

// GetAllEntities lists sponsoring entities
// @Summary  List entities
// @Tags     setup
// @Produce  json
// @Success  200  {array}  model.Entity
// @Router   /setup/entity/getAll [get]
func (h *SetupHandler) GetAllEntities(c *gin.Context) {
	entities, err := h.setupService.ListEntities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, entities)
}

// SaveFunction creates a job-function pick-list value
// @Summary  Create function
// @Tags     setup
// @Router   /setup/function/save [post]
func (h *SetupHandler) SaveFunction(c *gin.Context) {
	var req service.CreateFunctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}
	if err := h.setupService.CreateFunction(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success())
}

// GetAllFunctions lists job-function pick-list values
// @Summary  List functions
// @Tags     setup
// @Router   /setup/function/getAll [get]
func (h *SetupHandler) GetAllFunctions(c *gin.Context) {
	fns, err := h.setupService.ListFunctions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, fns)
}

// SaveEscort creates an escort pick-list value
// @Summary  Create escort
// @Tags     setup
// @Router   /setup/escort/save [post]
func (h *SetupHandler) SaveEscort(c *gin.Context) {
	var req service.CreateEscortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}
	if err := h.setupService.CreateEscort(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success())
}

// GetAllEscorts lists escort pick-list values
// @Summary  List escorts
// @Tags     setup
// @Router   /setup/escort/getAll [get]
func (h *SetupHandler) GetAllEscorts(c *gin.Context) {
	escorts, err := h.setupService.ListEscorts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, escorts)
}

// SaveVehicleBrand creates a vehicle-brand pick-list value
// @Summary  Create vehicle brand
// @Tags     setup
// @Router   /setup/vehicle/save [post]
func (h *SetupHandler) SaveVehicleBrand(c *gin.Context) {
	var req service.CreateVehicleBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}
	if err := h.setupService.CreateVehicleBrand(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success())
}

// GetAllVehicleBrands lists vehicle-brand pick-list values
// @Summary  List vehicle brands
// @Tags     setup
// @Router   /setup/vehicle/getAll [get]
func (h *SetupHandler) GetAllVehicleBrands(c *gin.Context) {
	brands, err := h.setupService.ListVehicleBrands(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, brands)
}
