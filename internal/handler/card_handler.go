package handler

import (
	"errors"
	"net/http"

	"cardsbackend/internal/service"
	"cardsbackend/internal/upload"
	"cardsbackend/pkg/response"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardService service.CardService
	uploads     *upload.Store
}

func NewCardHandler(cardService service.CardService, uploads *upload.Store) *CardHandler {
	return &CardHandler{cardService: cardService, uploads: uploads}
}

func (h *CardHandler) RegisterRoutes(router *gin.RouterGroup) {
	card := router.Group("/card")
	{
		card.POST("/save", h.SaveCard)
		card.PUT("/save", h.UpdateCard)
		card.GET("/getAll", h.GetAllCards)
	}
}

// SaveCard creates a person, their permission set and their card
// @Summary      Issue a new card
// @Description  Creates the person, attaches the matched access permissions and creates the owned card in one transaction. An unknown entity name is tolerated: the person is created without an entity reference.
// @Tags         card
// @Accept       multipart/form-data
// @Produce      json
// @Param        name        formData  string  false  "Person name"
// @Param        job         formData  string  false  "Job title"
// @Param        escort      formData  string  false  "Escort status"
// @Param        entity      formData  string  false  "Sponsoring entity name"
// @Param        expiration  formData  string  false  "Card expiration date"
// @Param        cardNumber  formData  string  false  "Card number"
// @Param        accessType  formData  string  false  "JSON array of permission labels"
// @Param        image       formData  file    false  "Badge photo"
// @Success      200  {object}  response.Body
// @Failure      501  {object}  response.Body
// @Router       /card/save [post]
func (h *CardHandler) SaveCard(c *gin.Context) {
	req, ok := h.bindSaveRequest(c)
	if !ok {
		return
	}

	if err := h.cardService.CreateCard(c.Request.Context(), req); err != nil {
		// 501 is the status the existing front end branches on, kept as-is
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success())
}

// UpdateCard overwrites an existing person and their card
// @Summary      Update a card
// @Tags         card
// @Accept       multipart/form-data
// @Produce      json
// @Param        personId  formData  string  true  "Person ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Failure      501  {object}  response.Body
// @Router       /card/save [put]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	req, ok := h.bindSaveRequest(c)
	if !ok {
		return
	}
	req.PersonID = c.PostForm("personId")

	if err := h.cardService.UpdateCard(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrPersonIDRequired):
			c.JSON(http.StatusBadRequest, response.Fail("Person ID is required for update"))
		case errors.Is(err, service.ErrPersonNotFound):
			c.JSON(http.StatusNotFound, response.Fail("Person not found"))
		default:
			c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Data updated successfully"))
}

// GetAllCards lists every card joined with its person, entity and permissions
// @Summary      List cards
// @Tags         card
// @Produce      json
// @Success      200  {array}  model.Card
// @Router       /card/getAll [get]
func (h *CardHandler) GetAllCards(c *gin.Context) {
	cards, err := h.cardService.ListCards(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, cards)
}

// bindSaveRequest collects the shared multipart fields and stores the image
// upload when one is present. A failed disk write reports through the
// catch-all response and aborts the request.
func (h *CardHandler) bindSaveRequest(c *gin.Context) (service.SaveCardRequest, bool) {
	req := service.SaveCardRequest{
		Name:       c.PostForm("name"),
		Job:        c.PostForm("job"),
		Escort:     c.PostForm("escort"),
		Entity:     c.PostForm("entity"),
		Expiration: c.PostForm("expiration"),
		CardNumber: c.PostForm("cardNumber"),
		AccessType: c.PostForm("accessType"),
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := h.uploads.Save(file)
		if err != nil {
			c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
			return req, false
		}
		req.ImagePath = &path
	}

	return req, true
}
