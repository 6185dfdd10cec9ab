package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"healthcard/internal/models/db_models"
	"healthcard/internal/models/request_models"
	"healthcard/internal/services"
	"healthcard/pkg/middleware"
	"healthcard/pkg/utils"
)

type CardController struct {
	cardService services.CardServiceInterface
	log         *zap.Logger
}

func NewCardController(cardService services.CardServiceInterface, log *zap.Logger) *CardController {
	return &CardController{
		cardService: cardService,
		log:         log,
	}
}

// CreateCard godoc
// @Summary Issue a card
// @Description Issue a health card to a household that does not have one yet
// @Tags Cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateCardRequest true "Card to issue"
// @Success 201 {object} response_models.CardResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/cards [post]
func (cc *CardController) CreateCard(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreateCardRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	card, err := cc.cardService.CreateCard(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondCreated(c, card)
}

// ListCards godoc
// @Summary List cards
// @Tags Cards
// @Produce json
// @Security BearerAuth
// @Param status query string false "Card status"
// @Param householdId query string false "Household id"
// @Success 200 {array} response_models.CardResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/cards [get]
func (cc *CardController) ListCards(c *gin.Context) {
	var filter request_models.CardFilter
	if v, ok := c.GetQuery("status"); ok && v != "" {
		status := db_models.CardStatus(v)
		filter.Status = &status
	}
	if v, ok := c.GetQuery("householdId"); ok && v != "" {
		filter.HouseholdID = &v
	}

	cards, err := cc.cardService.ListCards(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondSuccess(c, cards)
}

// GetCard godoc
// @Summary Get a card
// @Tags Cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card id"
// @Success 200 {object} response_models.CardResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cards/{id} [get]
func (cc *CardController) GetCard(c *gin.Context) {
	card, err := cc.cardService.GetCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondSuccess(c, card)
}

// UpdateCard godoc
// @Summary Update a card
// @Description Change plan, status or issue date. Expiry follows plan and issue date.
// @Tags Cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card id"
// @Param request body request_models.UpdateCardRequest true "Fields to change"
// @Success 200 {object} response_models.CardResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cards/{id} [put]
func (cc *CardController) UpdateCard(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.UpdateCardRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	card, err := cc.cardService.UpdateCard(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondSuccess(c, card)
}

// DeleteCard godoc
// @Summary Delete a card
// @Tags Cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cards/{id} [delete]
func (cc *CardController) DeleteCard(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := cc.cardService.DeleteCard(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondDeleted(c)
}

// LookupCards godoc
// @Summary Look up cards
// @Description Match by card number fragment, household phone or member national id
// @Tags Cards
// @Produce json
// @Security BearerAuth
// @Param query query string true "Card number, phone or national id"
// @Param status query string false "Card status (default ACTIVE)"
// @Success 200 {array} response_models.CardResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cards/lookup [get]
func (cc *CardController) LookupCards(c *gin.Context) {
	cards, err := cc.cardService.LookupCards(c.Request.Context(), c.Query("query"), c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondSuccess(c, cards)
}

// GetPublicCard godoc
// @Summary Public card view
// @Tags Public
// @Produce json
// @Param cardNumber path string true "Card number"
// @Success 200 {object} response_models.PublicCardResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cards/public/{cardNumber} [get]
func (cc *CardController) GetPublicCard(c *gin.Context) {
	card, err := cc.cardService.GetPublicCard(c.Request.Context(), c.Param("cardNumber"))
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondSuccess(c, card)
}

// SearchPublicCard godoc
// @Summary Check that a card exists
// @Tags Public
// @Produce json
// @Param cardNumber query string true "Card number"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cards/public/search [get]
func (cc *CardController) SearchPublicCard(c *gin.Context) {
	if err := cc.cardService.PublicCardExists(c.Request.Context(), c.Query("cardNumber")); err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondSuccess(c, utils.SuccessResponse{Success: true})
}
