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

type BeneficiaryController struct {
	beneficiaryService services.BeneficiaryServiceInterface
	log                *zap.Logger
}

func NewBeneficiaryController(beneficiaryService services.BeneficiaryServiceInterface, log *zap.Logger) *BeneficiaryController {
	return &BeneficiaryController{
		beneficiaryService: beneficiaryService,
		log:                log,
	}
}

// CreateBeneficiary godoc
// @Summary Record a benefit
// @Tags Beneficiaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateBeneficiaryRequest true "Benefit record"
// @Success 201 {object} response_models.BeneficiaryResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/beneficiaries [post]
func (bc *BeneficiaryController) CreateBeneficiary(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreateBeneficiaryRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		utils.HandleServiceError(c, bc.log, err)
		return
	}

	b, err := bc.beneficiaryService.CreateBeneficiary(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, bc.log, err)
		return
	}

	utils.RespondCreated(c, b)
}

// ListBeneficiaries godoc
// @Summary List benefit records
// @Tags Beneficiaries
// @Produce json
// @Security BearerAuth
// @Param householdId query string false "Household id"
// @Param status query string false "Benefit status"
// @Success 200 {array} response_models.BeneficiaryResponse
// @Router /api/beneficiaries [get]
func (bc *BeneficiaryController) ListBeneficiaries(c *gin.Context) {
	var filter request_models.BeneficiaryFilter
	if v := c.Query("householdId"); v != "" {
		filter.HouseholdID = &v
	}
	if v := c.Query("status"); v != "" {
		status := db_models.BenefitStatus(v)
		filter.Status = &status
	}

	items, err := bc.beneficiaryService.ListBeneficiaries(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, bc.log, err)
		return
	}

	utils.RespondSuccess(c, items)
}

// GetBeneficiary godoc
// @Summary Get a benefit record
// @Tags Beneficiaries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Beneficiary id"
// @Success 200 {object} response_models.BeneficiaryResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/beneficiaries/{id} [get]
func (bc *BeneficiaryController) GetBeneficiary(c *gin.Context) {
	b, err := bc.beneficiaryService.GetBeneficiary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, bc.log, err)
		return
	}

	utils.RespondSuccess(c, b)
}

// UpdateBeneficiary godoc
// @Summary Update a benefit record
// @Description Only admins may change status. Completed and rejected records are frozen.
// @Tags Beneficiaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Beneficiary id"
// @Param request body request_models.UpdateBeneficiaryRequest true "Fields to change"
// @Success 200 {object} response_models.BeneficiaryResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/beneficiaries/{id} [put]
func (bc *BeneficiaryController) UpdateBeneficiary(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.UpdateBeneficiaryRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		utils.HandleServiceError(c, bc.log, err)
		return
	}

	b, err := bc.beneficiaryService.UpdateBeneficiary(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, bc.log, err)
		return
	}

	utils.RespondSuccess(c, b)
}

// DeleteBeneficiary godoc
// @Summary Delete a benefit record
// @Tags Beneficiaries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Beneficiary id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/beneficiaries/{id} [delete]
func (bc *BeneficiaryController) DeleteBeneficiary(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := bc.beneficiaryService.DeleteBeneficiary(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.HandleServiceError(c, bc.log, err)
		return
	}

	utils.RespondDeleted(c)
}
