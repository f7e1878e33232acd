package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jencrm_backend/internal/services"
	"jencrm_backend/pkg/utils"
)

// DealHandler holds the deal service.
type DealHandler struct {
	dealService services.DealService
}

// NewDealHandler creates a new DealHandler.
func NewDealHandler(ds services.DealService) *DealHandler {
	return &DealHandler{dealService: ds}
}

// CreateDeal handles POST /api/deals. Status defaults to draft and the
// commission amount is computed server-side.
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var req services.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	deal, err := h.dealService.CreateDeal(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrDealValidation) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed.", err.Error()))
			return
		}
		if errors.Is(err, services.ErrDealClientNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Referenced client does not exist.", err.Error()))
			return
		}
		utils.LogError(err, "CreateDeal: Error from dealService.CreateDeal")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create deal.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, deal)
}

// GetDeals handles GET /api/deals.
func (h *DealHandler) GetDeals(c *gin.Context) {
	deals, err := h.dealService.GetDeals(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetDeals: Error from dealService.GetDeals")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch deals.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, deals)
}

// GetDealByID handles GET /api/deals/:id.
func (h *DealHandler) GetDealByID(c *gin.Context) {
	dealID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid deal ID format.", err.Error()))
		return
	}

	deal, err := h.dealService.GetDealByID(c.Request.Context(), dealID)
	if err != nil {
		if errors.Is(err, services.ErrDealNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Deal not found.", err.Error()))
			return
		}
		utils.LogError(err, "GetDealByID: Error from dealService.GetDealByID")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch deal.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, deal)
}
