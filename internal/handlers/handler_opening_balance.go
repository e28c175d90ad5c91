package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/furnish-erp/ledger_backend/internal/apperrors"
	portssvc "github.com/furnish-erp/ledger_backend/internal/core/ports/services"
	"github.com/furnish-erp/ledger_backend/internal/dto"
	"github.com/furnish-erp/ledger_backend/internal/middleware"
	"github.com/furnish-erp/ledger_backend/internal/utils/pagination"
)

// openingBalanceHandler handles HTTP requests for opening balance seeds.
type openingBalanceHandler struct {
	obService portssvc.OpeningBalanceSvcFacade
}

// registerOpeningBalanceRoutes registers routes related to opening balances.
func registerOpeningBalanceRoutes(rg *gin.RouterGroup, obService portssvc.OpeningBalanceSvcFacade, rateLimit gin.HandlerFunc) {
	h := &openingBalanceHandler{obService: obService}

	ob := rg.Group("/opening-balances")
	{
		ob.POST("", rateLimit, h.setOpeningBalance)
		ob.GET("", h.listOpeningBalances)
		ob.GET("/account/:accountID", h.getOpeningBalanceByAccount)
		ob.PUT("/:id", rateLimit, h.updateOpeningBalance)
		ob.DELETE("/:id", rateLimit, h.deleteOpeningBalance)
	}
}

// setOpeningBalance godoc
// @Summary Set an account's opening balance
// @Description Seeds the one-time opening balance for an account. One seed per account.
// @Tags opening-balances
// @Accept  json
// @Produce  json
// @Param   openingBalance body dto.SetOpeningBalanceRequest true "Opening balance details"
// @Success 201 {object} dto.OpeningBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Opening balance already exists for the account"
// @Failure 500 {object} map[string]string "Failed to set opening balance"
// @Router /opening-balances [post]
func (h *openingBalanceHandler) setOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetOpeningBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := actorID(c)
	logger = logger.With(slog.String("account_id", req.AccountID), slog.String("user_id", userID))

	ob, err := h.obService.SetOpeningBalance(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for opening balance")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Opening balance already exists", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting opening balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set opening balance in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set opening balance"})
		}
		return
	}

	logger.Info("Opening balance set successfully", slog.String("opening_balance_id", ob.OpeningBalanceID))
	c.JSON(http.StatusCreated, dto.ToOpeningBalanceResponse(ob))
}

// getOpeningBalanceByAccount godoc
// @Summary Get the opening balance for an account
// @Tags opening-balances
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.OpeningBalanceResponse
// @Failure 404 {object} map[string]string "No opening balance for account"
// @Failure 500 {object} map[string]string "Failed to retrieve opening balance"
// @Router /opening-balances/account/{accountID} [get]
func (h *openingBalanceHandler) getOpeningBalanceByAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	ob, err := h.obService.GetOpeningBalanceByAccount(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Opening balance not found", slog.String("account_id", accountID))
			c.JSON(http.StatusNotFound, gin.H{"error": "No opening balance for account"})
		} else {
			logger.Error("Failed to get opening balance from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve opening balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOpeningBalanceResponse(ob))
}

// listOpeningBalances godoc
// @Summary List opening balances
// @Tags opening-balances
// @Produce  json
// @Param   page query int false "Page number (1-based)"
// @Param   limit query int false "Page size"
// @Success 200 {object} dto.ListOpeningBalancesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list opening balances"
// @Router /opening-balances [get]
func (h *openingBalanceHandler) listOpeningBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListOpeningBalances", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.obService.ListOpeningBalances(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list opening balances from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list opening balances"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateOpeningBalance godoc
// @Summary Update an opening balance
// @Description Corrects an existing seed; the account is adjusted by the difference
// @Tags opening-balances
// @Accept  json
// @Produce  json
// @Param   id path string true "Opening balance ID"
// @Param   openingBalance body dto.UpdateOpeningBalanceRequest true "Fields to update"
// @Success 200 {object} dto.OpeningBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Opening balance not found"
// @Failure 500 {object} map[string]string "Failed to update opening balance"
// @Router /opening-balances/{id} [put]
func (h *openingBalanceHandler) updateOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	var req dto.UpdateOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateOpeningBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := actorID(c)
	logger = logger.With(slog.String("opening_balance_id", id), slog.String("user_id", userID))

	ob, err := h.obService.UpdateOpeningBalance(c.Request.Context(), id, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Opening balance not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Opening balance not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating opening balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update opening balance in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update opening balance"})
		}
		return
	}

	logger.Info("Opening balance updated successfully")
	c.JSON(http.StatusOK, dto.ToOpeningBalanceResponse(ob))
}

// deleteOpeningBalance godoc
// @Summary Delete an opening balance
// @Description Removes the seed and reverses its effect on the account's balances
// @Tags opening-balances
// @Produce  json
// @Param   id path string true "Opening balance ID"
// @Success 204 "Opening balance deleted"
// @Failure 404 {object} map[string]string "Opening balance not found"
// @Failure 500 {object} map[string]string "Failed to delete opening balance"
// @Router /opening-balances/{id} [delete]
func (h *openingBalanceHandler) deleteOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")
	userID := actorID(c)

	logger = logger.With(slog.String("opening_balance_id", id), slog.String("user_id", userID))

	if err := h.obService.DeleteOpeningBalance(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Opening balance not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Opening balance not found"})
		} else {
			logger.Error("Failed to delete opening balance in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete opening balance"})
		}
		return
	}

	logger.Info("Opening balance deleted successfully")
	c.Status(http.StatusNoContent)
}
