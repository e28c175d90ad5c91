package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/furnish-erp/ledger_backend/internal/apperrors"
	portssvc "github.com/furnish-erp/ledger_backend/internal/core/ports/services"
	"github.com/furnish-erp/ledger_backend/internal/middleware"
	"github.com/furnish-erp/ledger_backend/internal/utils/pagination"
)

// ledgerHandler serves the per-account ledger view.
type ledgerHandler struct {
	journalService portssvc.JournalSvcFacade
}

// registerLedgerRoutes registers the account ledger route.
func registerLedgerRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := &ledgerHandler{journalService: journalService}
	rg.GET("/accounts/:id/ledger", h.getAccountLedger)
}

// getAccountLedger godoc
// @Summary Get an account's ledger
// @Description Retrieves posted lines touching one account, newest first, with running balances
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   page query int false "Page number (1-based)"
// @Param   limit query int false "Page size"
// @Success 200 {object} dto.ListLinesResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account ledger"
// @Router /accounts/{id}/ledger [get]
func (h *ledgerHandler) getAccountLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for GetAccountLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("account_id", accountID))

	resp, err := h.journalService.ListAccountLines(c.Request.Context(), accountID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for ledger view")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to retrieve account ledger", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account ledger"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
