package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/furnish-erp/ledger_backend/internal/core/ports/services"
	"github.com/furnish-erp/ledger_backend/internal/middleware"
)

// reportingHandler serves the read-only ledger reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/trial-balance", h.getTrialBalance)
	}
}

// getBalanceSheet godoc
// @Summary Get the balance-sheet summary
// @Description Returns assets, liabilities, equity and the identity variance
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 500 {object} map[string]string "Failed to compute balance sheet"
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute balance sheet", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance sheet"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getTrialBalance godoc
// @Summary Get the trial balance
// @Description Returns per-account balances for all active accounts with side totals
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 500 {object} map[string]string "Failed to compute trial balance"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute trial balance", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute trial balance"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
