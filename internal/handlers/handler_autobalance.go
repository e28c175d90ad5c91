package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/furnish-erp/ledger_backend/internal/core/ports/services"
	"github.com/furnish-erp/ledger_backend/internal/middleware"
)

// autoBalanceHandler exposes the balance-sheet reconciliation trigger.
type autoBalanceHandler struct {
	autoBalanceService portssvc.AutoBalanceSvcFacade
}

// registerAutoBalanceRoutes registers the auto-balance trigger route.
func registerAutoBalanceRoutes(rg *gin.RouterGroup, abService portssvc.AutoBalanceSvcFacade, rateLimit gin.HandlerFunc) {
	h := &autoBalanceHandler{autoBalanceService: abService}
	rg.POST("/auto-balance", rateLimit, h.runAutoBalance)
}

// runAutoBalance godoc
// @Summary Run the balance-sheet reconciliation
// @Description Measures the accounting identity variance and, if one exists, posts a corrective equity entry. Reports aggregates either way.
// @Tags auto-balance
// @Produce  json
// @Success 200 {object} dto.AutoBalanceResponse
// @Failure 500 {object} map[string]string "Failed to run auto-balance"
// @Router /auto-balance [post]
func (h *autoBalanceHandler) runAutoBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := actorID(c)

	logger = logger.With(slog.String("user_id", userID))
	logger.Info("Received request to run auto-balance")

	resp, err := h.autoBalanceService.Run(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Auto-balance run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run auto-balance"})
		return
	}

	if resp.Balanced {
		logger.Info("Books already balanced, no correction posted")
	} else {
		logger.Info("Corrective entry posted",
			slog.String("journal_entry_id", resp.JournalEntryID),
			slog.String("variance", resp.Variance.String()),
			slog.String("balancing_type", string(resp.BalancingType)),
		)
	}
	c.JSON(http.StatusOK, resp)
}
