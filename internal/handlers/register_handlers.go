package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/furnish-erp/ledger_backend/internal/core/ports/services"
	"github.com/furnish-erp/ledger_backend/internal/platform/config"
)

// actorID identifies who is performing a mutation for the audit columns.
// The upstream gateway sets X-Actor-ID after authentication; direct calls
// fall back to the system actor.
func actorID(c *gin.Context) string {
	if actor := c.GetHeader("X-Actor-ID"); actor != "" {
		return actor
	}
	return "system"
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimit gin.HandlerFunc,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services, rateLimit)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	rateLimit gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1, services.Account, rateLimit)
	registerLedgerRoutes(v1, services.Journal)
	registerJournalRoutes(v1, services.Journal, rateLimit)
	registerOpeningBalanceRoutes(v1, services.OpeningBalance, rateLimit)
	registerAutoBalanceRoutes(v1, services.AutoBalance, rateLimit)
	registerReportingRoutes(v1, services.Reporting)
}
