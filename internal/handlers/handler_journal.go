package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/furnish-erp/ledger_backend/internal/apperrors"
	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	portssvc "github.com/furnish-erp/ledger_backend/internal/core/ports/services"
	"github.com/furnish-erp/ledger_backend/internal/dto"
	"github.com/furnish-erp/ledger_backend/internal/middleware"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, rateLimit gin.HandlerFunc) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", rateLimit, h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/by-source/:type/:docID", h.getEntryBySourceDocument)
		entries.GET("/:id", h.getEntry)
		entries.POST("/:id/post", rateLimit, h.postEntry)
		entries.PUT("/:id", rateLimit, h.updateEntry)
		entries.DELETE("/:id", rateLimit, h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Creates a new journal entry with its lines, as DRAFT or directly POSTED
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateEntryRequest true "Entry and its lines"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid request format, validation error or unbalanced entry"
// @Failure 500 {object} map[string]string "Failed to create journal entry"
// @Router /journal-entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID := actorID(c)
	logger = logger.With(slog.String("creator_user_id", creatorUserID))

	entry, err := h.journalService.CreateEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnbalanced) {
			logger.Warn("Unbalanced journal entry rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			// A referenced account does not exist
			logger.Warn("Unknown account in journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create journal entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create journal entry"})
		}
		return
	}

	logger.Info("Journal entry created successfully",
		slog.String("entry_id", entry.EntryID),
		slog.String("journal_number", entry.JournalNumber),
		slog.String("status", string(entry.Status)),
	)
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry with its lines by entry ID
// @Tags journal-entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal entry"
// @Router /journal-entries/{id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	entry, err := h.journalService.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found", slog.String("entry_id", entryID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		} else {
			logger.Error("Failed to get journal entry from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// getEntryBySourceDocument godoc
// @Summary Get the journal entry for a source document
// @Description Retrieves the entry recorded against a business document reference
// @Tags journal-entries
// @Produce  json
// @Param   type path string true "Source document type" Enums(INVOICE, PAYMENT, SUPPLIER_PAYMENT, INVESTMENT, WITHDRAWAL, OPENING_BALANCE, BALANCE_ADJUSTMENT, MANUAL)
// @Param   docID path string true "Source document ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "No entry for source document"
// @Failure 500 {object} map[string]string "Failed to retrieve journal entry"
// @Router /journal-entries/by-source/{type}/{docID} [get]
func (h *journalHandler) getEntryBySourceDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	docType := domain.SourceDocumentType(c.Param("type"))
	docID := c.Param("docID")

	entry, err := h.journalService.GetEntryBySourceDocument(c.Request.Context(), docType, docID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No journal entry for source document",
				slog.String("doc_type", string(docType)), slog.String("doc_id", docID))
			c.JSON(http.StatusNotFound, gin.H{"error": "No journal entry for source document"})
		} else {
			logger.Error("Failed to get journal entry by source document", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Retrieves a filtered, paginated list of journal entries, newest first
// @Tags journal-entries
// @Produce  json
// @Param   page query int false "Page number (1-based)"
// @Param   limit query int false "Page size"
// @Param   startDate query string false "Filter: entry date from (YYYY-MM-DD)"
// @Param   endDate query string false "Filter: entry date to (YYYY-MM-DD)"
// @Param   reference query string false "Filter: reference number substring"
// @Param   status query string false "Filter: entry status" Enums(DRAFT, POSTED)
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list journal entries"
// @Router /journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error listing journal entries", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list journal entries from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journal entries"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// postEntry godoc
// @Summary Post a draft journal entry
// @Description Transitions a DRAFT entry to POSTED, applying its balance effects. Idempotent.
// @Tags journal-entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Entry does not balance"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to post journal entry"
// @Router /journal-entries/{id}/post [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")
	userID := actorID(c)

	logger = logger.With(slog.String("entry_id", entryID), slog.String("user_id", userID))

	entry, err := h.journalService.PostEntry(c.Request.Context(), entryID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found for posting")
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		} else if errors.Is(err, apperrors.ErrUnbalanced) {
			logger.Warn("Journal entry does not balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to post journal entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post journal entry"})
		}
		return
	}

	logger.Info("Journal entry posted successfully", slog.String("journal_number", entry.JournalNumber))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a draft journal entry
// @Description Updates header fields and optionally replaces the line set of a DRAFT entry
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid request format, validation error or unbalanced lines"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Entry is posted and immutable"
// @Failure 500 {object} map[string]string "Failed to update journal entry"
// @Router /journal-entries/{id} [put]
func (h *journalHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := actorID(c)
	logger = logger.With(slog.String("entry_id", entryID), slog.String("user_id", userID))

	entry, err := h.journalService.UpdateEntry(c.Request.Context(), entryID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Attempt to modify posted journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrUnbalanced) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid journal entry update", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update journal entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update journal entry"})
		}
		return
	}

	logger.Info("Journal entry updated successfully")
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a draft journal entry
// @Description Deletes a DRAFT entry and its lines. Posted entries cannot be deleted.
// @Tags journal-entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 204 "Entry deleted"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Entry is posted and immutable"
// @Failure 500 {object} map[string]string "Failed to delete journal entry"
// @Router /journal-entries/{id} [delete]
func (h *journalHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	logger = logger.With(slog.String("entry_id", entryID))

	if err := h.journalService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Attempt to delete posted journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete journal entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete journal entry"})
		}
		return
	}

	logger.Info("Journal entry deleted successfully")
	c.Status(http.StatusNoContent)
}
