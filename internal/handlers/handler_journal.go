package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgercraft/bookkeeper/internal/apperrors"
	portssvc "github.com/ledgercraft/bookkeeper/internal/core/ports/services"
	"github.com/ledgercraft/bookkeeper/internal/dto"
	"github.com/ledgercraft/bookkeeper/internal/middleware"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	bookService portssvc.BookSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(bookService portssvc.BookSvcFacade) *journalHandler {
	return &journalHandler{
		bookService: bookService,
	}
}

// getJournal godoc
// @Summary Get a journal and its transactions
// @Description Retrieves a journal with its associated transactions by journal ID
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse "Journal and its transactions"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal"
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	journal, err := h.bookService.GetJournalByID(c.Request.Context(), journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal not found", slog.String("journal_id", journalID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
			return
		}
		logger.Error("Failed to get journal from service", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// voidJournal godoc
// @Summary Void a journal
// @Description Flags the journal and its transactions voided and commits a balanced reversal journal
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Param   void body dto.VoidJournalRequest false "Optional void reason"
// @Success 201 {object} dto.JournalResponse "The reversal journal"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Journal already voided"
// @Failure 500 {object} map[string]string "Failed to void journal"
// @Router /journals/{journalID}/void [post]
func (h *journalHandler) voidJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	req := dto.VoidJournalRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind JSON for voidJournal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	reversal, err := h.bookService.VoidJournal(c.Request.Context(), journalID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		case errors.Is(err, apperrors.ErrAlreadyVoided):
			c.JSON(http.StatusConflict, gin.H{"error": "Journal already voided"})
		default:
			logger.Error("Failed to void journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to void journal"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(reversal))
}

// approveJournal godoc
// @Summary Approve a journal
// @Description Sets the journal approved and propagates the flag to every transaction referencing it
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse "The approved journal"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to approve journal"
// @Router /journals/{journalID}/approve [post]
func (h *journalHandler) approveJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	journal, err := h.bookService.ApproveJournal(c.Request.Context(), journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
			return
		}
		logger.Error("Failed to approve journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve journal"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}
