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

// bookHandler handles HTTP requests for committing entries into a book.
type bookHandler struct {
	bookService portssvc.BookSvcFacade
}

// newBookHandler creates a new bookHandler.
func newBookHandler(bookService portssvc.BookSvcFacade) *bookHandler {
	return &bookHandler{
		bookService: bookService,
	}
}

// createEntry godoc
// @Summary Commit a balanced entry into a book
// @Description Builds a journal from the given credit/debit lines and commits it with its transactions
// @Tags books
// @Accept  json
// @Produce  json
// @Param   book path string true "Book name"
// @Param   entry body dto.CreateEntryRequest true "Entry memo and lines"
// @Success 201 {object} dto.JournalResponse "The committed journal"
// @Failure 400 {object} map[string]string "Invalid request or unbalanced entry"
// @Failure 500 {object} map[string]string "Failed to commit entry"
// @Router /books/{book}/entries [post]
func (h *bookHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	book := c.Param("book")

	req := dto.CreateEntryRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	journal, err := h.bookService.CreateEntry(c.Request.Context(), book, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error committing entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to commit entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}
