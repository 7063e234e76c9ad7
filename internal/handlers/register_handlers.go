package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	portssvc "github.com/ledgercraft/bookkeeper/internal/core/ports/services"
	"github.com/ledgercraft/bookkeeper/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, bookService portssvc.BookSvcFacade) {
	r.GET("/health", GetHome)

	setupAPIV1Routes(r, bookService)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, bookService portssvc.BookSvcFacade) {
	v1 := r.Group("/api/v1")

	registerBookRoutes(v1, bookService)
	registerJournalRoutes(v1, bookService)
}

func registerBookRoutes(v1 *gin.RouterGroup, bookService portssvc.BookSvcFacade) {
	handler := newBookHandler(bookService)

	books := v1.Group("/books")
	books.POST("/:book/entries", handler.createEntry)
}

func registerJournalRoutes(v1 *gin.RouterGroup, bookService portssvc.BookSvcFacade) {
	handler := newJournalHandler(bookService)

	journals := v1.Group("/journals")
	{
		journals.GET("/:journalID", handler.getJournal)
		journals.POST("/:journalID/void", handler.voidJournal)
		journals.POST("/:journalID/approve", handler.approveJournal)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
