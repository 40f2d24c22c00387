package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"biztime-backend/internal/apperr"
	handler "biztime-backend/internal/handlers"
	"biztime-backend/internal/repository"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	companyRepo := repository.NewCompanyRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	industryRepo := repository.NewIndustryRepository(db)
	pairRepo := repository.NewCompanyIndustryRepository(db)

	companyHandler := handler.NewCompanyHandler(companyRepo)
	invoiceHandler := handler.NewInvoiceHandler(invoiceRepo, companyRepo)
	industryHandler := handler.NewIndustryHandler(industryRepo)
	pairHandler := handler.NewCompanyIndustryHandler(pairRepo, companyRepo, industryRepo)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	companies := r.Group("/companies")
	companies.GET("", companyHandler.List)
	companies.GET("/:code", companyHandler.Get)
	companies.POST("", companyHandler.Create)
	companies.PUT("/:code", companyHandler.Update)
	companies.DELETE("/:code", companyHandler.Delete)

	invoices := r.Group("/invoices")
	invoices.GET("", invoiceHandler.List)
	invoices.GET("/:id", invoiceHandler.Get)
	invoices.POST("", invoiceHandler.Create)
	invoices.PUT("/:id", invoiceHandler.Update)
	invoices.DELETE("/:id", invoiceHandler.Delete)

	industries := r.Group("/industries")
	industries.GET("", industryHandler.List)
	industries.POST("", industryHandler.Create)

	ci := r.Group("/ci")
	ci.POST("", pairHandler.Create)

	// Unmatched paths and methods share the error envelope
	r.NoRoute(apperr.NotFoundHandler())
}
