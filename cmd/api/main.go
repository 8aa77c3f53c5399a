package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/oddbill/billing-api/internal/application/service"
	"github.com/oddbill/billing-api/internal/config"
	"github.com/oddbill/billing-api/internal/domain/entity"
	"github.com/oddbill/billing-api/internal/infrastructure/database"
	"github.com/oddbill/billing-api/internal/infrastructure/repository"
	"github.com/oddbill/billing-api/internal/presentation/http/handler"
	"github.com/oddbill/billing-api/internal/presentation/http/routes"
	"github.com/oddbill/billing-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtManager := utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.App.Name, cfg.Auth.TokenExpiry)

	documentRepo := repository.NewDocumentRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	authService := service.NewAuthService(cfg.Auth.PasswordHash, jwtManager)
	invoiceService := service.NewDocumentService(entity.KindInvoice, documentRepo)
	quotationService := service.NewDocumentService(entity.KindQuotation, documentRepo)
	receiptService := service.NewDocumentService(entity.KindReceipt, documentRepo)

	h := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Invoice:   handler.NewDocumentHandler(invoiceService),
		Quotation: handler.NewDocumentHandler(quotationService),
		Receipt:   handler.NewDocumentHandler(receiptService),
	}

	router := routes.Setup(h, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	log.Printf("%s listening on :%s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
