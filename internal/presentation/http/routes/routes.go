package routes

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oddbill/billing-api/internal/config"
	domainRepo "github.com/oddbill/billing-api/internal/domain/repository"
	"github.com/oddbill/billing-api/internal/presentation/http/handler"
	"github.com/oddbill/billing-api/internal/presentation/http/middleware"
	"github.com/oddbill/billing-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Invoice   *handler.DocumentHandler
	Quotation *handler.DocumentHandler
	Receipt   *handler.DocumentHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	router.POST("/login", h.Auth.Login)

	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWTManager))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	protected.Use(rateLimiter.Middleware())
	protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}))

	registerDocumentRoutes(protected, h.Invoice, "invoice")
	registerDocumentRoutes(protected, h.Quotation, "quotation")
	registerDocumentRoutes(protected, h.Receipt, "receipt")

	return router
}

// registerDocumentRoutes wires one document type under its own prefix,
// mirroring the documents' own URL scheme ("/invoice/{number}", listings
// under the plural).
func registerDocumentRoutes(g *gin.RouterGroup, h *handler.DocumentHandler, name string) {
	plural := "/" + strings.ToLower(name) + "s"
	single := "/" + strings.ToLower(name)

	g.GET(plural+"/:year", h.List)
	g.POST(plural, h.Create)
	g.GET(single+"/:number", h.Get)
	g.PUT(single+"/:number", h.Update)
	g.DELETE(single+"/:number", h.Delete)
	g.POST(single+"/:number/duplicate", h.Duplicate)
	g.GET(single+"/:number/pdf", h.PDF)
}
