package routes

import (
	"nautica-prime/internal/adapters/http/handlers"
	"nautica-prime/internal/adapters/http/middleware"
	"nautica-prime/internal/adapters/persistence/repositories"
	"nautica-prime/internal/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	marcaRepo := repositories.NewMarcaRepository(db)
	embarcacaoRepo := repositories.NewEmbarcacaoRepository(db)
	clienteRepo := repositories.NewClienteRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	propostaRepo := repositories.NewPropostaRepository(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	embarcacaoHandler := handlers.NewEmbarcacaoHandler(embarcacaoRepo, marcaRepo)
	marcaHandler := handlers.NewMarcaHandler(marcaRepo)
	clienteHandler := handlers.NewClienteHandler(clienteRepo, cfg)
	adminHandler := handlers.NewAdminHandler(adminRepo, cfg)
	propostaHandler := handlers.NewPropostaHandler(propostaRepo, embarcacaoRepo)
	dashboardHandler := handlers.NewDashboardHandler(clienteRepo, embarcacaoRepo, propostaRepo)

	// Auth middlewares
	auth := middleware.AuthMiddleware(cfg)
	adminOnly := middleware.AdminOnly()
	clienteOnly := middleware.ClienteOnly()
	authLimiter := middleware.AuthRateLimiter()

	// Health check
	app.Get("/health", healthHandler.Check)

	// Catalog routes (public reads, admin writes)
	embarcacoes := app.Group("/embarcacoes")
	embarcacoes.Get("/", embarcacaoHandler.List)
	embarcacoes.Get("/destaques", embarcacaoHandler.Destaques)
	embarcacoes.Get("/pesquisa/:termo", embarcacaoHandler.Pesquisa)
	embarcacoes.Get("/:id", embarcacaoHandler.Get)
	embarcacoes.Post("/", auth, adminOnly, embarcacaoHandler.Create)
	embarcacoes.Put("/:id", auth, adminOnly, embarcacaoHandler.Update)
	embarcacoes.Delete("/:id", auth, adminOnly, embarcacaoHandler.Delete)

	// Brand routes
	app.Get("/marcas", marcaHandler.List)

	// Customer routes
	clientes := app.Group("/clientes")
	clientes.Post("/", authLimiter, clienteHandler.Register)
	clientes.Post("/login", authLimiter, clienteHandler.Login)
	clientes.Get("/", auth, adminOnly, clienteHandler.List)

	// Admin routes
	admins := app.Group("/admins")
	admins.Post("/login", authLimiter, adminHandler.Login)
	admins.Get("/existe", adminHandler.Existe)
	admins.Post("/primeiro-acesso", authLimiter, adminHandler.PrimeiroAcesso)

	// Proposal routes
	propostas := app.Group("/propostas")
	propostas.Post("/", auth, clienteOnly, propostaHandler.Create)
	propostas.Get("/cliente/:clienteId", auth, propostaHandler.ListByCliente)
	propostas.Get("/", auth, adminOnly, propostaHandler.ListAll)
	propostas.Put("/:id/responder", auth, adminOnly, propostaHandler.Responder)
	propostas.Put("/:id/aceitar", auth, adminOnly, propostaHandler.Aceitar)
	propostas.Patch("/:id/status", auth, adminOnly, propostaHandler.Status)
	propostas.Delete("/:id", auth, adminOnly, propostaHandler.Delete)

	// Dashboard routes (public, consumed by the admin panel cards)
	dashboard := app.Group("/dashboard")
	dashboard.Get("/gerais", dashboardHandler.Gerais)
	dashboard.Get("/EmbarcacoesMarca", dashboardHandler.EmbarcacoesMarca)
	dashboard.Get("/clientesCidade", dashboardHandler.ClientesCidade)
}
