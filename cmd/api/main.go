package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-catalog-api/internal/ai"
	"go-catalog-api/internal/handler"
	"go-catalog-api/internal/middleware"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/service"
	"go-catalog-api/internal/ws"
	"go-catalog-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(
		&model.GlobalSettings{},
		&model.Category{},
		&model.Brand{},
		&model.Product{},
		&model.User{},
		&model.LedgerEntry{},
	)

	// 3. Seed default settings, taxonomy, users, and demo data
	seedInitialData(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	brandRepo := repository.NewBrandRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)
	ledgerRepo := repository.NewLedgerRepo(db)
	userRepo := repository.NewUserRepo(db)

	descGen := ai.NewGeminiClient()

	catalogService := service.NewCatalogService(productRepo, categoryRepo, brandRepo, settingsRepo, descGen, wsHub)
	settingsService := service.NewSettingsService(settingsRepo)
	ledgerService := service.NewLedgerService(ledgerRepo, wsHub)
	reportService := service.NewReportService(ledgerRepo)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService, reportService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "CatalogPro API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	// Semua route di bawah butuh autentikasi; permission dicek dua lapis,
	// di middleware dan di service (service yang jadi sumber kebenaran).
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Catalog: products
	protected.Get("/products", middleware.RequirePermission(model.PermCatalogView), catalogHandler.GetProducts)
	protected.Get("/products/:id", middleware.RequirePermission(model.PermCatalogView), catalogHandler.GetProduct)
	protected.Post("/products", middleware.RequirePermission(model.PermCatalogEdit), catalogHandler.SaveProduct)
	protected.Put("/products/:id", middleware.RequirePermission(model.PermCatalogEdit), catalogHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequirePermission(model.PermCatalogEdit), catalogHandler.DeleteProduct)
	protected.Post("/products/generate-description", middleware.RequirePermission(model.PermCatalogEdit), catalogHandler.GenerateDescription)

	// Catalog: taxonomy
	protected.Get("/categories", middleware.RequirePermission(model.PermCatalogView), catalogHandler.GetCategories)
	protected.Post("/categories", middleware.RequirePermission(model.PermCatalogEdit), catalogHandler.SaveCategory)
	protected.Delete("/categories/:id", middleware.RequirePermission(model.PermCatalogEdit), catalogHandler.DeleteCategory)
	protected.Get("/brands", middleware.RequirePermission(model.PermCatalogView), catalogHandler.GetBrands)
	protected.Post("/brands", middleware.RequirePermission(model.PermCatalogEdit), catalogHandler.SaveBrand)
	protected.Delete("/brands/:id", middleware.RequirePermission(model.PermCatalogEdit), catalogHandler.DeleteBrand)

	// Pricing settings
	protected.Get("/settings", middleware.RequirePermission(model.PermSettingsManage), settingsHandler.GetSettings)
	protected.Put("/settings", middleware.RequirePermission(model.PermSettingsManage), settingsHandler.SaveSettings)

	// Financial ledger + report
	protected.Get("/ledger", middleware.RequirePermission(model.PermLedgerView), ledgerHandler.GetEntries)
	protected.Get("/ledger/report", middleware.RequirePermission(model.PermLedgerView), ledgerHandler.DownloadReport)
	protected.Post("/ledger", middleware.RequirePermission(model.PermLedgerEdit), ledgerHandler.CreateEntry)
	protected.Put("/ledger/:id", middleware.RequirePermission(model.PermLedgerEdit), ledgerHandler.UpdateEntry)
	protected.Delete("/ledger/:id", middleware.RequirePermission(model.PermLedgerEdit), ledgerHandler.DeleteEntry)

	// User Management
	protected.Get("/users", middleware.RequirePermission(model.PermUsersManage), userHandler.GetUsers)
	protected.Get("/users/:id", middleware.RequirePermission(model.PermUsersManage), userHandler.GetUser)
	protected.Post("/users", middleware.RequirePermission(model.PermUsersManage), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequirePermission(model.PermUsersManage), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequirePermission(model.PermUsersManage), userHandler.DeleteUser)

	// Access policy table
	protected.Get("/roles", userHandler.GetRoles)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
