package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/smartcleaners/SMART-CLEANERS/internal/cart"
	"github.com/smartcleaners/SMART-CLEANERS/internal/config"
	"github.com/smartcleaners/SMART-CLEANERS/internal/handlers"
	"github.com/smartcleaners/SMART-CLEANERS/internal/middleware"
	"github.com/smartcleaners/SMART-CLEANERS/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	upiService := services.NewUPIService(cfg.UPIPayeeVPA, cfg.UPIPayeeName)
	geocodeService := services.NewGeocodeService(cfg.GeocodeBaseURL)
	cartService := cart.New(cart.NewGormRepo(db), cart.NewGormProducts(db))

	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db)
	productHandler := handlers.NewProductHandler(db)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(db, telegramService, upiService)
	profileHandler := handlers.NewProfileHandler(db)
	geocodeHandler := handlers.NewGeocodeHandler(geocodeService)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Catalog routes
	categories := api.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/:id", catalogHandler.GetCategory)
	categories.Put("/:id", catalogHandler.UpdateCategory)
	categories.Delete("/:id", catalogHandler.DeleteCategory)

	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Post("/", productHandler.CreateProduct)
	products.Get("/:id", productHandler.GetProduct)
	products.Put("/:id", productHandler.UpdateProduct)
	products.Delete("/:id", productHandler.DeleteProduct)

	combos := api.Group("/combos")
	combos.Get("/", catalogHandler.ListCombos)
	combos.Post("/", catalogHandler.CreateCombo)
	combos.Get("/:id", catalogHandler.GetCombo)
	combos.Put("/:id", catalogHandler.UpdateCombo)
	combos.Delete("/:id", catalogHandler.DeleteCombo)

	// Address lookups for the checkout form
	geocode := api.Group("/geocode")
	geocode.Get("/reverse", geocodeHandler.Reverse)
	geocode.Get("/search", geocodeHandler.Search)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/cart", cartHandler.GetCart)
	protected.Post("/cart/items", cartHandler.AddItem)
	protected.Put("/cart/items/:productId", cartHandler.SetQuantity)
	protected.Delete("/cart/items/:productId", cartHandler.RemoveItem)
	protected.Delete("/cart", cartHandler.ClearCart)

	protected.Post("/orders", orderHandler.PlaceOrder)
	protected.Get("/orders", orderHandler.ListOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Post("/orders/:id/payment-confirmation", orderHandler.ConfirmPayment)
	protected.Patch("/orders/:id/status", orderHandler.UpdateStatus)

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Put("/profile", profileHandler.UpdateProfile)
	protected.Get("/profile/addresses", profileHandler.ListAddresses)
	protected.Post("/profile/addresses", profileHandler.CreateAddress)
	protected.Put("/profile/addresses/:id", profileHandler.UpdateAddress)
	protected.Delete("/profile/addresses/:id", profileHandler.DeleteAddress)
}
