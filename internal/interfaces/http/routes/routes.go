// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/gamevault-backend/internal/config"
	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
	"github.com/your-org/gamevault-backend/internal/interfaces/http/handlers"
	"github.com/your-org/gamevault-backend/internal/interfaces/http/middleware"
)

// SetupRoutes wires all API route groups onto rg.
func SetupRoutes(rg *gin.RouterGroup, store storage.Store, cfg *config.Config) {
	setupAuthRoutes(rg, store, cfg)
	setupGameRoutes(rg, store, cfg)
	setupCartRoutes(rg, store, cfg)
	setupOrderRoutes(rg, store, cfg)
}

func setupAuthRoutes(rg *gin.RouterGroup, store storage.Store, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(store, cfg)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/session", authHandler.GetSession)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
		}
	}
}

func setupGameRoutes(rg *gin.RouterGroup, store storage.Store, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(store, cfg)

	games := rg.Group("/games")
	{
		games.GET("", catalogHandler.GetGames)
		games.GET("/filters", catalogHandler.GetFilters)
		games.GET("/discount-suggestion", catalogHandler.SuggestDiscount)
		games.GET("/:id", catalogHandler.GetGame)

		// Listing management requires a logged-in seller
		protected := games.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("", catalogHandler.CreateGame)
			protected.PUT("/:id", catalogHandler.UpdateGame)
			protected.DELETE("/:id", catalogHandler.DeleteGame)
		}
	}
}

func setupCartRoutes(rg *gin.RouterGroup, store storage.Store, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(store, cfg)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

func setupOrderRoutes(rg *gin.RouterGroup, store storage.Store, cfg *config.Config) {
	checkoutHandler := handlers.NewCheckoutHandler(store, cfg)
	orderHandler := handlers.NewOrderHandler(store, cfg)

	// Checkout and order history require authentication
	checkout := rg.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware(cfg))
	{
		checkout.POST("", checkoutHandler.Submit)
	}

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/invoice", orderHandler.GetInvoice)
	}
}
