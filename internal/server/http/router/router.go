package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/dakarmarket/backend/internal/server/http/handlers"
	"github.com/dakarmarket/backend/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	favoriteHandler := handlers.NewFavoriteHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	messageHandler := handlers.NewMessageHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/profile", authHandler.Me)
	authed.PATCH("/profile", authHandler.Update)

	authed.POST("/products", productHandler.Create)
	authed.PATCH("/products/:id", productHandler.Update)
	authed.DELETE("/products/:id", productHandler.Delete)

	authed.GET("/cart", cartHandler.List)
	authed.POST("/cart", cartHandler.Add)
	authed.PATCH("/cart/:id", cartHandler.UpdateQuantity)
	authed.DELETE("/cart/:id", cartHandler.Remove)
	authed.DELETE("/cart", cartHandler.Clear)

	authed.GET("/favorites", favoriteHandler.List)
	authed.POST("/favorites/:productID", favoriteHandler.Add)
	authed.DELETE("/favorites/:productID", favoriteHandler.Remove)

	authed.POST("/orders/checkout", orderHandler.Checkout)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/counts", orderHandler.StatusCounts)
	authed.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	authed.POST("/messages", messageHandler.Send)
	authed.GET("/messages/:userID", messageHandler.Conversation)
	authed.POST("/messages/:userID/read", messageHandler.MarkRead)
	authed.GET("/threads", messageHandler.Threads)

	return engine
}
