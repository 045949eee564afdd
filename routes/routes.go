package routes

import (
	"github.com/cyber3201/foodApp/configs"
	"github.com/cyber3201/foodApp/controllers"
	"github.com/cyber3201/foodApp/middlewares"
	"github.com/cyber3201/foodApp/repository"
	"github.com/cyber3201/foodApp/services"
	"github.com/cyber3201/foodApp/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. Returns the order service so the caller can stop pending
// transitions on teardown.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.Hub) (*services.OrderService, error) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	chatRepo := repository.NewChatRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	recommender := services.NewRecommendService(cfg.GeminiAPIKey, cfg.GeminiModel)
	chatSvc := services.NewChatService(chatRepo, catalogRepo, catalogSvc, recommender, hub)

	orderSvc, err := services.NewOrderService(db, orderRepo, cartRepo, services.TransitionDelays{
		PaymentProcessing: cfg.PaymentProcessingDelay,
		Preparing:         cfg.TrackingPreparingAfter,
		OnTheWay:          cfg.TrackingOnTheWayAfter,
		Delivered:         cfg.TrackingDeliveredAfter,
	}, hub)
	if err != nil {
		return nil, err
	}

	// Controllers
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(orderSvc)
	chatCtrl := controllers.NewChatController(chatSvc)
	authCtrl := controllers.NewAuthController(authSvc, cartSvc)

	// Auth (public)
	r.POST("/auth/login", authCtrl.Login)

	// Catalogue (public)
	r.GET("/categories", catalogCtrl.ListCategories)
	r.GET("/restaurants", catalogCtrl.ListRestaurants)
	r.GET("/restaurants/:id", catalogCtrl.RestaurantDetail)
	r.GET("/products", catalogCtrl.ListProducts)
	r.GET("/products/:id", catalogCtrl.ProductDetail)

	// Session-scoped
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/auth/logout", authCtrl.Logout)
		u.GET("/auth/me", authCtrl.Me)
		u.PATCH("/auth/me", authCtrl.UpdateMe)
		u.POST("/auth/me/addresses", authCtrl.AddAddress)

		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		u.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/checkout", orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/payments/:id/confirm", paymentCtrl.Confirm)
		u.GET("/payments/:id", paymentCtrl.Get)

		u.GET("/chat/messages", chatCtrl.History)
		u.POST("/chat/messages", chatCtrl.Send)
	}

	// Websocket stream (token via query for browser clients)
	r.GET("/ws/assistant", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	return orderSvc, nil
}
