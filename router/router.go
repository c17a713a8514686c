package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmodumplings/cosmo-pos/controllers"
	"github.com/cosmodumplings/cosmo-pos/middlewares"
)

// Controllers bundles everything the route table needs.
type Controllers struct {
	Users     *controllers.UserController
	Products  *controllers.ProductController
	Cart      *controllers.CartController
	Orders    *controllers.OrderController
	Customers *controllers.CustomerController
	Category  *controllers.CategoryController
	Status    *controllers.StatusController
	Screens   *controllers.ScreenController
	Settings  *controllers.SettingsController
	KDS       *controllers.KDSController
	Assistant *controllers.AssistantController
}

func SetupRouter(c Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.NewRateLimiter(100, 60).RateLimit())

	r.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Sign-in and the read-only catalog are open so a terminal can render its
	// menu before anyone authenticates.
	r.POST("/login", middlewares.NewStrictRateLimiter(), c.Users.Login)
	r.GET("/products", c.Products.GetAllProducts)
	r.GET("/categories", c.Category.GetAllCategories)
	r.GET("/order-statuses", c.Status.GetAllStatuses)

	// Displays authenticate via query token, see WebSocketAuthMiddleware.
	r.GET("/ws", middlewares.WebSocketAuthMiddleware(), c.KDS.HandleWebSocket)

	auth := r.Group("/", middlewares.AuthMiddleware())
	{
		auth.GET("/cart", c.Cart.GetCart)
		auth.POST("/cart/items", c.Cart.AddItem)
		auth.PATCH("/cart/items/:index", c.Cart.UpdateItem)
		auth.DELETE("/cart/items/:index", c.Cart.RemoveItem)
		auth.DELETE("/cart", c.Cart.ClearCart)

		auth.POST("/checkout", c.Orders.CheckoutOrder)
		auth.GET("/orders", c.Orders.GetAllOrders)
		auth.PATCH("/orders/:order_id/status", c.Orders.UpdateOrderStatus)
		auth.GET("/kitchen", c.Orders.GetKitchenDisplay)

		auth.GET("/customers", c.Customers.GetAllCustomers)
		auth.GET("/dashboard", c.Orders.Dashboard)
		auth.POST("/refresh", c.Orders.Refresh)

		auth.POST("/receipts/email", c.Orders.EmailReceipt)
		auth.POST("/receipts/sms", c.Orders.SMSReceipt)

		auth.POST("/assistant/chat", c.Assistant.Chat)
	}

	admin := r.Group("/admin", middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		admin.POST("/products", c.Products.CreateProduct)
		admin.PUT("/products/:product_id", c.Products.UpdateProduct)
		admin.DELETE("/products/:product_id", c.Products.DeleteProduct)

		admin.POST("/categories", c.Category.CreateCategory)
		admin.DELETE("/categories/:cat_id", c.Category.DeleteCategory)

		admin.POST("/order-statuses", c.Status.CreateStatus)
		admin.DELETE("/order-statuses/:status_id", c.Status.DeleteStatus)

		admin.GET("/screens", c.Screens.GetAllScreens)
		admin.POST("/screens", c.Screens.CreateScreen)
		admin.DELETE("/screens/:screen_id", c.Screens.DeleteScreen)

		admin.GET("/users", c.Users.GetAllUsers)
		admin.POST("/users", c.Users.CreateUser)
		admin.DELETE("/users/:user_id", c.Users.DeleteUser)

		admin.POST("/assistant/describe-product", c.Assistant.DescribeProduct)

		admin.GET("/settings/printer", c.Settings.GetPrinterSettings)
		admin.PUT("/settings/printer", c.Settings.UpdatePrinterSettings)
		admin.GET("/settings/store", c.Settings.GetStoreSettings)
		admin.PUT("/settings/store", c.Settings.UpdateStoreSettings)
	}

	return r
}
