package routes

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/internal/api/handlers"
	"Resto-POS-Backend/internal/middleware"
	"Resto-POS-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	MenuHandler         handlers.MenuHandler
	InventoryHandler    handlers.InventoryHandler
	OrderHandler        handlers.OrderHandler
	TableHandler        handlers.TableHandler
	PaymentHandler      handlers.PaymentHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Menu()
	c.Inventory()
	c.Order()
	c.Table()
	c.Payment()
	c.Notification()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/login", c.UserHandler.Login)
		user.Post("/register",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.RoleMiddleware(domain.RoleAdmin),
			c.UserHandler.Register,
		)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Get("",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleManager),
			c.UserHandler.GetUsers,
		)
		user.Delete("/:id",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.RoleMiddleware(domain.RoleAdmin),
			c.UserHandler.DeactivateUser,
		)
	}
}

func (c *Config) Menu() {
	menu := c.App.Group("/api/v1/menu")
	manage := c.Middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleManager)

	// Browsing the menu is public so customer-facing screens can read it.
	menu.Get("/categories", c.MenuHandler.GetCategories)
	menu.Get("/items", c.MenuHandler.GetMenuItems)
	menu.Get("/items/:id", c.MenuHandler.GetMenuItemDetails)

	menu.Post("/categories", c.Middleware.AuthMiddleware(c.JWTService), manage, c.MenuHandler.CreateCategory)
	menu.Patch("/categories/:id", c.Middleware.AuthMiddleware(c.JWTService), manage, c.MenuHandler.UpdateCategory)
	menu.Delete("/categories/:id", c.Middleware.AuthMiddleware(c.JWTService), manage, c.MenuHandler.DeleteCategory)

	menu.Post("/items", c.Middleware.AuthMiddleware(c.JWTService), manage, c.MenuHandler.CreateMenuItem)
	menu.Patch("/items/:id", c.Middleware.AuthMiddleware(c.JWTService), manage, c.MenuHandler.UpdateMenuItem)
	menu.Delete("/items/:id", c.Middleware.AuthMiddleware(c.JWTService), manage, c.MenuHandler.DeleteMenuItem)
	menu.Post("/items/:id/image", c.Middleware.AuthMiddleware(c.JWTService), manage, c.MenuHandler.UploadMenuItemImage)

	menu.Put("/items/:id/recipe", c.Middleware.AuthMiddleware(c.JWTService), manage, c.MenuHandler.SetRecipe)
	menu.Get("/items/:id/recipe", c.Middleware.AuthMiddleware(c.JWTService), manage, c.MenuHandler.GetRecipe)
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleManager),
	)

	inventory.Post("/ingredients", c.InventoryHandler.AddIngredient)
	inventory.Get("/ingredients", c.InventoryHandler.GetIngredients)
	inventory.Get("/ingredients/:id", c.InventoryHandler.GetIngredientDetails)
	inventory.Patch("/ingredients/:id", c.InventoryHandler.UpdateIngredient)
	inventory.Delete("/ingredients/:id", c.InventoryHandler.DeactivateIngredient)
	inventory.Get("/ingredients/:id/low-stock", c.InventoryHandler.CheckLowStock)

	inventory.Post("/ingredients/:id/restock", c.InventoryHandler.RestockIngredient)
	inventory.Post("/ingredients/:id/adjust", c.InventoryHandler.AdjustStock)

	inventory.Get("/history", c.InventoryHandler.GetStockHistory)
	inventory.Get("/usage-report", c.InventoryHandler.GetUsageReport)
}

func (c *Config) Order() {
	order := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))

	order.Post("",
		c.Middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleManager, domain.RoleWaiter),
		c.OrderHandler.CreateOrder,
	)
	order.Get("", c.OrderHandler.GetOrders)
	order.Get("/kitchen",
		c.Middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleManager, domain.RoleKitchen),
		c.OrderHandler.GetKitchenQueue,
	)
	order.Get("/:id", c.OrderHandler.GetOrderDetails)
	order.Patch("/:id/status", c.OrderHandler.UpdateOrderStatus)
}

func (c *Config) Table() {
	table := c.App.Group("/api/v1/tables")
	manage := c.Middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleManager)

	table.Post("", c.Middleware.AuthMiddleware(c.JWTService), manage, c.TableHandler.CreateTable)
	table.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.TableHandler.GetTables)
	table.Patch("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.TableHandler.UpdateTable)

	reservation := c.App.Group("/api/v1/reservations")
	// Customers submit reservations without an account.
	reservation.Post("", c.TableHandler.CreateReservation)
	reservation.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.TableHandler.GetReservations)
	reservation.Patch("/:id/status", c.Middleware.AuthMiddleware(c.JWTService), c.TableHandler.UpdateReservationStatus)
}

func (c *Config) Payment() {
	payment := c.App.Group("/api/v1/payments", c.Middleware.AuthMiddleware(c.JWTService))

	payment.Post("/cash",
		c.Middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleManager, domain.RoleWaiter),
		c.PaymentHandler.RecordCashPayment,
	)
	payment.Post("/checkout",
		c.Middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleManager, domain.RoleWaiter),
		c.PaymentHandler.CreateCheckout,
	)
	payment.Get("",
		c.Middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleManager),
		c.PaymentHandler.GetPayments,
	)
}

func (c *Config) Notification() {
	notification := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))

	notification.Get("", c.NotificationHandler.GetNotifications)
	notification.Patch("/read-all", c.NotificationHandler.MarkAllAsRead)
	notification.Patch("/:id/read", c.NotificationHandler.MarkAsRead)
	notification.Delete("/:id", c.NotificationHandler.DeleteNotification)

	notification.Get("/preferences", c.NotificationHandler.GetPreferences)
	notification.Put("/preferences", c.NotificationHandler.UpdatePreferences)

	notification.Get("/quiet-hours", c.NotificationHandler.GetQuietHours)
	notification.Put("/quiet-hours",
		c.Middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleManager),
		c.NotificationHandler.UpdateQuietHours,
	)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.HandleWebhook)
}
