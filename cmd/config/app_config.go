package config

import (
	"Resto-POS-Backend/internal/api/handlers"
	"Resto-POS-Backend/internal/api/routes"
	"Resto-POS-Backend/internal/middleware"
	"Resto-POS-Backend/internal/utils"
	"Resto-POS-Backend/internal/utils/storage"
	"Resto-POS-Backend/pkg/inventory"
	"Resto-POS-Backend/pkg/jwt"
	"Resto-POS-Backend/pkg/menu"
	"Resto-POS-Backend/pkg/notification"
	"Resto-POS-Backend/pkg/order"
	"Resto-POS-Backend/pkg/payment"
	"Resto-POS-Backend/pkg/table"
	"Resto-POS-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	orderRepository := order.NewOrderRepository(db)
	tableRepository := table.NewTableRepository(db)
	paymentRepository := payment.NewPaymentRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	notificationService := notification.NewNotificationService(notificationRepository, userRepository)
	inventoryService := inventory.NewInventoryService(inventoryRepository, notificationService, userRepository)
	menuService := menu.NewMenuService(menuRepository, s3)
	orderService := order.NewOrderService(orderRepository, menuRepository, inventoryService, notificationService)
	tableService := table.NewTableService(tableRepository)
	paymentService := payment.NewPaymentService(paymentRepository, orderRepository, notificationService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	tableHandler := handlers.NewTableHandler(tableService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		MenuHandler:         menuHandler,
		InventoryHandler:    inventoryHandler,
		OrderHandler:        orderHandler,
		TableHandler:        tableHandler,
		PaymentHandler:      paymentHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
