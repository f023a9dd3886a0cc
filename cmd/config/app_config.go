package config

import (
	"Cookly-Backend/internal/api/handlers"
	"Cookly-Backend/internal/api/routes"
	"Cookly-Backend/internal/middleware"
	"Cookly-Backend/internal/utils"
	"Cookly-Backend/internal/utils/storage"
	"Cookly-Backend/pkg/admin"
	"Cookly-Backend/pkg/bugreport"
	"Cookly-Backend/pkg/cookbook"
	"Cookly-Backend/pkg/jwt"
	"Cookly-Backend/pkg/notification"
	"Cookly-Backend/pkg/recipe"
	"Cookly-Backend/pkg/shoppinglist"
	"Cookly-Backend/pkg/subscription"
	"Cookly-Backend/pkg/user"
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
	recipeRepository := recipe.NewRecipeRepository(db)
	cookbookRepository := cookbook.NewCookbookRepository(db)
	shoppingListRepository := shoppinglist.NewShoppingListRepository(db)
	bugReportRepository := bugreport.NewBugReportRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	recipeService := recipe.NewRecipeService(recipeRepository)
	cookbookService := cookbook.NewCookbookService(cookbookRepository, recipeRepository)
	shoppingListService := shoppinglist.NewShoppingListService(shoppingListRepository)
	bugReportService := bugreport.NewBugReportService(bugReportRepository, s3)
	notificationService := notification.NewNotificationService(
		notificationRepository,
		userRepository,
		utils.GetConfig("PUSHY_SECRET_KEY"),
	)
	subscriptionService := subscription.NewSubscriptionService(
		subscriptionRepository,
		userRepository,
		utils.GetConfig("SERVER_KEY"),
		utils.GetConfig("IsProd") == "true",
	)
	adminService := admin.NewAdminService(userRepository, recipeRepository, bugReportRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	cookbookHandler := handlers.NewCookbookHandler(cookbookService, validator)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, validator)
	bugReportHandler := handlers.NewBugReportHandler(bugReportService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)
	subscriptionHandler := handlers.NewSubscriptionHandler(
		subscriptionService,
		validator,
		utils.GetConfig("REVENUECAT_AUTH_TOKEN"),
	)
	adminHandler := handlers.NewAdminHandler(adminService, userRepository)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		RecipeHandler:       recipeHandler,
		CookbookHandler:     cookbookHandler,
		ShoppingListHandler: shoppingListHandler,
		BugReportHandler:    bugReportHandler,
		NotificationHandler: notificationHandler,
		SubscriptionHandler: subscriptionHandler,
		AdminHandler:        adminHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
