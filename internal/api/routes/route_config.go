package routes

import (
	"Cookly-Backend/internal/api/handlers"
	"Cookly-Backend/internal/middleware"
	"Cookly-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	RecipeHandler       handlers.RecipeHandler
	CookbookHandler     handlers.CookbookHandler
	ShoppingListHandler handlers.ShoppingListHandler
	BugReportHandler    handlers.BugReportHandler
	NotificationHandler handlers.NotificationHandler
	SubscriptionHandler handlers.SubscriptionHandler
	AdminHandler        handlers.AdminHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Cookbook()
	c.ShoppingList()
	c.BugReports()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/google-signin", c.UserHandler.GoogleSignIn)
		user.Post("/forgot-password", c.UserHandler.ForgotPassword)
		user.Post("/reset-password", c.UserHandler.ResetPassword)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Post("/me/profile-pic", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadProfilePic)
		user.Post("/pushy-token", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.RegisterPushyToken)
		user.Delete("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.DeleteAccount)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.SubscriptionHandler.CreateTransaction)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		recipes.Post("", c.RecipeHandler.SaveRecipe)
		recipes.Get("/public", c.RecipeHandler.GetPublicRecipes)
		recipes.Get("/top", c.RecipeHandler.GetTopRecipes)
		recipes.Get("/liked", c.RecipeHandler.GetLikedRecipes)
		recipes.Get("/mine", c.RecipeHandler.GetCurrentUserRecipes)
		recipes.Get("/:recipeId", c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:recipeId", c.RecipeHandler.UpdateRecipe)
		recipes.Post("/:recipeId/like", c.RecipeHandler.ToggleLike)
		recipes.Delete("/:recipeId", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Cookbook() {
	cookbook := c.App.Group("/api/cookbook", c.Middleware.AuthMiddleware(c.JWTService))
	{
		cookbook.Post("/private", c.CookbookHandler.SavePrivateRecipe)
		cookbook.Post("/add", c.CookbookHandler.AddToCookbook)
		cookbook.Get("/recipe/:userRecipeId", c.CookbookHandler.GetUserRecipe)
		cookbook.Put("/recipe/:userRecipeId", c.CookbookHandler.UpdateUserRecipe)
		cookbook.Put("/recipe/:userRecipeId/full", c.CookbookHandler.FullUpdateUserRecipe)
		cookbook.Post("/recipe/:userRecipeId/reset", c.CookbookHandler.ResetProgress)
		cookbook.Delete("/recipe/:userRecipeId", c.CookbookHandler.RemoveFromCookbook)
		cookbook.Get("/:userId", c.CookbookHandler.GetUserCookbook)
		cookbook.Get("/:userId/original/:originalRecipeId", c.CookbookHandler.GetUserRecipeByOriginal)
		cookbook.Get("/:userId/check/:originalRecipeId", c.CookbookHandler.IsRecipeInCookbook)
	}
}

func (c *Config) ShoppingList() {
	items := c.App.Group("/api/shopping-list", c.Middleware.AuthMiddleware(c.JWTService))
	{
		items.Post("", c.ShoppingListHandler.AddItem)
		items.Get("", c.ShoppingListHandler.GetItems)
		items.Patch("/:itemId", c.ShoppingListHandler.UpdateItem)
		items.Delete("/:itemId", c.ShoppingListHandler.DeleteItem)
	}
}

func (c *Config) BugReports() {
	reports := c.App.Group("/api/bug-reports", c.Middleware.AuthMiddleware(c.JWTService))
	{
		reports.Post("", c.BugReportHandler.CreateReport)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware())
	{
		admin.Get("/dashboard", c.AdminHandler.GetDashboardStats)
		admin.Get("/user-growth", c.AdminHandler.GetUserGrowth)
		admin.Get("/users", c.AdminHandler.GetUsers)
		admin.Get("/deleted-users", c.AdminHandler.GetDeletedUsers)
		admin.Get("/bug-reports", c.BugReportHandler.GetReports)
		admin.Patch("/bug-reports/:reportId/resolve", c.BugReportHandler.ResolveReport)
		admin.Post("/notifications", c.NotificationHandler.SendNotification)
		admin.Get("/notifications", c.NotificationHandler.GetLogs)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/api/webhooks/midtrans", c.SubscriptionHandler.MidtransNotification)
	c.App.Post("/api/webhooks/revenuecat", c.SubscriptionHandler.RevenueCatWebhook)
}
