package categoryRoutes

import (
	controllers "learnhub/controllers/category"
	"learnhub/middleware"
	validators "learnhub/validators/category"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes sets up the catalog routes
func SetupCategoryRoutes(app *fiber.App) {
	group := app.Group("/category")

	// Category management (admin only)
	group.Post("/create", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CreateCategory(), controllers.CreateCategory)

	// Public catalog views
	group.Get("/list", controllers.ShowAllCategories)
	group.Post("/details", validators.CategoryPageDetails(), controllers.CategoryPageDetails)
}
