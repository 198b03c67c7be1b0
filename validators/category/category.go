package categoryValidator

import (
	"learnhub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Name is required, description is optional
		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "All fields are required", nil)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

func CategoryPageDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CategoryID uint `json:"categoryId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CategoryID == 0 {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found", nil)
		}

		c.Locals("validatedCategoryID", reqData.CategoryID)
		return c.Next()
	}
}
