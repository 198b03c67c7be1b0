package categoryController

import (
	"errors"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	"log"
	"sort"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// instructorProjection limits the preloaded instructor to public profile fields.
// The catalog's "different category" view omits the email.
func instructorProjection(withEmail bool) func(*gorm.DB) *gorm.DB {
	cols := []string{"id", "first_name", "last_name", "image"}
	if withEmail {
		cols = append(cols, "email")
	}
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Select(cols)
	}
}

func CreateCategory(c *fiber.Ctx) error {
	// Retrieve validated request data
	reqData, ok := c.Locals("validatedCategory").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category := models.Category{
		Name:        reqData.Name,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&category).Error; err != nil {
		log.Printf("createCategory error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category created successfully!", category)
}

func ShowAllCategories(c *fiber.Ctx) error {
	// Project down to name and description only
	var categories []models.Category
	if err := database.Database.Db.
		Model(&models.Category{}).
		Select("id", "name", "description").
		Find(&categories).Error; err != nil {
		log.Printf("showAllCategories error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All categories returned successfully", categories)
}

func CategoryPageDetails(c *fiber.Ctx) error {
	categoryID, ok := c.Locals("validatedCategoryID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// 1) Selected category with its published courses, ratings and instructor
	var selectedCategory models.Category
	err := db.
		Preload("Courses", "status = ? AND is_deleted = false", models.CourseStatusPublished).
		Preload("Courses.RatingAndReviews").
		Preload("Courses.Instructor", instructorProjection(true)).
		First(&selectedCategory, categoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found", nil)
		}
		log.Printf("categoryPageDetails error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	// 2) A different category, picked uniformly at random from the rest
	var otherCategoryIDs []uint
	if err := db.
		Model(&models.Category{}).
		Where("id <> ?", categoryID).
		Pluck("id", &otherCategoryIDs).Error; err != nil {
		log.Printf("categoryPageDetails error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	var differentCategory *models.Category
	if pick := utils.RandomIndex(len(otherCategoryIDs)); pick >= 0 {
		var picked models.Category
		if err := db.
			Preload("Courses", "status = ? AND is_deleted = false", models.CourseStatusPublished).
			Preload("Courses.Instructor", instructorProjection(false)).
			First(&picked, otherCategoryIDs[pick]).Error; err != nil {
			log.Printf("categoryPageDetails error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
		}
		differentCategory = &picked
	}

	// 3) Best sellers across every category, ranked by enrolled students
	var allCategories []models.Category
	if err := db.
		Preload("Courses", "status = ? AND is_deleted = false", models.CourseStatusPublished).
		Preload("Courses.Instructor", instructorProjection(false)).
		Preload("Courses.StudentsEnrolled", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("users.id")
		}).
		Find(&allCategories).Error; err != nil {
		log.Printf("categoryPageDetails error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	allCourses := make([]models.Course, 0)
	for _, cat := range allCategories {
		allCourses = append(allCourses, cat.Courses...)
	}

	// Stable sort keeps the prior order for equal enrollment counts
	sort.SliceStable(allCourses, func(i, j int) bool {
		return len(allCourses[i].StudentsEnrolled) > len(allCourses[j].StudentsEnrolled)
	})

	if len(allCourses) > 10 {
		allCourses = allCourses[:10]
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category page details fetched successfully!", fiber.Map{
		"selectedCategory":   selectedCategory,
		"differentCategory":  differentCategory,
		"mostSellingCourses": allCourses,
	})
}
