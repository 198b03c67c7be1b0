package categoryController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	categoryValidator "learnhub/validators/category"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type userView struct {
	ID        uint   `json:"ID"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	Image     string `json:"image"`
}

type courseView struct {
	ID               uint                     `json:"ID"`
	Name             string                   `json:"name"`
	Status           string                   `json:"status"`
	Instructor       userView                 `json:"instructor"`
	StudentsEnrolled []userView               `json:"studentsEnrolled"`
	RatingAndReviews []models.RatingAndReview `json:"ratingAndReviews"`
}

type categoryView struct {
	ID      uint         `json:"ID"`
	Name    string       `json:"name"`
	Courses []courseView `json:"courses"`
}

type detailsView struct {
	SelectedCategory   categoryView  `json:"selectedCategory"`
	DifferentCategory  *categoryView `json:"differentCategory"`
	MostSellingCourses []courseView  `json:"mostSellingCourses"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Course{},
		&models.RatingAndReview{},
		&models.CourseProgress{},
		&models.CoursePayment{},
	))

	database.Database = database.DbInstance{Db: db}
	return db
}

func authAs(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}
}

func setupApp(adminID uint) *fiber.App {
	app := fiber.New()
	app.Post("/category/create", authAs(adminID), middleware.RequireRole("ADMIN"), categoryValidator.CreateCategory(), CreateCategory)
	app.Get("/category/list", ShowAllCategories)
	app.Post("/category/details", categoryValidator.CategoryPageDetails(), CategoryPageDetails)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()
	userSeq++
	user := models.User{
		FirstName: fmt.Sprintf("User%d", userSeq),
		LastName:  "Test",
		Email:     fmt.Sprintf("user%d-%s@learnhub.test", userSeq, strings.ReplaceAll(t.Name(), "/", "_")),
		Password:  "hashed",
		Role:      role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Description: name + " courses"}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedCourse(t *testing.T, db *gorm.DB, categoryID, instructorID uint, name, status string, price float64) models.Course {
	t.Helper()
	course := models.Course{
		Name:         name,
		Price:        price,
		Status:       status,
		CategoryID:   categoryID,
		InstructorID: instructorID,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func enrollStudents(t *testing.T, db *gorm.DB, courseID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		student := seedUser(t, db, "USER")
		require.NoError(t, db.Exec(
			"INSERT INTO user_courses (user_id, course_id) VALUES (?, ?)",
			student.ID, courseID,
		).Error)
	}
}

func TestCreateCategory(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "ADMIN")
	app := setupApp(admin.ID)

	code, env := doJSON(t, app, "POST", "/category/create", fiber.Map{
		"name":        "Web Development",
		"description": "Everything web",
	})

	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, env.Success)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateCategoryEmptyNamePersistsNothing(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "ADMIN")
	app := setupApp(admin.ID)

	code, env := doJSON(t, app, "POST", "/category/create", fiber.Map{
		"name":        "   ",
		"description": "blank name",
	})

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Equal(t, "All fields are required", env.Message)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateCategoryRequiresAdmin(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "USER")
	app := setupApp(user.ID)

	code, env := doJSON(t, app, "POST", "/category/create", fiber.Map{
		"name": "Not allowed",
	})

	assert.Equal(t, fiber.StatusForbidden, code)
	assert.False(t, env.Success)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestShowAllCategoriesProjection(t *testing.T) {
	db := setupTestDB(t)
	seedCategory(t, db, "Data Science")
	seedCategory(t, db, "Design")
	app := setupApp(0)

	code, env := doJSON(t, app, "GET", "/category/list", nil)

	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, env.Success)

	var categories []categoryView
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Len(t, categories, 2)
	for _, cat := range categories {
		assert.NotEmpty(t, cat.Name)
		assert.Empty(t, cat.Courses)
	}
}

func TestCategoryPageDetailsUnknownCategory(t *testing.T) {
	setupTestDB(t)
	app := setupApp(0)

	code, env := doJSON(t, app, "POST", "/category/details", fiber.Map{"categoryId": 9999})
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Category not found", env.Message)

	// Missing categoryId is treated the same way
	code, env = doJSON(t, app, "POST", "/category/details", fiber.Map{})
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Category not found", env.Message)
}

func TestCategoryPageDetailsSingleCategory(t *testing.T) {
	db := setupTestDB(t)
	instructor := seedUser(t, db, "INSTRUCTOR")
	cat := seedCategory(t, db, "Programming")
	seedCourse(t, db, cat.ID, instructor.ID, "Go Basics", models.CourseStatusPublished, 499)
	app := setupApp(0)

	code, env := doJSON(t, app, "POST", "/category/details", fiber.Map{"categoryId": cat.ID})

	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, env.Success)

	var details detailsView
	require.NoError(t, json.Unmarshal(env.Data, &details))
	assert.Equal(t, cat.ID, details.SelectedCategory.ID)
	assert.Nil(t, details.DifferentCategory)
}

func TestCategoryPageDetailsDifferentCategoryNeverSelected(t *testing.T) {
	db := setupTestDB(t)
	instructor := seedUser(t, db, "INSTRUCTOR")
	selected := seedCategory(t, db, "Programming")
	seedCourse(t, db, selected.ID, instructor.ID, "Go Basics", models.CourseStatusPublished, 499)
	for _, name := range []string{"Design", "Marketing", "Music"} {
		other := seedCategory(t, db, name)
		seedCourse(t, db, other.ID, instructor.ID, name+" 101", models.CourseStatusPublished, 299)
	}
	app := setupApp(0)

	for i := 0; i < 25; i++ {
		code, env := doJSON(t, app, "POST", "/category/details", fiber.Map{"categoryId": selected.ID})
		require.Equal(t, fiber.StatusOK, code)

		var details detailsView
		require.NoError(t, json.Unmarshal(env.Data, &details))
		require.NotNil(t, details.DifferentCategory)
		assert.NotEqual(t, selected.ID, details.DifferentCategory.ID)
	}
}

func TestCategoryPageDetailsPublishedCoursesOnly(t *testing.T) {
	db := setupTestDB(t)
	instructor := seedUser(t, db, "INSTRUCTOR")
	cat := seedCategory(t, db, "Programming")
	published := seedCourse(t, db, cat.ID, instructor.ID, "Go Basics", models.CourseStatusPublished, 499)
	seedCourse(t, db, cat.ID, instructor.ID, "Unfinished Draft", models.CourseStatusDraft, 499)
	require.NoError(t, db.Create(&models.RatingAndReview{
		UserID:   instructor.ID,
		CourseID: published.ID,
		Rating:   5,
		Review:   "great",
	}).Error)
	app := setupApp(0)

	code, env := doJSON(t, app, "POST", "/category/details", fiber.Map{"categoryId": cat.ID})
	require.Equal(t, fiber.StatusOK, code)

	var details detailsView
	require.NoError(t, json.Unmarshal(env.Data, &details))
	require.Len(t, details.SelectedCategory.Courses, 1)

	course := details.SelectedCategory.Courses[0]
	assert.Equal(t, "Go Basics", course.Name)
	assert.Equal(t, models.CourseStatusPublished, course.Status)
	assert.Len(t, course.RatingAndReviews, 1)

	// Instructor projection on the selected view carries the email
	assert.Equal(t, instructor.FirstName, course.Instructor.FirstName)
	assert.Equal(t, instructor.Email, course.Instructor.Email)
}

func TestCategoryPageDetailsDifferentCategoryInstructorWithoutEmail(t *testing.T) {
	db := setupTestDB(t)
	instructor := seedUser(t, db, "INSTRUCTOR")
	selected := seedCategory(t, db, "Programming")
	seedCourse(t, db, selected.ID, instructor.ID, "Go Basics", models.CourseStatusPublished, 499)
	other := seedCategory(t, db, "Design")
	seedCourse(t, db, other.ID, instructor.ID, "Design 101", models.CourseStatusPublished, 299)
	app := setupApp(0)

	code, env := doJSON(t, app, "POST", "/category/details", fiber.Map{"categoryId": selected.ID})
	require.Equal(t, fiber.StatusOK, code)

	var details detailsView
	require.NoError(t, json.Unmarshal(env.Data, &details))
	require.NotNil(t, details.DifferentCategory)
	require.Len(t, details.DifferentCategory.Courses, 1)
	assert.Empty(t, details.DifferentCategory.Courses[0].Instructor.Email)
	assert.Equal(t, instructor.FirstName, details.DifferentCategory.Courses[0].Instructor.FirstName)
}

func TestCategoryPageDetailsMostSellingCourses(t *testing.T) {
	db := setupTestDB(t)
	instructor := seedUser(t, db, "INSTRUCTOR")
	catA := seedCategory(t, db, "Programming")
	catB := seedCategory(t, db, "Design")

	// Twelve published courses spread over both categories with distinct
	// enrollment counts, so only the ten best sellers survive
	for i := 0; i < 12; i++ {
		categoryID := catA.ID
		if i%2 == 1 {
			categoryID = catB.ID
		}
		course := seedCourse(t, db, categoryID, instructor.ID, fmt.Sprintf("Course %d", i), models.CourseStatusPublished, 100)
		enrollStudents(t, db, course.ID, i)
	}
	app := setupApp(0)

	code, env := doJSON(t, app, "POST", "/category/details", fiber.Map{"categoryId": catA.ID})
	require.Equal(t, fiber.StatusOK, code)

	var details detailsView
	require.NoError(t, json.Unmarshal(env.Data, &details))
	require.Len(t, details.MostSellingCourses, 10)

	counts := make([]int, 0, len(details.MostSellingCourses))
	for _, course := range details.MostSellingCourses {
		counts = append(counts, len(course.StudentsEnrolled))
	}
	for i := 1; i < len(counts); i++ {
		assert.GreaterOrEqual(t, counts[i-1], counts[i])
	}

	// The two least-sold courses (0 and 1 students) fell off the list
	assert.Equal(t, 11, counts[0])
	assert.Equal(t, 2, counts[len(counts)-1])
}

func TestCategoryPageDetailsOrderingPair(t *testing.T) {
	db := setupTestDB(t)
	instructor := seedUser(t, db, "INSTRUCTOR")
	cat := seedCategory(t, db, "Programming")

	five := seedCourse(t, db, cat.ID, instructor.ID, "Five Students", models.CourseStatusPublished, 100)
	nine := seedCourse(t, db, cat.ID, instructor.ID, "Nine Students", models.CourseStatusPublished, 100)
	enrollStudents(t, db, five.ID, 5)
	enrollStudents(t, db, nine.ID, 9)
	app := setupApp(0)

	code, env := doJSON(t, app, "POST", "/category/details", fiber.Map{"categoryId": cat.ID})
	require.Equal(t, fiber.StatusOK, code)

	var details detailsView
	require.NoError(t, json.Unmarshal(env.Data, &details))
	require.Len(t, details.MostSellingCourses, 2)
	assert.Equal(t, "Nine Students", details.MostSellingCourses[0].Name)
	assert.Equal(t, "Five Students", details.MostSellingCourses[1].Name)
}
