package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseRoutes "lms/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:             "test-secret",
		SaltRound:          bcrypt.MinCost,
		AccessTokenMinutes: 30,
		RefreshTokenHours:  24,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Account{}, &models.Course{}, &models.Content{}, &models.StudentCourse{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func createAccount(t *testing.T, username, email string, superuser bool) models.Account {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	account := models.Account{
		Username:    username,
		Email:       email,
		Password:    string(hash),
		IsSuperuser: superuser,
	}
	require.NoError(t, database.Database.Db.Create(&account).Error)
	return account
}

func createCourse(t *testing.T, name string) models.Course {
	t.Helper()

	start, _ := time.Parse("2006-01-02", "2023-08-28")
	end, _ := time.Parse("2006-01-02", "2023-10-28")

	course := models.Course{
		Name:      name,
		StartDate: datatypes.Date(start),
		EndDate:   datatypes.Date(end),
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func createContent(t *testing.T, course models.Course, name string) models.Content {
	t.Helper()

	content := models.Content{
		Name:     name,
		Content:  "lesson body",
		CourseID: course.ID,
	}
	require.NoError(t, database.Database.Db.Create(&content).Error)
	return content
}

func enroll(t *testing.T, student models.Account, course models.Course) models.StudentCourse {
	t.Helper()

	enrollment := models.StudentCourse{StudentID: student.ID, CourseID: course.ID}
	require.NoError(t, database.Database.Db.Create(&enrollment).Error)
	return enrollment
}

func accessToken(t *testing.T, account models.Account) string {
	t.Helper()
	pair, err := middleware.GenerateTokenPair(account)
	require.NoError(t, err)
	return pair.Access
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body := make(map[string]interface{})
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
