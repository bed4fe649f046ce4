package accountController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	accountRoutes "lms/routers/accountRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
	accountRoutes.SetupAccountRoutes(app)
	return app
}

func createAccount(t *testing.T, username, email, password string, superuser bool) models.Account {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
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

func TestRegisterSuccess(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/accounts", "", fiber.Map{
		"username":     "student1",
		"email":        "student1@example.com",
		"password":     "secret123",
		"is_superuser": false,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, "student1", body["username"])
	assert.Equal(t, "student1@example.com", body["email"])
	assert.Equal(t, false, body["is_superuser"])
	assert.NotEmpty(t, body["id"])
	// Credential is never exposed on read
	_, leaked := body["password"]
	assert.False(t, leaked)
}

func TestRegisterMissingFields(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/accounts", "", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeMap(t, resp)
	for _, field := range []string{"username", "email", "password"} {
		assert.Contains(t, body, field)
	}
}

func TestRegisterReportsBothDuplicatesTogether(t *testing.T) {
	app := setupApp(t)
	createAccount(t, "taken", "taken@example.com", "secret123", false)

	resp := doJSON(t, app, "POST", "/api/accounts", "", fiber.Map{
		"username": "taken",
		"email":    "taken@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Contains(t, body, "username")
	assert.Contains(t, body, "email")

	// No second row was created
	var count int64
	database.Database.Db.Model(&models.Account{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLoginSuccessReturnsTokenPair(t *testing.T) {
	app := setupApp(t)
	createAccount(t, "admin", "admin@example.com", "secret123", true)

	resp := doJSON(t, app, "POST", "/api/login", "", fiber.Map{
		"username": "admin",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.NotEmpty(t, body["access"])
	assert.NotEmpty(t, body["refresh"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)
	createAccount(t, "admin", "admin@example.com", "secret123", true)

	resp := doJSON(t, app, "POST", "/api/login", "", fiber.Map{
		"username": "admin",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, "No active account found with the given credentials", body["detail"])
}

func TestLoginMissingFields(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/login", "", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Contains(t, body, "username")
	assert.Contains(t, body, "password")
}

func TestRefreshToken(t *testing.T) {
	app := setupApp(t)
	account := createAccount(t, "admin", "admin@example.com", "secret123", true)

	pair, err := middleware.GenerateTokenPair(account)
	require.NoError(t, err)

	resp := doJSON(t, app, "POST", "/api/login/refresh", "", fiber.Map{"refresh": pair.Refresh})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.NotEmpty(t, body["access"])

	// An access token is not accepted as refresh
	resp = doJSON(t, app, "POST", "/api/login/refresh", "", fiber.Map{"refresh": pair.Access})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestListAccountsSuperuserOnly(t *testing.T) {
	app := setupApp(t)
	admin := createAccount(t, "admin", "admin@example.com", "secret123", true)
	student := createAccount(t, "student", "student@example.com", "secret123", false)

	resp := doJSON(t, app, "GET", "/api/accounts", accessToken(t, student), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/accounts", accessToken(t, admin), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var accounts []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&accounts))
	assert.Len(t, accounts, 2)
	for _, acc := range accounts {
		_, leaked := acc["password"]
		assert.False(t, leaked)
	}
}

func TestDeleteAccountNullsInstructorAndCascadesEnrollments(t *testing.T) {
	app := setupApp(t)
	admin := createAccount(t, "admin", "admin@example.com", "secret123", true)
	instructor := createAccount(t, "teacher", "teacher@example.com", "secret123", true)

	course := models.Course{Name: "Go Basics", InstructorID: &instructor.ID}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	enrollment := models.StudentCourse{StudentID: instructor.ID, CourseID: course.ID}
	require.NoError(t, database.Database.Db.Create(&enrollment).Error)

	resp := doJSON(t, app, "DELETE", "/api/accounts/"+instructor.ID.String(), accessToken(t, admin), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var reloaded models.Course
	require.NoError(t, database.Database.Db.Where("id = ?", course.ID).First(&reloaded).Error)
	assert.Nil(t, reloaded.InstructorID)

	var enrollments int64
	database.Database.Db.Model(&models.StudentCourse{}).Where("student_id = ?", instructor.ID).Count(&enrollments)
	assert.EqualValues(t, 0, enrollments)
}

func TestDeleteAccountForbiddenForStudents(t *testing.T) {
	app := setupApp(t)
	student := createAccount(t, "student", "student@example.com", "secret123", false)
	other := createAccount(t, "other", "other@example.com", "secret123", false)

	resp := doJSON(t, app, "DELETE", "/api/accounts/"+other.ID.String(), accessToken(t, student), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
