package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/RidgwayA/cal-tracker/config"
	"github.com/RidgwayA/cal-tracker/models"
	"github.com/RidgwayA/cal-tracker/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	return SetupRouter(services.NewRealtimeHub())
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerAndLogin returns the bearer token and user id for a fresh account.
func registerAndLogin(t *testing.T, r *gin.Engine, email string) (string, uint) {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/auth/register", "", gin.H{
		"name":          "Test",
		"email":         email,
		"password":      "secret123",
		"date_of_birth": "1990-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, "POST", "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token, out.User.ID
}

func TestHealth(t *testing.T) {
	r := setupAPI(t)
	w := doJSON(t, r, "GET", "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRegisterValidation(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, "POST", "/api/auth/register", "", gin.H{"email": "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/api/auth/register", "", gin.H{
		"name": "T", "email": "x@example.com", "password": "p", "date_of_birth": "not-a-date",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupAPI(t)
	registerAndLogin(t, r, "dup@example.com")

	w := doJSON(t, r, "POST", "/api/auth/register", "", gin.H{
		"name": "Again", "email": "dup@example.com", "password": "p2", "date_of_birth": "1991-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestLoginBadCredentials(t *testing.T) {
	r := setupAPI(t)
	registerAndLogin(t, r, "u@example.com")

	wrong := doJSON(t, r, "POST", "/api/auth/login", "", gin.H{"email": "u@example.com", "password": "bad"})
	unknown := doJSON(t, r, "POST", "/api/auth/login", "", gin.H{"email": "no@example.com", "password": "bad"})
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupAPI(t)

	for _, route := range []struct{ method, path string }{
		{"GET", "/api/users/1"},
		{"PUT", "/api/users/1/preferences"},
		{"GET", "/api/meals/1/2024-01-01"},
		{"POST", "/api/meals"},
		{"DELETE", "/api/meals/1"},
		{"POST", "/api/foods/1"},
		{"GET", "/api/foods/1"},
		{"PUT", "/api/foods/1"},
		{"DELETE", "/api/foods/1"},
	} {
		w := doJSON(t, r, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)

		w = doJSON(t, r, route.method, route.path, "garbage-token", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s with bad token", route.method, route.path)
	}
}

func TestMealFoodFlow(t *testing.T) {
	r := setupAPI(t)
	token, userID := registerAndLogin(t, r, "flow@example.com")

	// Create a meal on an explicit date.
	w := doJSON(t, r, "POST", "/api/meals", token, gin.H{
		"user_id": userID, "meal_name": "Breakfast", "date": "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var meal models.Meal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meal))
	assert.Equal(t, 0, meal.TotalCalories)

	// Add two foods.
	w = doJSON(t, r, "POST", fmt.Sprintf("/api/foods/%d", meal.ID), token, gin.H{
		"name": "Oats", "calories": 300, "protein": 10, "carbs": 50, "fat": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var oats models.Food
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &oats))

	w = doJSON(t, r, "POST", fmt.Sprintf("/api/foods/%d", meal.ID), token, gin.H{
		"name": "Banana", "calories": 200,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var banana models.Food
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &banana))

	// Day listing carries foods and the reconciled total.
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/meals/%d/2024-01-01", userID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var meals []models.Meal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meals))
	require.Len(t, meals, 1)
	assert.Equal(t, 500, meals[0].TotalCalories)
	assert.Len(t, meals[0].Foods, 2)

	// Update then delete.
	w = doJSON(t, r, "PUT", fmt.Sprintf("/api/foods/%d", oats.ID), token, gin.H{
		"name": "Oats", "calories": 100, "protein": 10, "carbs": 50, "fat": 5,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/foods/%d", banana.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", fmt.Sprintf("/api/meals/%d/2024-01-01", userID), token, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meals))
	require.Len(t, meals, 1)
	assert.Equal(t, 100, meals[0].TotalCalories)

	// Summary agrees.
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/users/%d/summary/2024-01-01", userID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sum services.DailySummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Equal(t, 100, sum.Consumed)

	// Delete the meal; a repeat delete is a 404.
	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/meals/%d", meal.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/meals/%d", meal.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Empty day is an empty array, not an error.
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/meals/%d/2024-01-02", userID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCrossUserAccessHidden(t *testing.T) {
	r := setupAPI(t)
	ownerToken, ownerID := registerAndLogin(t, r, "owner@example.com")
	otherToken, _ := registerAndLogin(t, r, "other@example.com")

	w := doJSON(t, r, "POST", "/api/meals", ownerToken, gin.H{
		"user_id": ownerID, "meal_name": "Lunch", "date": "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var meal models.Meal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meal))

	// Someone else's meal behaves as nonexistent.
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/foods/%d", meal.ID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/meals/%d", meal.ID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Someone else's profile too.
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/users/%d", ownerID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Listing another user's day is hidden as well.
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/meals/%d/2024-01-01", ownerID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Creating a meal under someone else's user_id is refused.
	w = doJSON(t, r, "POST", "/api/meals", otherToken, gin.H{
		"user_id": ownerID, "meal_name": "Sneaky", "date": "2024-01-01",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPreferencesEndpoint(t *testing.T) {
	r := setupAPI(t)
	token, userID := registerAndLogin(t, r, "prefs@example.com")

	// Empty body: nothing to update.
	w := doJSON(t, r, "PUT", fmt.Sprintf("/api/users/%d/preferences", userID), token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "PUT", fmt.Sprintf("/api/users/%d/preferences", userID), token, gin.H{
		"daily_calorie_goal": 1600,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")

	w = doJSON(t, r, "GET", fmt.Sprintf("/api/users/%d", userID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var u models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.Equal(t, 1600, u.DailyCalorieGoal)
	assert.Equal(t, "Test", u.Name)
	assert.NotContains(t, w.Body.String(), "password")
}
