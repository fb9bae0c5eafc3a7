package controllers

import (
	"net/http"
	"testing"

	"fittrack/models"
	"fittrack/services"
	"fittrack/storage/memory"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMealRouter() *gin.Engine {
	store := memory.New()
	mc := NewMealController(services.NewMealService(store, store, nil))
	r := newTestEngine()
	r.POST("/meals", mc.Create)
	r.GET("/meals", mc.List)
	r.GET("/meals/summary/today", mc.TodaySummary)
	r.GET("/meals/:id", mc.Get)
	r.DELETE("/meals/:id", mc.Delete)
	return r
}

func TestCreateMeal(t *testing.T) {
	r := newMealRouter()
	user := uuid.New()

	w := do(t, r, http.MethodPost, "/meals", user, gin.H{
		"name": "Porridge", "calories": 320, "protein": 11, "mealType": "breakfast",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	meal := decode[models.Meal](t, w)
	assert.Equal(t, user, meal.UserID)
	assert.Equal(t, "Porridge", meal.Name)
	assert.Equal(t, 11.0, meal.Protein)
	assert.Zero(t, meal.Fats)
	assert.False(t, meal.Date.IsZero())

	w = do(t, r, http.MethodGet, "/meals", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Meal](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, meal.ID, list[0].ID)
}

func TestCreateMealAcceptsZeroCalories(t *testing.T) {
	r := newMealRouter()

	w := do(t, r, http.MethodPost, "/meals", uuid.New(), gin.H{"name": "Water", "calories": 0, "mealType": "snack"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCreateMealValidation(t *testing.T) {
	r := newMealRouter()
	user := uuid.New()

	w := do(t, r, http.MethodPost, "/meals", user, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]string{
		"name":     "Meal name is required",
		"calories": "Calories is required",
		"mealType": "Meal type is required",
	}, decode[fieldErrors](t, w).messages())

	w = do(t, r, http.MethodPost, "/meals", user, `{"name":"Cake","calories":"lots","mealType":"snack"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "calories must be a number", decode[fieldErrors](t, w).messages()["calories"])

	w = do(t, r, http.MethodPost, "/meals", user, gin.H{"name": "Cake", "calories": 400, "mealType": "brunch"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[fieldErrors](t, w).messages(), "mealType")

	w = do(t, r, http.MethodPost, "/meals", user, gin.H{"name": "Cake", "calories": 400, "mealType": "snack", "date": "yesterday"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[fieldErrors](t, w).messages(), "date")

	w = do(t, r, http.MethodPost, "/meals", user, `{"name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[fieldErrors](t, w).messages(), "body")

	w = do(t, r, http.MethodGet, "/meals", user, nil)
	assert.Empty(t, decode[[]models.Meal](t, w), "nothing persisted on validation failure")
}

func TestMealOwnershipResponses(t *testing.T) {
	r := newMealRouter()
	owner, other := uuid.New(), uuid.New()

	w := do(t, r, http.MethodPost, "/meals", owner, gin.H{"name": "Rice", "calories": 200, "mealType": "dinner"})
	require.Equal(t, http.StatusOK, w.Code)
	meal := decode[models.Meal](t, w)
	path := "/meals/" + meal.ID.String()

	w = do(t, r, http.MethodGet, path, other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Not authorized"}`, w.Body.String())

	w = do(t, r, http.MethodDelete, path, other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodGet, "/meals/"+uuid.NewString(), owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Meal not found"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/meals/not-a-valid-id", owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, path, owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodDelete, path, owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"Meal removed"}`, w.Body.String())

	w = do(t, r, http.MethodGet, path, owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type mealSummaryBody struct {
	TotalCalories float64                  `json:"totalCalories"`
	TotalCarbs    float64                  `json:"totalCarbs"`
	MealsByType   map[string][]models.Meal `json:"mealsByType"`
}

func TestMealSummaryShape(t *testing.T) {
	r := newMealRouter()
	user := uuid.New()

	w := do(t, r, http.MethodPost, "/meals", user, gin.H{"name": "Toast", "calories": 150, "carbs": 20, "mealType": "breakfast"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/meals/summary/today", user, nil)
	require.Equal(t, http.StatusOK, w.Code)

	sum := decode[mealSummaryBody](t, w)
	assert.Equal(t, 150.0, sum.TotalCalories)
	assert.Equal(t, 20.0, sum.TotalCarbs)
	assert.Len(t, sum.MealsByType, 4)
	assert.Len(t, sum.MealsByType["breakfast"], 1)
	assert.Empty(t, sum.MealsByType["lunch"])
}

func TestMealRoutesRequireCaller(t *testing.T) {
	r := newMealRouter()

	w := do(t, r, http.MethodGet, "/meals", uuid.Nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
