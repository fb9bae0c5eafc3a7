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

func newExerciseRouter() *gin.Engine {
	ec := NewExerciseController(services.NewExerciseService(memory.New()))
	r := newTestEngine()
	r.POST("/exercises", ec.Create)
	r.GET("/exercises", ec.List)
	r.GET("/exercises/summary/today", ec.TodaySummary)
	r.GET("/exercises/:id", ec.Get)
	r.DELETE("/exercises/:id", ec.Delete)
	return r
}

func TestExerciseEndpoints(t *testing.T) {
	r := newExerciseRouter()
	user := uuid.New()

	w := do(t, r, http.MethodPost, "/exercises", user, gin.H{"name": "Plank", "duration": 5, "caloriesBurned": 25, "exerciseType": "strength"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ex := decode[models.Exercise](t, w)
	assert.Equal(t, user, ex.UserID)

	w = do(t, r, http.MethodGet, "/exercises/"+ex.ID.String(), user, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/exercises/"+ex.ID.String(), uuid.New(), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodGet, "/exercises/42", user, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Exercise not found"}`, w.Body.String())

	w = do(t, r, http.MethodDelete, "/exercises/"+ex.ID.String(), user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"Exercise removed"}`, w.Body.String())
}

func TestCreateExerciseValidation(t *testing.T) {
	r := newExerciseRouter()

	w := do(t, r, http.MethodPost, "/exercises", uuid.New(), gin.H{"name": "Walk"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]string{
		"duration":       "Duration is required",
		"caloriesBurned": "Calories burned is required",
		"exerciseType":   "Exercise type is required",
	}, decode[fieldErrors](t, w).messages())
}
