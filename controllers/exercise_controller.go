package controllers

import (
	"net/http"

	"fittrack/models"
	"fittrack/services"

	"github.com/gin-gonic/gin"
)

type exerciseRequest struct {
	Name           string              `json:"name" binding:"required" msg:"Exercise name is required"`
	Duration       *float64            `json:"duration" binding:"required" msg:"Duration is required"`
	CaloriesBurned *float64            `json:"caloriesBurned" binding:"required" msg:"Calories burned is required"`
	ExerciseType   models.ExerciseType `json:"exerciseType" binding:"required,enum" msg:"Exercise type is required"`
	Date           string              `json:"date"`
}

type ExerciseController struct {
	Exercises *services.ExerciseService
}

func NewExerciseController(es *services.ExerciseService) *ExerciseController {
	return &ExerciseController{Exercises: es}
}

func (ec *ExerciseController) Create(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var req exerciseRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Exercise")
		return
	}
	date, err := optionalDate("date", req.Date)
	if err != nil {
		respondError(c, err, "Exercise")
		return
	}

	ex, err := ec.Exercises.Create(c.Request.Context(), uid, services.ExerciseInput{
		Name:           req.Name,
		Duration:       *req.Duration,
		CaloriesBurned: *req.CaloriesBurned,
		ExerciseType:   req.ExerciseType,
		Date:           date,
	})
	if err != nil {
		respondError(c, err, "Exercise")
		return
	}
	c.JSON(http.StatusOK, ex)
}

func (ec *ExerciseController) List(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	out, err := ec.Exercises.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, "Exercise")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (ec *ExerciseController) Get(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	ex, err := ec.Exercises.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, err, "Exercise")
		return
	}
	c.JSON(http.StatusOK, ex)
}

func (ec *ExerciseController) Delete(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	if err := ec.Exercises.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		respondError(c, err, "Exercise")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Exercise removed"})
}

func (ec *ExerciseController) TodaySummary(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	sum, err := ec.Exercises.Summary(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, "Exercise")
		return
	}
	c.JSON(http.StatusOK, sum)
}
