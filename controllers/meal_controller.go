package controllers

import (
	"net/http"

	"fittrack/models"
	"fittrack/services"

	"github.com/gin-gonic/gin"
)

type mealRequest struct {
	Name     string          `json:"name" binding:"required" msg:"Meal name is required"`
	Calories *float64        `json:"calories" binding:"required" msg:"Calories is required"`
	Protein  float64         `json:"protein"`
	Carbs    float64         `json:"carbs"`
	Fats     float64         `json:"fats"`
	MealType models.MealType `json:"mealType" binding:"required,enum" msg:"Meal type is required"`
	Date     string          `json:"date"`
}

type MealController struct {
	Meals *services.MealService
}

func NewMealController(ms *services.MealService) *MealController {
	return &MealController{Meals: ms}
}

// POST /api/meals
func (mc *MealController) Create(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var req mealRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Meal")
		return
	}
	date, err := optionalDate("date", req.Date)
	if err != nil {
		respondError(c, err, "Meal")
		return
	}

	meal, err := mc.Meals.Create(c.Request.Context(), uid, services.MealInput{
		Name:     req.Name,
		Calories: *req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
		MealType: req.MealType,
		Date:     date,
	})
	if err != nil {
		respondError(c, err, "Meal")
		return
	}
	c.JSON(http.StatusOK, meal)
}

// GET /api/meals
func (mc *MealController) List(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	meals, err := mc.Meals.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, "Meal")
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GET /api/meals/:id
func (mc *MealController) Get(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	meal, err := mc.Meals.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, err, "Meal")
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DELETE /api/meals/:id
func (mc *MealController) Delete(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	if err := mc.Meals.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		respondError(c, err, "Meal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Meal removed"})
}

// GET /api/meals/summary/today
func (mc *MealController) TodaySummary(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	sum, err := mc.Meals.Summary(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, "Meal")
		return
	}
	c.JSON(http.StatusOK, sum)
}
