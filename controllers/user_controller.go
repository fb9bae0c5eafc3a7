package controllers

import (
	"net/http"

	"fittrack/models"
	"fittrack/services"

	"github.com/gin-gonic/gin"
)

type profileRequest struct {
	Name             *string             `json:"name"`
	Age              *int                `json:"age" binding:"omitempty,gte=0"`
	Weight           *float64            `json:"weight" binding:"omitempty,gte=0"`
	Height           *float64            `json:"height" binding:"omitempty,gte=0"`
	Gender           *models.Gender      `json:"gender" binding:"omitempty,enum"`
	FitnessGoal      *models.FitnessGoal `json:"fitnessGoal" binding:"omitempty,enum"`
	DailyCalorieGoal *float64            `json:"dailyCalorieGoal" binding:"omitempty,gte=0"`
	ProfilePicture   string              `json:"profilePicture"`
}

type UserController struct {
	Users *services.UserService
}

func NewUserController(us *services.UserService) *UserController {
	return &UserController{Users: us}
}

// PUT /api/users/profile
func (uc *UserController) UpdateProfile(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var req profileRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "User")
		return
	}
	profile, err := uc.Users.UpdateProfile(c.Request.Context(), uid, services.ProfileInput{
		Name:             req.Name,
		Age:              req.Age,
		Weight:           req.Weight,
		Height:           req.Height,
		Gender:           req.Gender,
		FitnessGoal:      req.FitnessGoal,
		DailyCalorieGoal: req.DailyCalorieGoal,
		ProfilePicture:   req.ProfilePicture,
	})
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, profile)
}
