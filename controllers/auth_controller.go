package controllers

import (
	"net/http"

	"fittrack/models"
	"fittrack/services"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name             string             `json:"name" binding:"required" msg:"Name is required"`
	Email            string             `json:"email" binding:"required,email" msg:"Please include a valid email"`
	Password         string             `json:"password" binding:"required,min=6" msg:"Please enter a password with 6 or more characters"`
	Age              *int               `json:"age" binding:"omitempty,gte=0"`
	Weight           *float64           `json:"weight" binding:"omitempty,gte=0"`
	Height           *float64           `json:"height" binding:"omitempty,gte=0"`
	Gender           models.Gender      `json:"gender" binding:"omitempty,enum"`
	FitnessGoal      models.FitnessGoal `json:"fitnessGoal" binding:"omitempty,enum"`
	DailyCalorieGoal *float64           `json:"dailyCalorieGoal" binding:"omitempty,gte=0"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" binding:"required" msg:"Password is required"`
}

type AuthController struct {
	Auth  *services.AuthService
	Users *services.UserService
}

func NewAuthController(as *services.AuthService, us *services.UserService) *AuthController {
	return &AuthController{Auth: as, Users: us}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "User")
		return
	}
	sess, err := ac.Auth.Register(c.Request.Context(), services.RegisterInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Age:              req.Age,
		Weight:           req.Weight,
		Height:           req.Height,
		Gender:           req.Gender,
		FitnessGoal:      req.FitnessGoal,
		DailyCalorieGoal: req.DailyCalorieGoal,
	})
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, sess)
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "User")
		return
	}
	sess, err := ac.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, sess)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	profile, err := ac.Users.Profile(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, profile)
}
