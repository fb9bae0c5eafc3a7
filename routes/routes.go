package routes

import (
	"net/http"

	"fittrack/controllers"
	"fittrack/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps is everything the router needs. Metrics and Limiter are optional.
type Deps struct {
	Tokens      middlewares.TokenVerifier
	CORSOrigins []string
	Metrics     *middlewares.Metrics
	Limiter     *middlewares.RateLimiter

	Auth      *controllers.AuthController
	Users     *controllers.UserController
	Meals     *controllers.MealController
	Exercises *controllers.ExerciseController
	Goals     *controllers.GoalController
	Alerts    *controllers.AlertController
	Devices   *controllers.DeviceController
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(), cors.New(corsConfig(d.CORSOrigins)))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	var limit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if d.Limiter != nil {
		limit = d.Limiter.Middleware()
	}
	authed := middlewares.AuthMiddleware(d.Tokens)

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", limit, d.Auth.Register)
		auth.POST("/login", limit, d.Auth.Login)
		auth.GET("/me", authed, limit, d.Auth.Me)
	}

	users := api.Group("/users", authed, limit)
	{
		users.PUT("/profile", d.Users.UpdateProfile)
		users.POST("/devices", d.Devices.Register)
		users.PUT("/notifications", d.Devices.ToggleNotifications)
	}

	meals := api.Group("/meals", authed, limit)
	{
		meals.POST("", d.Meals.Create)
		meals.GET("", d.Meals.List)
		meals.GET("/summary/today", d.Meals.TodaySummary)
		meals.GET("/:id", d.Meals.Get)
		meals.DELETE("/:id", d.Meals.Delete)
	}

	exercises := api.Group("/exercises", authed, limit)
	{
		exercises.POST("", d.Exercises.Create)
		exercises.GET("", d.Exercises.List)
		exercises.GET("/summary/today", d.Exercises.TodaySummary)
		exercises.GET("/:id", d.Exercises.Get)
		exercises.DELETE("/:id", d.Exercises.Delete)
	}

	goals := api.Group("/goals", authed, limit)
	{
		goals.POST("", d.Goals.Create)
		goals.GET("", d.Goals.List)
		goals.GET("/progress", d.Goals.Progress)
		goals.GET("/:id", d.Goals.Get)
		goals.PUT("/:id", d.Goals.Update)
		goals.DELETE("/:id", d.Goals.Delete)
	}

	alerts := api.Group("/alerts", authed)
	{
		alerts.GET("", limit, d.Alerts.List)
		alerts.GET("/ws", d.Alerts.Stream)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
