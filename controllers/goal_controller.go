package controllers

import (
	"net/http"

	"fittrack/models"
	"fittrack/services"

	"github.com/gin-gonic/gin"
)

type goalRequest struct {
	GoalType  models.GoalType `json:"goalType" binding:"required,enum" msg:"Goal type is required"`
	Target    *float64        `json:"target" binding:"required" msg:"Target is required"`
	EndDate   string          `json:"endDate" binding:"required" msg:"End date is required"`
}

// goalPatch distinguishes absent fields (nil) from zero values.
type goalPatch struct {
	Current     *float64 `json:"current"`
	IsCompleted *bool    `json:"isCompleted"`
}

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(gs *services.GoalService) *GoalController {
	return &GoalController{Goals: gs}
}

func (gc *GoalController) Create(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var req goalRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Goal")
		return
	}
	end, err := parseDate("endDate", req.EndDate)
	if err != nil {
		respondError(c, err, "Goal")
		return
	}

	goal, err := gc.Goals.Create(c.Request.Context(), uid, services.GoalInput{
		GoalType: req.GoalType,
		Target:   *req.Target,
		EndDate:  end,
	})
	if err != nil {
		respondError(c, err, "Goal")
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (gc *GoalController) List(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	goals, err := gc.Goals.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, "Goal")
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (gc *GoalController) Get(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	goal, err := gc.Goals.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, err, "Goal")
		return
	}
	c.JSON(http.StatusOK, goal)
}

// PUT /api/goals/:id
// The goal is resolved before the body so unknown and foreign ids answer
// 404/403 whatever the payload.
func (gc *GoalController) Update(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	if _, err := gc.Goals.Get(c.Request.Context(), uid, c.Param("id")); err != nil {
		respondError(c, err, "Goal")
		return
	}
	var req goalPatch
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Goal")
		return
	}
	goal, err := gc.Goals.Update(c.Request.Context(), uid, c.Param("id"), services.GoalUpdate{
		Current:     req.Current,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		respondError(c, err, "Goal")
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (gc *GoalController) Delete(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	if err := gc.Goals.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		respondError(c, err, "Goal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Goal removed"})
}

// GET /api/goals/progress
func (gc *GoalController) Progress(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	progress, err := gc.Goals.Progress(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, "Goal")
		return
	}
	c.JSON(http.StatusOK, progress)
}
