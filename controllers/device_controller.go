package controllers

import (
	"net/http"

	"fittrack/models"
	"fittrack/services"

	"github.com/gin-gonic/gin"
)

type registerDeviceRequest struct {
	Platform models.Platform `json:"platform" binding:"required,enum" msg:"Platform is required"`
	Token    string          `json:"token" binding:"required" msg:"Device token is required"`
}

type toggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required" msg:"Enabled flag is required"`
}

type DeviceController struct {
	Push *services.PushService
}

func NewDeviceController(ps *services.PushService) *DeviceController {
	return &DeviceController{Push: ps}
}

// POST /api/users/devices
func (dc *DeviceController) Register(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var req registerDeviceRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Device")
		return
	}
	dev, err := dc.Push.RegisterDevice(c.Request.Context(), uid, req.Platform, req.Token)
	if err != nil {
		respondError(c, err, "Device")
		return
	}
	c.JSON(http.StatusOK, dev)
}

// PUT /api/users/notifications
func (dc *DeviceController) ToggleNotifications(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var req toggleRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Device")
		return
	}
	if err := dc.Push.SetNotifications(c.Request.Context(), uid, *req.Enabled); err != nil {
		respondError(c, err, "Device")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": *req.Enabled,
	})
}
