// controllers/device_controller.go
package controllers

import (
	"net/http"

	"github.com/Samgoldwin/hormocare/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Push *services.PushService
}

func NewDeviceController(push *services.PushService) *DeviceController {
	return &DeviceController{Push: push}
}

type deviceInput struct {
	Platform string `json:"platform" binding:"required"`
	Token    string `json:"token" binding:"required"`
}

// POST /devices/register
func (dc *DeviceController) Register(c *gin.Context) {
	uid := c.GetUint("userID")

	var body deviceInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Platform and token required"})
		return
	}

	if dc.Push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Push notifications are not configured"})
		return
	}

	dev, err := dc.Push.RegisterDevice(uid, body.Platform, body.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "device_id": dev.ID})
}
