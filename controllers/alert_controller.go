// controllers/alert_controller.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/Samgoldwin/hormocare/config"
	"github.com/Samgoldwin/hormocare/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type AlertController struct {
	Hub *services.RealtimeHub
}

func NewAlertController(hub *services.RealtimeHub) *AlertController {
	return &AlertController{Hub: hub}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// GET /alerts
func (ac *AlertController) ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	alerts, err := services.ListAlerts(config.DB, uid, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "alerts": alerts})
}

// GET /ws/alerts
// Upgrades the request and parks the connection on the hub until the
// client goes away. Pings every 30s keep intermediaries from cutting
// idle sockets.
func (ac *AlertController) AlertsWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := &services.WSClient{UserID: uid, Conn: conn}
	ac.Hub.Register(client)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			ac.Hub.Unregister(client)
			return
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				ac.Hub.Unregister(client)
				return
			}
		}
	}
}
