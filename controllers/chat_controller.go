// controllers/chat_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Samgoldwin/hormocare/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Groq *services.GroqService
}

func NewChatController(groq *services.GroqService) *ChatController {
	return &ChatController{Groq: groq}
}

// POST /chat {message}
func (cc *ChatController) Chat(c *gin.Context) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please type your message."})
		return
	}

	reply, err := cc.Groq.Chat(body.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUpstreamTimeout):
			c.JSON(http.StatusGatewayTimeout, gin.H{"success": false, "message": "The assistant took too long to respond. Please try again."})
		case errors.Is(err, services.ErrUpstreamStatus):
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "The assistant is unavailable right now. Please try again later."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong while generating a reply."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reply": reply})
}
