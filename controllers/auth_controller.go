package controllers

import (
	"errors"
	"net/http"

	"github.com/Samgoldwin/hormocare/services"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required"`
	FullName      string   `json:"full_name"`
	Allergies     []string `json:"allergies"`
	ExerciseTypes []string `json:"exercise_type"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password required"})
		return
	}

	token, err := services.RegisterUser(services.RegisterInput{
		Email:         input.Email,
		Password:      input.Password,
		FullName:      input.FullName,
		Allergies:     input.Allergies,
		ExerciseTypes: input.ExerciseTypes,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password required"})
		return
	}

	token, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email required"})
		return
	}

	// Always report success so the endpoint can't be used to probe
	// which emails exist.
	_ = services.StartPasswordReset(input.Email)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "If the email exists, a reset code has been sent"})
}

func ResetPassword(c *gin.Context) {
	var input struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input"})
		return
	}

	if err := services.CompletePasswordReset(input.Token, input.NewPassword); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "password reset failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password has been reset"})
}
