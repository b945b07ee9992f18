package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Samgoldwin/hormocare/config"
	"github.com/Samgoldwin/hormocare/models"
	"github.com/Samgoldwin/hormocare/utils"

	"gorm.io/gorm"
)

type RegisterInput struct {
	Email         string
	Password      string
	FullName      string
	Allergies     []string
	ExerciseTypes []string
}

// RegisterUser creates an account with a bcrypt-hashed password and
// returns a login token. Allergy and exercise preferences are stored
// as declared; dark mode starts off.
func RegisterUser(in RegisterInput) (string, error) {
	if in.Email == "" {
		return "", fmt.Errorf("%w: email required", ErrInvalidInput)
	}
	if in.Password == "" {
		return "", fmt.Errorf("%w: password required", ErrInvalidInput)
	}

	var existing models.User
	if err := config.DB.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return "", fmt.Errorf("%w: email already exists", ErrInvalidInput)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return "", err
	}

	user := models.User{
		Email:         in.Email,
		Password:      hashed,
		FullName:      in.FullName,
		Allergies:     in.Allergies,
		ExerciseTypes: in.ExerciseTypes,
		DarkMode:      false,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return "", err
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

// AuthenticateUser checks credentials and mints a JWT.
func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return "", errors.New("invalid credentials")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid credentials")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

// StartPasswordReset stores a short-lived reset code and mails it.
// Unknown emails report success to the caller to avoid account probing.
func StartPasswordReset(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, token)
}

// CompletePasswordReset swaps the password if the code is current.
func CompletePasswordReset(token, newPassword string) error {
	if token == "" || newPassword == "" {
		return fmt.Errorf("%w: token and new password required", ErrInvalidInput)
	}

	var user models.User
	result := config.DB.Where("reset_token = ?", token).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: invalid or expired token", ErrInvalidInput)
		}
		return result.Error
	}
	if time.Now().After(user.ResetTokenExp) {
		return fmt.Errorf("%w: invalid or expired token", ErrInvalidInput)
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
