package services

import (
	"errors"
	"fmt"

	"github.com/Samgoldwin/hormocare/config"
	"github.com/Samgoldwin/hormocare/models"
	"github.com/Samgoldwin/hormocare/utils"
)

// ProfileInput declares every updatable profile field explicitly.
// Pointer fields distinguish "absent" from "zero": only fields present
// in the payload are written, matching the original field-list update.
type ProfileInput struct {
	FullName       *string   `json:"full_name"`
	Age            *int      `json:"age"`
	Weight         *float64  `json:"weight"`
	Height         *float64  `json:"height"`
	BloodGroup     *string   `json:"blood_group"`
	PulseRate      *float64  `json:"pulse_rate"`
	Hip            *float64  `json:"hip"`
	Waist          *float64  `json:"waist"`
	CycleLength    *int      `json:"cycle_length"`
	CycleMonths    *int      `json:"cycle_months"`
	LastPeriodDate *string   `json:"last_period_date"`
	MarriageStatus *string   `json:"marriage_status"`
	BasicHistory   *string   `json:"basic_history"`
	PCOS           *bool     `json:"pcos"`
	Pregnant       *bool     `json:"pregnant"`
	Abortions      *int      `json:"abortions"`
	Bloated        *bool     `json:"bloated"`
	FacialHair     *bool     `json:"facial_hair"`
	ChestHair      *bool     `json:"chest_hair"`
	Obesity        *bool     `json:"obesity"`
	MoodSwings     *bool     `json:"mood_swings"`
	Stress         *bool     `json:"stress"`
	IrregularSleep *bool     `json:"irregular_sleep"`
	WeightGain     *bool     `json:"weight_gain"`
	HairGrowth     *bool     `json:"hair_growth"`
	SkinDarkening  *bool     `json:"skin_darkening"`
	HairLoss       *bool     `json:"hair_loss"`
	Pimples        *bool     `json:"pimples"`
	FastFood       *bool     `json:"fast_food"`
	RegExercise    *bool     `json:"reg_exercise"`
	TargetCalories *float64  `json:"daily_calorie_goal"`
	StepGoal       *float64  `json:"step_goal"`
	ActivityGoal   *float64  `json:"activity_goal"`
	Allergies      *[]string `json:"allergies"`
	ExerciseTypes  *[]string `json:"exercise_type"`
	ProfilePicture *string   `json:"profile_picture"` // base64 data URL
	DarkMode       *bool     `json:"dark_mode"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"id":               user.ID,
		"email":            user.Email,
		"full_name":        user.FullName,
		"age":              user.Age,
		"weight":           user.Weight,
		"height":           user.Height,
		"bmi":              user.BMI,
		"blood_group":      user.BloodGroup,
		"pulse_rate":       user.PulseRate,
		"hip":              user.Hip,
		"waist":            user.Waist,
		"whratio":          user.WHRatio,
		"cycle_length":     user.CycleLength,
		"cycle_months":     user.CycleMonths,
		"last_period_date": user.LastPeriodDate,
		"marriage_status":  user.MarriageStatus,
		"basic_history":    user.BasicHistory,
		"allergies":        user.Allergies,
		"exercise_type":    user.ExerciseTypes,
		"target_calories":  user.TargetCalories,
		"step_goal":        user.StepGoal,
		"activity_goal":    user.ActivityGoal,
		"dark_mode":        user.DarkMode,
		"profile_picture":  user.ProfilePicture,
	}, nil
}

// UpdateUserProfile applies the present fields, uploads a new profile
// picture if one arrived, and recomputes derived metrics (BMI,
// waist/hip ratio) when their inputs are available.
func UpdateUserProfile(userID uint, in ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Age != nil {
		user.Age = *in.Age
	}
	if in.Weight != nil {
		user.Weight = *in.Weight
	}
	if in.Height != nil {
		user.Height = *in.Height
	}
	if in.BloodGroup != nil {
		user.BloodGroup = *in.BloodGroup
	}
	if in.PulseRate != nil {
		user.PulseRate = *in.PulseRate
	}
	if in.Hip != nil {
		user.Hip = *in.Hip
	}
	if in.Waist != nil {
		user.Waist = *in.Waist
	}
	if in.CycleLength != nil {
		user.CycleLength = *in.CycleLength
	}
	if in.CycleMonths != nil {
		user.CycleMonths = *in.CycleMonths
	}
	if in.LastPeriodDate != nil {
		user.LastPeriodDate = *in.LastPeriodDate
	}
	if in.MarriageStatus != nil {
		user.MarriageStatus = *in.MarriageStatus
	}
	if in.BasicHistory != nil {
		user.BasicHistory = *in.BasicHistory
	}
	if in.PCOS != nil {
		user.PCOS = *in.PCOS
	}
	if in.Pregnant != nil {
		user.Pregnant = *in.Pregnant
	}
	if in.Abortions != nil {
		user.Abortions = *in.Abortions
	}
	if in.Bloated != nil {
		user.Bloated = *in.Bloated
	}
	if in.FacialHair != nil {
		user.FacialHair = *in.FacialHair
	}
	if in.ChestHair != nil {
		user.ChestHair = *in.ChestHair
	}
	if in.Obesity != nil {
		user.Obesity = *in.Obesity
	}
	if in.MoodSwings != nil {
		user.MoodSwings = *in.MoodSwings
	}
	if in.Stress != nil {
		user.Stress = *in.Stress
	}
	if in.IrregularSleep != nil {
		user.IrregularSleep = *in.IrregularSleep
	}
	if in.WeightGain != nil {
		user.WeightGain = *in.WeightGain
	}
	if in.HairGrowth != nil {
		user.HairGrowth = *in.HairGrowth
	}
	if in.SkinDarkening != nil {
		user.SkinDarkening = *in.SkinDarkening
	}
	if in.HairLoss != nil {
		user.HairLoss = *in.HairLoss
	}
	if in.Pimples != nil {
		user.Pimples = *in.Pimples
	}
	if in.FastFood != nil {
		user.FastFood = *in.FastFood
	}
	if in.RegExercise != nil {
		user.RegExercise = *in.RegExercise
	}
	if in.TargetCalories != nil {
		user.TargetCalories = *in.TargetCalories
	}
	if in.StepGoal != nil {
		user.StepGoal = *in.StepGoal
	}
	if in.ActivityGoal != nil {
		user.ActivityGoal = *in.ActivityGoal
	}
	if in.Allergies != nil {
		user.Allergies = *in.Allergies
	}
	if in.ExerciseTypes != nil {
		user.ExerciseTypes = *in.ExerciseTypes
	}
	if in.DarkMode != nil {
		user.DarkMode = *in.DarkMode
	}

	if in.ProfilePicture != nil && *in.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(*in.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	if user.Height > 0 && user.Weight > 0 {
		if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
			user.BMI = bmi
		}
	}
	if user.Waist > 0 && user.Hip > 0 {
		if ratio, err := utils.WaistHipRatio(user.Waist, user.Hip); err == nil {
			user.WHRatio = ratio
		}
	}

	return config.DB.Save(&user).Error
}

// ToggleDarkMode flips the flag and returns the new value.
func ToggleDarkMode(userID uint) (bool, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return false, errors.New("user not found")
	}
	user.DarkMode = !user.DarkMode
	if err := config.DB.Save(&user).Error; err != nil {
		return false, err
	}
	return user.DarkMode, nil
}
