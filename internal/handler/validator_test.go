package handler

import (
	"errors"
	"testing"

	"gideon/internal/dto"

	"github.com/stretchr/testify/require"
)

func TestCustomValidator(t *testing.T) {
	cv := NewValidator()
	type s struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok", Email: "a@b.com"}))

	err := cv.Validate(&s{Email: "nope"})
	require.Error(t, err)
	require.Equal(t, map[string]bool{"required": true, "email": true}, FailedTags(err))

	require.Nil(t, FailedTags(errors.New("plain")))
}

func TestValidatorNumberPresence(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&dto.WorkoutPlanRequest{Goal: "strength", Level: "beginner"})
	require.Equal(t, map[string]bool{"required": true}, FailedTags(err))

	// 空字串算有提供，由 Int 回報格式錯誤
	require.NoError(t, cv.Validate(&dto.WorkoutPlanRequest{Goal: "strength", Level: "beginner", Days: dto.NewNumber("")}))
	require.NoError(t, cv.Validate(&dto.NutritionPlanRequest{Diet: "keto", Calories: dto.NewNumber("2000")}))
}
