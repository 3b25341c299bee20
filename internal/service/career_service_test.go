package service

import (
	"context"
	"strings"
	"testing"

	"nnrgconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerServiceAnalyzeResumeValidation(t *testing.T) {
	svc := NewCareerService(&generatorStub{
		generateFn: func(context.Context, string, string) (string, error) { return "ok", nil },
	})
	ctx := context.Background()

	_, err := svc.AnalyzeResume(ctx, "application/pdf", nil)
	require.Error(t, err)

	_, err = svc.AnalyzeResume(ctx, "image/png", []byte("not a pdf"))
	require.Error(t, err)
	appErr := err.(*models.AppError)
	assert.Equal(t, models.CodeValidation, appErr.Code)

	big := make([]byte, maxResumeSizeBytes+1)
	_, err = svc.AnalyzeResume(ctx, "application/pdf", big)
	require.Error(t, err)

	// Declared as PDF but unparseable means no extractable text.
	_, err = svc.AnalyzeResume(ctx, "application/pdf", []byte("garbage"))
	require.Error(t, err)
	appErr = err.(*models.AppError)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestCareerServiceGetCareerTipsPrompt(t *testing.T) {
	var prompt string
	svc := NewCareerService(&generatorStub{
		generateFn: func(_ context.Context, feature, p string) (string, error) {
			assert.Equal(t, "career_tips", feature)
			prompt = p
			return "some tips", nil
		},
	})

	tips, err := svc.GetCareerTips(context.Background(), CareerTipsInput{
		Interests:       []string{"machine learning", "cloud"},
		CurrentRole:     "student",
		ExperienceLevel: "beginner",
	})
	require.NoError(t, err)
	assert.Equal(t, "some tips", tips)
	assert.True(t, strings.Contains(prompt, "machine learning, cloud"))
	assert.True(t, strings.Contains(prompt, "Their current role is student."))
	assert.True(t, strings.Contains(prompt, "Their experience level is beginner."))
}

func TestCareerServiceGetCareerTipsRequiresInterests(t *testing.T) {
	svc := NewCareerService(&generatorStub{
		generateFn: func(context.Context, string, string) (string, error) { return "", nil },
	})

	_, err := svc.GetCareerTips(context.Background(), CareerTipsInput{})
	require.Error(t, err)
	appErr := err.(*models.AppError)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestCareerServiceGetCareerTipsUpstreamFailure(t *testing.T) {
	svc := NewCareerService(&generatorStub{
		generateFn: func(context.Context, string, string) (string, error) {
			return "", assert.AnError
		},
	})

	_, err := svc.GetCareerTips(context.Background(), CareerTipsInput{Interests: []string{"ai"}})
	require.Error(t, err)
	appErr := err.(*models.AppError)
	assert.Equal(t, models.CodeUpstream, appErr.Code)
}
