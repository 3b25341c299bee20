package service

import (
	"context"
	"testing"

	"nnrgconnect/internal/models"
	"nnrgconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryServiceSearchValidation(t *testing.T) {
	svc := NewDirectoryService(noopUserRepo())

	_, err := svc.Search(context.Background(), idA, "  ", repository.SearchFieldName)
	require.Error(t, err)

	_, err = svc.Search(context.Background(), idA, "ravi", "branch")
	require.Error(t, err)
	appErr := err.(*models.AppError)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestDirectoryServiceSearchProjectsVisibility(t *testing.T) {
	users := noopUserRepo()
	users.searchFn = func(_ context.Context, field, query, excludeID string) ([]models.User, error) {
		assert.Equal(t, repository.SearchFieldName, field)
		assert.Equal(t, "ravi", query)
		assert.Equal(t, idA, excludeID)
		return []models.User{
			{
				ID:                   idB,
				FullName:             "Ravi Teja",
				Email:                "rt@nnrg.edu.in",
				PhoneNumber:          "9876543210",
				DisplayEmail:         true,
				DisplayContactNumber: false,
			},
		}, nil
	}
	svc := NewDirectoryService(users)

	profiles, err := svc.Search(context.Background(), idA, "ravi", repository.SearchFieldName)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	require.NotNil(t, profiles[0].Email)
	assert.Equal(t, "rt@nnrg.edu.in", *profiles[0].Email)
	assert.Nil(t, profiles[0].PhoneNumber)
}

func TestDirectoryServiceSuggest(t *testing.T) {
	users := noopUserRepo()
	users.suggestFn = func(_ context.Context, excludeID string) ([]models.User, error) {
		assert.Equal(t, idA, excludeID)
		return []models.User{{ID: idB}, {ID: idC}}, nil
	}
	svc := NewDirectoryService(users)

	profiles, err := svc.Suggest(context.Background(), idA)
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}
