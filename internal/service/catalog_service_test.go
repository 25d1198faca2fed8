package service_test

import (
	"context"
	"testing"

	"fitlog/workout-app/internal/service"
	"fitlog/workout-app/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService() (service.CatalogService, *fakeCategoryRepo, *fakeExerciseRepo) {
	categoryRepo := newFakeCategoryRepo()
	exerciseRepo := newFakeExerciseRepo()
	return service.NewCatalogService(categoryRepo, exerciseRepo), categoryRepo, exerciseRepo
}

func TestCatalogService_CreateCategory(t *testing.T) {
	svc, _, _ := newCatalogService()

	category, err := svc.CreateCategory(context.Background(), "Legs", "#ff0000")
	require.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Legs", category.Name)
	assert.Equal(t, "#ff0000", category.Colour)
}

func TestCatalogService_CreateCategory_Invalid(t *testing.T) {
	svc, _, _ := newCatalogService()

	_, err := svc.CreateCategory(context.Background(), "", "#ff0000")
	assert.ErrorIs(t, err, service.ErrValidationFailed)

	_, err = svc.CreateCategory(context.Background(), "Legs", "red")
	assert.ErrorIs(t, err, service.ErrInvalidColour)

	_, err = svc.CreateCategory(context.Background(), "Legs", "#ff00")
	assert.ErrorIs(t, err, service.ErrInvalidColour)
}

func TestCatalogService_CreateCategory_DuplicateName(t *testing.T) {
	svc, _, _ := newCatalogService()

	_, err := svc.CreateCategory(context.Background(), "Legs", "#ff0000")
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), "Legs", "#00ff00")
	assert.ErrorIs(t, err, service.ErrDuplicateName)
}

func TestCatalogService_CreateExercise(t *testing.T) {
	svc, _, _ := newCatalogService()

	category, err := svc.CreateCategory(context.Background(), "Legs", "#ff0000")
	require.NoError(t, err)

	exercise, err := svc.CreateExercise(context.Background(), "Squat", "high bar", "Weight And Reps", category.ID)
	require.NoError(t, err)
	assert.NotZero(t, exercise.ID)
	assert.Equal(t, "Weight And Reps", exercise.Type)
	assert.Equal(t, category.ID, exercise.CategoryID)
}

func TestCatalogService_CreateExercise_InvalidType(t *testing.T) {
	svc, _, _ := newCatalogService()

	category, err := svc.CreateCategory(context.Background(), "Legs", "#ff0000")
	require.NoError(t, err)

	// Only the ten canonical labels are storable; anything else would break
	// the round trip between Exercise.Type and shape keys.
	_, err = svc.CreateExercise(context.Background(), "Squat", "", "weight_reps", category.ID)
	assert.ErrorIs(t, err, workout.ErrUnknownTypeLabel)

	_, err = svc.CreateExercise(context.Background(), "Squat", "", "Weightlifting", category.ID)
	assert.ErrorIs(t, err, workout.ErrUnknownTypeLabel)
}

func TestCatalogService_CreateExercise_CategoryMissing(t *testing.T) {
	svc, _, _ := newCatalogService()

	_, err := svc.CreateExercise(context.Background(), "Squat", "", "Weight And Reps", 42)
	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
}

func TestCatalogService_ExercisesByCategory(t *testing.T) {
	svc, _, _ := newCatalogService()

	legs, err := svc.CreateCategory(context.Background(), "Legs", "#ff0000")
	require.NoError(t, err)
	cardio, err := svc.CreateCategory(context.Background(), "Cardio", "#00ff00")
	require.NoError(t, err)

	_, err = svc.CreateExercise(context.Background(), "Squat", "", "Weight And Reps", legs.ID)
	require.NoError(t, err)
	_, err = svc.CreateExercise(context.Background(), "Run", "", "Distance And Time", cardio.ID)
	require.NoError(t, err)

	exercises, err := svc.ExercisesByCategory(context.Background(), legs.ID)
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Squat", exercises[0].Name)

	_, err = svc.ExercisesByCategory(context.Background(), 99)
	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
}

func TestCatalogService_UpdateExercise_NotFound(t *testing.T) {
	svc, _, _ := newCatalogService()

	category, err := svc.CreateCategory(context.Background(), "Legs", "#ff0000")
	require.NoError(t, err)

	_, err = svc.UpdateExercise(context.Background(), 99, "Squat", "", "Weight And Reps", category.ID)
	assert.ErrorIs(t, err, service.ErrExerciseNotFound)
}

func TestCatalogService_DeleteCategory_NotFound(t *testing.T) {
	svc, _, _ := newCatalogService()
	err := svc.DeleteCategory(context.Background(), 99)
	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
}
