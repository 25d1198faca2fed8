package service_test

import (
	"context"
	"testing"

	"fitlog/workout-app/internal/domain"
	"fitlog/workout-app/internal/service"
	"fitlog/workout-app/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }
func ptrS(v string) *string   { return &v }

func newSetServiceWithSquat(t *testing.T) (service.SetService, *fakeSetRepo, *fakeExerciseRepo) {
	t.Helper()
	setRepo := newFakeSetRepo()
	exerciseRepo := newFakeExerciseRepo()
	_, err := exerciseRepo.Create(context.Background(), &domain.Exercise{
		Name:       "Squat",
		Type:       "Weight And Reps",
		CategoryID: 1,
	})
	require.NoError(t, err)
	return service.NewSetService(setRepo, exerciseRepo), setRepo, exerciseRepo
}

func TestSetService_LogSet(t *testing.T) {
	svc, setRepo, _ := newSetServiceWithSquat(t)

	set, err := svc.LogSet(context.Background(), service.SetInput{
		Date:       "2024-01-01",
		ExerciseID: 1,
		Weight:     ptrF(100),
		Reps:       ptrI(5),
		Notes:      "felt strong",
	})
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.NotZero(t, set.ID)
	assert.Equal(t, "2024-01-01", set.Date)
	assert.Equal(t, ptrF(100), set.Weight)
	assert.Equal(t, "felt strong", set.Notes)
	assert.Len(t, setRepo.sets, 1)
}

func TestSetService_LogSet_InvalidDate(t *testing.T) {
	svc, _, _ := newSetServiceWithSquat(t)

	_, err := svc.LogSet(context.Background(), service.SetInput{
		Date:       "01/01/2024",
		ExerciseID: 1,
		Weight:     ptrF(100),
		Reps:       ptrI(5),
	})
	assert.ErrorIs(t, err, service.ErrInvalidDate)
}

func TestSetService_LogSet_MalformedShape(t *testing.T) {
	svc, setRepo, _ := newSetServiceWithSquat(t)

	// No measurement fields at all.
	_, err := svc.LogSet(context.Background(), service.SetInput{
		Date:       "2024-01-01",
		ExerciseID: 1,
	})
	assert.ErrorIs(t, err, workout.ErrMalformedShape)

	// All four populated.
	_, err = svc.LogSet(context.Background(), service.SetInput{
		Date:       "2024-01-01",
		ExerciseID: 1,
		Weight:     ptrF(1),
		Reps:       ptrI(1),
		Distance:   ptrF(1),
		Time:       ptrI(1),
	})
	assert.ErrorIs(t, err, workout.ErrMalformedShape)

	assert.Empty(t, setRepo.sets, "malformed sets must not be persisted")
}

func TestSetService_LogSet_ShapeMismatch(t *testing.T) {
	svc, _, _ := newSetServiceWithSquat(t)

	// A distance/time set against a "Weight And Reps" exercise.
	_, err := svc.LogSet(context.Background(), service.SetInput{
		Date:       "2024-01-01",
		ExerciseID: 1,
		Distance:   ptrF(5),
		Time:       ptrI(1500),
	})
	assert.ErrorIs(t, err, service.ErrShapeMismatch)
}

func TestSetService_LogSet_ExerciseMissing(t *testing.T) {
	svc, _, _ := newSetServiceWithSquat(t)

	_, err := svc.LogSet(context.Background(), service.SetInput{
		Date:       "2024-01-01",
		ExerciseID: 42,
		Weight:     ptrF(100),
		Reps:       ptrI(5),
	})
	assert.ErrorIs(t, err, service.ErrExerciseNotFound)
}

func TestSetService_UpdateSet(t *testing.T) {
	svc, _, _ := newSetServiceWithSquat(t)

	set, err := svc.LogSet(context.Background(), service.SetInput{
		Date:       "2024-01-01",
		ExerciseID: 1,
		Weight:     ptrF(100),
		Reps:       ptrI(5),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSet(context.Background(), set.ID, service.SetInput{
		Date:       "2024-01-01",
		ExerciseID: 1,
		Weight:     ptrF(105),
		Reps:       ptrI(3),
	})
	require.NoError(t, err)
	assert.Equal(t, ptrF(105), updated.Weight)
	assert.Equal(t, ptrI(3), updated.Reps)
}

func TestSetService_UpdateSet_NotFound(t *testing.T) {
	svc, _, _ := newSetServiceWithSquat(t)

	_, err := svc.UpdateSet(context.Background(), 99, service.SetInput{
		Date:       "2024-01-01",
		ExerciseID: 1,
		Weight:     ptrF(100),
		Reps:       ptrI(5),
	})
	assert.ErrorIs(t, err, service.ErrSetNotFound)
}

func TestSetService_DeleteSet_NotFound(t *testing.T) {
	svc, _, _ := newSetServiceWithSquat(t)
	err := svc.DeleteSet(context.Background(), 99)
	assert.ErrorIs(t, err, service.ErrSetNotFound)
}

func TestSetService_WorkoutForDate(t *testing.T) {
	svc, setRepo, _ := newSetServiceWithSquat(t)
	setRepo.rows = []workout.FlatRow{
		{
			Date:         "2024-01-01",
			ExerciseID:   1,
			ExerciseName: ptrS("Squat"),
			Set:          domain.Set{ID: 1, Date: "2024-01-01", ExerciseID: 1, Weight: ptrF(100), Reps: ptrI(5)},
		},
		{
			Date:         "2024-01-01",
			ExerciseID:   1,
			ExerciseName: ptrS("Squat"),
			Set:          domain.Set{ID: 2, Date: "2024-01-01", ExerciseID: 1, Weight: ptrF(105), Reps: ptrI(3)},
		},
	}

	day, err := svc.WorkoutForDate(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", day.Date)
	require.Len(t, day.Exercises, 1)
	assert.Equal(t, "Squat", day.Exercises[0].ExerciseName)
	assert.Len(t, day.Exercises[0].Sets, 2)
}

func TestSetService_WorkoutForDate_EmptyDay(t *testing.T) {
	svc, _, _ := newSetServiceWithSquat(t)

	day, err := svc.WorkoutForDate(context.Background(), "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", day.Date)
	assert.Empty(t, day.Exercises)
	assert.NotNil(t, day.Exercises)
}

func TestSetService_WorkoutForDate_InvalidDate(t *testing.T) {
	svc, _, _ := newSetServiceWithSquat(t)
	_, err := svc.WorkoutForDate(context.Background(), "yesterday")
	assert.ErrorIs(t, err, service.ErrInvalidDate)
}
