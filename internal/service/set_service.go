package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitlog/workout-app/internal/domain"
	"fitlog/workout-app/internal/repository"
	"fitlog/workout-app/internal/workout"
)

// --- Error Definitions ---
var (
	ErrSetNotFound      = errors.New("set not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	// ErrShapeMismatch means the set's populated fields don't match the
	// declared type of the exercise it is logged against (e.g. a distance
	// on a "Weight And Reps" exercise).
	ErrShapeMismatch = errors.New("set fields do not match exercise type")
)

// SetInput carries the user-editable fields of a logged set.
type SetInput struct {
	Date       string
	ExerciseID uint
	Weight     *float64
	Reps       *int
	Distance   *float64
	Time       *int
	Notes      string
}

// SetService handles logging, editing and browsing of sets.
type SetService interface {
	LogSet(ctx context.Context, input SetInput) (*domain.Set, error)
	GetSet(ctx context.Context, id uint) (*domain.Set, error)
	UpdateSet(ctx context.Context, id uint, input SetInput) (*domain.Set, error)
	DeleteSet(ctx context.Context, id uint) error
	// WorkoutForDate returns everything logged on one date, grouped per
	// exercise in logging order. An empty day is a valid, empty workout.
	WorkoutForDate(ctx context.Context, date string) (workout.DayWorkout, error)
}

type setService struct {
	setRepo      repository.SetRepository
	exerciseRepo repository.ExerciseRepository
}

// NewSetService creates a new instance of setService.
func NewSetService(setRepo repository.SetRepository, exerciseRepo repository.ExerciseRepository) SetService {
	return &setService{
		setRepo:      setRepo,
		exerciseRepo: exerciseRepo,
	}
}

// validate checks the input against the classifier and the exercise's
// declared type, and returns the validated domain record. Malformed shapes
// (zero, three or four populated fields) surface as errors wrapping
// workout.ErrMalformedShape, never as a silently coerced shape.
func (s *setService) validate(ctx context.Context, input SetInput) (*domain.Set, error) {
	if _, err := time.Parse(domain.DateLayout, input.Date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, input.Date)
	}

	set := &domain.Set{
		Date:       input.Date,
		ExerciseID: input.ExerciseID,
		Weight:     input.Weight,
		Reps:       input.Reps,
		Distance:   input.Distance,
		Time:       input.Time,
		Notes:      input.Notes,
	}

	shape, err := workout.Classify(*set)
	if err != nil {
		return nil, err
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, input.ExerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	declared, err := workout.ParseTypeLabel(exercise.Type)
	if err != nil {
		// A stored exercise with an unparseable type is data corruption;
		// propagate rather than accepting arbitrary sets against it.
		return nil, err
	}
	if shape != declared {
		return nil, fmt.Errorf("%w: set is %q, exercise %q is %q",
			ErrShapeMismatch, shape.Key(), exercise.Name, exercise.Type)
	}

	return set, nil
}

func (s *setService) LogSet(ctx context.Context, input SetInput) (*domain.Set, error) {
	set, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	id, err := s.setRepo.Create(ctx, set)
	if err != nil {
		return nil, err
	}
	set.ID = id
	return s.setRepo.GetByID(ctx, id)
}

func (s *setService) GetSet(ctx context.Context, id uint) (*domain.Set, error) {
	set, err := s.setRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}
	return set, nil
}

func (s *setService) UpdateSet(ctx context.Context, id uint, input SetInput) (*domain.Set, error) {
	set, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}
	set.ID = id

	if err := s.setRepo.Update(ctx, set); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}
	return s.setRepo.GetByID(ctx, id)
}

func (s *setService) DeleteSet(ctx context.Context, id uint) error {
	if err := s.setRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSetNotFound
		}
		return err
	}
	return nil
}

func (s *setService) WorkoutForDate(ctx context.Context, date string) (workout.DayWorkout, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return workout.DayWorkout{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	rows, err := s.setRepo.ListByDate(ctx, date)
	if err != nil {
		return workout.DayWorkout{}, err
	}

	for _, day := range workout.GroupByDate(rows) {
		if day.Date == date {
			return day, nil
		}
	}
	return workout.DayWorkout{Date: date, Exercises: []workout.ExerciseSets{}}, nil
}
