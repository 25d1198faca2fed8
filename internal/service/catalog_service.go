package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"fitlog/workout-app/internal/domain"
	"fitlog/workout-app/internal/repository"
	"fitlog/workout-app/internal/workout"
)

// --- Error Definitions ---
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateName    = errors.New("name already in use")
	ErrInvalidColour    = errors.New("colour must be a #RRGGBB hex string")
	ErrValidationFailed = errors.New("validation failed")
)

var colourPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CatalogService manages the exercise catalog: categories and the exercises
// belonging to them.
type CatalogService interface {
	CreateCategory(ctx context.Context, name, colour string) (*domain.Category, error)
	GetCategory(ctx context.Context, id uint) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, id uint, name, colour string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	CreateExercise(ctx context.Context, name, notes, typeLabel string, categoryID uint) (*domain.Exercise, error)
	GetExercise(ctx context.Context, id uint) (*domain.Exercise, error)
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	ExercisesByCategory(ctx context.Context, categoryID uint) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, id uint, name, notes, typeLabel string, categoryID uint) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, id uint) error
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	exerciseRepo repository.ExerciseRepository
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(categoryRepo repository.CategoryRepository, exerciseRepo repository.ExerciseRepository) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		exerciseRepo: exerciseRepo,
	}
}

// --- Categories ---

func validateCategory(name, colour string) error {
	if name == "" {
		return fmt.Errorf("%w: category name is required", ErrValidationFailed)
	}
	if !colourPattern.MatchString(colour) {
		return fmt.Errorf("%w: got %q", ErrInvalidColour, colour)
	}
	return nil
}

func (s *catalogService) CreateCategory(ctx context.Context, name, colour string) (*domain.Category, error) {
	if err := validateCategory(name, colour); err != nil {
		return nil, err
	}

	category := &domain.Category{Name: name, Colour: colour}
	id, err := s.categoryRepo.Create(ctx, category)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, fmt.Errorf("%w: category %q", ErrDuplicateName, name)
		}
		return nil, err
	}
	category.ID = id
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *catalogService) GetCategory(ctx context.Context, id uint) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uint, name, colour string) (*domain.Category, error) {
	if err := validateCategory(name, colour); err != nil {
		return nil, err
	}

	category := &domain.Category{ID: id, Name: name, Colour: colour}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrCategoryNotFound
		case errors.Is(err, repository.ErrDuplicateName):
			return nil, fmt.Errorf("%w: category %q", ErrDuplicateName, name)
		}
		return nil, err
	}
	return s.categoryRepo.GetByID(ctx, id)
}

// DeleteCategory removes a category. Its exercises are left in place with a
// dangling category reference; the aggregation contracts tolerate the
// resulting NULL joins, and history rows simply drop out of
// category-dependent views until the exercise is recategorized.
func (s *catalogService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

// --- Exercises ---

func (s *catalogService) validateExercise(ctx context.Context, name, typeLabel string, categoryID uint) error {
	if name == "" {
		return fmt.Errorf("%w: exercise name is required", ErrValidationFailed)
	}
	// Reject type labels outside the ten canonical shapes up front, so
	// every stored Exercise.Type round-trips through the classifier.
	if _, err := workout.ParseTypeLabel(typeLabel); err != nil {
		return err
	}
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (s *catalogService) CreateExercise(ctx context.Context, name, notes, typeLabel string, categoryID uint) (*domain.Exercise, error) {
	if err := s.validateExercise(ctx, name, typeLabel, categoryID); err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{
		Name:       name,
		Notes:      notes,
		Type:       typeLabel,
		CategoryID: categoryID,
	}
	id, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, fmt.Errorf("%w: exercise %q", ErrDuplicateName, name)
		}
		return nil, err
	}
	exercise.ID = id
	return s.exerciseRepo.GetByID(ctx, id)
}

func (s *catalogService) GetExercise(ctx context.Context, id uint) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *catalogService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

func (s *catalogService) ExercisesByCategory(ctx context.Context, categoryID uint) ([]domain.Exercise, error) {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return s.exerciseRepo.ListByCategory(ctx, categoryID)
}

func (s *catalogService) UpdateExercise(ctx context.Context, id uint, name, notes, typeLabel string, categoryID uint) (*domain.Exercise, error) {
	if err := s.validateExercise(ctx, name, typeLabel, categoryID); err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{
		ID:         id,
		Name:       name,
		Notes:      notes,
		Type:       typeLabel,
		CategoryID: categoryID,
	}
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrExerciseNotFound
		case errors.Is(err, repository.ErrDuplicateName):
			return nil, fmt.Errorf("%w: exercise %q", ErrDuplicateName, name)
		}
		return nil, err
	}
	return s.exerciseRepo.GetByID(ctx, id)
}

// DeleteExercise removes an exercise. Sets already logged against it keep
// their rows; they drop out of name-dependent views via the dangling-join
// rule rather than being cascaded away.
func (s *catalogService) DeleteExercise(ctx context.Context, id uint) error {
	if err := s.exerciseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}
