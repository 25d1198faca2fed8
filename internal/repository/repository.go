package repository

import (
	"context"

	"fitlog/workout-app/internal/domain"
	"fitlog/workout-app/internal/workout"
)

// Error constants for the repository layer.
var (
	ErrNotFound      = RepositoryError("not found")
	ErrDuplicateName = RepositoryError("name already exists")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SetRepository defines the interface for interacting with logged sets.
//
// The List* methods return denormalized flat rows (set joined against
// exercise and category via LEFT JOINs, so the joined names are nil for a
// deleted referent) in the order the aggregation contracts expect:
// ListByDate ascending by set ID, ListBetween newest date first with sets
// within a date ascending by ID.
type SetRepository interface {
	Create(ctx context.Context, set *domain.Set) (uint, error)
	GetByID(ctx context.Context, id uint) (*domain.Set, error)
	Update(ctx context.Context, set *domain.Set) error
	Delete(ctx context.Context, id uint) error
	ListByDate(ctx context.Context, date string) ([]workout.FlatRow, error)
	ListBetween(ctx context.Context, from, to string) ([]workout.FlatRow, error)
}

// ExerciseRepository defines the interface for interacting with the
// exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (uint, error)
	GetByID(ctx context.Context, id uint) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id uint) error
}

// CategoryRepository defines the interface for interacting with categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (uint, error)
	GetByID(ctx context.Context, id uint) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id uint) error
}
