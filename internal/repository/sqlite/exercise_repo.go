package sqlite

import (
	"context"
	"errors"
	"strings"

	"fitlog/workout-app/internal/domain"
	"fitlog/workout-app/internal/repository"

	"gorm.io/gorm"
)

// sqliteExerciseRepository implements repository.ExerciseRepository.
type sqliteExerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new Exercise repository backed by the
// embedded database.
func NewExerciseRepository(db *gorm.DB) repository.ExerciseRepository {
	return &sqliteExerciseRepository{db: db}
}

func (r *sqliteExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (uint, error) {
	if err := r.db.WithContext(ctx).Create(exercise).Error; err != nil {
		return 0, mapUniqueErr(err)
	}
	return exercise.ID, nil
}

func (r *sqliteExerciseRepository) GetByID(ctx context.Context, id uint) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.db.WithContext(ctx).First(&exercise, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *sqliteExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	err := r.db.WithContext(ctx).Order("name ASC").Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *sqliteExerciseRepository) ListByCategory(ctx context.Context, categoryID uint) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *sqliteExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Exercise{}).
		Where("id = ?", exercise.ID).
		Updates(map[string]interface{}{
			"name":        exercise.Name,
			"notes":       exercise.Notes,
			"type":        exercise.Type,
			"category_id": exercise.CategoryID,
		})
	if res.Error != nil {
		return mapUniqueErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *sqliteExerciseRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Exercise{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// mapUniqueErr translates sqlite unique-index violations into the
// repository's duplicate-name error. The driver does not expose a typed
// error for this, so the message check is the pragmatic option.
func mapUniqueErr(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return repository.ErrDuplicateName
	}
	return err
}
