package sqlite

import (
	"context"
	"errors"

	"fitlog/workout-app/internal/domain"
	"fitlog/workout-app/internal/repository"

	"gorm.io/gorm"
)

// sqliteCategoryRepository implements repository.CategoryRepository.
type sqliteCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new Category repository backed by the
// embedded database.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &sqliteCategoryRepository{db: db}
}

func (r *sqliteCategoryRepository) Create(ctx context.Context, category *domain.Category) (uint, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return 0, mapUniqueErr(err)
	}
	return category.ID, nil
}

func (r *sqliteCategoryRepository) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *sqliteCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *sqliteCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":   category.Name,
			"colour": category.Colour,
		})
	if res.Error != nil {
		return mapUniqueErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *sqliteCategoryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
