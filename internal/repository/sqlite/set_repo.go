package sqlite

import (
	"context"
	"errors"
	"time"

	"fitlog/workout-app/internal/domain"
	"fitlog/workout-app/internal/repository"
	"fitlog/workout-app/internal/workout"

	"gorm.io/gorm"
)

// sqliteSetRepository implements repository.SetRepository.
type sqliteSetRepository struct {
	db *gorm.DB
}

// NewSetRepository creates a new Set repository backed by the embedded
// database.
func NewSetRepository(db *gorm.DB) repository.SetRepository {
	return &sqliteSetRepository{db: db}
}

func (r *sqliteSetRepository) Create(ctx context.Context, set *domain.Set) (uint, error) {
	if err := r.db.WithContext(ctx).Create(set).Error; err != nil {
		return 0, err
	}
	return set.ID, nil
}

func (r *sqliteSetRepository) GetByID(ctx context.Context, id uint) (*domain.Set, error) {
	var set domain.Set
	err := r.db.WithContext(ctx).First(&set, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &set, nil
}

func (r *sqliteSetRepository) Update(ctx context.Context, set *domain.Set) error {
	// Update through a map so measurement fields cleared to nil are
	// persisted too; a struct update would skip zero values and leave stale
	// measurements behind.
	res := r.db.WithContext(ctx).
		Model(&domain.Set{}).
		Where("id = ?", set.ID).
		Select("date", "exercise_id", "weight", "reps", "distance", "time", "notes", "updated_at").
		Updates(map[string]interface{}{
			"date":        set.Date,
			"exercise_id": set.ExerciseID,
			"weight":      set.Weight,
			"reps":        set.Reps,
			"distance":    set.Distance,
			"time":        set.Time,
			"notes":       set.Notes,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *sqliteSetRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Set{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// flatRowRecord is the scan target for the joined queries. The joined
// columns are pointers: LEFT JOIN yields NULL when the exercise or category
// has been deleted underneath the set, and the aggregator skips such rows.
type flatRowRecord struct {
	ID             uint
	Date           string
	ExerciseID     uint
	Weight         *float64
	Reps           *int
	Distance       *float64
	Time           *int
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ExerciseName   *string
	CategoryName   *string
	CategoryColour *string
}

const flatRowSelect = `sets.id, sets.date, sets.exercise_id, sets.weight, sets.reps,
sets.distance, sets.time, sets.notes, sets.created_at, sets.updated_at,
exercises.name AS exercise_name, categories.name AS category_name,
categories.colour AS category_colour`

func (r *sqliteSetRepository) flatRowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("sets").
		Select(flatRowSelect).
		Joins("LEFT JOIN exercises ON exercises.id = sets.exercise_id").
		Joins("LEFT JOIN categories ON categories.id = exercises.category_id")
}

// ListByDate returns the flat rows for one date, ordered by set ID
// ascending. Set IDs are the only logging-order signal, so this ordering is
// what makes sets display in the order they were logged.
func (r *sqliteSetRepository) ListByDate(ctx context.Context, date string) ([]workout.FlatRow, error) {
	var records []flatRowRecord
	err := r.flatRowQuery(ctx).
		Where("sets.date = ?", date).
		Order("sets.id ASC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return mapFlatRows(records), nil
}

// ListBetween returns the flat rows for an inclusive date range, newest
// date first, with sets within a date in logging order.
func (r *sqliteSetRepository) ListBetween(ctx context.Context, from, to string) ([]workout.FlatRow, error) {
	var records []flatRowRecord
	err := r.flatRowQuery(ctx).
		Where("sets.date >= ? AND sets.date <= ?", from, to).
		Order("sets.date DESC, sets.id ASC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return mapFlatRows(records), nil
}

func mapFlatRows(records []flatRowRecord) []workout.FlatRow {
	rows := make([]workout.FlatRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, workout.FlatRow{
			Date:           rec.Date,
			ExerciseID:     rec.ExerciseID,
			ExerciseName:   rec.ExerciseName,
			CategoryName:   rec.CategoryName,
			CategoryColour: rec.CategoryColour,
			Set: domain.Set{
				ID:         rec.ID,
				Date:       rec.Date,
				ExerciseID: rec.ExerciseID,
				Weight:     rec.Weight,
				Reps:       rec.Reps,
				Distance:   rec.Distance,
				Time:       rec.Time,
				Notes:      rec.Notes,
				CreatedAt:  rec.CreatedAt,
				UpdatedAt:  rec.UpdatedAt,
			},
		})
	}
	return rows
}
