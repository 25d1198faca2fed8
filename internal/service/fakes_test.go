package service_test

import (
	"context"

	"fitlog/workout-app/internal/domain"
	"fitlog/workout-app/internal/repository"
	"fitlog/workout-app/internal/workout"
)

// In-memory repository fakes. The list methods serve pre-seeded flat rows;
// the CRUD methods behave like the sqlite repos (ErrNotFound on misses,
// ErrDuplicateName on name collisions).

type fakeSetRepo struct {
	sets   map[uint]domain.Set
	nextID uint
	rows   []workout.FlatRow

	// recorded arguments of the last ListBetween call
	listedFrom, listedTo string
}

func newFakeSetRepo() *fakeSetRepo {
	return &fakeSetRepo{sets: make(map[uint]domain.Set)}
}

func (f *fakeSetRepo) Create(_ context.Context, set *domain.Set) (uint, error) {
	f.nextID++
	set.ID = f.nextID
	f.sets[set.ID] = *set
	return set.ID, nil
}

func (f *fakeSetRepo) GetByID(_ context.Context, id uint) (*domain.Set, error) {
	set, ok := f.sets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &set, nil
}

func (f *fakeSetRepo) Update(_ context.Context, set *domain.Set) error {
	if _, ok := f.sets[set.ID]; !ok {
		return repository.ErrNotFound
	}
	f.sets[set.ID] = *set
	return nil
}

func (f *fakeSetRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.sets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.sets, id)
	return nil
}

func (f *fakeSetRepo) ListByDate(_ context.Context, date string) ([]workout.FlatRow, error) {
	var rows []workout.FlatRow
	for _, row := range f.rows {
		if row.Date == date {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (f *fakeSetRepo) ListBetween(_ context.Context, from, to string) ([]workout.FlatRow, error) {
	f.listedFrom, f.listedTo = from, to
	var rows []workout.FlatRow
	for _, row := range f.rows {
		// ISO dates compare correctly as strings.
		if row.Date >= from && row.Date <= to {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

type fakeExerciseRepo struct {
	exercises map[uint]domain.Exercise
	nextID    uint
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[uint]domain.Exercise)}
}

func (f *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (uint, error) {
	for _, existing := range f.exercises {
		if existing.Name == exercise.Name {
			return 0, repository.ErrDuplicateName
		}
	}
	f.nextID++
	exercise.ID = f.nextID
	f.exercises[exercise.ID] = *exercise
	return exercise.ID, nil
}

func (f *fakeExerciseRepo) GetByID(_ context.Context, id uint) (*domain.Exercise, error) {
	exercise, ok := f.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &exercise, nil
}

func (f *fakeExerciseRepo) List(_ context.Context) ([]domain.Exercise, error) {
	exercises := make([]domain.Exercise, 0, len(f.exercises))
	for _, exercise := range f.exercises {
		exercises = append(exercises, exercise)
	}
	return exercises, nil
}

func (f *fakeExerciseRepo) ListByCategory(_ context.Context, categoryID uint) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	for _, exercise := range f.exercises {
		if exercise.CategoryID == categoryID {
			exercises = append(exercises, exercise)
		}
	}
	return exercises, nil
}

func (f *fakeExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	if _, ok := f.exercises[exercise.ID]; !ok {
		return repository.ErrNotFound
	}
	f.exercises[exercise.ID] = *exercise
	return nil
}

func (f *fakeExerciseRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.exercises[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.exercises, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uint]domain.Category
	nextID     uint
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uint]domain.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) (uint, error) {
	for _, existing := range f.categories {
		if existing.Name == category.Name {
			return 0, repository.ErrDuplicateName
		}
	}
	f.nextID++
	category.ID = f.nextID
	f.categories[category.ID] = *category
	return category.ID, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uint) (*domain.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &category, nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, 0, len(f.categories))
	for _, category := range f.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return repository.ErrNotFound
	}
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}
