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

var (
	ErrInvalidRange = errors.New("from date must not be after to date")
	ErrInvalidMonth = errors.New("month must be in YYYY-MM format")
)

const monthLayout = "2006-01"

// HistoryService produces the read models for the history list and the
// calendar. Every call re-aggregates from the store; there is no cached
// aggregation state, so callers simply re-invoke after mutations.
type HistoryService interface {
	// History returns the workouts in the inclusive date range, newest day
	// first, each day carrying its deduplicated category tag row.
	History(ctx context.Context, from, to string) ([]workout.DayHistory, error)
	// CalendarMarkers returns, for each day of the month with logged sets,
	// the distinct category colours present that day.
	CalendarMarkers(ctx context.Context, month string) (map[string][]string, error)
}

type historyService struct {
	setRepo repository.SetRepository
}

// NewHistoryService creates a new instance of historyService.
func NewHistoryService(setRepo repository.SetRepository) HistoryService {
	return &historyService{setRepo: setRepo}
}

func (s *historyService) History(ctx context.Context, from, to string) ([]workout.DayHistory, error) {
	fromDay, err := time.Parse(domain.DateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, from)
	}
	toDay, err := time.Parse(domain.DateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, to)
	}
	if fromDay.After(toDay) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, from, to)
	}

	rows, err := s.setRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return workout.GroupByDateWithCategory(rows), nil
}

func (s *historyService) CalendarMarkers(ctx context.Context, month string) (map[string][]string, error) {
	first, err := time.Parse(monthLayout, month)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	last := first.AddDate(0, 1, -1)

	rows, err := s.setRepo.ListBetween(ctx,
		first.Format(domain.DateLayout), last.Format(domain.DateLayout))
	if err != nil {
		return nil, err
	}
	return workout.ByDay(rows), nil
}
