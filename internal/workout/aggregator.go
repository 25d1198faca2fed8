package workout

import "fitlog/workout-app/internal/domain"

// FlatRow is one denormalized row as delivered by the store: a logged set
// joined against its exercise and the exercise's category. The joined
// columns are pointers because the queries use LEFT JOINs — a concurrently
// deleted exercise or category yields nil companions, and such rows are
// skipped from name-dependent output rather than failing the aggregation.
//
// Rows must arrive in the order the caller wants sets displayed (the repo
// orders by set ID, which is logging order; sets carry no other sequence
// signal).
type FlatRow struct {
	Date           string
	ExerciseID     uint
	ExerciseName   *string
	CategoryName   *string
	CategoryColour *string
	Set            domain.Set
}

// ExerciseSets is the sets logged for one exercise on one date, in logging
// order.
type ExerciseSets struct {
	ExerciseID   uint         `json:"exerciseId"`
	ExerciseName string       `json:"exerciseName"`
	Sets         []domain.Set `json:"sets"`
}

// DayWorkout is everything logged on one date, grouped per exercise in
// first-seen order.
type DayWorkout struct {
	Date      string         `json:"date"`
	Exercises []ExerciseSets `json:"exercises"`
}

// CategoryTag is one coloured category chip shown next to a date in the
// history and calendar views.
type CategoryTag struct {
	Name   string `json:"name"`
	Colour string `json:"colour"`
}

// HistoryEntry is one exercise's sets on one date together with the joined
// category, for the history list view.
type HistoryEntry struct {
	ExerciseID     uint         `json:"exerciseId"`
	ExerciseName   string       `json:"exerciseName"`
	CategoryName   string       `json:"categoryName"`
	CategoryColour string       `json:"categoryColour"`
	Sets           []domain.Set `json:"sets"`
}

// DayHistory is one date in the history list: its exercise groups plus the
// deduplicated category tag row.
type DayHistory struct {
	Date       string         `json:"date"`
	Categories []CategoryTag  `json:"categories"`
	Exercises  []HistoryEntry `json:"exercises"`
}

// GroupByDate groups flat rows into per-date workouts. Dates appear in
// first-seen order, exercise groups within a date in first-seen order
// (keyed by exercise ID, not name), and sets within a group in encounter
// order. Rows with a nil joined exercise name are skipped. The input is
// never mutated; each call builds fresh output.
func GroupByDate(rows []FlatRow) []DayWorkout {
	days := make([]DayWorkout, 0)
	dayIdx := make(map[string]int)

	for _, row := range rows {
		if row.ExerciseName == nil {
			continue
		}

		di, ok := dayIdx[row.Date]
		if !ok {
			di = len(days)
			dayIdx[row.Date] = di
			days = append(days, DayWorkout{Date: row.Date})
		}

		day := &days[di]
		var group *ExerciseSets
		for i := range day.Exercises {
			if day.Exercises[i].ExerciseID == row.ExerciseID {
				group = &day.Exercises[i]
				break
			}
		}
		if group == nil {
			day.Exercises = append(day.Exercises, ExerciseSets{
				ExerciseID:   row.ExerciseID,
				ExerciseName: *row.ExerciseName,
			})
			group = &day.Exercises[len(day.Exercises)-1]
		}
		group.Sets = append(group.Sets, row.Set)
	}

	return days
}

// GroupByDateWithCategory groups rows like GroupByDate and additionally
// derives, per date, the category tag row: one tag per distinct category
// name, in order of first occurrence, even when several exercises that day
// share a category. Rows missing either joined name are skipped.
func GroupByDateWithCategory(rows []FlatRow) []DayHistory {
	days := make([]DayHistory, 0)
	dayIdx := make(map[string]int)

	for _, row := range rows {
		if row.ExerciseName == nil || row.CategoryName == nil {
			continue
		}
		colour := ""
		if row.CategoryColour != nil {
			colour = *row.CategoryColour
		}

		di, ok := dayIdx[row.Date]
		if !ok {
			di = len(days)
			dayIdx[row.Date] = di
			days = append(days, DayHistory{Date: row.Date})
		}

		day := &days[di]
		var entry *HistoryEntry
		for i := range day.Exercises {
			if day.Exercises[i].ExerciseID == row.ExerciseID {
				entry = &day.Exercises[i]
				break
			}
		}
		if entry == nil {
			day.Exercises = append(day.Exercises, HistoryEntry{
				ExerciseID:     row.ExerciseID,
				ExerciseName:   *row.ExerciseName,
				CategoryName:   *row.CategoryName,
				CategoryColour: colour,
			})
			entry = &day.Exercises[len(day.Exercises)-1]
		}
		entry.Sets = append(entry.Sets, row.Set)
	}

	// Category tags dedup by name: names are unique in the catalog, so one
	// name is one colour.
	for di := range days {
		day := &days[di]
		seen := make(map[string]bool)
		for _, entry := range day.Exercises {
			if seen[entry.CategoryName] {
				continue
			}
			seen[entry.CategoryName] = true
			day.Categories = append(day.Categories, CategoryTag{
				Name:   entry.CategoryName,
				Colour: entry.CategoryColour,
			})
		}
	}

	return days
}

// ByDay flattens rows into calendar day markers: for each date, the
// distinct category colours present that day, in order of first occurrence.
// Distinctness is decided on the (name, colour) pair, which under unique
// category names is the same discipline GroupByDateWithCategory applies to
// names alone. Rows missing the joined category are skipped.
func ByDay(rows []FlatRow) map[string][]string {
	markers := make(map[string][]string)
	seen := make(map[string]map[CategoryTag]bool)

	for _, row := range rows {
		if row.CategoryName == nil || row.CategoryColour == nil {
			continue
		}
		tag := CategoryTag{Name: *row.CategoryName, Colour: *row.CategoryColour}
		if seen[row.Date] == nil {
			seen[row.Date] = make(map[CategoryTag]bool)
		}
		if seen[row.Date][tag] {
			continue
		}
		seen[row.Date][tag] = true
		markers[row.Date] = append(markers[row.Date], tag.Colour)
	}

	return markers
}
