package workout

import (
	"errors"
	"fmt"
	"strconv"

	"fitlog/workout-app/internal/domain"
)

// Shape identifies which combination of the four measurement fields
// (weight, reps, distance, time) a set populates. Exactly ten combinations
// are legal: the four single fields and the six pairs. Shapes are a closed
// enum so that every consumer (summary formatting, input validation, type
// labels) switches exhaustively instead of looking up strings at runtime.
type Shape int

const (
	ShapeWeightReps Shape = iota
	ShapeDistanceTime
	ShapeWeightDistance
	ShapeWeightTime
	ShapeRepsDistance
	ShapeRepsTime
	ShapeWeight
	ShapeReps
	ShapeDistance
	ShapeTime
)

// Shapes lists every legal shape, in canonical order.
var Shapes = []Shape{
	ShapeWeightReps,
	ShapeDistanceTime,
	ShapeWeightDistance,
	ShapeWeightTime,
	ShapeRepsDistance,
	ShapeRepsTime,
	ShapeWeight,
	ShapeReps,
	ShapeDistance,
	ShapeTime,
}

// --- Error Definitions ---
var (
	// ErrMalformedShape is the parent error for any populated-field
	// combination outside the ten legal shapes. Callers must surface it
	// (e.g. render an "unrecognized set type" indicator), never coerce the
	// set to some default shape.
	ErrMalformedShape = errors.New("malformed set shape")

	ErrNoFields  = fmt.Errorf("%w: no measurement fields populated", ErrMalformedShape)
	ErrAllFields = fmt.Errorf("%w: all four measurement fields populated", ErrMalformedShape)

	ErrUnknownShapeKey  = errors.New("unknown shape key")
	ErrUnknownTypeLabel = errors.New("unknown exercise type label")
)

// Field presence bits, in the fixed declaration order weight, reps,
// distance, time. Key and label ordering follows this order, never
// alphabetical order.
const (
	fieldWeight = 1 << iota
	fieldReps
	fieldDistance
	fieldTime
)

// Classify determines the shape of a set from which of its measurement
// fields are non-nil. A set with zero populated fields, all four populated,
// or any three populated is rejected with an error wrapping
// ErrMalformedShape.
func Classify(s domain.Set) (Shape, error) {
	var mask int
	if s.Weight != nil {
		mask |= fieldWeight
	}
	if s.Reps != nil {
		mask |= fieldReps
	}
	if s.Distance != nil {
		mask |= fieldDistance
	}
	if s.Time != nil {
		mask |= fieldTime
	}

	switch mask {
	case fieldWeight | fieldReps:
		return ShapeWeightReps, nil
	case fieldDistance | fieldTime:
		return ShapeDistanceTime, nil
	case fieldWeight | fieldDistance:
		return ShapeWeightDistance, nil
	case fieldWeight | fieldTime:
		return ShapeWeightTime, nil
	case fieldReps | fieldDistance:
		return ShapeRepsDistance, nil
	case fieldReps | fieldTime:
		return ShapeRepsTime, nil
	case fieldWeight:
		return ShapeWeight, nil
	case fieldReps:
		return ShapeReps, nil
	case fieldDistance:
		return ShapeDistance, nil
	case fieldTime:
		return ShapeTime, nil
	case 0:
		return 0, ErrNoFields
	case fieldWeight | fieldReps | fieldDistance | fieldTime:
		return 0, ErrAllFields
	default:
		return 0, fmt.Errorf("%w: unsupported field combination %q", ErrMalformedShape, maskKey(mask))
	}
}

// maskKey renders an arbitrary presence mask the same way legal shape keys
// are built: populated field names joined by underscores, in field order.
// Used only for error messages about illegal combinations.
func maskKey(mask int) string {
	var key string
	for _, f := range []struct {
		bit  int
		name string
	}{
		{fieldWeight, "weight"},
		{fieldReps, "reps"},
		{fieldDistance, "distance"},
		{fieldTime, "time"},
	} {
		if mask&f.bit == 0 {
			continue
		}
		if key != "" {
			key += "_"
		}
		key += f.name
	}
	return key
}

// Key returns the canonical underscore-joined key for the shape, e.g.
// "weight_reps". Field order within the key is fixed (weight, reps,
// distance, time) for round-trip compatibility with stored data.
func (s Shape) Key() string {
	switch s {
	case ShapeWeightReps:
		return "weight_reps"
	case ShapeDistanceTime:
		return "distance_time"
	case ShapeWeightDistance:
		return "weight_distance"
	case ShapeWeightTime:
		return "weight_time"
	case ShapeRepsDistance:
		return "reps_distance"
	case ShapeRepsTime:
		return "reps_time"
	case ShapeWeight:
		return "weight"
	case ShapeReps:
		return "reps"
	case ShapeDistance:
		return "distance"
	case ShapeTime:
		return "time"
	}
	return "unknown"
}

// TypeLabel returns the human-readable variant of the shape, as stored on
// Exercise.Type, e.g. "Weight And Reps".
func (s Shape) TypeLabel() string {
	switch s {
	case ShapeWeightReps:
		return "Weight And Reps"
	case ShapeDistanceTime:
		return "Distance And Time"
	case ShapeWeightDistance:
		return "Weight And Distance"
	case ShapeWeightTime:
		return "Weight And Time"
	case ShapeRepsDistance:
		return "Reps And Distance"
	case ShapeRepsTime:
		return "Reps And Time"
	case ShapeWeight:
		return "Weight"
	case ShapeReps:
		return "Reps"
	case ShapeDistance:
		return "Distance"
	case ShapeTime:
		return "Time"
	}
	return "Unknown"
}

// ParseKey maps a canonical underscore key back to its Shape.
func ParseKey(key string) (Shape, error) {
	for _, s := range Shapes {
		if s.Key() == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShapeKey, key)
}

// ParseTypeLabel maps a human-readable exercise type label back to its
// Shape. Used to validate Exercise.Type at write time so stored labels stay
// round-trippable with shape keys.
func ParseTypeLabel(label string) (Shape, error) {
	for _, s := range Shapes {
		if s.TypeLabel() == label {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTypeLabel, label)
}

// Summary renders a compact human-readable line for a logged set, selected
// by its shape ("100 kg × 5", "5 km in 25:00", ...). A malformed set
// returns the classification error so the caller can show an explicit
// fallback instead of silently rendering nothing.
func Summary(s domain.Set) (string, error) {
	shape, err := Classify(s)
	if err != nil {
		return "", err
	}

	switch shape {
	case ShapeWeightReps:
		return fmt.Sprintf("%s kg × %d", formatNumber(*s.Weight), *s.Reps), nil
	case ShapeDistanceTime:
		return fmt.Sprintf("%s km in %s", formatNumber(*s.Distance), formatSeconds(*s.Time)), nil
	case ShapeWeightDistance:
		return fmt.Sprintf("%s kg for %s km", formatNumber(*s.Weight), formatNumber(*s.Distance)), nil
	case ShapeWeightTime:
		return fmt.Sprintf("%s kg for %s", formatNumber(*s.Weight), formatSeconds(*s.Time)), nil
	case ShapeRepsDistance:
		return fmt.Sprintf("%d × %s km", *s.Reps, formatNumber(*s.Distance)), nil
	case ShapeRepsTime:
		return fmt.Sprintf("%d × %s", *s.Reps, formatSeconds(*s.Time)), nil
	case ShapeWeight:
		return fmt.Sprintf("%s kg", formatNumber(*s.Weight)), nil
	case ShapeReps:
		return fmt.Sprintf("%d reps", *s.Reps), nil
	case ShapeDistance:
		return fmt.Sprintf("%s km", formatNumber(*s.Distance)), nil
	case ShapeTime:
		return formatSeconds(*s.Time), nil
	}
	// Unreachable: Classify only returns the ten shapes above.
	return "", fmt.Errorf("%w: shape %d", ErrMalformedShape, shape)
}

// formatNumber renders a measurement without trailing zeros (100, 102.5).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatSeconds renders a duration as m:ss, or h:mm:ss past the hour.
func formatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
