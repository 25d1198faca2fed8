package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fitlog/workout-app/internal/domain"
	"fitlog/workout-app/internal/service"
	"fitlog/workout-app/internal/workout"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetHandler holds the set service dependency.
type SetHandler struct {
	setService service.SetService
	logger     *logrus.Logger
}

// NewSetHandler creates a new SetHandler.
func NewSetHandler(setService service.SetService, logger *logrus.Logger) *SetHandler {
	return &SetHandler{setService: setService, logger: logger}
}

// --- DTOs for API ---

// SetRequest defines the expected JSON for logging or editing a set.
type SetRequest struct {
	Date       string   `json:"date" binding:"required"`
	ExerciseID uint     `json:"exerciseId" binding:"required"`
	Weight     *float64 `json:"weight"`
	Reps       *int     `json:"reps"`
	Distance   *float64 `json:"distance"`
	Time       *int     `json:"time"`
	Notes      string   `json:"notes"`
}

// SetResponse is the DTO for returning a logged set. ShapeKey and Summary
// are derived per render from the populated fields; a stored set whose
// fields no longer form a legal shape degrades to an explicit fallback
// summary instead of failing the whole listing.
type SetResponse struct {
	ID         uint      `json:"id"`
	Date       string    `json:"date"`
	ExerciseID uint      `json:"exerciseId"`
	Weight     *float64  `json:"weight,omitempty"`
	Reps       *int      `json:"reps,omitempty"`
	Distance   *float64  `json:"distance,omitempty"`
	Time       *int      `json:"time,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	ShapeKey   string    `json:"shapeKey,omitempty"`
	Summary    string    `json:"summary"`
	CreatedAt  time.Time `json:"createdAt"`
}

// unrecognizedSummary is rendered for a set whose populated fields don't
// form one of the ten legal shapes.
const unrecognizedSummary = "unrecognized set type"

// MapSetToResponse converts a domain.Set to a SetResponse DTO.
func MapSetToResponse(set *domain.Set) SetResponse {
	if set == nil {
		return SetResponse{}
	}
	resp := SetResponse{
		ID:         set.ID,
		Date:       set.Date,
		ExerciseID: set.ExerciseID,
		Weight:     set.Weight,
		Reps:       set.Reps,
		Distance:   set.Distance,
		Time:       set.Time,
		Notes:      set.Notes,
		CreatedAt:  set.CreatedAt,
	}

	shape, err := workout.Classify(*set)
	if err != nil {
		resp.Summary = unrecognizedSummary
		return resp
	}
	resp.ShapeKey = shape.Key()
	if summary, err := workout.Summary(*set); err == nil {
		resp.Summary = summary
	} else {
		resp.Summary = unrecognizedSummary
	}
	return resp
}

// MapSetsToResponse converts a slice of domain.Set to SetResponse DTOs.
func MapSetsToResponse(sets []domain.Set) []SetResponse {
	responses := make([]SetResponse, len(sets))
	for i := range sets {
		responses[i] = MapSetToResponse(&sets[i])
	}
	return responses
}

// ExerciseSetsResponse is one exercise's group within a day workout.
type ExerciseSetsResponse struct {
	ExerciseID   uint          `json:"exerciseId"`
	ExerciseName string        `json:"exerciseName"`
	Sets         []SetResponse `json:"sets"`
}

// DayWorkoutResponse is the per-date workout view model.
type DayWorkoutResponse struct {
	Date      string                 `json:"date"`
	Exercises []ExerciseSetsResponse `json:"exercises"`
}

// MapDayWorkoutToResponse converts a workout.DayWorkout to its DTO.
func MapDayWorkoutToResponse(day workout.DayWorkout) DayWorkoutResponse {
	resp := DayWorkoutResponse{
		Date:      day.Date,
		Exercises: make([]ExerciseSetsResponse, len(day.Exercises)),
	}
	for i, group := range day.Exercises {
		resp.Exercises[i] = ExerciseSetsResponse{
			ExerciseID:   group.ExerciseID,
			ExerciseName: group.ExerciseName,
			Sets:         MapSetsToResponse(group.Sets),
		}
	}
	return resp
}

// --- Handler Methods ---

// LogSet handles POST /sets.
func (h *SetHandler) LogSet(c *gin.Context) {
	var req SetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	set, err := h.setService.LogSet(c.Request.Context(), requestToInput(req))
	if err != nil {
		h.respondSetError(c, err, "Failed to log set.")
		return
	}
	c.JSON(http.StatusCreated, MapSetToResponse(set))
}

// GetSet handles GET /sets/:id.
func (h *SetHandler) GetSet(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	set, err := h.setService.GetSet(c.Request.Context(), id)
	if err != nil {
		h.respondSetError(c, err, "Failed to retrieve set.")
		return
	}
	c.JSON(http.StatusOK, MapSetToResponse(set))
}

// UpdateSet handles PUT /sets/:id.
func (h *SetHandler) UpdateSet(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req SetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	set, err := h.setService.UpdateSet(c.Request.Context(), id, requestToInput(req))
	if err != nil {
		h.respondSetError(c, err, "Failed to update set.")
		return
	}
	c.JSON(http.StatusOK, MapSetToResponse(set))
}

// DeleteSet handles DELETE /sets/:id.
func (h *SetHandler) DeleteSet(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.setService.DeleteSet(c.Request.Context(), id); err != nil {
		h.respondSetError(c, err, "Failed to delete set.")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetWorkout handles GET /workouts/:date.
func (h *SetHandler) GetWorkout(c *gin.Context) {
	date := c.Param("date")

	day, err := h.setService.WorkoutForDate(c.Request.Context(), date)
	if err != nil {
		h.respondSetError(c, err, "Failed to retrieve workout.")
		return
	}
	c.JSON(http.StatusOK, MapDayWorkoutToResponse(day))
}

func requestToInput(req SetRequest) service.SetInput {
	return service.SetInput{
		Date:       req.Date,
		ExerciseID: req.ExerciseID,
		Weight:     req.Weight,
		Reps:       req.Reps,
		Distance:   req.Distance,
		Time:       req.Time,
		Notes:      req.Notes,
	}
}

// respondSetError maps set service errors to HTTP statuses.
func (h *SetHandler) respondSetError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrSetNotFound),
		errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrShapeMismatch),
		errors.Is(err, workout.ErrMalformedShape):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		h.logger.WithError(err).Error("set handler")
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

// parseIDParam parses the :id path parameter, responding 400 on garbage.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid id parameter.")
		return 0, false
	}
	return uint(id), true
}
