package api

import (
	"errors"
	"net/http"

	"fitlog/workout-app/internal/service"
	"fitlog/workout-app/internal/workout"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HistoryHandler holds the history service dependency.
type HistoryHandler struct {
	historyService service.HistoryService
	logger         *logrus.Logger
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService service.HistoryService, logger *logrus.Logger) *HistoryHandler {
	return &HistoryHandler{historyService: historyService, logger: logger}
}

// --- DTOs for API ---

// CategoryTagResponse is one coloured category chip next to a date.
type CategoryTagResponse struct {
	Name   string `json:"name"`
	Colour string `json:"colour"`
}

// HistoryEntryResponse is one exercise's sets on one date with its category.
type HistoryEntryResponse struct {
	ExerciseID     uint          `json:"exerciseId"`
	ExerciseName   string        `json:"exerciseName"`
	CategoryName   string        `json:"categoryName"`
	CategoryColour string        `json:"categoryColour"`
	Sets           []SetResponse `json:"sets"`
}

// DayHistoryResponse is one date in the history list.
type DayHistoryResponse struct {
	Date       string                 `json:"date"`
	Categories []CategoryTagResponse  `json:"categories"`
	Exercises  []HistoryEntryResponse `json:"exercises"`
}

// MapDayHistoryToResponse converts a workout.DayHistory to its DTO.
func MapDayHistoryToResponse(day workout.DayHistory) DayHistoryResponse {
	resp := DayHistoryResponse{
		Date:       day.Date,
		Categories: make([]CategoryTagResponse, len(day.Categories)),
		Exercises:  make([]HistoryEntryResponse, len(day.Exercises)),
	}
	for i, tag := range day.Categories {
		resp.Categories[i] = CategoryTagResponse{Name: tag.Name, Colour: tag.Colour}
	}
	for i, entry := range day.Exercises {
		resp.Exercises[i] = HistoryEntryResponse{
			ExerciseID:     entry.ExerciseID,
			ExerciseName:   entry.ExerciseName,
			CategoryName:   entry.CategoryName,
			CategoryColour: entry.CategoryColour,
			Sets:           MapSetsToResponse(entry.Sets),
		}
	}
	return resp
}

// --- Handler Methods ---

// GetHistory handles GET /history?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameters 'from' and 'to' are required.")
		return
	}

	days, err := h.historyService.History(c.Request.Context(), from, to)
	if err != nil {
		h.respondHistoryError(c, err, "Failed to retrieve history.")
		return
	}

	responses := make([]DayHistoryResponse, len(days))
	for i, day := range days {
		responses[i] = MapDayHistoryToResponse(day)
	}
	c.JSON(http.StatusOK, responses)
}

// GetCalendarMarkers handles GET /calendar/:month (YYYY-MM). The response
// maps each day with logged sets to the distinct category colours present.
func (h *HistoryHandler) GetCalendarMarkers(c *gin.Context) {
	month := c.Param("month")

	markers, err := h.historyService.CalendarMarkers(c.Request.Context(), month)
	if err != nil {
		h.respondHistoryError(c, err, "Failed to retrieve calendar markers.")
		return
	}
	c.JSON(http.StatusOK, markers)
}

// respondHistoryError maps history service errors to HTTP statuses.
func (h *HistoryHandler) respondHistoryError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, service.ErrInvalidMonth):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		h.logger.WithError(err).Error("history handler")
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
