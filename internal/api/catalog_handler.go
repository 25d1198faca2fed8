package api

import (
	"errors"
	"net/http"
	"time"

	"fitlog/workout-app/internal/domain"
	"fitlog/workout-app/internal/service"
	"fitlog/workout-app/internal/workout"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CatalogHandler holds the catalog service dependency.
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *logrus.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, logger: logger}
}

// --- DTOs for API ---

// CategoryRequest defines the expected JSON for creating or editing a
// category.
type CategoryRequest struct {
	Name   string `json:"name" binding:"required"`
	Colour string `json:"colour" binding:"required"`
}

// CategoryResponse is the DTO for returning category details.
type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Colour    string    `json:"colour"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExerciseRequest defines the expected JSON for creating or editing an
// exercise. Type must be one of the ten shape labels.
type ExerciseRequest struct {
	Name       string `json:"name" binding:"required"`
	Notes      string `json:"notes"`
	Type       string `json:"type" binding:"required"`
	CategoryID uint   `json:"categoryId" binding:"required"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Notes      string    `json:"notes,omitempty"`
	Type       string    `json:"type"`
	CategoryID uint      `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MapCategoryToResponse converts a domain.Category to CategoryResponse.
func MapCategoryToResponse(category *domain.Category) CategoryResponse {
	if category == nil {
		return CategoryResponse{}
	}
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Colour:    category.Colour,
		CreatedAt: category.CreatedAt,
	}
}

// MapCategoriesToResponse converts a slice of domain.Category to DTOs.
func MapCategoriesToResponse(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = MapCategoryToResponse(&categories[i])
	}
	return responses
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse.
func MapExerciseToResponse(exercise *domain.Exercise) ExerciseResponse {
	if exercise == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:         exercise.ID,
		Name:       exercise.Name,
		Notes:      exercise.Notes,
		Type:       exercise.Type,
		CategoryID: exercise.CategoryID,
		CreatedAt:  exercise.CreatedAt,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to DTOs.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- Category Handlers ---

// CreateCategory handles POST /categories.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req.Name, req.Colour)
	if err != nil {
		h.respondCatalogError(c, err, "Failed to create category.")
		return
	}
	c.JSON(http.StatusCreated, MapCategoryToResponse(category))
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		h.respondCatalogError(c, err, "Failed to retrieve categories.")
		return
	}
	c.JSON(http.StatusOK, MapCategoriesToResponse(categories))
}

// GetCategory handles GET /categories/:id.
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := h.catalogService.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.respondCatalogError(c, err, "Failed to retrieve category.")
		return
	}
	c.JSON(http.StatusOK, MapCategoryToResponse(category))
}

// UpdateCategory handles PUT /categories/:id.
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	category, err := h.catalogService.UpdateCategory(c.Request.Context(), id, req.Name, req.Colour)
	if err != nil {
		h.respondCatalogError(c, err, "Failed to update category.")
		return
	}
	c.JSON(http.StatusOK, MapCategoryToResponse(category))
}

// DeleteCategory handles DELETE /categories/:id.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		h.respondCatalogError(c, err, "Failed to delete category.")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCategoryExercises handles GET /categories/:id/exercises.
func (h *CatalogHandler) GetCategoryExercises(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	exercises, err := h.catalogService.ExercisesByCategory(c.Request.Context(), id)
	if err != nil {
		h.respondCatalogError(c, err, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// --- Exercise Handlers ---

// CreateExercise handles POST /exercises.
func (h *CatalogHandler) CreateExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.CreateExercise(
		c.Request.Context(), req.Name, req.Notes, req.Type, req.CategoryID)
	if err != nil {
		h.respondCatalogError(c, err, "Failed to create exercise.")
		return
	}
	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// ListExercises handles GET /exercises.
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	exercises, err := h.catalogService.ListExercises(c.Request.Context())
	if err != nil {
		h.respondCatalogError(c, err, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetExercise handles GET /exercises/:id.
func (h *CatalogHandler) GetExercise(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	exercise, err := h.catalogService.GetExercise(c.Request.Context(), id)
	if err != nil {
		h.respondCatalogError(c, err, "Failed to retrieve exercise.")
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// UpdateExercise handles PUT /exercises/:id.
func (h *CatalogHandler) UpdateExercise(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.UpdateExercise(
		c.Request.Context(), id, req.Name, req.Notes, req.Type, req.CategoryID)
	if err != nil {
		h.respondCatalogError(c, err, "Failed to update exercise.")
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// DeleteExercise handles DELETE /exercises/:id.
func (h *CatalogHandler) DeleteExercise(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteExercise(c.Request.Context(), id); err != nil {
		h.respondCatalogError(c, err, "Failed to delete exercise.")
		return
	}
	c.Status(http.StatusNoContent)
}

// respondCatalogError maps catalog service errors to HTTP statuses.
func (h *CatalogHandler) respondCatalogError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateName):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, service.ErrInvalidColour),
		errors.Is(err, workout.ErrUnknownTypeLabel):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		h.logger.WithError(err).Error("catalog handler")
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
