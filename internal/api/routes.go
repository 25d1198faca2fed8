package api

import (
	"net/http"

	"fitlog/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRoutes wires the handlers into the router.
func SetupRoutes(
	router *gin.Engine,
	logger *logrus.Logger,
	setService service.SetService,
	catalogService service.CatalogService,
	historyService service.HistoryService,
) {
	setHandler := NewSetHandler(setService, logger)
	catalogHandler := NewCatalogHandler(catalogService, logger)
	historyHandler := NewHistoryHandler(historyService, logger)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		setGroup := apiV1.Group("/sets")
		{
			setGroup.POST("", setHandler.LogSet)
			setGroup.GET("/:id", setHandler.GetSet)
			setGroup.PUT("/:id", setHandler.UpdateSet)
			setGroup.DELETE("/:id", setHandler.DeleteSet)
		}

		// GET /api/v1/workouts/2024-01-01 - everything logged that day,
		// grouped per exercise in logging order.
		apiV1.GET("/workouts/:date", setHandler.GetWorkout)

		categoryGroup := apiV1.Group("/categories")
		{
			categoryGroup.POST("", catalogHandler.CreateCategory)
			categoryGroup.GET("", catalogHandler.ListCategories)
			categoryGroup.GET("/:id", catalogHandler.GetCategory)
			categoryGroup.PUT("/:id", catalogHandler.UpdateCategory)
			categoryGroup.DELETE("/:id", catalogHandler.DeleteCategory)
			categoryGroup.GET("/:id/exercises", catalogHandler.GetCategoryExercises)
		}

		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.POST("", catalogHandler.CreateExercise)
			exerciseGroup.GET("", catalogHandler.ListExercises)
			exerciseGroup.GET("/:id", catalogHandler.GetExercise)
			exerciseGroup.PUT("/:id", catalogHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", catalogHandler.DeleteExercise)
		}

		// GET /api/v1/history?from=...&to=... - chronological list view
		apiV1.GET("/history", historyHandler.GetHistory)
		// GET /api/v1/calendar/2024-01 - day markers for the month view
		apiV1.GET("/calendar/:month", historyHandler.GetCalendarMarkers)
	}
}
