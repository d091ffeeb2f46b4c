package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/constants"
	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/services"
)

// RegisterRoutes mounts the health check and task API on r
func RegisterRoutes(r *gin.Engine, taskService *services.TaskService, store sessions.Store) {
	taskHandler := NewTaskHandler(taskService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task Tracker API is running",
		})
	})

	api := r.Group("/api")
	api.Use(sessions.Sessions(constants.SessionCookieName, store))
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", middleware.RequireViewState(), taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.POST("/generate", taskHandler.GenerateTasks)
			tasks.GET("/:id", middleware.RequireTask(taskService), taskHandler.GetTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}
}
