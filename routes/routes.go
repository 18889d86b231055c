package routes

import (
	"net/http"

	"fitness-backend/controllers"
	"fitness-backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"success": false, "message": "method not allowed",
		})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false, "message": "not found",
		})
	})

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected routes: the auth middleware attaches the session every
	// handler scopes its queries by.
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/goals", controllers.UpdateGoals)

		api.POST("/weights", controllers.RecordWeight)
		api.GET("/weights", controllers.ListWeights)

		api.POST("/meals", controllers.RecordMeal)
		api.GET("/meals", controllers.ListMeals)

		api.DELETE("/records", controllers.DeleteRecord)

		api.GET("/dashboard/meals-by-day", controllers.MealsByDay)
		api.GET("/dashboard/weight-trend", controllers.WeightTrend)
		api.GET("/dashboard/calorie-surplus", controllers.CalorieSurplus)
		api.GET("/dashboard/today", controllers.TodaySummary)

		api.GET("/ws", controllers.RefreshWS)
	}

	return r
}
