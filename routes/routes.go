package routes

import (
	"net/http"
	"time"

	"github.com/RidgwayA/cal-tracker/controllers"
	"github.com/RidgwayA/cal-tracker/middlewares"
	"github.com/RidgwayA/cal-tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "API is running", "timestamp": time.Now().Format(time.RFC3339)})
	})

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything below requires a bearer token.
	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		users := protected.Group("/users")
		{
			users.GET("/:id", controllers.GetUser)
			users.PUT("/:id/preferences", controllers.UpdateUserPreferences)
			users.GET("/:id/summary/:date", controllers.GetDailySummary)
		}

		meals := protected.Group("/meals")
		{
			meals.POST("", controllers.AddMeal)
			meals.GET("/:userId/:date", controllers.ListMealsForDate)
			meals.DELETE("/:mealId", controllers.DeleteMeal)
		}

		foods := protected.Group("/foods")
		{
			foods.POST("/:mealId", controllers.AddFood)
			foods.GET("/:mealId", controllers.ListFoods)
			foods.PUT("/:foodId", controllers.UpdateFood)
			foods.DELETE("/:foodId", controllers.DeleteFood)
		}

		rc := controllers.NewRealtimeController(hub)
		protected.GET("/ws", rc.ChangesWS)
	}

	return r
}
