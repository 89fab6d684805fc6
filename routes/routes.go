package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nikhilpktcr/dietPlanner/controllers"
	"github.com/nikhilpktcr/dietPlanner/middlewares"
	"github.com/nikhilpktcr/dietPlanner/models"
	"github.com/nikhilpktcr/dietPlanner/services"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	profiles := r.Group("/user-profiles")
	profiles.Use(middlewares.AuthMiddleware(), middlewares.Authorize(models.RoleUser, models.RoleAdmin))
	{
		profiles.POST("/create", controllers.CreateProfile)
		profiles.PUT("/update/:userId", controllers.UpdateProfile)
		profiles.GET("/get/:userId", controllers.GetProfile)
	}

	bmiLogs := r.Group("/bmi-logs")
	bmiLogs.Use(middlewares.AuthMiddleware(), middlewares.Authorize(models.RoleUser))
	{
		bmiLogs.GET("", controllers.GetBmiLogs)
		bmiLogs.GET("/:id", controllers.GetBmiLogByID)
		bmiLogs.POST("", controllers.CreateBmiLog)
		bmiLogs.PUT("/:id", controllers.UpdateBmiLog)
		bmiLogs.DELETE("/:id", controllers.DeleteBmiLog)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("/create", middlewares.Authorize(models.RoleAdmin), controllers.CreateMeal)
		meals.PUT("/update/:mealId", middlewares.Authorize(models.RoleAdmin), controllers.UpdateMeal)
		meals.DELETE("/delete/:mealId", middlewares.Authorize(models.RoleAdmin, models.RoleUser), controllers.DeleteMeal)
		meals.GET("/get/:mealId", middlewares.Authorize(models.RoleAdmin, models.RoleUser), controllers.GetMeal)
		meals.GET("/getAll", middlewares.Authorize(models.RoleAdmin, models.RoleUser), controllers.GetAllMeals)
		meals.GET("/count", middlewares.Authorize(models.RoleAdmin, models.RoleUser), controllers.GetMealsCount)
	}

	plans := r.Group("/diet-plans")
	plans.Use(middlewares.AuthMiddleware(), middlewares.Authorize(models.RoleUser))
	{
		plans.POST("", controllers.CreateDietPlan)
		plans.GET("/me", controllers.GetMyDietPlan)
		plans.PUT("/:id", controllers.UpdateDietPlan)
		plans.DELETE("/:id", controllers.DeleteDietPlan)
	}

	dietLogs := r.Group("/diet-logs")
	dietLogs.Use(middlewares.AuthMiddleware(), middlewares.Authorize(models.RoleUser))
	{
		dietLogs.POST("", controllers.CreateDietLog)
		dietLogs.GET("", controllers.GetDietLogs)
	}

	rc := controllers.NewRealtimeController(hub)
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware(), middlewares.Authorize(models.RoleUser))
	{
		ws.GET("/bmi-logs", rc.BmiLogsWS)
	}

	return r
}
