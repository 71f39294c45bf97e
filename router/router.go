package router

import (
	"mealtrack-go-api/controllers/auth"
	"mealtrack-go-api/controllers/check"
	"mealtrack-go-api/controllers/meal"
	"mealtrack-go-api/controllers/readProbe"

	"github.com/gin-gonic/gin"
)

func Router() *gin.Engine {
	route := gin.Default()

	route.GET("/read-probe", readProbe.Probe)
	route.GET("/check-live", check.CheckAlive)

	v1 := route.Group("/v1")
	{
		v1.POST("/token", auth.Token)
		v1.POST("/register", auth.Register)
		v1.POST("/login", auth.Login)
		v1.POST("/addMeal", meal.AddMeal)
		v1.POST("/editMeal", meal.EditMeal)
		v1.POST("/deleteMeal", meal.DeleteMeal)
		v1.POST("/getMeals", meal.GetMeals)
		v1.POST("/getMealTypes", meal.GetMealTypes)
	}

	return route
}
