package meal

import (
	"fmt"
	"net/http"

	mealService "mealtrack-go-api/services/meal"
	"mealtrack-go-api/services/trackLog"
	"mealtrack-go-api/structs"

	"github.com/gin-gonic/gin"
)

var service mealService.MealService

func AddMeal(c *gin.Context) {
	var item structs.MealItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}
	switch out := service.AddMeal(item); out {
	case mealService.OutcomeOK:
		trackLog.Info("/v1/addMeal: 200: successfully added meal", true)
		c.JSON(http.StatusOK, gin.H{"message": "successfully added meal"})
	case mealService.OutcomeDuplicateMeal:
		trackLog.Warning("/v1/addMeal: 400: could not create day meal", true)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Meal already exists. To edit meal use /v1/editMeal"})
	case mealService.OutcomeInvalidMealType:
		trackLog.Warning(fmt.Sprintf("/v1/addMeal: 400: invalid meal type: %s", item.MealType), true)
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid meal type"})
	default:
		respondCommon(c, "/v1/addMeal", out)
	}
}

func EditMeal(c *gin.Context) {
	var item structs.MealItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}
	switch out := service.EditMeal(item); out {
	case mealService.OutcomeOK:
		trackLog.Info("/v1/editMeal: 200: successfully edited meal", true)
		c.JSON(http.StatusOK, gin.H{"message": "successfully edited meal"})
	case mealService.OutcomeDayNotFound:
		trackLog.Warning("/v1/editMeal: 404: day not found", true)
		c.JSON(http.StatusNotFound, gin.H{"message": "day not found"})
	case mealService.OutcomeMealNotFound:
		trackLog.Warning("/v1/editMeal: 404: meal not found for the specified day", true)
		c.JSON(http.StatusNotFound, gin.H{"message": "meal not found for the specified day"})
	case mealService.OutcomeInvalidMealType:
		trackLog.Warning(fmt.Sprintf("/v1/editMeal: 400: invalid meal type: %s", item.MealType), true)
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid meal type"})
	default:
		respondCommon(c, "/v1/editMeal", out)
	}
}

func DeleteMeal(c *gin.Context) {
	var item structs.DeleteMealItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}
	switch out := service.DeleteMeal(item); out {
	case mealService.OutcomeOK:
		trackLog.Info("/v1/deleteMeal: 200: successfully deleted meal and day_meal entry", true)
		c.JSON(http.StatusOK, gin.H{"message": "successfully deleted meal"})
	case mealService.OutcomeDayNotFound:
		trackLog.Warning("/v1/deleteMeal: 404: day not found", true)
		c.JSON(http.StatusNotFound, gin.H{"message": "day not found"})
	case mealService.OutcomeMealNotFound:
		trackLog.Warning("/v1/deleteMeal: 404: meal or day_meal entry not found", true)
		c.JSON(http.StatusNotFound, gin.H{"message": "meal or day_meal entry not found"})
	case mealService.OutcomeInvalidMealType:
		trackLog.Warning(fmt.Sprintf("/v1/deleteMeal: 400: invalid meal type: %s", item.MealType), true)
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid meal type"})
	default:
		respondCommon(c, "/v1/deleteMeal", out)
	}
}

func GetMeals(c *gin.Context) {
	var item structs.GetMealsItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}
	meals, out := service.GetMeals(item)
	if out != mealService.OutcomeOK {
		respondCommon(c, "/v1/getMeals", out)
		return
	}
	trackLog.Info("/v1/getMeals: 200: successfully retrieved meals", true)
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func GetMealTypes(c *gin.Context) {
	var credentials structs.CredentialsItem
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}
	mealTypes, out := service.GetMealTypes(credentials.Token)
	switch out {
	case mealService.OutcomeOK:
		trackLog.Info("/v1/getMealTypes: 200: successfully fetched meal types", true)
		c.JSON(http.StatusOK, gin.H{"mealTypes": mealTypes})
	case mealService.OutcomeInvalidToken:
		trackLog.Warning("/v1/getMealTypes: 401: invalid token", true)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
	default:
		trackLog.Error("/v1/getMealTypes: 500: error fetching meal types", true)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "error fetching meal types"})
	}
}

// respondCommon maps the preamble outcomes every meal endpoint shares.
func respondCommon(c *gin.Context, route string, out mealService.Outcome) {
	switch out {
	case mealService.OutcomeInvalidToken:
		trackLog.Warning(fmt.Sprintf("%s: 401: invalid token", route), true)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
	case mealService.OutcomeInvalidPassword:
		trackLog.Warning(fmt.Sprintf("%s: 401: invalid password", route), true)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid password"})
	case mealService.OutcomeUnknownUser:
		trackLog.Warning(fmt.Sprintf("%s: 406: user does not exist", route), true)
		c.JSON(http.StatusNotAcceptable, gin.H{"message": "user does not exist"})
	default:
		trackLog.Error(fmt.Sprintf("%s: 500: unhandled return from login method", route), true)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "unhandled return from login method"})
	}
}
