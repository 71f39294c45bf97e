package auth

import (
	"fmt"
	"net/http"

	"mealtrack-go-api/database"
	authService "mealtrack-go-api/services/auth"
	"mealtrack-go-api/services/trackLog"
	"mealtrack-go-api/structs"

	"github.com/gin-gonic/gin"
)

var service authService.AuthService

func Token(c *gin.Context) {
	var item structs.AuthenticationItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}
	if database.IsTokenValid(item.Token) {
		trackLog.Info("/v1/token: 200: valid token", true)
		c.JSON(http.StatusOK, gin.H{"message": "valid token"})
		return
	}
	trackLog.Warning("/v1/token: 401: invalid token", true)
	c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
}

func Register(c *gin.Context) {
	var credentials structs.CredentialsItem
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}
	user, result := service.Register(credentials)
	switch result {
	case authService.ResultUserExists:
		trackLog.Warning(fmt.Sprintf("/v1/register: 406: user already exists: %s", credentials.UserName), true)
		c.JSON(http.StatusNotAcceptable, gin.H{"message": "user already exists"})
	case authService.ResultInvalidToken:
		trackLog.Warning(fmt.Sprintf("/v1/register: 401: invalid token: %s", credentials.UserName), true)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
	case authService.ResultOK:
		trackLog.Info(fmt.Sprintf("/v1/register: 200: successfully registered user: %s", credentials.UserName), true)
		c.JSON(http.StatusOK, user)
	default:
		trackLog.Error("/v1/register: 500: operation failed", true)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "operation failed"})
	}
}

func Login(c *gin.Context) {
	var credentials structs.CredentialsItem
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}
	user, result := service.Login(credentials)
	switch result {
	case authService.ResultUnknownUser:
		trackLog.Warning(fmt.Sprintf("/v1/login: 406: user does not exist: %s", credentials.UserName), true)
		c.JSON(http.StatusNotAcceptable, gin.H{"message": "user does not exist"})
	case authService.ResultInvalidToken:
		trackLog.Warning(fmt.Sprintf("/v1/login: 401: invalid token: %s", credentials.UserName), true)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
	case authService.ResultInvalidPassword:
		trackLog.Warning(fmt.Sprintf("/v1/login: 401: invalid password: %s", credentials.UserName), true)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid password"})
	case authService.ResultOK:
		trackLog.Info(fmt.Sprintf("/v1/login: 200: successfully logged user in: %s", credentials.UserName), true)
		c.JSON(http.StatusOK, user)
	default:
		trackLog.Error("/v1/login: 500: operation failed", true)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "operation failed"})
	}
}
