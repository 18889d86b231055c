package controllers

import (
	"errors"
	"net/http"

	"fitness-backend/config"
	"fitness-backend/services"
	"fitness-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false, "message": "username and password are required",
		})
		return
	}

	svc := services.NewAuthService(config.DB)
	user, err := svc.Register(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false, "message": "username already taken",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "registration failed",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "registration successful",
		"user_id": user.ID,
	})
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false, "message": "username and password are required",
		})
		return
	}

	svc := services.NewAuthService(config.DB)
	user, err := svc.Authenticate(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "invalid username or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "login failed",
		})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "could not generate token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "login successful",
		"user_id":        user.ID,
		"username":       user.Username,
		"target_kcal":    user.TargetKcal,
		"target_protein": user.TargetProtein,
		"target_weight":  user.TargetWeight,
		"token":          token,
	})
}
