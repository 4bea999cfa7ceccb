package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/platewise/platewise-backend/internal/app/model"
)

// userResponse shapes a user for JSON output, dropping internal fields
func userResponse(user *model.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"email":         user.Email,
		"name":          user.Name,
		"phone":         user.Phone,
		"role":          user.Role,
		"restaurant_id": user.RestaurantID,
	}
}
