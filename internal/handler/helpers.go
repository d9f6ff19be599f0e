package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/menu-price-insights/internal/middleware"
)

// getQueryInt retrieves an integer query parameter with a default value
func getQueryInt(c *gin.Context, paramName string, defaultValue int) (int, error) {
	valueStr := c.Query(paramName)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}

	return value, nil
}

// bindJSON binds JSON request body to a struct
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("invalid JSON format: %v", err)
	}
	return nil
}

// restaurantID returns the restaurant scope set by the auth middleware
func restaurantID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.RestaurantIDKey)
	return id, id != ""
}

// accessToken returns the caller's bearer token for forwarding to the history service
func accessToken(c *gin.Context) string {
	return c.GetString(middleware.AccessTokenKey)
}
