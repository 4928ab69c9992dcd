package handlers

import (
	"strconv"
	"strings"

	"github.com/DELasso/Airbnb-Project/internal/helpers"
	"github.com/DELasso/Airbnb-Project/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func AddToFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingId, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid listing ID format"})
			return
		}
		claims, exists := c.Get("user")
		if !exists {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}
		userClaims, ok := claims.(*helpers.EnhancedClaims)
		if !ok {
			c.JSON(500, gin.H{"error": "Invalid user claims"})
			return
		}

		parsedUserId, err := uuid.Parse(userClaims.UserID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		res, err := f.AddToFavourites(c.Request.Context(), parsedUserId, listingId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, res)
	}
}

func RemoveFromFavourite(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingId, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid listing ID format"})
			return
		}
		claims, exists := c.Get("user")
		if !exists {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}
		userClaims, ok := claims.(*helpers.EnhancedClaims)
		if !ok {
			c.JSON(500, gin.H{"error": "Invalid user claims"})
			return
		}

		parsedUserId, err := uuid.Parse(userClaims.UserID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		err = f.RemoveFromFavourites(c.Request.Context(), parsedUserId, listingId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"message": "Listing removed from favourites"})
	}
}

func GetUserFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := c.Get("user")
		if !exists {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}
		userClaims, ok := claims.(*helpers.EnhancedClaims)
		if !ok {
			c.JSON(500, gin.H{"error": "Invalid user claims"})
			return
		}

		parsedUserId, err := uuid.Parse(userClaims.UserID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		res, err := f.GetFavouritesByUserID(c.Request.Context(), parsedUserId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, res)
	}
}
