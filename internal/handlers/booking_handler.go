package handlers

import (
	"net/http"
	"strings"

	"github.com/DELasso/Airbnb-Project/internal/helpers"
	"github.com/DELasso/Airbnb-Project/internal/models"
	"github.com/DELasso/Airbnb-Project/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userClaims, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		claims, ok := userClaims.(*helpers.EnhancedClaims)
		if !ok {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
			return
		}
		userId, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid user ID in token"))
			return
		}

		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := bs.CreateBooking(c.Request.Context(), &booking, userId)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Booking confirmed"))
	}
}

func GetBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid booking ID format"))
			return
		}

		userClaims, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		claims, ok := userClaims.(*helpers.EnhancedClaims)
		if !ok {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
			return
		}
		userId, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid user ID in token"))
			return
		}

		booking, err := bs.GetBooking(c.Request.Context(), bookingID, userId)
		if err != nil {
			c.JSON(http.StatusForbidden, models.ErrorResponse(err.Error()))
			return
		}
		if booking == nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse("booking not found"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, ""))
	}
}

func ListUserBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userClaims, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		claims, ok := userClaims.(*helpers.EnhancedClaims)
		if !ok {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
			return
		}
		userId, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid user ID in token"))
			return
		}

		bookings, err := bs.ListUserBookings(c.Request.Context(), userId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}
