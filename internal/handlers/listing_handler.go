package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DELasso/Airbnb-Project/internal/helpers"
	"github.com/DELasso/Airbnb-Project/internal/models"
	"github.com/DELasso/Airbnb-Project/internal/services"
	"github.com/gin-gonic/gin"
)

// criteriaFromQuery builds the filter criteria from the gallery's search
// bar query params. Missing params stay at their zero value, which the
// engine treats as "no constraint". Amenities arrive comma-separated.
func criteriaFromQuery(c *gin.Context) models.SearchCriteria {
	criteria := models.SearchCriteria{
		City:     strings.TrimSpace(c.Query("city")),
		CheckIn:  c.Query("check_in"),
		CheckOut: c.Query("check_out"),
	}

	if v, err := strconv.Atoi(c.DefaultQuery("guests", "0")); err == nil && v > 0 {
		criteria.MinGuests = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("min_price", "0")); err == nil && v > 0 {
		criteria.MinPrice = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("max_price", "0")); err == nil && v > 0 {
		criteria.MaxPrice = v
	}

	if raw := c.Query("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				criteria.RequiredAmenities = append(criteria.RequiredAmenities, a)
			}
		}
	}

	return criteria
}

func SearchListings(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := c.DefaultQuery("limit", "10")
		offset := c.DefaultQuery("offset", "0")
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
			return
		}
		offsetInt, err := strconv.Atoi(offset)
		if err != nil || offsetInt < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid offset parameter"))
			return
		}

		criteria := criteriaFromQuery(c)

		listings, total, err := ls.SearchListings(c.Request.Context(), criteria, offsetInt, limitInt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(listings, page, limitInt, total))
	}
}

func GetListingByID(ls *services.ListingService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingID, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid listing ID format"))
			return
		}

		listing, err := ls.GetListingByID(c.Request.Context(), listingID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		if listing == nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse("listing not found"))
			return
		}

		// Record the detail-page view without blocking the response.
		sessionID := c.GetString("session_id")
		if sessionID != "" {
			view := &models.ListingView{
				ListingID: listingID,
				SessionID: sessionID,
				IPAddress: c.ClientIP(),
				UserAgent: c.Request.UserAgent(),
			}
			if claims, exists := c.Get("user"); exists {
				if enhanced, ok := claims.(*helpers.EnhancedClaims); ok {
					view.UserID = &enhanced.UserID
				}
			}
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := ls.TrackView(ctx, view); err != nil {
					logger.Error("failed to track listing view", "listing_id", listingID, "error", err)
				}
			}()
		}

		c.JSON(http.StatusOK, models.SuccessResponse(listing, ""))
	}
}

func GetListingStats(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingID, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid listing ID format"))
			return
		}

		stats, err := ls.GetViewStats(c.Request.Context(), listingID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(stats, ""))
	}
}

// ListCities feeds the search bar's city autocomplete.
func ListCities(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cities, err := ls.Cities(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(cities, ""))
	}
}

// ListAmenities feeds the filter drawer's amenity chips.
func ListAmenities(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		amenities, err := ls.Amenities(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(amenities, ""))
	}
}
