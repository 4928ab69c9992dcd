package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/DELasso/Airbnb-Project/internal/helpers"
	"github.com/DELasso/Airbnb-Project/internal/models"
	"github.com/DELasso/Airbnb-Project/internal/services"
	"github.com/gin-gonic/gin"
)

// GetListingReviews returns a listing's reviews plus the derived rating
// summary in a single payload, the way the detail page consumes them.
func GetListingReviews(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingID, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid listing ID format"))
			return
		}

		reviews, summary, err := rs.GetListingReviews(c.Request.Context(), listingID)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"reviews": reviews,
			"summary": summary,
		}, ""))
	}
}

// SubmitReview accepts a composer draft. Validation failures are user
// errors, reported as 422 and never logged as faults.
func SubmitReview(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingID, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid listing ID format"))
			return
		}

		var draft models.ReviewDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
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

		// Authorship always comes from the session, not the payload.
		draft.AuthorName = claims.DisplayName()
		draft.AuthorAvatarURL = claims.AvatarURL

		review, err := rs.SubmitReview(c.Request.Context(), listingID, draft)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrEmptyComment),
				errors.Is(err, models.ErrCommentTooShort),
				errors.Is(err, models.ErrNoRatingProvided):
				c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(err.Error()))
			case strings.Contains(err.Error(), "not found"):
				c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error()))
			default:
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			}
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(review, "Review submitted successfully"))
	}
}
