package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/DELasso/Airbnb-Project/internal/services"
	"github.com/gin-gonic/gin"
)

func frontendURL() string {
	url := os.Getenv("FRONTEND_URL")
	if url != "" {
		return url
	}
	if os.Getenv("GIN_MODE") == "production" {
		return "https://stayfinder.app"
	}
	return "http://localhost:3000"
}

// GoogleAuth initiates Google OAuth flow via Supabase
func GoogleAuth(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		redirectTo := c.Query("redirect_to")
		if redirectTo == "" {
			redirectTo = frontendURL() + "/auth/callback"
		}

		authURL, err := u.GetGoogleAuthURL(redirectTo)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to generate Google auth URL",
				"message": err.Error(),
			})
			return
		}

		c.Redirect(http.StatusTemporaryRedirect, authURL)
	}
}

// GoogleAuthCallback handles the callback from Google OAuth.
// Supabase sends tokens as URL fragments (#access_token=...) which are
// handled client-side; this endpoint mainly forwards errors.
func GoogleAuthCallback(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authError := c.Query("error")
		errorDescription := c.Query("error_description")

		if authError != "" {
			redirectURL := fmt.Sprintf("%s/auth/signin?error=%s&error_description=%s",
				frontendURL(), authError, errorDescription)
			c.Redirect(http.StatusTemporaryRedirect, redirectURL)
			return
		}

		c.Redirect(http.StatusTemporaryRedirect, frontendURL()+"/auth/callback")
	}
}

// Logout handler
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "production"

		// Clear all auth cookies
		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)
		c.SetCookie("refresh_token", "", -1, "/", "", isProduction, true)
		c.SetCookie("session_id", "", -1, "/", "", false, true)

		c.JSON(http.StatusOK, gin.H{
			"message": "Logged out successfully",
		})
	}
}
