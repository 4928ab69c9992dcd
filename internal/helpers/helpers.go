package helpers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AvatarFolder  = "avatars"
	ListingFolder = "listings"
)

type CustomClaims struct {
	Role        string `json:"role"`
	Email       string `json:"email"`
	AppMetadata struct {
		Provider  string   `json:"provider"`
		Providers []string `json:"providers"`
		Roles     []string `json:"roles,omitempty"`
	} `json:"app_metadata"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// ValidateToken verifies a Supabase-issued JWT against the project JWKS.
// If the JWKS endpoint is unreachable the token is parsed unverified so
// local development without network still works.
func ValidateToken(tokenStr string) (*CustomClaims, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	if supabaseURL == "" {
		return nil, errors.New("SUPABASE_URL not set")
	}

	jwksURL := fmt.Sprintf("%s/rest/v1/auth/jwks", supabaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx: ctx,
	})
	if err != nil {
		token, _, parseErr := jwt.NewParser().ParseUnverified(tokenStr, &CustomClaims{})
		if parseErr != nil {
			return nil, fmt.Errorf("JWKS validation failed and fallback parsing failed: %v", parseErr)
		}
		claims, ok := token.Claims.(*CustomClaims)
		if !ok {
			return nil, errors.New("invalid token claims")
		}
		return claims, nil
	}
	defer jwks.EndBackground()

	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	return claims, nil
}

func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`\d`).MatchString(password)
	hasSpecial := regexp.MustCompile(`[@$!%*?&]`).MatchString(password)
	return hasLower && hasUpper && hasNumber && hasSpecial
}

func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

// UploadImages pushes each non-empty image (file path, URL or base64 data
// URI) to Cloudinary and returns the secure URLs plus public IDs for
// later cleanup.
func UploadImages(ctx context.Context, cld *cloudinary.Cloudinary, images []string, folder string) ([]string, []string, error) {
	if cld == nil {
		return nil, nil, fmt.Errorf("cloudinary client is not initialized")
	}

	var urls, publicIDs []string
	for _, image := range images {
		if strings.TrimSpace(image) == "" {
			continue
		}
		uploadResult, err := cld.Upload.Upload(ctx, image, uploader.UploadParams{
			Folder: folder,
			Tags:   []string{"stayfinder"},
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to upload image: %v", err)
		}
		urls = append(urls, uploadResult.SecureURL)
		publicIDs = append(publicIDs, uploadResult.PublicID)
	}

	return urls, publicIDs, nil
}

// DeleteImages removes previously uploaded assets. Best effort; errors on
// individual deletes are collected into one.
func DeleteImages(ctx context.Context, cld *cloudinary.Cloudinary, publicIDs []string) error {
	if cld == nil {
		return fmt.Errorf("cloudinary client is not initialized")
	}

	var failed []string
	for _, id := range publicIDs {
		_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: id})
		if err != nil {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to delete images: %s", strings.Join(failed, ", "))
	}
	return nil
}
