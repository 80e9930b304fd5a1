package middleware

import (
	"net/http"
	"strings"

	"hotelier/internal/apierror"
	"hotelier/internal/model"
	"hotelier/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey = "claims"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route: signature
// and expiry first, then the persisted token row (logout and the sweeper
// invalidate sessions there), then the owning user. A vanished user yields
// 404, an inactive one 403 — the token itself being fine in both cases.
func JWTAuth(secret string, tokens repository.TokenRepository, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Invalid or expired token"))
			return
		}

		ctx := c.Request.Context()

		stored, err := tokens.FindByToken(ctx, tokenStr)
		if err != nil || stored.Status != model.TokenActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token is not active"))
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Malformed token claims"))
			return
		}
		user, err := users.FindByID(ctx, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, apierror.New("User no longer exists"))
			return
		}
		if !user.Active {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Account is disabled"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose user type is not in the allowed list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*JWTClaims)
		if !ok || !allowed[claims.UserType] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}
