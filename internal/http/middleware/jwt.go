package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// signs a token embedding userID in the “sub” claim.
func GenerateJWT(userID int, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(72 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// verifies the JWT and returns the user ID (unexported, only used internally).
func parseToken(tokenString, secret string) (int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, errors.New("invalid sub claim")
	}
	return int(sub), nil
}

// like JWTMiddleware, but never rejects: a valid bearer token loads
// “currentUser” so public endpoints can personalize, anything else just
// continues anonymously.
func OptionalJWT(secret string, store UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		userID, err := parseToken(parts[1], secret)
		if err != nil {
			c.Next()
			return
		}
		if user, err := store.GetUserByID(userID); err == nil {
			c.Set("currentUser", user)
		}
		c.Next()
	}
}

// checks “Authorization: Bearer <token>”, verifies it, loads the user, and
// sets “currentUser” in context. Failures flow through the error middleware
// so the whole taxonomy renders uniformly.
func JWTMiddleware(secret string, store UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			AbortWithError(c, ErrMissingAuthToken)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			AbortWithError(c, ErrInvalidAuthToken)
			return
		}

		userID, err := parseToken(parts[1], secret)
		if err != nil {
			AbortWithError(c, ErrInvalidAuthToken)
			return
		}

		user, err := store.GetUserByID(userID)
		if err != nil {
			AbortWithError(c, ErrInvalidAuthToken)
			return
		}
		c.Set("currentUser", user)
		c.Next()
	}
}
