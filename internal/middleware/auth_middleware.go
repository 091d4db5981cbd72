package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/farellandr/meetapp/internal/helpers"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Token not provided.")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Token malformatted.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Token invalid.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Token invalid.")
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Token invalid.")
			c.Abort()
			return
		}

		c.Set("user_id", uint(userID))
		c.Next()
	}
}
