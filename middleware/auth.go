package middleware

import (
	"net/http"
	"strings"

	organizerRepo "meetly/database/repository/organizer"
	"meetly/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthOrganizerMiddleware protects the organizer dashboard endpoints. It
// validates the bearer token and checks the organizer account still exists.
func JWTAuthOrganizerMiddleware(repo organizerRepo.OrganizerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		organizerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		org, err := repo.GetByID(c.Request.Context(), organizerID)
		if err != nil || org == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Organizer not found"})
			return
		}

		c.Set("organizerID", org.ID)
		c.Next()
	}
}
