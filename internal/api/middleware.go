package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context key for the authenticated user id.
const ContextUserIDKey = "userID"

// jwtClaims mirrors the payload written by authService.generateJWT.
type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// IdentityMiddleware resolves a Bearer token into the request context when
// one is present. It never rejects: every endpoint accepts an explicit
// userId parameter, and the token only fills in when that is omitted.
func IdentityMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Next()
			return
		}

		claims := &jwtClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err == nil && token.Valid && claims.UserID != "" {
			c.Set(ContextUserIDKey, claims.UserID)
		}

		c.Next()
	}
}

// Helper to return a JSON error response and abort the request.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}

// resolveUserID picks the owning user for a request: an explicit id wins
// (body field or userId query parameter), falling back to the token
// identity set by IdentityMiddleware.
func resolveUserID(c *gin.Context, explicit string) (primitive.ObjectID, error) {
	idStr := explicit
	if idStr == "" {
		idStr = c.Query("userId")
	}
	if idStr == "" {
		if fromToken, ok := c.Get(ContextUserIDKey); ok {
			idStr, _ = fromToken.(string)
		}
	}
	if idStr == "" {
		return primitive.NilObjectID, fmt.Errorf("userId required")
	}
	return primitive.ObjectIDFromHex(idStr)
}

// pathObjectID parses the :id path parameter.
func pathObjectID(c *gin.Context) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Param("id"))
}

// internalError logs the underlying cause and responds with a generic 500.
func internalError(c *gin.Context, err error) {
	logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	abortWithError(c, http.StatusInternalServerError, "Server error")
}
