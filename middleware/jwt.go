package middleware

import (
	"fmt"
	"strings"
	"time"

	"certify/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for a student account
func GenerateJWT(userID uint, name, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"role":   role,
		"email":  email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return nil, fmt.Errorf("invalid token payload")
	}
	return claims, nil
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	claims, err := parseToken(authHeader[len("Bearer "):])
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	// JWT numeric claims decode as float64
	userID := claims["userId"].(float64)
	c.Locals("userId", uint(userID))

	return c.Next()
}

// OptionalJWTMiddleware resolves the user when a valid token is present
// but lets anonymous requests through. Registration uses it so logged-in
// students get their applications linked to their account.
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if claims, err := parseToken(authHeader[len("Bearer "):]); err == nil {
			userID := claims["userId"].(float64)
			c.Locals("userId", uint(userID))
		}
	}
	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
