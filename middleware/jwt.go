package middleware

import (
	"fmt"
	"strings"
	"time"

	"lms/config"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenPair carries the two tokens issued on login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// GenerateTokenPair issues a short-lived access token and a longer-lived
// refresh token, both carrying the account id and superuser flag.
func GenerateTokenPair(account models.Account) (TokenPair, error) {
	access, err := signToken(account, "access",
		time.Duration(config.AppConfig.AccessTokenMinutes)*time.Minute)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := signToken(account, "refresh",
		time.Duration(config.AppConfig.RefreshTokenHours)*time.Hour)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

func signToken(account models.Account, tokenType string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"account_id":   account.ID.String(),
		"is_superuser": account.IsSuperuser,
		"token_type":   tokenType,
		"iat":          time.Now().Unix(),
		"exp":          time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
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
	if !ok {
		return nil, fmt.Errorf("invalid token payload")
	}
	return claims, nil
}

// VerifyRefreshToken validates a refresh token and returns the account id it
// was issued for.
func VerifyRefreshToken(tokenString string) (uuid.UUID, error) {
	claims, err := parseToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	if claims["token_type"] != "refresh" {
		return uuid.Nil, fmt.Errorf("token has wrong type")
	}
	id, ok := claims["account_id"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid token payload")
	}
	return uuid.Parse(id)
}

// JWTMiddleware is a middleware to check for a valid access token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return DetailResponse(c, fiber.StatusUnauthorized, "Authentication credentials were not provided.")
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return DetailResponse(c, fiber.StatusUnauthorized, "Authentication credentials were not provided.")
	}

	tokenString := authHeader[len("Bearer "):]

	claims, err := parseToken(tokenString)
	if err != nil {
		return DetailResponse(c, fiber.StatusUnauthorized, "Given token is not valid for any token type")
	}

	if claims["token_type"] != "access" {
		return DetailResponse(c, fiber.StatusUnauthorized, "Given token is not valid for any token type")
	}

	rawID, ok := claims["account_id"].(string)
	if !ok {
		return DetailResponse(c, fiber.StatusUnauthorized, "Given token is not valid for any token type")
	}
	accountID, err := uuid.Parse(rawID)
	if err != nil {
		return DetailResponse(c, fiber.StatusUnauthorized, "Given token is not valid for any token type")
	}

	isSuperuser, _ := claims["is_superuser"].(bool)

	c.Locals("accountId", accountID)
	c.Locals("isSuperuser", isSuperuser)

	return c.Next()
}

// DetailResponse writes a single-message error body, the shape used for
// authentication, permission and not-found failures.
func DetailResponse(c *fiber.Ctx, statusCode int, detail string) error {
	return c.Status(statusCode).JSON(fiber.Map{"detail": detail})
}

// ValidationErrorResponse writes per-field error lists aggregated by the
// validators, never fail-fast on the first violation.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string][]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errors)
}
