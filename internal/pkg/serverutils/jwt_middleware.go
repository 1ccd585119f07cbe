package serverutils

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

var jwtSecret []byte

// SetJWTSecret installs the signing secret from the loaded configuration.
// When unset, the JWT_SECRET environment variable is used instead.
func SetJWTSecret(secret string) {
	if secret == "" {
		jwtSecret = nil
		return
	}
	jwtSecret = []byte(secret)
}

func signingKey() []byte {
	if jwtSecret != nil {
		return jwtSecret
	}
	return []byte(os.Getenv("JWT_SECRET"))
}

// IssueToken signs an HS256 access token for the given user.
func IssueToken(userId uuid.UUID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"email":   email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

// JwtMiddleware verifies the bearer token and stores user_id and email in
// the request locals.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ErrorResponse(ctx, fiber.StatusUnauthorized, "Invalid authorization token")
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return signingKey(), nil
	})

	if err != nil || !token.Valid {
		return ErrorResponse(ctx, fiber.StatusUnauthorized, "Invalid authorization token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrorResponse(ctx, fiber.StatusUnauthorized, "Invalid authorization token")
	}

	rawId, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(rawId)
	if err != nil {
		return ErrorResponse(ctx, fiber.StatusUnauthorized, "Invalid authorization token")
	}

	email, _ := claims["email"].(string)

	ctx.Locals("user_id", userId)
	ctx.Locals("email", email)
	return ctx.Next()
}

// UserIdFromCtx returns the authenticated user id set by JwtMiddleware.
func UserIdFromCtx(ctx *fiber.Ctx) uuid.UUID {
	if id, ok := ctx.Locals("user_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// EmailFromCtx returns the authenticated email set by JwtMiddleware.
func EmailFromCtx(ctx *fiber.Ctx) string {
	if email, ok := ctx.Locals("email").(string); ok {
		return email
	}
	return ""
}
