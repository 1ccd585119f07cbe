package controller

import (
	"fundoo-notes-be/internal/dto"
	"fundoo-notes-be/internal/pkg/serverutils"
	"fundoo-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	VerifyEmail(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	ForgotPassword(ctx *fiber.Ctx) error
	ResetPassword(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	rateLimiter *serverutils.RateLimiter
}

func NewAuthController(authService service.IAuthService, rateLimiter *serverutils.RateLimiter) IAuthController {
	return &authController{
		authService: authService,
		rateLimiter: rateLimiter,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Use(c.rateLimiter.Middleware)
	h.Post("register", c.Register)
	h.Post("verify-email", c.VerifyEmail)
	h.Post("login", c.Login)
	h.Post("logout", serverutils.JwtMiddleware, c.Logout)
	h.Post("forgot-password", c.ForgotPassword)
	h.Post("reset-password", c.ResetPassword)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusCreated,
		"User registered successfully, please verify your email", fiber.Map{"User": res})
}

func (c *authController) VerifyEmail(ctx *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	if err := c.authService.VerifyEmail(ctx.Context(), &req); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Email verified successfully", nil)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Login successful", fiber.Map{"User": res})
}

// Logout only confirms the token was valid. Access tokens are stateless, the
// client discards its copy.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Logout successful", nil)
}

func (c *authController) ForgotPassword(ctx *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	if err := c.authService.ForgotPassword(ctx.Context(), &req); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Password reset link sent to your email", nil)
}

func (c *authController) ResetPassword(ctx *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	if err := c.authService.ResetPassword(ctx.Context(), &req); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Password reset successfully", nil)
}
