package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dayamotor_backend/internals/features/users/dto"
	"dayamotor_backend/internals/features/users/repository"
	"dayamotor_backend/internals/features/users/service"
)

// Endpoint auth memakai envelope lama {status, message, ...}, berbeda
// dari endpoint lain yang memakai {success, message, data}.
type AuthController struct {
	Auth *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		Auth: service.NewAuthService(repository.NewUserRepository(db)),
	}
}

// POST /api/auth → dispatcher berdasar field action di body.
func (ac *AuthController) Dispatch(c *fiber.Ctx) error {
	var req dto.AuthRequest
	if err := c.BodyParser(&req); err != nil {
		return authError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	switch req.Action {
	case "login":
		return ac.login(c, req)
	case "register":
		return ac.register(c, req)
	case "verify_otp":
		return ac.verifyOtp(c, req)
	case "resend_otp":
		return ac.resendOtp(c, req)
	case "forgot_password":
		return ac.forgotPassword(c, req)
	case "reset_password":
		return ac.resetPassword(c, req)
	case "google_login":
		return ac.googleLogin(c, req)
	default:
		return authError(c, fiber.StatusBadRequest, "Action tidak valid.")
	}
}

func (ac *AuthController) login(c *fiber.Ctx, req dto.AuthRequest) error {
	result, err := ac.Auth.Login(c.Context(), req)
	if err != nil {
		return authFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Login successful.",
		"user":    result.User,
		"token":   result.Token,
	})
}

func (ac *AuthController) register(c *fiber.Ctx, req dto.AuthRequest) error {
	result, err := ac.Auth.Register(c.Context(), req)
	if err != nil {
		return authFromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Registrasi berhasil. Silakan cek email untuk kode OTP.",
		"user": fiber.Map{
			"id":    result.User.ID.String(),
			"name":  result.User.Name,
			"email": result.User.Email,
			"phone": result.User.Phone,
			"role":  result.User.Role,
		},
		"email_sent":         result.EmailSent,
		"needs_verification": result.NeedsVerification,
	})
}

func (ac *AuthController) verifyOtp(c *fiber.Ctx, req dto.AuthRequest) error {
	if err := ac.Auth.VerifyOtp(c.Context(), req); err != nil {
		return authFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Email berhasil diverifikasi.",
	})
}

func (ac *AuthController) resendOtp(c *fiber.Ctx, req dto.AuthRequest) error {
	emailSent, err := ac.Auth.ResendOtp(c.Context(), req)
	if err != nil {
		return authFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":     "success",
		"message":    "Kode OTP baru telah dikirim ke email Anda.",
		"email_sent": emailSent,
	})
}

func (ac *AuthController) forgotPassword(c *fiber.Ctx, req dto.AuthRequest) error {
	message, emailSent, err := ac.Auth.ForgotPassword(c.Context(), req)
	if err != nil {
		return authFromError(c, err)
	}
	resp := fiber.Map{
		"status":  "success",
		"message": message,
	}
	if emailSent {
		resp["email_sent"] = true
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (ac *AuthController) resetPassword(c *fiber.Ctx, req dto.AuthRequest) error {
	if err := ac.Auth.ResetPassword(c.Context(), req); err != nil {
		return authFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Password berhasil direset.",
	})
}

func (ac *AuthController) googleLogin(c *fiber.Ctx, req dto.AuthRequest) error {
	result, err := ac.Auth.LoginGoogle(c.Context(), req)
	if err != nil {
		return authFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Login successful.",
		"user":    result.User,
		"token":   result.Token,
	})
}

/* ==========================
   Envelope helpers
========================== */

func authError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

func authFromError(c *fiber.Ctx, err error) error {
	var ae *service.AuthError
	if errors.As(err, &ae) {
		resp := fiber.Map{
			"status":  "error",
			"message": ae.Msg,
		}
		for k, v := range ae.Extra {
			resp[k] = v
		}
		return c.Status(ae.Status).JSON(resp)
	}
	return authError(c, fiber.StatusInternalServerError, "Server error: "+err.Error())
}
