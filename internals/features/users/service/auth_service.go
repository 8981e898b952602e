package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"golang.org/x/crypto/bcrypt"

	"dayamotor_backend/internals/configs"
	"dayamotor_backend/internals/features/users/dto"
	"dayamotor_backend/internals/features/users/model"
	helper "dayamotor_backend/internals/helpers"
)

const (
	otpTTL        = 10 * time.Minute
	resetTokenTTL = 1 * time.Hour
)

// Akun demo untuk testing tanpa database.
var demoAccounts = map[string]struct {
	Password string
	Role     string
	Name     string
	Phone    string
	Address  string
	ID       string
}{
	"admin@dayamotor.com": {
		Password: "admin123",
		Role:     model.RoleAdmin,
		Name:     "Super Admin",
		Phone:    "08123456789",
		ID:       "demo-admin-1",
	},
	"demo@customer.com": {
		Password: "demo123",
		Role:     model.RoleCustomer,
		Name:     "Demo Customer",
		Phone:    "081987654321",
		Address:  "Jl. Raya Cikampek No. 99",
		ID:       "demo-customer-1",
	},
}

/* ==========================
   Error & hasil ber-status
========================== */

// AuthError membawa status HTTP plus field ekstra untuk envelope auth.
type AuthError struct {
	Status int
	Msg    string
	Extra  map[string]any
}

func (e *AuthError) Error() string { return e.Msg }

func authErr(status int, msg string) *AuthError {
	return &AuthError{Status: status, Msg: msg}
}

type LoginResult struct {
	User  model.Payload
	Token string
}

type RegisterResult struct {
	User              *model.User
	EmailSent         bool
	NeedsVerification bool
}

/* ==========================
   Repo port
========================== */

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByResetToken(ctx context.Context, token string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Patch(ctx context.Context, id string, patch map[string]any) (*model.User, error)
}

type AuthService struct {
	Users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{Users: users}
}

/* ==========================
   LOGIN
========================== */

func (s *AuthService) Login(ctx context.Context, req dto.AuthRequest) (*LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, authErr(400, "Email and password are required.")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)

	// Akun demo dicek dulu, tanpa menyentuh database.
	if demo, ok := demoAccounts[email]; ok {
		if password != demo.Password {
			return nil, authErr(401, "Invalid password.")
		}
		return &LoginResult{
			User: model.Payload{
				ID:      demo.ID,
				Email:   email,
				Name:    demo.Name,
				Role:    demo.Role,
				Phone:   demo.Phone,
				Address: demo.Address,
			},
			Token: generateHexToken(),
		}, nil
	}

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if _, notFound := err.(*helper.NotFoundError); notFound {
			return nil, authErr(404, "User not found.")
		}
		return nil, err
	}

	if !verifyPassword(password, user.Password) {
		return nil, authErr(401, "Invalid password.")
	}

	if !user.EmailVerified {
		return nil, &AuthError{
			Status: 400,
			Msg:    "Email belum terverifikasi. Silakan verifikasi email terlebih dahulu.",
			Extra: map[string]any{
				"needs_verification": true,
				"user_id":            user.ID.String(),
			},
		}
	}

	if _, err := s.Users.Patch(ctx, user.ID.String(), map[string]any{"last_login": time.Now()}); err != nil {
		log.Printf("gagal update last_login user %s: %v", user.ID, err)
	}

	token, err := GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user.ToPayload(), Token: token}, nil
}

/* ==========================
   REGISTER + OTP
========================== */

func (s *AuthService) Register(ctx context.Context, req dto.AuthRequest) (*RegisterResult, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, authErr(400, "Name, email and password are required.")
	}
	if !helper.IsValidEmail(req.Email) {
		return nil, authErr(400, "Invalid email format.")
	}
	if len(req.Password) < 6 {
		return nil, authErr(400, "Password must be at least 6 characters long.")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, isDemo := demoAccounts[email]; isDemo {
		return nil, authErr(400, "Email already registered.")
	}
	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return nil, authErr(400, "Email already registered.")
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	otp := generateOTP()
	otpExpires := time.Now().Add(otpTTL)
	now := time.Now()

	user := &model.User{
		Name:          strings.TrimSpace(req.Name),
		Email:         email,
		Password:      hashed,
		Phone:         req.Phone,
		Address:       req.Address,
		IDNumber:      req.IDNumber,
		Role:          model.RoleCustomer,
		OtpCode:       &otp,
		OtpExpiresAt:  &otpExpires,
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, authErr(500, "Gagal melakukan registrasi.")
	}

	emailSent := sendOTPEmail(email, user.Name, otp)
	return &RegisterResult{User: user, EmailSent: emailSent, NeedsVerification: true}, nil
}

func (s *AuthService) VerifyOtp(ctx context.Context, req dto.AuthRequest) error {
	if req.UserID == "" || req.OtpCode == "" {
		return authErr(400, "User ID and OTP code are required.")
	}

	user, err := s.Users.FindByID(ctx, req.UserID)
	if err != nil {
		if _, notFound := err.(*helper.NotFoundError); notFound {
			return authErr(404, "User not found.")
		}
		return err
	}

	if user.OtpCode == nil || *user.OtpCode != req.OtpCode {
		return authErr(400, "Kode OTP tidak valid.")
	}
	if user.OtpExpiresAt == nil || time.Now().After(*user.OtpExpiresAt) {
		return authErr(400, "Kode OTP sudah kedaluwarsa.")
	}

	_, err = s.Users.Patch(ctx, req.UserID, map[string]any{
		"email_verified": true,
		"otp_code":       nil,
		"otp_expires_at": nil,
	})
	if err != nil {
		return authErr(500, "Gagal memverifikasi email.")
	}
	return nil
}

func (s *AuthService) ResendOtp(ctx context.Context, req dto.AuthRequest) (bool, error) {
	if req.UserID == "" {
		return false, authErr(400, "User ID is required.")
	}

	user, err := s.Users.FindByID(ctx, req.UserID)
	if err != nil {
		if _, notFound := err.(*helper.NotFoundError); notFound {
			return false, authErr(404, "User not found.")
		}
		return false, err
	}

	otp := generateOTP()
	otpExpires := time.Now().Add(otpTTL)
	_, err = s.Users.Patch(ctx, req.UserID, map[string]any{
		"otp_code":       otp,
		"otp_expires_at": otpExpires,
	})
	if err != nil {
		return false, authErr(500, "Gagal mengirim ulang OTP.")
	}

	return sendOTPEmail(user.Email, user.Name, otp), nil
}

/* ==========================
   FORGOT / RESET PASSWORD
========================== */

// ForgotPassword tidak pernah membocorkan apakah email terdaftar.
func (s *AuthService) ForgotPassword(ctx context.Context, req dto.AuthRequest) (message string, emailSent bool, err error) {
	if req.Email == "" {
		return "", false, authErr(400, "Email is required.")
	}

	user, err := s.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		return "Jika email terdaftar, instruksi reset password akan dikirim.", false, nil
	}

	token := generateHexToken()
	expires := time.Now().Add(resetTokenTTL)
	_, err = s.Users.Patch(ctx, user.ID.String(), map[string]any{
		"reset_token":      token,
		"reset_expires_at": expires,
	})
	if err != nil {
		return "", false, authErr(500, "Gagal membuat token reset.")
	}

	sent := sendPasswordResetEmail(user.Email, user.Name, token)
	return "Instruksi reset password telah dikirim ke email Anda.", sent, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, req dto.AuthRequest) error {
	if req.Token == "" || req.Password == "" {
		return authErr(400, "Token and new password are required.")
	}
	if len(req.Password) < 6 {
		return authErr(400, "Password must be at least 6 characters long.")
	}

	user, err := s.Users.FindByResetToken(ctx, req.Token)
	if err != nil {
		return authErr(400, "Token reset tidak valid.")
	}
	if user.ResetExpiresAt == nil || time.Now().After(*user.ResetExpiresAt) {
		return authErr(400, "Token reset sudah kedaluwarsa.")
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return err
	}
	_, err = s.Users.Patch(ctx, user.ID.String(), map[string]any{
		"password":         hashed,
		"reset_token":      nil,
		"reset_expires_at": nil,
	})
	if err != nil {
		return authErr(500, "Gagal reset password.")
	}
	return nil
}

/* ==========================
   GOOGLE LOGIN
========================== */

func (s *AuthService) LoginGoogle(ctx context.Context, req dto.AuthRequest) (*LoginResult, error) {
	if req.IDToken == "" {
		return nil, authErr(400, "ID token is required.")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return nil, authErr(401, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return nil, authErr(500, "Failed to decode ID Token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		// User belum ada -> daftarkan, email Google dianggap terverifikasi.
		hashed, hashErr := hashPassword(generateHexToken())
		if hashErr != nil {
			return nil, hashErr
		}
		now := time.Now()
		user = &model.User{
			Name:          claimSet.Name,
			Email:         email,
			Password:      hashed,
			Role:          model.RoleCustomer,
			EmailVerified: true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if createErr := s.Users.Create(ctx, user); createErr != nil {
			low := strings.ToLower(createErr.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return nil, authErr(400, "Email already registered.")
			}
			return nil, authErr(500, "Failed to create Google user")
		}
	}

	if _, err := s.Users.Patch(ctx, user.ID.String(), map[string]any{"last_login": time.Now()}); err != nil {
		log.Printf("gagal update last_login user %s: %v", user.ID, err)
	}

	token, err := GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user.ToPayload(), Token: token}, nil
}

/* ==========================
   Helpers
========================== */

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword menerima hash bcrypt, atau plaintext untuk row warisan.
func verifyPassword(input, stored string) bool {
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(input)) == nil {
		return true
	}
	return input == stored
}

func generateHexToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

func generateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}

// Pengiriman email disimulasikan, cukup dicatat di log.
func sendOTPEmail(email, name, otp string) bool {
	log.Printf("[EMAIL] OTP %s sent to %s <%s>", otp, name, email)
	return true
}

func sendPasswordResetEmail(email, name, token string) bool {
	log.Printf("[EMAIL] Password reset token sent to %s <%s>: %s", name, email, token)
	return true
}
