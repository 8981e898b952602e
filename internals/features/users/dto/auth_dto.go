package dto

// AuthRequest adalah body dispatcher POST /api/auth.
// Field yang dipakai tergantung action-nya.
type AuthRequest struct {
	Action string `json:"action"`

	// login & register
	Email    string `json:"email"`
	Password string `json:"password"`

	// register
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IDNumber string `json:"id_number"`

	// verify_otp & resend_otp
	UserID  string `json:"user_id"`
	OtpCode string `json:"otp_code"`

	// reset_password
	Token string `json:"token"`

	// google_login
	IDToken string `json:"id_token"`
}

type UpdateProfileRequest struct {
	ID      string  `json:"id"`
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Avatar  *string `json:"avatar"`
}
