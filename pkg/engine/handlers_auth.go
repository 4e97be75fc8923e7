package engine

import (
	"net/http"
	"regexp"

	"github.com/extramock/extramock/internal/id"
	"github.com/extramock/extramock/pkg/catalog"
	"github.com/extramock/extramock/pkg/httputil"
	"github.com/extramock/extramock/pkg/otp"
	"github.com/extramock/extramock/pkg/template"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Password policy character classes.
var (
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasDigit   = regexp.MustCompile(`[0-9]`)
	hasSpecial = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
)

func passwordMeetsPolicy(password string) bool {
	return len(password) >= 8 &&
		hasUpper.MatchString(password) &&
		hasLower.MatchString(password) &&
		hasDigit.MatchString(password) &&
		hasSpecial.MatchString(password)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleRegister validates the registration payload in fixed precedence
// order (presence, email format, password policy) and on success issues a
// deterministic OTP request id for the submitted email.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if s.resolveForced(w, r, catalog.AuthRegister) {
		return
	}

	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeValidationError, "Request body must be valid JSON.")
		return
	}

	if req.Email == "" || req.Password == "" {
		details := map[string]string{}
		if req.Email == "" {
			details["email"] = "Email is required."
		}
		if req.Password == "" {
			details["password"] = "Password is required."
		}
		s.serveFailureDetails(w, r, http.StatusUnprocessableEntity, catalog.CodeValidationError, "Request validation failed.", details)
		return
	}

	if !emailPattern.MatchString(req.Email) {
		s.serveFailure(w, r, http.StatusUnprocessableEntity, catalog.CodeInvalidEmailFormat, "Must be a valid email address.")
		return
	}

	if !passwordMeetsPolicy(req.Password) {
		s.serveFailure(w, r, http.StatusUnprocessableEntity, catalog.CodeWeakPassword,
			"Password doesn't meet policy. Must be at least 8 characters with uppercase, lowercase, number and special character.")
		return
	}

	s.serveJSON(w, r, http.StatusCreated, httputil.Envelope{
		Success: true,
		Message: "OTP sent to your email for verification.",
		Data: map[string]any{
			"otp_request_id": id.OTPRequest(req.Email),
			"email":          req.Email,
			"otp_expires_at": template.PlaceholderOTPExpires,
		},
	})
}

// handleLogin accepts any syntactically valid email and password pair and
// responds with an OTP challenge, mirroring the register id derivation.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.resolveForced(w, r, catalog.AuthLogin) {
		return
	}

	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeValidationError, "Request body must be valid JSON.")
		return
	}

	if req.Email == "" || req.Password == "" {
		s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeValidationError, "Email and password are required.")
		return
	}

	if !emailPattern.MatchString(req.Email) {
		s.serveFailure(w, r, http.StatusUnauthorized, catalog.CodeInvalidCredentials, "Invalid email or password.")
		return
	}

	s.serveJSON(w, r, http.StatusOK, httputil.Envelope{
		Success: true,
		Message: "Password verified. OTP sent to your email.",
		Data: map[string]any{
			"otp_request_id": id.OTPRequest(req.Email),
			"email":          req.Email,
			"otp_expires_at": template.PlaceholderOTPExpires,
		},
	})
}

// Contexts the generic verify-otp flow accepts.
var validOTPContexts = map[string]bool{
	"registration":   true,
	"login":          true,
	"reset_password": true,
}

type verifyOTPRequest struct {
	OTPRequestID string `json:"otp_request_id"`
	OTP          string `json:"otp"`
	Context      string `json:"context"`
}

// handleVerifyOTP implements the generic auth OTP check: one static magic
// code, no per-request-id session state, with a context-specific success
// payload.
func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	if s.resolveForced(w, r, catalog.AuthVerifyOTP) {
		return
	}

	var req verifyOTPRequest
	if err := decodeBody(r, &req); err != nil {
		s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeValidationError, "Request body must be valid JSON.")
		return
	}

	if req.OTPRequestID == "" || req.OTP == "" || req.Context == "" {
		s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeValidationError,
			"Missing required fields: otp_request_id, otp, and context are required.")
		return
	}

	if !validOTPContexts[req.Context] {
		s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeValidationError,
			"Invalid context. Must be one of: registration, login, reset_password.")
		return
	}

	if req.OTP != otp.MagicCode {
		s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeInvalidOTP, "The OTP you entered is incorrect.")
		return
	}

	subject := demoUserEmail
	switch req.Context {
	case "reset_password":
		verification, err := s.minter.VerificationToken(subject)
		if err != nil {
			s.serveFailure(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue verification token.")
			return
		}
		s.serveJSON(w, r, http.StatusOK, httputil.Envelope{
			Success: true,
			Message: "OTP verified. You may now reset your password.",
			Data: map[string]any{
				"email":                         subject,
				"verification_token":            verification,
				"verification_token_expires_at": template.PlaceholderVerificationExpires,
			},
		})
	default:
		message := "Login successful."
		if req.Context == "registration" {
			message = "Email verified and account activated successfully."
		}
		access, err := s.minter.AccessToken(subject)
		if err != nil {
			s.serveFailure(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue access token.")
			return
		}
		refresh, err := s.minter.RefreshToken(subject)
		if err != nil {
			s.serveFailure(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue refresh token.")
			return
		}
		s.serveJSON(w, r, http.StatusOK, httputil.Envelope{
			Success: true,
			Message: message,
			Data: map[string]any{
				"access_token":            access,
				"refresh_token":           refresh,
				"access_token_expires_at": template.PlaceholderAccessExpires,
				"user": map[string]any{
					"id":    id.User(subject),
					"email": subject,
				},
			},
		})
	}
}

// handleTokenRefresh mints a fresh access token for any plausible refresh
// token.
func (s *Server) handleTokenRefresh(w http.ResponseWriter, r *http.Request) {
	if s.resolveForced(w, r, catalog.AuthTokenRefresh) {
		return
	}

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := decodeBody(r, &req); err != nil || req.RefreshToken == "" {
		s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeValidationError, "refresh_token is required.")
		return
	}

	access, err := s.minter.AccessToken(demoUserEmail)
	if err != nil {
		s.serveFailure(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue access token.")
		return
	}
	s.serveJSON(w, r, http.StatusOK, httputil.Envelope{
		Success: true,
		Data: map[string]any{
			"access_token":            access,
			"access_token_expires_at": template.PlaceholderAccessExpires,
		},
	})
}

// handlePasswordResetRequest validates the email format, then answers the
// same way whether or not the address is known.
func (s *Server) handlePasswordResetRequest(w http.ResponseWriter, r *http.Request) {
	if s.resolveForced(w, r, catalog.AuthPasswordResetRequest) {
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := decodeBody(r, &req); err != nil || req.Email == "" {
		s.serveFailure(w, r, http.StatusUnprocessableEntity, catalog.CodeValidationError, "Email is required.")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		s.serveFailure(w, r, http.StatusUnprocessableEntity, catalog.CodeInvalidEmailFormat, "Must be a valid email address.")
		return
	}

	s.serveJSON(w, r, http.StatusOK, httputil.Envelope{
		Success: true,
		Message: "If this email is registered, an OTP has been sent.",
		Data: map[string]any{
			"otp_request_id":       id.OTPRequest(req.Email),
			"otp_expires_at":       template.PlaceholderOTPExpires,
			"resend_allowed_after": template.PlaceholderResendAfter,
		},
	})
}

// demoUserEmail is the identity behind every minted token when the flow
// has no email of its own to echo.
const demoUserEmail = "admin@hotelname.com"
