package engine

import (
	"errors"
	"net/http"

	"github.com/extramock/extramock/pkg/catalog"
	"github.com/extramock/extramock/pkg/httputil"
	"github.com/extramock/extramock/pkg/otp"
	"github.com/extramock/extramock/pkg/template"
)

type contactSendRequest struct {
	SubjectType  string `json:"subject_type"`
	SubjectValue string `json:"subject_value"`
}

// handleContactSendOTP issues a contact-verification OTP session. Unlike
// the generic auth flow this one has real per-session state and expiry.
func (s *Server) handleContactSendOTP(w http.ResponseWriter, r *http.Request) {
	if s.resolveForced(w, r, catalog.ContactSendOTP) {
		return
	}

	var req contactSendRequest
	if err := decodeBody(r, &req); err != nil {
		s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeValidationError, "Request body must be valid JSON.")
		return
	}

	sess, err := s.otps.Issue(otp.SubjectType(req.SubjectType), req.SubjectValue)
	if err != nil {
		switch {
		case errors.Is(err, otp.ErrInvalidEmail):
			s.serveFailure(w, r, http.StatusUnprocessableEntity, catalog.CodeInvalidEmailFormat, "Must be a valid email address.")
		case errors.Is(err, otp.ErrInvalidPhone):
			s.serveFailure(w, r, http.StatusUnprocessableEntity, catalog.CodeInvalidPhoneFormat, "Must be 10-15 digits with an optional leading +.")
		default:
			s.serveFailure(w, r, http.StatusUnprocessableEntity, catalog.CodeValidationError, "subject_type must be email or phone and subject_value is required.")
		}
		return
	}

	s.serveJSON(w, r, http.StatusOK, httputil.Envelope{
		Success: true,
		Message: "OTP sent.",
		Data: map[string]any{
			"otp_request_id":       sess.RequestID,
			"subject_type":         string(sess.SubjectType),
			"subject_value":        sess.SubjectValue,
			"otp_expires_at":       template.Format(sess.ExpiresAt),
			"resend_allowed_after": template.Format(sess.ResendAllowedAt()),
		},
	})
}

type contactVerifyRequest struct {
	OTPRequestID string `json:"otp_request_id"`
	SubjectType  string `json:"subject_type"`
	SubjectValue string `json:"subject_value"`
	OTP          string `json:"otp"`
}

// handleContactVerifyOTP resolves a verification attempt against the
// session store. Wrong codes leave the session intact so the caller can
// retry until expiry.
func (s *Server) handleContactVerifyOTP(w http.ResponseWriter, r *http.Request) {
	if s.resolveForced(w, r, catalog.ContactVerifyOTP) {
		return
	}

	var req contactVerifyRequest
	if err := decodeBody(r, &req); err != nil {
		s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeValidationError, "Request body must be valid JSON.")
		return
	}

	sess, err := s.otps.Verify(req.OTPRequestID, otp.SubjectType(req.SubjectType), req.SubjectValue, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, otp.ErrValidation):
			s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeValidationError,
				"Missing required fields: otp_request_id, subject_type, subject_value and otp are required.")
		case errors.Is(err, otp.ErrExpired):
			s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeOTPExpired, "This OTP has expired. Please request a new one.")
		default:
			s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeInvalidOTP, "The OTP you entered is incorrect.")
		}
		return
	}

	s.serveJSON(w, r, http.StatusOK, httputil.Envelope{
		Success: true,
		Message: "Contact verified successfully.",
		Data: map[string]any{
			"subject_type":  string(sess.SubjectType),
			"subject_value": sess.SubjectValue,
			"verified":      true,
		},
	})
}
