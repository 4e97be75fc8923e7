package catalog

import "encoding/json"

// Shared error codes referenced by smart handlers. Forced-error variant
// names are themselves the codes their bodies carry.
const (
	CodeValidationError      = "VALIDATION_ERROR"
	CodeInvalidEmailFormat   = "INVALID_EMAIL_FORMAT"
	CodeInvalidPhoneFormat   = "INVALID_PHONE_FORMAT"
	CodeWeakPassword         = "WEAK_PASSWORD"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeInvalidOTP           = "INVALID_OTP"
	CodeOTPExpired           = "OTP_EXPIRED"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodePropertyNotFound     = "PROPERTY_NOT_FOUND"
	CodeRoomNotFound         = "ROOM_NOT_FOUND"
	CodeDuplicateRoomName    = "DUPLICATE_ROOM_NAME"
	CodeNoRoomsAdded         = "NO_ROOMS_ADDED"
	CodeUnverifiedRoomsExist = "UNVERIFIED_ROOMS_EXIST"
)

func v(name string, status int, body string) Variant {
	return Variant{Name: name, Status: status, Body: json.RawMessage(body)}
}

func smart(status int, body string) Variant {
	return Variant{Name: "success", Status: status, Default: true, Body: json.RawMessage(body)}
}

func errBody(code, message string) string {
	b, _ := json.Marshal(map[string]any{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	})
	return string(b)
}

// descriptors is the full response catalog. Declaration order is the order
// the control API lists endpoints and options in.
var descriptors = []Descriptor{
	{
		ID: AuthRegister,
		Variants: []Variant{
			smart(201, `{"success":true,"message":"OTP sent to your email for verification.","data":{"otp_request_id":"otpreq_7f3a2b1c9d8e","email":"admin@hotelname.com","otp_expires_at":"__OTP_EXPIRES__"}}`),
			v("EMAIL_ALREADY_EXISTS", 409, errBody("EMAIL_ALREADY_EXISTS", "An account with this email already exists.")),
			v("INVALID_EMAIL_FORMAT", 422, errBody(CodeInvalidEmailFormat, "Must be a valid email address.")),
			v("WEAK_PASSWORD", 422, errBody(CodeWeakPassword, "Password doesn't meet policy. Must be at least 8 characters with uppercase, lowercase, number and special character.")),
			v("VALIDATION_ERROR", 422, `{"success":false,"error":{"code":"VALIDATION_ERROR","message":"Request validation failed.","details":{"email":"Must be a valid email address.","password":"Must be at least 8 characters."}}}`),
			v("TOO_MANY_REQUESTS", 429, errBody("TOO_MANY_REQUESTS", "Too many requests. Please try again later.")),
		},
	},
	{
		ID: AuthVerifyOTP,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Resolved dynamically from the submitted OTP and context."}`),
			v("OTP_EXPIRED", 400, errBody(CodeOTPExpired, "This OTP has expired. Please request a new one.")),
			v("OTP_ALREADY_USED", 400, errBody("OTP_ALREADY_USED", "This OTP has already been used.")),
			v("INVALID_OTP_REQUEST_ID", 400, errBody("INVALID_OTP_REQUEST_ID", "Invalid or mismatched OTP request.")),
			v("EMAIL_NOT_FOUND", 404, errBody("EMAIL_NOT_FOUND", "No pending registration found for this email.")),
			v("TOO_MANY_ATTEMPTS", 429, errBody("TOO_MANY_ATTEMPTS", "Too many incorrect attempts. Please try again later.")),
		},
	},
	{
		ID: AuthResendOTP,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"A new OTP has been sent to your email.","data":{"otp_expires_at":"__OTP_EXPIRES__","resend_allowed_after":"__RESEND_AFTER__"}}`),
			v("RESEND_COOLDOWN", 429, errBody("RESEND_COOLDOWN", "Please wait before requesting another OTP.")),
			v("MAX_RESEND_LIMIT", 429, errBody("MAX_RESEND_LIMIT", "Maximum resend attempts exceeded.")),
			v("EMAIL_NOT_FOUND", 404, errBody("EMAIL_NOT_FOUND", "No pending session found for this email.")),
		},
	},
	{
		ID: AuthLogin,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Password verified. OTP sent to your email.","data":{"otp_request_id":"otpreq_4c3b2a1d9e8f","email":"admin@hotelname.com","otp_expires_at":"__OTP_EXPIRES__"}}`),
			v("INVALID_CREDENTIALS", 401, errBody(CodeInvalidCredentials, "Invalid email or password.")),
			v("EMAIL_NOT_VERIFIED", 403, errBody("EMAIL_NOT_VERIFIED", "Please verify your email before logging in.")),
			v("ACCOUNT_DISABLED", 403, errBody("ACCOUNT_DISABLED", "Your account has been suspended. Contact support.")),
			v("ACCOUNT_NOT_FOUND", 404, errBody("ACCOUNT_NOT_FOUND", "No account found with this email.")),
			v("TOO_MANY_ATTEMPTS", 429, errBody("TOO_MANY_ATTEMPTS", "Account temporarily locked due to too many failed attempts.")),
		},
	},
	{
		ID: AuthTokenRefresh,
		Variants: []Variant{
			smart(200, `{"success":true,"data":{"access_token":"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.mock_refreshed_access_token","access_token_expires_at":"__ACCESS_EXPIRES__"}}`),
			v("INVALID_REFRESH_TOKEN", 401, errBody("INVALID_REFRESH_TOKEN", "Refresh token is invalid or tampered.")),
			v("REFRESH_TOKEN_EXPIRED", 401, errBody("REFRESH_TOKEN_EXPIRED", "Refresh token has expired. Please log in again.")),
			v("REFRESH_TOKEN_REVOKED", 401, errBody("REFRESH_TOKEN_REVOKED", "Refresh token has been revoked.")),
		},
	},
	{
		ID: AuthLogout,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Logged out successfully."}`),
		},
	},
	{
		ID: AuthPasswordResetRequest,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"If this email is registered, an OTP has been sent.","data":{"otp_request_id":"otpreq_9a8b7c6d5e4f","otp_expires_at":"__OTP_EXPIRES__","resend_allowed_after":"__RESEND_AFTER__"}}`),
			v("INVALID_EMAIL_FORMAT", 422, errBody(CodeInvalidEmailFormat, "Must be a valid email address.")),
			v("TOO_MANY_REQUESTS", 429, errBody("TOO_MANY_REQUESTS", "Too many requests. Please try again later.")),
		},
	},
	{
		ID: AuthPasswordReset,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Password reset successfully. Please log in with your new password."}`),
			v("INVALID_OTP_REQUEST_ID", 400, errBody("INVALID_OTP_REQUEST_ID", "Invalid or mismatched OTP request.")),
			v("INVALID_VERIFICATION_TOKEN", 400, errBody("INVALID_VERIFICATION_TOKEN", "Verification token is invalid or tampered.")),
			v("VERIFICATION_TOKEN_EXPIRED", 400, errBody("VERIFICATION_TOKEN_EXPIRED", "Verification token has expired (10 min window).")),
			v("VERIFICATION_TOKEN_ALREADY_USED", 400, errBody("VERIFICATION_TOKEN_ALREADY_USED", "This reset has already been completed.")),
			v("WEAK_PASSWORD", 422, errBody(CodeWeakPassword, "Password doesn't meet policy requirements.")),
			v("SAME_AS_OLD_PASSWORD", 422, errBody("SAME_AS_OLD_PASSWORD", "New password cannot be the same as the current password.")),
		},
	},
	{
		ID: PropertyHotelSearch,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Resolved dynamically from the search query."}`),
			v("UNAUTHORIZED", 401, errBody(CodeUnauthorized, "Invalid or expired access token.")),
			v("NO_PROPERTIES_WHITELISTED", 404, errBody("NO_PROPERTIES_WHITELISTED", "No properties are whitelisted for your account. Please contact support.")),
			v("UPSTREAM_FETCH_FAILED", 502, `{"success":false,"error":{"code":"UPSTREAM_FETCH_FAILED","message":"Unable to fetch property data at the moment. Please try again.","details":{"retry_after":30}}}`),
		},
	},
	{
		ID: PropertyPreview,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Resolved dynamically from the requested hotel id."}`),
			v("UNAUTHORIZED", 401, errBody(CodeUnauthorized, "Invalid or expired access token.")),
			v("PROPERTY_NOT_WHITELISTED", 403, errBody("PROPERTY_NOT_WHITELISTED", "You do not have access to this property.")),
			v("PROPERTY_NOT_FOUND", 404, errBody(CodePropertyNotFound, "The requested property was not found.")),
			v("UPSTREAM_FETCH_FAILED", 502, `{"success":false,"error":{"code":"UPSTREAM_FETCH_FAILED","message":"Unable to fetch property data at the moment. Please try again.","details":{"retry_after":30}}}`),
		},
	},
	{
		ID: ContactSendOTP,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Resolved dynamically from the submitted contact.","data":{"otp_expires_at":"__OTP_EXPIRES__","resend_allowed_after":"__RESEND_AFTER__"}}`),
			v("INVALID_EMAIL_FORMAT", 422, errBody(CodeInvalidEmailFormat, "Must be a valid email address.")),
			v("INVALID_PHONE_FORMAT", 422, errBody(CodeInvalidPhoneFormat, "Must be 10-15 digits with an optional leading +.")),
			v("RESEND_COOLDOWN", 429, errBody("RESEND_COOLDOWN", "Please wait before requesting another OTP.")),
			v("MAX_RESEND_LIMIT", 429, errBody("MAX_RESEND_LIMIT", "Maximum resend attempts exceeded.")),
		},
	},
	{
		ID: ContactVerifyOTP,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Resolved dynamically against the issued session."}`),
			v("INVALID_OTP", 400, errBody(CodeInvalidOTP, "The OTP you entered is incorrect.")),
			v("OTP_EXPIRED", 400, errBody(CodeOTPExpired, "This OTP has expired. Please request a new one.")),
		},
	},
	{
		ID: RoomsList,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Resolved dynamically from the room inventory."}`),
			v("UNAUTHORIZED", 401, errBody(CodeUnauthorized, "Invalid or expired access token.")),
		},
	},
	{
		ID: RoomsAdd,
		Variants: []Variant{
			smart(201, `{"success":true,"message":"Resolved dynamically from the room payload."}`),
			v("UNAUTHORIZED", 401, errBody(CodeUnauthorized, "Invalid or expired access token.")),
			v("VALIDATION_ERROR", 422, errBody(CodeValidationError, "Room name is required.")),
			v("DUPLICATE_ROOM_NAME", 409, errBody(CodeDuplicateRoomName, "A room with this name already exists.")),
		},
	},
	{
		ID: RoomsGet,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Resolved dynamically from the room inventory."}`),
			v("UNAUTHORIZED", 401, errBody(CodeUnauthorized, "Invalid or expired access token.")),
			v("ROOM_NOT_FOUND", 404, errBody(CodeRoomNotFound, "The requested room was not found.")),
		},
	},
	{
		ID: RoomsUpdate,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Resolved dynamically from the update payload."}`),
			v("UNAUTHORIZED", 401, errBody(CodeUnauthorized, "Invalid or expired access token.")),
			v("ROOM_NOT_FOUND", 404, errBody(CodeRoomNotFound, "The requested room was not found.")),
			v("VALIDATION_ERROR", 422, errBody(CodeValidationError, "No applicable fields in update payload.")),
		},
	},
	{
		ID: RoomsDelete,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Resolved dynamically from the room inventory."}`),
			v("UNAUTHORIZED", 401, errBody(CodeUnauthorized, "Invalid or expired access token.")),
			v("ROOM_NOT_FOUND", 404, errBody(CodeRoomNotFound, "The requested room was not found.")),
			// Advertised by the catalog but never emitted by the smart path:
			// delete allows removing the last room, only submit checks emptiness.
			v("CANNOT_DELETE_LAST_ROOM", 409, errBody("CANNOT_DELETE_LAST_ROOM", "At least one room is required for this property.")),
		},
	},
	{
		ID: RoomsSubmit,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Resolved dynamically from the verification summary."}`),
			v("UNAUTHORIZED", 401, errBody(CodeUnauthorized, "Invalid or expired access token.")),
			v("NO_ROOMS_ADDED", 422, errBody(CodeNoRoomsAdded, "Add at least one room before submitting this step.")),
			v("UNVERIFIED_ROOMS_EXIST", 409, errBody(CodeUnverifiedRoomsExist, "All rooms must be verified before submitting this step.")),
		},
	},
	{
		ID: RoomsImport,
		Variants: []Variant{
			smart(200, `{"success":true,"message":"Resolved dynamically from the property dataset."}`),
			v("UNAUTHORIZED", 401, errBody(CodeUnauthorized, "Invalid or expired access token.")),
			v("PROPERTY_NOT_FOUND", 404, errBody(CodePropertyNotFound, "The requested property was not found.")),
		},
	},
}
