package engine

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	h := s.Handler()
	path := BasePath + "/auth/register"

	t.Run("both fields missing", func(t *testing.T) {
		rec := doJSON(t, h, "POST", path, `{}`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))

		details := decode(t, rec)["error"].(map[string]any)["details"].(map[string]any)
		assert.Equal(t, "Email is required.", details["email"])
		assert.Equal(t, "Password is required.", details["password"])
	})

	t.Run("only password missing", func(t *testing.T) {
		rec := doJSON(t, h, "POST", path, `{"email":"a@b.com"}`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		details := decode(t, rec)["error"].(map[string]any)["details"].(map[string]any)
		assert.NotContains(t, details, "email")
		assert.Equal(t, "Password is required.", details["password"])
	})

	t.Run("bad email format", func(t *testing.T) {
		rec := doJSON(t, h, "POST", path, `{"email":"not-an-email","password":"Str0ng!Pass"}`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "INVALID_EMAIL_FORMAT", errorCode(t, rec))
	})

	t.Run("weak passwords", func(t *testing.T) {
		for _, password := range []string{
			"short1!",     // too short
			"alllower1!",  // no uppercase
			"ALLUPPER1!",  // no lowercase
			"NoDigits!!",  // no digit
			"NoSpecial12", // no special character
		} {
			rec := doJSON(t, h, "POST", path,
				fmt.Sprintf(`{"email":"a@b.com","password":%q}`, password), nil)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "password %q", password)
			assert.Equal(t, "WEAK_PASSWORD", errorCode(t, rec), "password %q", password)
		}
	})

	t.Run("success is deterministic per email", func(t *testing.T) {
		rec := doJSON(t, h, "POST", path, `{"email":"admin@hotelname.com","password":"Str0ng!Pass"}`, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		data := decode(t, rec)["data"].(map[string]any)
		assert.Equal(t, "otpreq_61646d696e40", data["otp_request_id"])
		assert.Equal(t, "admin@hotelname.com", data["email"])
		assert.NotContains(t, data["otp_expires_at"], "__")

		again := doJSON(t, h, "POST", path, `{"email":"admin@hotelname.com","password":"Str0ng!Pass"}`, nil)
		assert.Equal(t, data["otp_request_id"], decode(t, again)["data"].(map[string]any)["otp_request_id"])
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	h := s.Handler()
	path := BasePath + "/auth/login"

	t.Run("missing fields", func(t *testing.T) {
		rec := doJSON(t, h, "POST", path, `{"email":"a@b.com"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
	})

	t.Run("malformed email reads as bad credentials", func(t *testing.T) {
		rec := doJSON(t, h, "POST", path, `{"email":"nope","password":"x"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
	})

	t.Run("any valid pair is accepted", func(t *testing.T) {
		rec := doJSON(t, h, "POST", path, `{"email":"owner@example.com","password":"anything"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		data := decode(t, rec)["data"].(map[string]any)
		assert.NotEmpty(t, data["otp_request_id"])
		assert.Equal(t, "owner@example.com", data["email"])
	})
}

func TestVerifyOTP(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	h := s.Handler()
	path := BasePath + "/auth/verify-otp"

	t.Run("missing fields", func(t *testing.T) {
		rec := doJSON(t, h, "POST", path, `{"otp":"123456"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "otp_request_id, otp, and context are required")
	})

	t.Run("invalid context", func(t *testing.T) {
		rec := doJSON(t, h, "POST", path,
			`{"otp_request_id":"otpreq_x","otp":"123456","context":"signup"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "registration, login, reset_password")
	})

	t.Run("wrong code", func(t *testing.T) {
		rec := doJSON(t, h, "POST", path,
			`{"otp_request_id":"otpreq_x","otp":"999999","context":"login"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_OTP", errorCode(t, rec))
	})

	t.Run("login context issues token pair", func(t *testing.T) {
		rec := doJSON(t, h, "POST", path,
			`{"otp_request_id":"otpreq_x","otp":"123456","context":"login"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		data := decode(t, rec)["data"].(map[string]any)
		assert.NotEmpty(t, data["access_token"])
		assert.NotEmpty(t, data["refresh_token"])
		user := data["user"].(map[string]any)
		assert.Equal(t, "admin@hotelname.com", user["email"])
	})

	t.Run("reset context issues verification token", func(t *testing.T) {
		rec := doJSON(t, h, "POST", path,
			`{"otp_request_id":"otpreq_x","otp":"123456","context":"reset_password"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		data := decode(t, rec)["data"].(map[string]any)
		assert.NotEmpty(t, data["verification_token"])
		assert.NotContains(t, data, "access_token")
	})
}

func TestHotelSearchEndpoint(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	h := s.Handler()
	path := BasePath + "/properties/hotel-search"

	t.Run("requires bearer", func(t *testing.T) {
		rec := doJSON(t, h, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))

		short := doJSON(t, h, "GET", path, "", map[string]string{"Authorization": "Bearer x"})
		assert.Equal(t, http.StatusUnauthorized, short.Code)
	})

	t.Run("filters and paginates", func(t *testing.T) {
		rec := doJSON(t, h, "GET", path+"?search=taj", "", bearer())
		require.Equal(t, http.StatusOK, rec.Code)

		data := decode(t, rec)["data"].(map[string]any)
		props := data["properties"].([]any)
		require.Len(t, props, 1)
		assert.Equal(t, "MMT_HTL_005678", props[0].(map[string]any)["hotel_id"])
		assert.Equal(t, "taj", data["search_query"])
	})
}

func TestPropertyPreviewEndpoint(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	h := s.Handler()

	rec := doJSON(t, h, "GET", BasePath+"/properties/preview/MMT_HTL_001234", "", bearer())
	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "The Grand Leela Palace", data["name"])

	missing := doJSON(t, h, "GET", BasePath+"/properties/preview/MMT_HTL_000000", "", bearer())
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "PROPERTY_NOT_FOUND", errorCode(t, missing))
}

func TestContactOTPFlow(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	h := s.Handler()

	t.Run("invalid subject value", func(t *testing.T) {
		rec := doJSON(t, h, "POST", BasePath+"/contact/send-otp",
			`{"subject_type":"phone","subject_value":"12345"}`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "INVALID_PHONE_FORMAT", errorCode(t, rec))
	})

	t.Run("issue then verify", func(t *testing.T) {
		rec := doJSON(t, h, "POST", BasePath+"/contact/send-otp",
			`{"subject_type":"email","subject_value":"owner@example.com"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		requestID := decode(t, rec)["data"].(map[string]any)["otp_request_id"].(string)

		wrong := doJSON(t, h, "POST", BasePath+"/contact/verify-otp",
			fmt.Sprintf(`{"otp_request_id":%q,"subject_type":"email","subject_value":"owner@example.com","otp":"000000"}`, requestID), nil)
		assert.Equal(t, http.StatusBadRequest, wrong.Code)
		assert.Equal(t, "INVALID_OTP", errorCode(t, wrong))

		// mismatch did not consume the session
		right := doJSON(t, h, "POST", BasePath+"/contact/verify-otp",
			fmt.Sprintf(`{"otp_request_id":%q,"subject_type":"email","subject_value":"owner@example.com","otp":"123456"}`, requestID), nil)
		require.Equal(t, http.StatusOK, right.Code)
		data := decode(t, right)["data"].(map[string]any)
		assert.Equal(t, true, data["verified"])

		// single use
		again := doJSON(t, h, "POST", BasePath+"/contact/verify-otp",
			fmt.Sprintf(`{"otp_request_id":%q,"subject_type":"email","subject_value":"owner@example.com","otp":"123456"}`, requestID), nil)
		assert.Equal(t, "INVALID_OTP", errorCode(t, again))
	})
}

func TestRoomLifecycle(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	h := s.Handler()
	base := BasePath + "/extranet/ext_001/rooms"

	t.Run("requires bearer", func(t *testing.T) {
		rec := doJSON(t, h, "GET", base, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	var roomID string

	t.Run("add", func(t *testing.T) {
		rec := doJSON(t, h, "POST", base,
			`{"room_name":"Deluxe King Room","room_view_id":"RV_001","bed":{"type_id":"BT_001","count":1}}`, bearer())
		require.Equal(t, http.StatusCreated, rec.Code)

		room := decode(t, rec)["data"].(map[string]any)["room"].(map[string]any)
		roomID = room["room_id"].(string)
		assert.Equal(t, "rm_001", roomID)
		view := room["room_view"].(map[string]any)
		assert.Equal(t, "Pool View", view["label"])
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		rec := doJSON(t, h, "POST", base, `{"room_name":"  deluxe king room "}`, bearer())
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DUPLICATE_ROOM_NAME", errorCode(t, rec))
	})

	t.Run("submit blocked after edit", func(t *testing.T) {
		rec := doJSON(t, h, "PATCH", base+"/"+roomID, `{"room_name":"Deluxe Twin"}`, bearer())
		require.Equal(t, http.StatusOK, rec.Code)
		room := decode(t, rec)["data"].(map[string]any)["room"].(map[string]any)
		assert.Equal(t, "needs_reverification", room["verification_status"])

		submit := doJSON(t, h, "POST", base+"/submit", "", bearer())
		assert.Equal(t, http.StatusConflict, submit.Code)
		assert.Equal(t, "UNVERIFIED_ROOMS_EXIST", errorCode(t, submit))

		details := decode(t, submit)["error"].(map[string]any)["details"].(map[string]any)
		ids := details["unverified_room_ids"].([]any)
		assert.Equal(t, []any{roomID}, ids)
	})

	t.Run("submit passes after reverification", func(t *testing.T) {
		rec := doJSON(t, h, "PATCH", base+"/"+roomID, `{"verification_status":"verified"}`, bearer())
		require.Equal(t, http.StatusOK, rec.Code)

		submit := doJSON(t, h, "POST", base+"/submit", "", bearer())
		require.Equal(t, http.StatusOK, submit.Code)

		data := decode(t, submit)["data"].(map[string]any)
		assert.Equal(t, "rate_plans", data["next_step"])
		var steps []string
		raw, _ := json.Marshal(data["completed_steps"])
		require.NoError(t, json.Unmarshal(raw, &steps))
		assert.Contains(t, steps, "room_setup")
	})

	t.Run("delete then empty submit fails", func(t *testing.T) {
		rec := doJSON(t, h, "DELETE", base+"/"+roomID, "", bearer())
		require.Equal(t, http.StatusOK, rec.Code)

		submit := doJSON(t, h, "POST", base+"/submit", "", bearer())
		assert.Equal(t, http.StatusUnprocessableEntity, submit.Code)
		assert.Equal(t, "NO_ROOMS_ADDED", errorCode(t, submit))
	})

	t.Run("get unknown room", func(t *testing.T) {
		rec := doJSON(t, h, "GET", base+"/rm_404", "", bearer())
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ROOM_NOT_FOUND", errorCode(t, rec))
	})
}

func TestRoomImport(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	h := s.Handler()
	base := BasePath + "/extranet/ext_002/rooms"

	rec := doJSON(t, h, "POST", base+"/import", `{"hotel_id":"MMT_HTL_001234"}`, bearer())
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]any)
	imported := data["imported"].([]any)
	require.Len(t, imported, 2)
	first := imported[0].(map[string]any)
	assert.Equal(t, "pending", first["verification_status"])
	assert.Equal(t, "imported", first["source"])

	summary := data["summary"].(map[string]any)
	assert.Equal(t, false, summary["can_submit_step"])

	missing := doJSON(t, h, "POST", base+"/import", `{"hotel_id":"MMT_HTL_000000"}`, bearer())
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "PROPERTY_NOT_FOUND", errorCode(t, missing))
}
