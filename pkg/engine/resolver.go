package engine

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/extramock/extramock/pkg/catalog"
	"github.com/extramock/extramock/pkg/httputil"
)

// maxBodyBytes caps request bodies read into memory.
const maxBodyBytes = 1 << 20

// captureRequests records onboarding API traffic in the request log. The
// body is re-attached so handlers can still read it.
func (s *Server) captureRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, BasePath+"/") {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
			if err == nil {
				r.Body = io.NopCloser(bytes.NewReader(body))
				s.reqlog.Log(r.Method, r.URL.RequestURI(), body)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// applyDelay waits out the configured artificial latency, returning early
// if the client goes away.
func (s *Server) applyDelay(r *http.Request) bool {
	delay := s.registry.Delay()
	if delay <= 0 {
		return true
	}
	select {
	case <-r.Context().Done():
		return false
	case <-time.After(delay):
		return true
	}
}

// resolveForced checks the registry for a non-default active variant and,
// when one is set, serves its fixed body. The request payload is ignored
// except for echoing a submitted email into matching response fields.
func (s *Server) resolveForced(w http.ResponseWriter, r *http.Request, id catalog.EndpointID) bool {
	variant, forced := s.registry.IsForced(id)
	if !forced {
		return false
	}

	s.log.Debug("serving forced variant", "endpoint", string(id), "variant", variant.Name)
	s.serveVariant(w, r, variant, submittedEmail(r))
	return true
}

// serveVariant expands timestamp placeholders, applies the email echo and
// writes the variant after the artificial delay.
func (s *Server) serveVariant(w http.ResponseWriter, r *http.Request, variant *catalog.Variant, email string) {
	body := s.expander.Expand(variant.Body)
	if email != "" {
		body = injectEmail(body, email)
	}
	if !s.applyDelay(r) {
		return
	}
	httputil.WriteRaw(w, variant.Status, body)
}

// serveJSON marshals a computed payload, expands timestamp placeholders
// and writes it after the artificial delay.
func (s *Server) serveJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("marshal response", "error", err)
		httputil.WriteFailure(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to encode response.")
		return
	}
	body = s.expander.Expand(body)
	if !s.applyDelay(r) {
		return
	}
	httputil.WriteRaw(w, status, body)
}

func (s *Server) serveFailure(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	if !s.applyDelay(r) {
		return
	}
	httputil.WriteFailure(w, status, code, message)
}

func (s *Server) serveFailureDetails(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	if !s.applyDelay(r) {
		return
	}
	httputil.WriteFailureDetails(w, status, code, message, details)
}

// echoHandler serves endpoints whose smart mode is a pure template echo:
// the active variant's body with fresh timestamps and the email echo.
func (s *Server) echoHandler(id catalog.EndpointID) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		variant, ok := s.catalog.Variant(id, s.registry.Active(id))
		if !ok {
			httputil.WriteFailure(w, http.StatusInternalServerError, "INTERNAL_ERROR", "No response configured for this endpoint.")
			return
		}
		s.serveVariant(w, r, variant, submittedEmail(r))
	}
}

// decodeBody unmarshals the JSON request body into dst. An empty body is
// treated as an empty object so field checks read as missing fields.
func decodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	return json.Unmarshal(body, dst)
}

// submittedEmail peeks at the request body for an email field without
// consuming the body.
func submittedEmail(r *http.Request) string {
	if r.Body == nil {
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return ""
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Email
}

// injectEmail overwrites data.email and data.user.email in a response body
// when those fields already exist, so round-trips reflect the caller's
// input. Bodies without the fields pass through untouched.
func injectEmail(body []byte, email string) []byte {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return body
	}
	data, ok := doc["data"].(map[string]any)
	if !ok {
		return body
	}

	changed := false
	if _, exists := data["email"]; exists {
		data["email"] = email
		changed = true
	}
	if user, ok := data["user"].(map[string]any); ok {
		if _, exists := user["email"]; exists {
			user["email"] = email
			changed = true
		}
	}
	if !changed {
		return body
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return body
	}
	return out
}

// hasBearer reports whether the request carries a plausible bearer token.
// Any token longer than a few characters is accepted; this is a mock.
func hasBearer(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && len(auth) > 10
}
