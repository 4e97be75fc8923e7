// Package engine wires the onboarding mock server: the response catalog,
// scenario registry, OTP sessions, room inventory and property directory
// behind one HTTP mux, plus the control API that drives them.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/extramock/extramock/pkg/catalog"
	"github.com/extramock/extramock/pkg/config"
	"github.com/extramock/extramock/pkg/otp"
	"github.com/extramock/extramock/pkg/properties"
	"github.com/extramock/extramock/pkg/requestlog"
	"github.com/extramock/extramock/pkg/rooms"
	"github.com/extramock/extramock/pkg/scenario"
	"github.com/extramock/extramock/pkg/template"
	"github.com/extramock/extramock/pkg/token"
)

// BasePath prefixes every onboarding API route.
const BasePath = "/api/onboarding"

// Server owns all mock state and serves both the onboarding API and the
// control API.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	catalog  *catalog.Catalog
	registry *scenario.Registry
	expander *template.Expander
	otps     *otp.Store
	rooms    *rooms.Repository
	dir      *properties.Directory
	minter   *token.Minter
	reqlog   requestlog.Store

	httpServer *http.Server
}

// New constructs a fully wired Server.
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		log:      log,
		catalog:  cat,
		registry: scenario.New(cat, cfg.DelayMs),
		expander: template.New(),
		otps:     otp.NewStore(),
		rooms:    rooms.NewRepository(),
		dir:      properties.NewDirectory(),
		minter:   token.NewMinter(),
		reqlog:   requestlog.NewMemoryStore(),
	}
	return s, nil
}

// Handler returns the assembled HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.registerOnboardingRoutes(mux)
	s.registerControlRoutes(mux)

	var h http.Handler = mux
	h = s.captureRequests(h)
	if s.cfg.CORS.Enabled {
		h = corsMiddleware(h, s.cfg.CORS)
	}
	return h
}

func (s *Server) registerOnboardingRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST "+BasePath+"/auth/register", s.handleRegister)
	mux.HandleFunc("POST "+BasePath+"/auth/verify-otp", s.handleVerifyOTP)
	mux.HandleFunc("POST "+BasePath+"/auth/resend-otp", s.echoHandler(catalog.AuthResendOTP))
	mux.HandleFunc("POST "+BasePath+"/auth/login", s.handleLogin)
	mux.HandleFunc("POST "+BasePath+"/auth/token/refresh", s.handleTokenRefresh)
	mux.HandleFunc("POST "+BasePath+"/auth/logout", s.echoHandler(catalog.AuthLogout))
	mux.HandleFunc("POST "+BasePath+"/auth/password/reset-request", s.handlePasswordResetRequest)
	mux.HandleFunc("POST "+BasePath+"/auth/password/reset", s.echoHandler(catalog.AuthPasswordReset))

	mux.HandleFunc("GET "+BasePath+"/properties/hotel-search", s.handleHotelSearch)
	mux.HandleFunc("GET "+BasePath+"/properties/preview/{hotel_id}", s.handlePropertyPreview)

	mux.HandleFunc("POST "+BasePath+"/contact/send-otp", s.handleContactSendOTP)
	mux.HandleFunc("POST "+BasePath+"/contact/verify-otp", s.handleContactVerifyOTP)

	mux.HandleFunc("GET "+BasePath+"/extranet/{extranet_id}/rooms", s.handleRoomsList)
	mux.HandleFunc("POST "+BasePath+"/extranet/{extranet_id}/rooms", s.handleRoomsAdd)
	mux.HandleFunc("GET "+BasePath+"/extranet/{extranet_id}/rooms/{room_id}", s.handleRoomsGet)
	mux.HandleFunc("PATCH "+BasePath+"/extranet/{extranet_id}/rooms/{room_id}", s.handleRoomsUpdate)
	mux.HandleFunc("DELETE "+BasePath+"/extranet/{extranet_id}/rooms/{room_id}", s.handleRoomsDelete)
	mux.HandleFunc("POST "+BasePath+"/extranet/{extranet_id}/rooms/submit", s.handleRoomsSubmit)
	mux.HandleFunc("POST "+BasePath+"/extranet/{extranet_id}/rooms/import", s.handleRoomsImport)
}

// Start begins serving and blocks until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info("server starting",
		"addr", s.cfg.Addr(),
		"delay_ms", s.registry.Delay().Milliseconds(),
		"endpoints", len(s.catalog.Endpoints()))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.log.Info("server stopping")
	return s.httpServer.Shutdown(ctx)
}
