package engine

import (
	"errors"
	"net/http"

	"github.com/extramock/extramock/pkg/catalog"
	"github.com/extramock/extramock/pkg/httputil"
	"github.com/extramock/extramock/pkg/scenario"
)

// Control API: drives the scenario registry and exposes the request log.
// Served on the same listener as the onboarding API so a single process is
// the whole mock environment. Control routes are never delayed and never
// logged.

func (s *Server) registerControlRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/mock/config", s.handleConfigGet)
	mux.HandleFunc("POST /api/mock/config", s.handleConfigSet)
	mux.HandleFunc("DELETE /api/mock/config", s.handleConfigReset)
	mux.HandleFunc("GET /api/mock/log", s.handleLogGet)
	mux.HandleFunc("DELETE /api/mock/log", s.handleLogClear)
	mux.HandleFunc("GET /health", s.handleHealth)
}

type endpointConfig struct {
	Active  string   `json:"active"`
	Options []string `json:"options"`
}

func (s *Server) handleConfigGet(w http.ResponseWriter, _ *http.Request) {
	ids := s.catalog.Endpoints()
	cfg := make(map[string]endpointConfig, len(ids))
	for _, id := range ids {
		desc, ok := s.catalog.Descriptor(id)
		if !ok {
			continue
		}
		cfg[string(id)] = endpointConfig{
			Active:  s.registry.Active(id),
			Options: desc.Options(),
		}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"config": cfg,
		"delay":  s.registry.Delay().Milliseconds(),
	})
}

type configSetRequest struct {
	Endpoint string `json:"endpoint"`
	Response string `json:"response"`
	Delay    *int   `json:"delay"`
}

func (s *Server) handleConfigSet(w http.ResponseWriter, r *http.Request) {
	var req configSetRequest
	if err := decodeBody(r, &req); err != nil {
		httputil.WriteFailure(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be valid JSON.")
		return
	}

	if req.Delay != nil {
		s.registry.SetDelay(*req.Delay)
	}

	if req.Endpoint != "" && req.Response != "" {
		if err := s.registry.SetActive(catalog.EndpointID(req.Endpoint), req.Response); err != nil {
			switch {
			case errors.Is(err, scenario.ErrUnknownEndpoint):
				httputil.WriteFailure(w, http.StatusBadRequest, "UNKNOWN_ENDPOINT", "Unknown endpoint.")
			case errors.Is(err, scenario.ErrUnknownVariant):
				httputil.WriteFailure(w, http.StatusBadRequest, "UNKNOWN_VARIANT", "Unknown response type.")
			default:
				httputil.WriteFailure(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			}
			return
		}
		s.log.Info("scenario changed", "endpoint", req.Endpoint, "variant", req.Response)
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"active_responses": s.registry.Snapshot(),
		"delay":            s.registry.Delay().Milliseconds(),
	})
}

func (s *Server) handleConfigReset(w http.ResponseWriter, _ *http.Request) {
	s.registry.Reset()
	s.log.Info("scenarios reset to defaults")
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"active_responses": s.registry.Snapshot(),
		"delay":            s.registry.Delay().Milliseconds(),
	})
}

func (s *Server) handleLogGet(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, s.reqlog.List())
}

func (s *Server) handleLogClear(w http.ResponseWriter, _ *http.Request) {
	s.reqlog.Clear()
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"endpoints": len(s.catalog.Endpoints()),
		"requests":  s.reqlog.Count(),
	})
}
