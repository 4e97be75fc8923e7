package engine

import (
	"net/http"
	"strconv"

	"github.com/extramock/extramock/pkg/catalog"
	"github.com/extramock/extramock/pkg/httputil"
)

// handleHotelSearch filters the static property directory by the search
// query and paginates the result.
func (s *Server) handleHotelSearch(w http.ResponseWriter, r *http.Request) {
	if s.resolveForced(w, r, catalog.PropertyHotelSearch) {
		return
	}
	if !hasBearer(r) {
		s.serveFailure(w, r, http.StatusUnauthorized, catalog.CodeUnauthorized, "Invalid or expired access token.")
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result := s.dir.Search(q.Get("search"), page, limit)
	s.serveJSON(w, r, http.StatusOK, httputil.Envelope{Success: true, Data: result})
}

// handlePropertyPreview returns the full detail record for one hotel.
func (s *Server) handlePropertyPreview(w http.ResponseWriter, r *http.Request) {
	if s.resolveForced(w, r, catalog.PropertyPreview) {
		return
	}
	if !hasBearer(r) {
		s.serveFailure(w, r, http.StatusUnauthorized, catalog.CodeUnauthorized, "Invalid or expired access token.")
		return
	}

	detail, err := s.dir.Preview(r.PathValue("hotel_id"))
	if err != nil {
		s.serveFailure(w, r, http.StatusNotFound, catalog.CodePropertyNotFound, "The requested property was not found.")
		return
	}
	s.serveJSON(w, r, http.StatusOK, httputil.Envelope{Success: true, Data: detail})
}
