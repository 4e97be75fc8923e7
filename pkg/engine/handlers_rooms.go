package engine

import (
	"errors"
	"net/http"

	"github.com/extramock/extramock/pkg/catalog"
	"github.com/extramock/extramock/pkg/httputil"
	"github.com/extramock/extramock/pkg/rooms"
)

func (s *Server) roomsGate(w http.ResponseWriter, r *http.Request, id catalog.EndpointID) bool {
	if s.resolveForced(w, r, id) {
		return false
	}
	if !hasBearer(r) {
		s.serveFailure(w, r, http.StatusUnauthorized, catalog.CodeUnauthorized, "Invalid or expired access token.")
		return false
	}
	return true
}

func (s *Server) handleRoomsList(w http.ResponseWriter, r *http.Request) {
	if !s.roomsGate(w, r, catalog.RoomsList) {
		return
	}

	list, summary := s.rooms.List(r.PathValue("extranet_id"))
	s.serveJSON(w, r, http.StatusOK, httputil.Envelope{
		Success: true,
		Data:    map[string]any{"rooms": list, "summary": summary},
	})
}

func (s *Server) handleRoomsAdd(w http.ResponseWriter, r *http.Request) {
	if !s.roomsGate(w, r, catalog.RoomsAdd) {
		return
	}

	var payload rooms.AddPayload
	if err := decodeBody(r, &payload); err != nil {
		s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeValidationError, "Request body must be valid JSON.")
		return
	}

	room, summary, err := s.rooms.Add(r.PathValue("extranet_id"), payload)
	if err != nil {
		s.serveRoomError(w, r, err)
		return
	}
	s.serveJSON(w, r, http.StatusCreated, httputil.Envelope{
		Success: true,
		Message: "Room added successfully.",
		Data:    map[string]any{"room": room, "summary": summary},
	})
}

func (s *Server) handleRoomsGet(w http.ResponseWriter, r *http.Request) {
	if !s.roomsGate(w, r, catalog.RoomsGet) {
		return
	}

	room, err := s.rooms.Get(r.PathValue("extranet_id"), r.PathValue("room_id"))
	if err != nil {
		s.serveRoomError(w, r, err)
		return
	}
	s.serveJSON(w, r, http.StatusOK, httputil.Envelope{Success: true, Data: map[string]any{"room": room}})
}

func (s *Server) handleRoomsUpdate(w http.ResponseWriter, r *http.Request) {
	if !s.roomsGate(w, r, catalog.RoomsUpdate) {
		return
	}

	var payload rooms.UpdatePayload
	if err := decodeBody(r, &payload); err != nil {
		s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeValidationError, "Request body must be valid JSON.")
		return
	}

	room, summary, err := s.rooms.Update(r.PathValue("extranet_id"), r.PathValue("room_id"), payload)
	if err != nil {
		s.serveRoomError(w, r, err)
		return
	}
	s.serveJSON(w, r, http.StatusOK, httputil.Envelope{
		Success: true,
		Message: "Room updated successfully.",
		Data:    map[string]any{"room": room, "summary": summary},
	})
}

func (s *Server) handleRoomsDelete(w http.ResponseWriter, r *http.Request) {
	if !s.roomsGate(w, r, catalog.RoomsDelete) {
		return
	}

	summary, err := s.rooms.Delete(r.PathValue("extranet_id"), r.PathValue("room_id"))
	if err != nil {
		s.serveRoomError(w, r, err)
		return
	}
	s.serveJSON(w, r, http.StatusOK, httputil.Envelope{
		Success: true,
		Message: "Room deleted successfully.",
		Data:    map[string]any{"summary": summary},
	})
}

func (s *Server) handleRoomsSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.roomsGate(w, r, catalog.RoomsSubmit) {
		return
	}

	result, err := s.rooms.Submit(r.PathValue("extranet_id"))
	if err != nil {
		s.serveRoomError(w, r, err)
		return
	}
	s.serveJSON(w, r, http.StatusOK, httputil.Envelope{
		Success: true,
		Message: "Room setup completed.",
		Data:    result,
	})
}

// handleRoomsImport seeds the session with the demo rooms of a property
// from the directory. Imported rooms arrive pending verification.
func (s *Server) handleRoomsImport(w http.ResponseWriter, r *http.Request) {
	if !s.roomsGate(w, r, catalog.RoomsImport) {
		return
	}

	var req struct {
		HotelID string `json:"hotel_id"`
	}
	if err := decodeBody(r, &req); err != nil || req.HotelID == "" {
		s.serveFailure(w, r, http.StatusBadRequest, catalog.CodeValidationError, "hotel_id is required.")
		return
	}

	detail, err := s.dir.Preview(req.HotelID)
	if err != nil {
		s.serveFailure(w, r, http.StatusNotFound, catalog.CodePropertyNotFound, "The requested property was not found.")
		return
	}

	imported, summary := s.rooms.Import(r.PathValue("extranet_id"), detail.Rooms)
	if imported == nil {
		imported = []rooms.Room{}
	}
	s.serveJSON(w, r, http.StatusOK, httputil.Envelope{
		Success: true,
		Message: "Rooms imported. Verify each room to continue.",
		Data:    map[string]any{"imported": imported, "summary": summary},
	})
}

// serveRoomError maps repository errors onto the API error taxonomy.
func (s *Server) serveRoomError(w http.ResponseWriter, r *http.Request, err error) {
	var unverified *rooms.UnverifiedError
	switch {
	case errors.Is(err, rooms.ErrValidation):
		s.serveFailure(w, r, http.StatusUnprocessableEntity, catalog.CodeValidationError, "Room name is required.")
	case errors.Is(err, rooms.ErrDuplicateName):
		s.serveFailure(w, r, http.StatusConflict, catalog.CodeDuplicateRoomName, "A room with this name already exists.")
	case errors.Is(err, rooms.ErrNotFound):
		s.serveFailure(w, r, http.StatusNotFound, catalog.CodeRoomNotFound, "The requested room was not found.")
	case errors.Is(err, rooms.ErrNoRooms):
		s.serveFailure(w, r, http.StatusUnprocessableEntity, catalog.CodeNoRoomsAdded, "Add at least one room before submitting this step.")
	case errors.As(err, &unverified):
		s.serveFailureDetails(w, r, http.StatusConflict, catalog.CodeUnverifiedRoomsExist,
			"All rooms must be verified before submitting this step.",
			map[string]any{"unverified_room_ids": unverified.RoomIDs})
	default:
		s.serveFailure(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error.")
	}
}
