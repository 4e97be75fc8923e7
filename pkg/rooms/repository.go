package rooms

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/extramock/extramock/internal/id"
)

// Onboarding step names in flow order. Room setup sits third; a fresh
// session is assumed to have completed the first two steps already.
const (
	StepPropertyDetails     = "property_details"
	StepContactVerification = "contact_verification"
	StepRoomSetup           = "room_setup"
	StepRatePlans           = "rate_plans"
)

// Repository errors.
var (
	ErrValidation    = errors.New("room_name is required")
	ErrDuplicateName = errors.New("duplicate room name")
	ErrNotFound      = errors.New("room not found")
	ErrNoRooms       = errors.New("no rooms added")
)

// UnverifiedError reports a submit blocked by rooms that are not verified.
type UnverifiedError struct {
	RoomIDs []string
}

func (e *UnverifiedError) Error() string {
	return fmt.Sprintf("%d room(s) pending verification", len(e.RoomIDs))
}

type session struct {
	rooms []*Room
	seq   int
}

// Repository holds per-session room collections. All methods are safe for
// concurrent use; a single lock serializes mutations on a session so name
// uniqueness and summaries stay consistent under concurrent add/delete.
type Repository struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// NewRepository creates an empty Repository.
func NewRepository() *Repository {
	return &Repository{sessions: make(map[string]*session)}
}

func (r *Repository) session(extranetID string) *session {
	s, ok := r.sessions[extranetID]
	if !ok {
		s = &session{}
		r.sessions[extranetID] = s
	}
	return s
}

func (s *session) find(roomID string) (int, *Room) {
	for i, rm := range s.rooms {
		if rm.RoomID == roomID {
			return i, rm
		}
	}
	return -1, nil
}

func (s *session) nameTaken(name, excludeRoomID string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, rm := range s.rooms {
		if rm.RoomID == excludeRoomID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(rm.RoomName)) == needle {
			return true
		}
	}
	return false
}

// clone returns a detached copy. Callers marshal responses outside the
// repository lock, so returned rooms must not alias stored state.
func (rm *Room) clone() Room {
	out := *rm
	if rm.Images != nil {
		out.Images = make([]Image, len(rm.Images))
		copy(out.Images, rm.Images)
	}
	if rm.Amenities != nil {
		out.Amenities = make([]Amenity, len(rm.Amenities))
		copy(out.Amenities, rm.Amenities)
	}
	return out
}

func (s *session) summary() Summary {
	sum := Summary{TotalRooms: len(s.rooms)}
	for _, rm := range s.rooms {
		if rm.VerificationStatus == StatusVerified {
			sum.VerifiedRooms++
		} else {
			sum.UnverifiedRooms = append(sum.UnverifiedRooms, rm.RoomID)
		}
	}
	sum.CanSubmitStep = sum.TotalRooms > 0 && len(sum.UnverifiedRooms) == 0
	return sum
}

// Add creates a room from the payload. The name must be present and unique
// within the session ignoring case and surrounding whitespace. Unset
// optional fields fall back to baseline defaults and the room starts
// verified with source manual.
func (r *Repository) Add(extranetID string, payload AddPayload) (Room, Summary, error) {
	name := strings.TrimSpace(payload.RoomName)
	if name == "" {
		return Room{}, Summary{}, ErrValidation
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(extranetID)
	if s.nameTaken(name, "") {
		return Room{}, Summary{}, ErrDuplicateName
	}

	s.seq++
	room := &Room{
		RoomID:             id.Room(s.seq),
		RoomName:           name,
		RoomSize:           Size{Value: 0, Unit: "ft"},
		NumberOfRooms:      1,
		Bathrooms:          Bathrooms{Count: 1, Attached: true},
		Bed:                Bed{Count: 1},
		Occupancy:          Occupancy{BaseAdults: 2, MaxAdults: 2, MaxChildren: 1, MaxOccupancy: 3},
		Images:             []Image{},
		Amenities:          []Amenity{},
		VerificationStatus: StatusVerified,
		Source:             SourceManual,
	}
	applyAdd(room, payload)

	s.rooms = append(s.rooms, room)
	return room.clone(), s.summary(), nil
}

func applyAdd(room *Room, p AddPayload) {
	if p.RoomSize != nil {
		room.RoomSize = *p.RoomSize
	}
	if p.RoomViewID != "" {
		room.RoomView = View{ID: p.RoomViewID, Label: ViewLabel(p.RoomViewID)}
	}
	if p.NumberOfRooms != nil {
		room.NumberOfRooms = *p.NumberOfRooms
	}
	if p.HasBalcony != nil {
		room.HasBalcony = *p.HasBalcony
	}
	if p.SmokingAllowed != nil {
		room.SmokingAllowed = *p.SmokingAllowed
	}
	if p.Bathrooms != nil {
		room.Bathrooms = *p.Bathrooms
	}
	if p.Bed != nil {
		room.Bed = resolveBed(*p.Bed)
	}
	if p.ExtraBedProvided != nil {
		room.ExtraBedProvided = *p.ExtraBedProvided
	}
	if p.Occupancy != nil {
		room.Occupancy = *p.Occupancy
	}
	if p.Images != nil {
		room.Images = p.Images
	}
	if p.Amenities != nil {
		room.Amenities = p.Amenities
	}
}

func resolveBed(in BedInput) Bed {
	bed := Bed{TypeID: in.TypeID, TypeLabel: BedTypeLabel(in.TypeID), Count: 1}
	if in.Count != nil {
		bed.Count = *in.Count
	}
	return bed
}

// Get returns a copy of one room.
func (r *Repository) Get(extranetID, roomID string) (Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[extranetID]
	if !ok {
		return Room{}, ErrNotFound
	}
	if _, rm := s.find(roomID); rm != nil {
		return rm.clone(), nil
	}
	return Room{}, ErrNotFound
}

// List returns copies of the session's rooms in creation order plus the
// summary.
func (r *Repository) List(extranetID string) ([]Room, Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(extranetID)
	out := make([]Room, len(s.rooms))
	for i, rm := range s.rooms {
		out[i] = rm.clone()
	}
	return out, s.summary()
}

// Update applies a partial edit. A rename must stay unique within the
// session. Any applied field change forces the status to
// needs_reverification unless the caller explicitly supplies
// verification_status in the same payload, which wins. A payload that
// applies nothing leaves the status alone.
func (r *Repository) Update(extranetID, roomID string, payload UpdatePayload) (Room, Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[extranetID]
	if !ok {
		return Room{}, Summary{}, ErrNotFound
	}
	_, room := s.find(roomID)
	if room == nil {
		return Room{}, Summary{}, ErrNotFound
	}

	changed := false
	if payload.RoomName != nil {
		name := strings.TrimSpace(*payload.RoomName)
		if name == "" {
			return Room{}, Summary{}, ErrValidation
		}
		if s.nameTaken(name, roomID) {
			return Room{}, Summary{}, ErrDuplicateName
		}
		room.RoomName = name
		changed = true
	}
	if payload.RoomSize != nil {
		room.RoomSize = *payload.RoomSize
		changed = true
	}
	if payload.RoomViewID != nil {
		room.RoomView = View{ID: *payload.RoomViewID, Label: ViewLabel(*payload.RoomViewID)}
		changed = true
	}
	if payload.NumberOfRooms != nil {
		room.NumberOfRooms = *payload.NumberOfRooms
		changed = true
	}
	if payload.HasBalcony != nil {
		room.HasBalcony = *payload.HasBalcony
		changed = true
	}
	if payload.SmokingAllowed != nil {
		room.SmokingAllowed = *payload.SmokingAllowed
		changed = true
	}
	if payload.Bathrooms != nil {
		room.Bathrooms = *payload.Bathrooms
		changed = true
	}
	if payload.Bed != nil {
		room.Bed = resolveBed(*payload.Bed)
		changed = true
	}
	if payload.ExtraBedProvided != nil {
		room.ExtraBedProvided = *payload.ExtraBedProvided
		changed = true
	}
	if payload.Occupancy != nil {
		room.Occupancy = *payload.Occupancy
		changed = true
	}
	if payload.Images != nil {
		room.Images = payload.Images
		changed = true
	}
	if payload.Amenities != nil {
		room.Amenities = payload.Amenities
		changed = true
	}

	// editing invalidates prior verification unless the caller re-affirms
	switch {
	case payload.VerificationStatus != nil:
		room.VerificationStatus = *payload.VerificationStatus
	case changed:
		room.VerificationStatus = StatusNeedsReverification
	}

	return room.clone(), s.summary(), nil
}

// Delete removes the room and returns the recomputed summary. Removing the
// last room is allowed; emptiness is only enforced at Submit.
func (r *Repository) Delete(extranetID, roomID string) (Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[extranetID]
	if !ok {
		return Summary{}, ErrNotFound
	}
	i, room := s.find(roomID)
	if room == nil {
		return Summary{}, ErrNotFound
	}
	s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
	return s.summary(), nil
}

// Submit attempts the room-setup step transition. It fails when the
// session has no rooms or any room is not verified; otherwise it returns
// the step advance with the accumulated completed steps.
func (r *Repository) Submit(extranetID string) (*StepResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(extranetID)
	if len(s.rooms) == 0 {
		return nil, ErrNoRooms
	}

	var unverified []string
	for _, rm := range s.rooms {
		if rm.VerificationStatus != StatusVerified {
			unverified = append(unverified, rm.RoomID)
		}
	}
	if len(unverified) > 0 {
		return nil, &UnverifiedError{RoomIDs: unverified}
	}

	return &StepResult{
		CurrentStep:    StepRoomSetup,
		NextStep:       StepRatePlans,
		CompletedSteps: []string{StepPropertyDetails, StepContactVerification, StepRoomSetup},
	}, nil
}

// Import seeds the session with pre-built rooms, assigning fresh ids and
// marking them imported with pending status. Rooms whose names collide
// with existing ones are skipped. Returns copies of the imported rooms
// and the summary.
func (r *Repository) Import(extranetID string, seeds []Room) ([]Room, Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(extranetID)
	var added []Room
	for _, seed := range seeds {
		name := strings.TrimSpace(seed.RoomName)
		if name == "" || s.nameTaken(name, "") {
			continue
		}
		s.seq++
		room := seed.clone()
		room.RoomID = id.Room(s.seq)
		room.RoomName = name
		room.VerificationStatus = StatusPending
		room.Source = SourceImported
		if room.Images == nil {
			room.Images = []Image{}
		}
		if room.Amenities == nil {
			room.Amenities = []Amenity{}
		}
		s.rooms = append(s.rooms, &room)
		added = append(added, room.clone())
	}
	return added, s.summary()
}
