// Package rooms implements the in-memory room inventory built up during
// onboarding. Rooms are partitioned per onboarding session (extranet id),
// carry a verification status, and gate the room-setup step submission.
package rooms

// Status tracks whether a room's details have been verified.
type Status string

// Verification statuses. Pending is the initial state for imported rooms;
// edits knock a verified room back to NeedsReverification.
const (
	StatusVerified            Status = "verified"
	StatusPending             Status = "pending"
	StatusNeedsReverification Status = "needs_reverification"
)

// Source records how a room entered the inventory.
type Source string

// Room sources.
const (
	SourceManual   Source = "manual"
	SourceImported Source = "imported"
)

// Size is a room's floor area.
type Size struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

// View pairs a view enumeration id with its display label.
type View struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Bathrooms describes bathroom count and attachment.
type Bathrooms struct {
	Count    int  `json:"count"`
	Attached bool `json:"attached"`
}

// Bed pairs a bed-type enumeration id with its label and count.
type Bed struct {
	TypeID    string `json:"type_id"`
	TypeLabel string `json:"type_label"`
	Count     int    `json:"count"`
}

// Occupancy describes guest limits for a room.
type Occupancy struct {
	BaseAdults   int `json:"base_adults"`
	MaxAdults    int `json:"max_adults"`
	MaxChildren  int `json:"max_children"`
	MaxOccupancy int `json:"max_occupancy"`
}

// Image is one room photo with a content tag.
type Image struct {
	URL    string `json:"url"`
	Tag    string `json:"tag"`
	IsHero bool   `json:"is_hero"`
}

// Amenity is one room amenity selection.
type Amenity struct {
	AmenityID   string `json:"amenity_id"`
	Label       string `json:"label"`
	ImageURL    string `json:"image_url,omitempty"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	IsSelected  bool   `json:"is_selected"`
}

// Room is one room resource owned by an onboarding session.
type Room struct {
	RoomID             string    `json:"room_id"`
	RoomName           string    `json:"room_name"`
	RoomSize           Size      `json:"room_size"`
	RoomView           View      `json:"room_view"`
	NumberOfRooms      int       `json:"number_of_rooms"`
	HasBalcony         bool      `json:"has_balcony"`
	SmokingAllowed     bool      `json:"smoking_allowed"`
	Bathrooms          Bathrooms `json:"bathrooms"`
	Bed                Bed       `json:"bed"`
	ExtraBedProvided   bool      `json:"extra_bed_provided"`
	Occupancy          Occupancy `json:"occupancy"`
	Images             []Image   `json:"images"`
	Amenities          []Amenity `json:"amenities"`
	VerificationStatus Status    `json:"verification_status"`
	Source             Source    `json:"source,omitempty"`
}

// Summary is the derived per-session rollup returned from mutating calls.
type Summary struct {
	TotalRooms      int      `json:"total_rooms"`
	VerifiedRooms   int      `json:"verified_rooms"`
	UnverifiedRooms []string `json:"unverified_room_ids"`
	CanSubmitStep   bool     `json:"can_submit_step"`
}

// StepResult is returned from a successful room-setup submission.
type StepResult struct {
	CurrentStep    string   `json:"current_step"`
	NextStep       string   `json:"next_step"`
	CompletedSteps []string `json:"completed_steps"`
}

// AddPayload carries caller-supplied fields for room creation. Pointer
// fields distinguish "absent" from zero so baseline defaults only fill
// genuinely unset values.
type AddPayload struct {
	RoomName         string     `json:"room_name"`
	RoomSize         *Size      `json:"room_size,omitempty"`
	RoomViewID       string     `json:"room_view_id,omitempty"`
	NumberOfRooms    *int       `json:"number_of_rooms,omitempty"`
	HasBalcony       *bool      `json:"has_balcony,omitempty"`
	SmokingAllowed   *bool      `json:"smoking_allowed,omitempty"`
	Bathrooms        *Bathrooms `json:"bathrooms,omitempty"`
	Bed              *BedInput  `json:"bed,omitempty"`
	ExtraBedProvided *bool      `json:"extra_bed_provided,omitempty"`
	Occupancy        *Occupancy `json:"occupancy,omitempty"`
	Images           []Image    `json:"images,omitempty"`
	Amenities        []Amenity  `json:"amenities,omitempty"`
}

// BedInput is the caller-side bed shape: a type id plus count, with the
// label resolved server-side.
type BedInput struct {
	TypeID string `json:"type_id"`
	Count  *int   `json:"count,omitempty"`
}

// UpdatePayload carries a partial room edit. Only non-nil fields apply.
type UpdatePayload struct {
	RoomName           *string    `json:"room_name,omitempty"`
	RoomSize           *Size      `json:"room_size,omitempty"`
	RoomViewID         *string    `json:"room_view_id,omitempty"`
	NumberOfRooms      *int       `json:"number_of_rooms,omitempty"`
	HasBalcony         *bool      `json:"has_balcony,omitempty"`
	SmokingAllowed     *bool      `json:"smoking_allowed,omitempty"`
	Bathrooms          *Bathrooms `json:"bathrooms,omitempty"`
	Bed                *BedInput  `json:"bed,omitempty"`
	ExtraBedProvided   *bool      `json:"extra_bed_provided,omitempty"`
	Occupancy          *Occupancy `json:"occupancy,omitempty"`
	Images             []Image    `json:"images,omitempty"`
	Amenities          []Amenity  `json:"amenities,omitempty"`
	VerificationStatus *Status    `json:"verification_status,omitempty"`
}
