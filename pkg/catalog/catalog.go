// Package catalog holds the static response catalog: for every mock
// endpoint, an ordered set of named response variants. The first variant of
// each endpoint is the non-forced ("smart") variant and carries an explicit
// Default flag; the rest are forced-error variants selectable from the
// control API. The catalog is read-only after Load.
package catalog

import (
	"encoding/json"
	"fmt"
)

// EndpointID identifies a mock endpoint. The set is closed: handlers are
// registered per id, so an unknown id is a programming error, not a runtime
// lookup failure.
type EndpointID string

// Mock endpoints.
const (
	AuthRegister             EndpointID = "auth/register"
	AuthVerifyOTP            EndpointID = "auth/verify-otp"
	AuthResendOTP            EndpointID = "auth/resend-otp"
	AuthLogin                EndpointID = "auth/login"
	AuthTokenRefresh         EndpointID = "auth/token/refresh"
	AuthLogout               EndpointID = "auth/logout"
	AuthPasswordResetRequest EndpointID = "auth/password/reset-request"
	AuthPasswordReset        EndpointID = "auth/password/reset"
	PropertyHotelSearch      EndpointID = "properties/hotel-search"
	PropertyPreview          EndpointID = "properties/preview"
	ContactSendOTP           EndpointID = "contact/send-otp"
	ContactVerifyOTP         EndpointID = "contact/verify-otp"
	RoomsList                EndpointID = "rooms/list"
	RoomsAdd                 EndpointID = "rooms/add"
	RoomsGet                 EndpointID = "rooms/get"
	RoomsUpdate              EndpointID = "rooms/update"
	RoomsDelete              EndpointID = "rooms/delete"
	RoomsSubmit              EndpointID = "rooms/submit"
	RoomsImport              EndpointID = "rooms/import"
)

// Variant is one named response definition for an endpoint.
type Variant struct {
	// Name is the variant name shown in the control API. For forced-error
	// variants it doubles as the error code the body carries.
	Name string

	// Status is the fixed HTTP status for this variant.
	Status int

	// Default marks the non-forced variant. Exactly one per endpoint, and
	// it must be the first declared.
	Default bool

	// Body is the response body template. Forced variants are served from
	// it verbatim (after timestamp expansion); default variants may carry a
	// marker body that smart handlers replace.
	Body json.RawMessage
}

// Descriptor is the ordered variant set for one endpoint.
type Descriptor struct {
	ID       EndpointID
	Variants []Variant
}

// Variant returns the named variant, or nil if absent.
func (d *Descriptor) Variant(name string) *Variant {
	for i := range d.Variants {
		if d.Variants[i].Name == name {
			return &d.Variants[i]
		}
	}
	return nil
}

// Default returns the endpoint's default (smart) variant.
func (d *Descriptor) Default() *Variant {
	for i := range d.Variants {
		if d.Variants[i].Default {
			return &d.Variants[i]
		}
	}
	// Unreachable after Load validation.
	return &d.Variants[0]
}

// Options returns the variant names in declaration order.
func (d *Descriptor) Options() []string {
	names := make([]string, len(d.Variants))
	for i := range d.Variants {
		names[i] = d.Variants[i].Name
	}
	return names
}

// Catalog is the validated endpoint → descriptor table.
type Catalog struct {
	byID  map[EndpointID]*Descriptor
	order []EndpointID
}

// Load builds the catalog from the static tables and validates every
// descriptor: at least one variant, exactly one default, the default
// declared first, unique variant names, plausible statuses, and bodies
// that parse as JSON.
func Load() (*Catalog, error) {
	c := &Catalog{byID: make(map[EndpointID]*Descriptor, len(descriptors))}

	for i := range descriptors {
		d := &descriptors[i]
		if err := validate(d); err != nil {
			return nil, fmt.Errorf("catalog: endpoint %q: %w", d.ID, err)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("catalog: endpoint %q declared twice", d.ID)
		}
		c.byID[d.ID] = d
		c.order = append(c.order, d.ID)
	}

	return c, nil
}

// MustLoad is Load for wiring paths where the static catalog failing to
// validate is unrecoverable.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func validate(d *Descriptor) error {
	if len(d.Variants) == 0 {
		return fmt.Errorf("no variants declared")
	}

	defaults := 0
	seen := make(map[string]struct{}, len(d.Variants))
	for i := range d.Variants {
		v := &d.Variants[i]
		if v.Name == "" {
			return fmt.Errorf("variant %d has no name", i)
		}
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("variant %q declared twice", v.Name)
		}
		seen[v.Name] = struct{}{}

		if v.Status < 100 || v.Status > 599 {
			return fmt.Errorf("variant %q has invalid status %d", v.Name, v.Status)
		}
		if !json.Valid(v.Body) {
			return fmt.Errorf("variant %q body is not valid JSON", v.Name)
		}
		if v.Default {
			defaults++
			if i != 0 {
				return fmt.Errorf("default variant %q must be declared first", v.Name)
			}
		}
	}
	if defaults != 1 {
		return fmt.Errorf("expected exactly one default variant, found %d", defaults)
	}
	return nil
}

// Endpoints returns all endpoint ids in declaration order.
func (c *Catalog) Endpoints() []EndpointID {
	out := make([]EndpointID, len(c.order))
	copy(out, c.order)
	return out
}

// Descriptor returns the descriptor for an endpoint.
func (c *Catalog) Descriptor(id EndpointID) (*Descriptor, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// Variant returns the named variant for an endpoint.
func (c *Catalog) Variant(id EndpointID, name string) (*Variant, bool) {
	d, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	v := d.Variant(name)
	if v == nil {
		return nil, false
	}
	return v, true
}

// Default returns the default variant for an endpoint.
func (c *Catalog) Default(id EndpointID) (*Variant, bool) {
	d, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return d.Default(), true
}
