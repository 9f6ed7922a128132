package kernel

import (
	"fmt"

	"depot/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString or UUIDFrom")

// UUID is the identifier of the depot's entities. It wraps github.com/google/uuid
// and is immutable. The zero value is invalid.
//
//	driverID := kernel.NewUUID()
//	same, err := kernel.UUIDFromString(driverID.String())
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced, urn or hyphenless form.
// The nil UUID is rejected with ErrUUIDIsNotConstructed.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUIDFrom(id)
}

// UUIDFrom wraps an already parsed uuid.UUID, typically one bound by the HTTP layer.
func UUIDFrom(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Value returns the underlying uuid.UUID.
func (u UUID) Value() uuid.UUID {
	return u.id
}

// MarshalText implements encoding.TextMarshaler so read models serialise IDs as strings.
func (u UUID) MarshalText() ([]byte, error) {
	return u.id.MarshalText()
}

// IsEqual reports whether both UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
