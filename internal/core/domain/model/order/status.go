package order

import (
	"fmt"

	"depot/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
//	Pending ──> Delivered
//
// There is no reverse transition.
type Status int

const (
	// Unknown catches uninitialised Status values.
	Unknown Status = iota

	// Pending is the status of an order waiting in the depot or in a driver's queue.
	Pending

	// Delivered is the final status of an order carried by a capable vehicle.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Delivered: "Delivered",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s != Pending && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transition can happen from s.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// Deliver returns the status that follows a successful delivery attempt.
//
// Valid transitions:
//   - Pending -> Delivered
//   - Delivered -> Delivered (re-marking is harmless)
func (s Status) Deliver() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Delivered, nil
}
