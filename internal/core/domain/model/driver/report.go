package driver

import (
	"fmt"
	"strings"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/order"
	"depot/internal/core/domain/model/vehicle"
)

// ReportKind tells how a delivery run ended.
type ReportKind int

const (
	// NoVehicle means the driver could not start: no vehicle is assigned.
	NoVehicle ReportKind = iota + 1
	// NoOrders means the driver had an empty queue.
	NoOrders
	// Completed means every queued order was attempted.
	Completed
)

func (k ReportKind) String() string {
	switch k {
	case NoVehicle:
		return "no_vehicle"
	case NoOrders:
		return "no_orders"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// ReportLine is the result of one order in a run, with the status after the attempt.
type ReportLine struct {
	Outcome vehicle.Outcome
	Status  order.Status
}

func (l ReportLine) String() string {
	return fmt.Sprintf("%s - Order status: %s", l.Outcome.Message, l.Status)
}

// Report is the result of Driver.PerformDeliveries.
type Report struct {
	DriverID   kernel.UUID
	DriverName string
	Kind       ReportKind
	Lines      []ReportLine
}

// Delivered counts the orders carried during the run.
func (r Report) Delivered() int {
	n := 0
	for _, l := range r.Lines {
		if l.Outcome.Delivered {
			n++
		}
	}
	return n
}

// Failed counts the orders the vehicle refused during the run.
func (r Report) Failed() int {
	return len(r.Lines) - r.Delivered()
}

// String renders the report, one line per attempted order.
func (r Report) String() string {
	switch r.Kind {
	case NoVehicle:
		return r.DriverName + " has no vehicle to perform deliveries."
	case NoOrders:
		return r.DriverName + " has no orders in progress."
	}

	lines := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = l.String()
	}
	return strings.Join(lines, "\n")
}
