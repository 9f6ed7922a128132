package queries

import (
	"context"

	"depot/internal/core/domain/model/depot"
	"depot/internal/core/ports"
)

// DescribeDepotStateQueryHandler renders the depot state report.
//
// Example:
//
//	handler := NewDescribeDepotStateQueryHandler(reader)
//	state, err := handler.Handle(ctx, NewDescribeDepotStateQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Print(state)
type DescribeDepotStateQueryHandler struct {
	reader ports.DepotReader
}

// NewDescribeDepotStateQueryHandler creates the handler.
func NewDescribeDepotStateQueryHandler(reader ports.DepotReader) DescribeDepotStateQueryHandler {
	return DescribeDepotStateQueryHandler{reader: reader}
}

// Handle returns the multi-line report.
func (h DescribeDepotStateQueryHandler) Handle(ctx context.Context, query DescribeDepotStateQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var state string
	err := h.reader.View(ctx, func(d *depot.Depot) error {
		state = d.DescribeState()
		return nil
	})
	if err != nil {
		return "", err
	}

	return state, nil
}
