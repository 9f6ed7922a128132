package eventlog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"depot/internal/adapters/out/eventlog"
	"depot/internal/core/domain/model/depot"
	"depot/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	p := eventlog.NewPublisher(logger)

	err := p.Publish(t.Context(),
		depot.Event{ID: kernel.NewUUID(), Type: depot.OrderDelivered, DriverID: kernel.NewUUID(), OrderID: "A", Message: "delivered"},
		depot.Event{ID: kernel.NewUUID(), Type: depot.VehicleAssigned, DriverID: kernel.NewUUID(), VehicleID: kernel.NewUUID()},
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "depot event", first["msg"])
	assert.Equal(t, "depot-events", first["component"])
	assert.Equal(t, "order.delivered", first["type"])
	assert.Equal(t, "A", first["order_id"])
	assert.NotContains(t, first, "vehicle_id")

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Contains(t, second, "vehicle_id")
	assert.NotContains(t, second, "order_id")
}
