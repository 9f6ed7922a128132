package seed_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"depot/internal/adapters/in/seed"
	"depot/internal/adapters/out/memory"
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/depot"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `
vehicles:
  - key: van
    kind: truck
    brand: Renault
    model: Master
    registration: AB-123-CD
    capacityTonnes: 3.5
  - key: moto
    kind: Motorcycle
    brand: Yamaha
    model: MT-07
    registration: EF-456-GH
    maxSpeedKmh: 180
drivers:
  - key: bob
    name: Bob
    vehicle: van
  - key: alice
    name: Alice
orders:
  - id: ORD-1
    destination: Paris
    weightKg: 12.5
    driver: bob
  - id: ORD-2
    destination: Lyon
    weightKg: 40
`

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW {
	return f()
}

func newLoader(t *testing.T) (*seed.Loader, *memory.Store) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	memoryFactory := memory.NewUnitOfWorkFactory(store, nil, logger)
	factory := uowFactory(func() commands.UoW { return memoryFactory.Create() })

	return seed.NewLoader(seed.Handlers{
		AddVehicle:    commands.NewAddVehicleCommandHandler(factory),
		AddDriver:     commands.NewAddDriverCommandHandler(factory),
		CreateOrder:   commands.NewCreateOrderCommandHandler(factory),
		AssignVehicle: commands.NewAssignVehicleCommandHandler(factory),
		AssignOrder:   commands.NewAssignOrderCommandHandler(factory),
	}, logger), store
}

func view(t *testing.T, store *memory.Store, fn func(d *depot.Depot)) {
	t.Helper()

	require.NoError(t, store.View(t.Context(), func(d *depot.Depot) error {
		fn(d)
		return nil
	}))
}

func TestLoader_Load(t *testing.T) {
	loader, store := newLoader(t)

	summary, err := loader.Load(t.Context(), strings.NewReader(fixture))

	require.NoError(t, err)
	assert.Equal(t, seed.Summary{Vehicles: 2, Drivers: 2, Orders: 2, Assignments: 2}, summary)

	view(t, store, func(d *depot.Depot) {
		available := d.AvailableVehicles()
		require.Len(t, available, 1)
		assert.Equal(t, "EF-456-GH", available[0].Registration())

		drivers := d.Drivers()
		require.Len(t, drivers, 2)
		assert.Equal(t, "Bob", drivers[0].Name())
		require.True(t, drivers[0].HasVehicle())
		assert.Equal(t, "AB-123-CD", drivers[0].Vehicle().Registration())
		assert.Equal(t, 1, drivers[0].PendingOrderCount())
		assert.False(t, drivers[1].HasVehicle())

		pending := d.PendingOrders()
		require.Len(t, pending, 1)
		assert.Equal(t, "ORD-2", pending[0].ID())
	})
}

func TestLoader_LoadFile(t *testing.T) {
	loader, _ := newLoader(t)
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	summary, err := loader.LoadFile(t.Context(), path)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Orders)

	t.Run("missing_file", func(t *testing.T) {
		_, err := loader.LoadFile(t.Context(), filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoader_EmptyDocument(t *testing.T) {
	loader, _ := newLoader(t)

	summary, err := loader.Load(context.Background(), strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, seed.Summary{}, summary)
}

func TestLoader_Rejects(t *testing.T) {
	tests := map[string]struct {
		doc      string
		expected error
	}{
		"overweight_order": {
			doc:      "orders:\n  - {id: ORD-1, destination: Paris, weightKg: 150}\n",
			expected: seed.ErrInvalidWeight,
		},
		"unknown_vehicle_key": {
			doc:      "drivers:\n  - {key: bob, name: Bob, vehicle: van}\n",
			expected: seed.ErrUnknownKey,
		},
		"unknown_driver_key": {
			doc:      "orders:\n  - {id: ORD-1, destination: Paris, weightKg: 5, driver: bob}\n",
			expected: seed.ErrUnknownKey,
		},
		"duplicate_vehicle_key": {
			doc: "vehicles:\n" +
				"  - {key: van, kind: truck, brand: R, model: M, registration: A, capacityTonnes: 1}\n" +
				"  - {key: van, kind: truck, brand: R, model: M, registration: B, capacityTonnes: 1}\n",
			expected: seed.ErrDuplicateKey,
		},
		"missing_measure": {
			doc:      "vehicles:\n  - {kind: motorcycle, brand: Y, model: M, registration: A, capacityTonnes: 1}\n",
			expected: seed.ErrMissingMeasure,
		},
		"invalid_driver_name": {
			doc:      "drivers:\n  - {name: Bob2}\n",
			expected: errs.ErrValueIsInvalid,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			loader, _ := newLoader(t)

			_, err := loader.Load(t.Context(), strings.NewReader(tt.doc))

			require.ErrorIs(t, err, tt.expected)
		})
	}

	t.Run("unknown_field", func(t *testing.T) {
		loader, _ := newLoader(t)

		_, err := loader.Load(t.Context(), strings.NewReader("trucks: []\n"))

		require.Error(t, err)
	})
}
