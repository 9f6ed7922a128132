package commands_test

import (
	"testing"

	"depot/internal/core/domain/model/depot"
	"depot/internal/core/domain/model/driver"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/order"
	"depot/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

func addTruck(t *testing.T, d *depot.Depot, capacityTonnes float64) *vehicle.Truck {
	t.Helper()
	truck, err := vehicle.NewTruck(kernel.NewUUID(), "Renault", "Master", "AB-123-CD", capacityTonnes)
	require.NoError(t, err)
	require.NoError(t, d.AddVehicle(truck))
	return truck
}

func addMotorcycle(t *testing.T, d *depot.Depot) *vehicle.Motorcycle {
	t.Helper()
	moto, err := vehicle.NewMotorcycle(kernel.NewUUID(), "Yamaha", "MT-07", "EF-456-GH", 80)
	require.NoError(t, err)
	require.NoError(t, d.AddVehicle(moto))
	return moto
}

func addDriver(t *testing.T, d *depot.Depot, name string) *driver.Driver {
	t.Helper()
	dr, err := driver.NewDriver(kernel.NewUUID(), name)
	require.NoError(t, err)
	require.NoError(t, d.AddDriver(dr))
	return dr
}

func addOrder(t *testing.T, d *depot.Depot, id string, weightKg float64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, "Lyon", weightKg)
	require.NoError(t, err)
	require.NoError(t, d.AddPendingOrder(o))
	return o
}
