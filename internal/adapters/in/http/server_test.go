package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "depot/internal/adapters/in/http"
	"depot/internal/adapters/out/memory"
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW {
	return f()
}

type ServerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ServerTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	memoryFactory := memory.NewUnitOfWorkFactory(store, nil, logger)
	factory := uowFactory(func() commands.UoW { return memoryFactory.Create() })

	server := api.NewServer(api.Handlers{
		AddVehicle:        commands.NewAddVehicleCommandHandler(factory),
		AddDriver:         commands.NewAddDriverCommandHandler(factory),
		CreateOrder:       commands.NewCreateOrderCommandHandler(factory),
		AssignVehicle:     commands.NewAssignVehicleCommandHandler(factory),
		AssignOrder:       commands.NewAssignOrderCommandHandler(factory),
		PerformDeliveries: commands.NewPerformDeliveriesCommandHandler(factory),
		Dispatch:          commands.NewDispatchPendingOrdersCommandHandler(factory),
		AvailableVehicles: queries.NewGetAvailableVehiclesQueryHandler(store),
		Drivers:           queries.NewGetDriversQueryHandler(store),
		PendingOrders:     queries.NewGetPendingOrdersQueryHandler(store),
		DepotState:        queries.NewDescribeDepotStateQueryHandler(store),
	})

	var err error
	s.echo, err = api.NewEcho(server, logger)
	s.Require().NoError(err)
}

func (s *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) created(rec *httptest.ResponseRecorder) string {
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var out api.Created
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	s.Require().NotEmpty(out.ID)
	return out.ID
}

func (s *ServerTestSuite) addTruck() string {
	return s.created(s.do(http.MethodPost, "/api/v1/vehicles",
		`{"kind":"truck","brand":"Renault","model":"Master","registration":"AB-123-CD","capacityTonnes":3.5}`))
}

func (s *ServerTestSuite) addMotorcycle() string {
	return s.created(s.do(http.MethodPost, "/api/v1/vehicles",
		`{"kind":"motorcycle","brand":"Yamaha","model":"MT-07","registration":"EF-456-GH","maxSpeedKmh":180}`))
}

func (s *ServerTestSuite) addDriver(name string) string {
	return s.created(s.do(http.MethodPost, "/api/v1/drivers", `{"name":"`+name+`"}`))
}

func (s *ServerTestSuite) addOrder(id string, weight string) {
	s.created(s.do(http.MethodPost, "/api/v1/orders",
		`{"id":"`+id+`","destination":"Paris","weightKg":`+weight+`}`))
}

func (s *ServerTestSuite) assignVehicle(driverID, vehicleID string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, "/api/v1/drivers/"+driverID+"/vehicle", `{"vehicleId":"`+vehicleID+`"}`)
}

func (s *ServerTestSuite) assignOrder(driverID, orderID string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, "/api/v1/drivers/"+driverID+"/orders", `{"orderId":"`+orderID+`"}`)
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerTestSuite) TestOpenAPIDocumentIsServed() {
	rec := s.do(http.MethodGet, "/openapi.json", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "/api/v1/vehicles")
}

func (s *ServerTestSuite) TestAddVehicle() {
	truckID := s.addTruck()
	motoID := s.addMotorcycle()

	rec := s.do(http.MethodGet, "/api/v1/vehicles", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var vehicles []api.Vehicle
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &vehicles))
	s.Require().Len(vehicles, 2)

	s.Equal(truckID, vehicles[0].ID.String())
	s.Equal("truck", vehicles[0].Kind)
	s.Require().NotNil(vehicles[0].CapacityTonnes)
	s.InDelta(3.5, *vehicles[0].CapacityTonnes, 1e-9)
	s.Nil(vehicles[0].MaxSpeedKmh)
	s.Equal("Brand: Renault, Model: Master, Registration: AB-123-CD, Capacity: 3.5 t", vehicles[0].Description)

	s.Equal(motoID, vehicles[1].ID.String())
	s.Equal("motorcycle", vehicles[1].Kind)
	s.Require().NotNil(vehicles[1].MaxSpeedKmh)
	s.InDelta(180, *vehicles[1].MaxSpeedKmh, 1e-9)
}

func (s *ServerTestSuite) TestAddVehicle_InvalidInput() {
	tests := map[string]string{
		"unknown_kind":       `{"kind":"bicycle","brand":"B","model":"M","registration":"R","capacityTonnes":1}`,
		"missing_brand":      `{"kind":"truck","model":"M","registration":"R","capacityTonnes":1}`,
		"missing_capacity":   `{"kind":"truck","brand":"B","model":"M","registration":"R"}`,
		"truck_with_speed":   `{"kind":"truck","brand":"B","model":"M","registration":"R","maxSpeedKmh":90}`,
		"negative_capacity":  `{"kind":"truck","brand":"B","model":"M","registration":"R","capacityTonnes":-1}`,
		"malformed_document": `{"kind":`,
	}

	for name, body := range tests {
		s.Run(name, func() {
			rec := s.do(http.MethodPost, "/api/v1/vehicles", body)

			s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func (s *ServerTestSuite) TestAddDriver() {
	id := s.addDriver("Bob")

	rec := s.do(http.MethodGet, "/api/v1/drivers", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var drivers []api.Driver
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &drivers))
	s.Require().Len(drivers, 1)
	s.Equal(id, drivers[0].ID.String())
	s.Equal("Bob", drivers[0].Name)
	s.Nil(drivers[0].Vehicle)
	s.Empty(drivers[0].PendingOrders)
	s.Equal("Driver: Bob, Vehicle: [No vehicle], Orders in progress: 0", drivers[0].Description)
}

func (s *ServerTestSuite) TestAddDriver_InvalidName() {
	for _, name := range []string{"Bob2", "Jean Luc", ""} {
		rec := s.do(http.MethodPost, "/api/v1/drivers", `{"name":"`+name+`"}`)

		s.Equal(http.StatusBadRequest, rec.Code, name)
	}
}

func (s *ServerTestSuite) TestAddPendingOrder() {
	s.addOrder("ORD-1", "12.5")

	rec := s.do(http.MethodGet, "/api/v1/orders/pending", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var orders []api.Order
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &orders))
	s.Require().Len(orders, 1)
	s.Equal("ORD-1", orders[0].ID)
	s.Equal("Paris", orders[0].Destination)
	s.InDelta(12.5, orders[0].WeightKg, 1e-9)
	s.Equal("pending", orders[0].Status)
}

func (s *ServerTestSuite) TestAddPendingOrder_Rejected() {
	s.addOrder("ORD-1", "10")

	s.Run("weight_above_ceiling", func() {
		rec := s.do(http.MethodPost, "/api/v1/orders", `{"id":"ORD-2","destination":"Paris","weightKg":120}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("zero_weight", func() {
		rec := s.do(http.MethodPost, "/api/v1/orders", `{"id":"ORD-3","destination":"Paris","weightKg":0}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("duplicate_id", func() {
		rec := s.do(http.MethodPost, "/api/v1/orders", `{"id":"ORD-1","destination":"Lyon","weightKg":5}`)
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *ServerTestSuite) TestAssignVehicle() {
	truckID := s.addTruck()
	bobID := s.addDriver("Bob")
	aliceID := s.addDriver("Alice")

	s.Equal(http.StatusNoContent, s.assignVehicle(bobID, truckID).Code)

	s.Run("vehicle_left_the_pool", func() {
		rec := s.do(http.MethodGet, "/api/v1/vehicles", "")
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("vehicle_not_available", func() {
		s.Equal(http.StatusConflict, s.assignVehicle(aliceID, truckID).Code)
	})

	s.Run("driver_already_has_vehicle", func() {
		s.Equal(http.StatusConflict, s.assignVehicle(bobID, s.addMotorcycle()).Code)
	})

	s.Run("unknown_driver", func() {
		rec := s.assignVehicle("4b7c2f0e-9a55-4d2e-8f0c-2f5a9f0d1c11", s.addMotorcycle())
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed_driver_id", func() {
		s.Equal(http.StatusBadRequest, s.assignVehicle("not-a-uuid", truckID).Code)
	})
}

func (s *ServerTestSuite) TestAssignOrder_DriverWithoutVehicle() {
	bobID := s.addDriver("Bob")
	s.addOrder("ORD-1", "10")

	rec := s.assignOrder(bobID, "ORD-1")

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) TestAssignOrder_UnknownOrder() {
	bobID := s.addDriver("Bob")
	s.Require().Equal(http.StatusNoContent, s.assignVehicle(bobID, s.addTruck()).Code)

	rec := s.assignOrder(bobID, "ORD-404")

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) TestPerformDeliveries() {
	bobID := s.addDriver("Bob")
	s.Require().Equal(http.StatusNoContent, s.assignVehicle(bobID, s.addMotorcycle()).Code)
	s.addOrder("ORD-1", "10")
	s.addOrder("ORD-2", "60")
	s.Require().Equal(http.StatusNoContent, s.assignOrder(bobID, "ORD-1").Code)
	s.Require().Equal(http.StatusNoContent, s.assignOrder(bobID, "ORD-2").Code)

	rec := s.do(http.MethodPost, "/api/v1/drivers/"+bobID+"/deliveries", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var report api.DeliveryReport
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &report))
	s.Equal(bobID, report.DriverID.String())
	s.Equal("completed", report.Kind)
	s.Require().Len(report.Lines, 2)

	s.Equal("ORD-1", report.Lines[0].OrderID)
	s.True(report.Lines[0].Delivered)
	s.Equal("delivered", report.Lines[0].Status)

	s.Equal("ORD-2", report.Lines[1].OrderID)
	s.False(report.Lines[1].Delivered)
	s.Equal("pending", report.Lines[1].Status)

	s.Run("queue_is_cleared", func() {
		rec := s.do(http.MethodPost, "/api/v1/drivers/"+bobID+"/deliveries", "")
		s.Require().Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"kind":"no_orders"`)
	})
}

func (s *ServerTestSuite) TestPerformDeliveries_NoVehicle() {
	bobID := s.addDriver("Bob")

	rec := s.do(http.MethodPost, "/api/v1/drivers/"+bobID+"/deliveries", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"kind":"no_vehicle"`)
}

func (s *ServerTestSuite) TestDispatchPendingOrders() {
	s.Run("nothing_pending", func() {
		rec := s.do(http.MethodPost, "/api/v1/dispatch", "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"dispatched":0}`, rec.Body.String())
	})

	bobID := s.addDriver("Bob")
	s.Require().Equal(http.StatusNoContent, s.assignVehicle(bobID, s.addTruck()).Code)
	s.addOrder("ORD-1", "10")
	s.addOrder("ORD-2", "90")

	rec := s.do(http.MethodPost, "/api/v1/dispatch", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"dispatched":2}`, rec.Body.String())
	s.JSONEq(`[]`, s.do(http.MethodGet, "/api/v1/orders/pending", "").Body.String())
}

func (s *ServerTestSuite) TestDescribeDepotState() {
	s.addTruck()
	s.addDriver("Bob")

	rec := s.do(http.MethodGet, "/api/v1/depot/state", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
	s.Contains(rec.Body.String(), "--- Depot state ---")
	s.Contains(rec.Body.String(), "- Brand: Renault, Model: Master, Registration: AB-123-CD, Capacity: 3.5 t")
	s.Contains(rec.Body.String(), "- Driver: Bob, Vehicle: [No vehicle], Orders in progress: 0")
	s.Contains(rec.Body.String(), "No pending orders.")
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
