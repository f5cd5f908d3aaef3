package directory

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ummana/config"
	deliverycontext "ummana/internal/delivery/context"
	"ummana/internal/domain/entity"
	"ummana/internal/domain/repository"
	"ummana/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method    string
	Path      string
	Body      map[string]any
	RequestID string
}

// newTestClient answers every request with status and response and records the last request.
func newTestClient(t *testing.T, status int, response string) (*Client, *capturedRequest) {
	t.Helper()

	return newRoutedTestClient(t, status, map[string]string{"": response})
}

// newRoutedTestClient answers with the response registered for the request path,
// falling back to the "" entry, then to "{}".
func newRoutedTestClient(t *testing.T, status int, responses map[string]string) (*Client, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Method = r.Method
		captured.Path = r.URL.EscapedPath()
		captured.RequestID = r.Header.Get("X-Request-Id")
		captured.Body = nil
		if body, _ := io.ReadAll(r.Body); len(body) > 0 {
			assert.NoError(t, json.Unmarshal(body, &captured.Body))
		}
		response, ok := responses[r.URL.Path]
		if !ok {
			response, ok = responses[""]
		}
		if !ok {
			response = "{}"
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Directory.BaseURL = server.URL

	client, err := NewClient(ClientParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: metrics.New(),
	})
	require.NoError(t, err)

	return client, captured
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.Directory.BaseURL = "not a url"

	_, err := NewClient(ClientParams{Config: cfg, Logger: slog.Default()})
	assert.Error(t, err)
}

func TestClient_ListCommunities(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `[
		{"id":"c1","name":"Kofar Wambai","settlement":"Wambai","ward":"Dala","lga":"Dala","location":{"lat":12.0,"lng":8.5}},
		{"id":7,"name":"Flat","settlement":"s","ward":"w","lga":"l","lat":1.5,"lng":2.5},
		{"id":"c3","name":"Nowhere","settlement":"s","ward":"w","lga":"l"}
	]`)

	ctx := deliverycontext.WithRequest(context.Background(), "req-42", nil)
	communities, err := client.ListCommunities(ctx)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/catchment-areas", captured.Path)
	assert.Equal(t, "req-42", captured.RequestID)

	require.Len(t, communities, 3)
	assert.Equal(t, &entity.Coordinates{Lat: 12.0, Lng: 8.5}, communities[0].Location)
	assert.Equal(t, "7", communities[1].ID)
	assert.Equal(t, &entity.Coordinates{Lat: 1.5, Lng: 2.5}, communities[1].Location)
	assert.Nil(t, communities[2].Location)
}

func TestClient_CreateCommunity(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"id":"new-1"}`)

	id, err := client.CreateCommunity(context.Background(), &entity.Community{
		Name: "Dala", Settlement: "Dala", Ward: "Dala", LGA: "Dala",
		Location: &entity.Coordinates{Lat: 12, Lng: 8.5},
	})
	require.NoError(t, err)
	assert.Equal(t, "new-1", id)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/register-catchment-area", captured.Path)
	assert.Equal(t, map[string]any{
		"name": "Dala", "settlement": "Dala", "ward": "Dala", "lga": "Dala", "lat": 12.0, "lng": 8.5,
	}, captured.Body)
}

func TestClient_UpdateAndDeleteCommunity(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{}`)

	require.NoError(t, client.UpdateCommunity(context.Background(), &entity.Community{ID: "c 1", Name: "x"}))
	assert.Equal(t, http.MethodPut, captured.Method)
	assert.Equal(t, "/catchment-areas/c%201", captured.Path)

	require.NoError(t, client.DeleteCommunity(context.Background(), "c1"))
	assert.Equal(t, http.MethodDelete, captured.Method)
	assert.Equal(t, "/catchment-areas/c1", captured.Path)
}

func TestClient_Agents(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `[{"id":"a1","firstName":"Amina","lastName":"Bello","phoneNumber":"08012345678","catchmentAreaIds":["c1",2]}]`)

	agents, err := client.ListAgents(context.Background())
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, []string{"c1", "2"}, agents[0].CatchmentAreaIDs)
	assert.Equal(t, entity.AgentStatusActive, agents[0].Status)
	assert.Equal(t, "/chips-agents", captured.Path)

	agent := &entity.Agent{ID: "a1", FirstName: "Amina", LastName: "Bello", PhoneNumber: "08012345678", CatchmentAreaIDs: []string{"c1"}}
	require.NoError(t, client.UpdateAgent(context.Background(), agent))
	assert.Equal(t, http.MethodPatch, captured.Method)
	assert.Equal(t, "/update-chips-agent/a1", captured.Path)
	assert.Equal(t, []any{"c1"}, captured.Body["catchmentAreaIds"])

	require.NoError(t, client.DeleteAgent(context.Background(), "a1"))
	assert.Equal(t, "/chips-agents/a1", captured.Path)
}

func TestClient_CreateAgent(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"id":15}`)

	id, err := client.CreateAgent(context.Background(), &entity.Agent{FirstName: "A", LastName: "B", PhoneNumber: "08012345678", CatchmentAreaIDs: []string{"c1"}})
	require.NoError(t, err)
	assert.Equal(t, "15", id)
	assert.Equal(t, "/register-chips", captured.Path)
	assert.Equal(t, map[string]any{
		"firstName": "A", "lastName": "B", "phoneNumber": "08012345678", "catchmentAreaIds": []any{"c1"},
	}, captured.Body)
}

func TestClient_Drivers(t *testing.T) {
	client, captured := newRoutedTestClient(t, http.StatusOK, map[string]string{
		"/register-ets-driver": `{"id":"d9"}`,
		"/ets-drivers": `[
		{"id":"d1","firstName":"Musa","lastName":"D","phoneNumber":"09012345678","vehicleType":"car","assignedCatchmentAreas":["c1"]},
		{"id":"d2","firstName":"Ali","lastName":"K","phoneNumber":"09012345678","vehicleType":"motorcycle","assignedCatchmentAreas":[],"isAvailable":false}
	]`,
	})

	drivers, err := client.ListDrivers(context.Background())
	require.NoError(t, err)
	require.Len(t, drivers, 2)
	assert.Equal(t, []string{"c1"}, drivers[0].CatchmentAreaIDs)
	assert.True(t, drivers[0].IsAvailable)
	assert.False(t, drivers[1].IsAvailable)
	assert.Equal(t, "/ets-drivers", captured.Path)

	driver := &entity.Driver{ID: "d1", FirstName: "Musa", LastName: "D", PhoneNumber: "09012345678", VehicleType: entity.VehicleCar, CatchmentAreaIDs: []string{"c1", "c2"}}

	id, err := client.CreateDriver(context.Background(), driver)
	require.NoError(t, err)
	assert.Equal(t, "d9", id)
	assert.Equal(t, "/register-ets-driver", captured.Path)
	assert.Equal(t, []any{"c1", "c2"}, captured.Body["catchmentAreaIds"])
	assert.NotContains(t, captured.Body, "assignedCatchmentAreas")

	require.NoError(t, client.UpdateDriver(context.Background(), driver))
	assert.Equal(t, http.MethodPatch, captured.Method)
	assert.Equal(t, "/update-ets-driver/d1", captured.Path)
	assert.Equal(t, []any{"c1", "c2"}, captured.Body["assignedCatchmentAreas"])
	assert.NotContains(t, captured.Body, "catchmentAreaIds")

	require.NoError(t, client.DeleteDriver(context.Background(), "d1"))
	assert.Equal(t, "/ets-drivers/d1", captured.Path)
}

func TestClient_Facilities(t *testing.T) {
	client, captured := newRoutedTestClient(t, http.StatusOK, map[string]string{
		"/register-hospital": `{"id":"h9"}`,
		"/hospitals": `[
		{"id":"h1","name":"Nested","ward":"w","lga":"l","lat":1,"lng":2,"facilityType":"General Hospital","capabilities":{"has_doctor":true}},
		{"id":"h2","name":"Flat","ward":"w","lga":"l","lat":1,"lng":2,"facilityType":"Other","has_blood":true,"has_doctor":false},
		{"id":"h3","name":"None","ward":"w","lga":"l","lat":1,"lng":2,"facilityType":"Other"}
	]`,
	})

	facilities, err := client.ListFacilities(context.Background())
	require.NoError(t, err)
	require.Len(t, facilities, 3)
	assert.True(t, facilities[0].Capabilities[entity.CapDoctor])
	assert.True(t, facilities[1].Capabilities[entity.CapBlood])
	assert.Nil(t, facilities[2].Capabilities)
	assert.Equal(t, "/hospitals", captured.Path)

	facility := &entity.Facility{
		ID: "h1", Name: "Dala PHC", Ward: "Dala", LGA: "Dala", Lat: 12, Lng: 8.5,
		FacilityType: entity.FacilityPrimaryHealthCenter,
		Capabilities: entity.CapabilitySet{entity.CapDoctor: true},
	}

	id, err := client.CreateFacility(context.Background(), facility)
	require.NoError(t, err)
	assert.Equal(t, "h9", id)
	assert.Equal(t, "/register-hospital", captured.Path)
	assert.Equal(t, true, captured.Body["has_doctor"])
	assert.Equal(t, false, captured.Body["has_blood"])
	assert.NotContains(t, captured.Body, "capabilities")

	require.NoError(t, client.UpdateFacility(context.Background(), facility))
	assert.Equal(t, http.MethodPatch, captured.Method)
	assert.Equal(t, "/update-hospital/h1", captured.Path)
	nested, ok := captured.Body["capabilities"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, nested["has_doctor"])
	assert.Len(t, nested, len(entity.Capabilities()))
	assert.NotContains(t, captured.Body, "has_doctor")

	require.NoError(t, client.DeleteFacility(context.Background(), "h1"))
	assert.Equal(t, "/hospitals/h1", captured.Path)
}

func TestClient_NonOKIsRemoteError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		payload string
	}{
		{"Plain text", http.StatusBadRequest, "Phone number already registered\n", "Phone number already registered"},
		{"JSON string", http.StatusConflict, `"Duplicate agent"`, "Duplicate agent"},
		{"JSON message", http.StatusBadRequest, `{"message":"Invalid ward"}`, "Invalid ward"},
		{"Empty body", http.StatusInternalServerError, "", ""},
		{"Created is not success", http.StatusCreated, `{"id":"x"}`, `{"id":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.status, tt.body)

			_, err := client.CreateAgent(context.Background(), &entity.Agent{})
			var remote *repository.RemoteError
			require.ErrorAs(t, err, &remote)
			assert.Equal(t, tt.status, remote.StatusCode)
			assert.Equal(t, tt.payload, remote.Payload)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	cfg := &config.Config{}
	cfg.Directory.BaseURL = server.URL
	server.Close()

	client, err := NewClient(ClientParams{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)

	_, err = client.ListAgents(context.Background())
	require.Error(t, err)
	var remote *repository.RemoteError
	assert.NotErrorAs(t, err, &remote)
}
