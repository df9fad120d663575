package get

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rdc-blueprint/internal/service/blueprint"
	"rdc-blueprint/internal/storage"
)

type MockBlueprintProvider struct {
	mock.Mock
}

func (m *MockBlueprintProvider) State() storage.BlueprintState {
	return m.Called().Get(0).(storage.BlueprintState)
}

func (m *MockBlueprintProvider) CheckLayout() blueprint.LayoutReport {
	return m.Called().Get(0).(blueprint.LayoutReport)
}

func (m *MockBlueprintProvider) ZonesByType(t storage.ZoneType) []storage.Zone {
	return m.Called(t).Get(0).([]storage.Zone)
}

func TestGetBlueprint(t *testing.T) {
	state := storage.DefaultState()
	state.Zones = []storage.Zone{{ID: "zone-1", Type: storage.ZoneReceiving, Width: 100, Height: 50}}

	p := new(MockBlueprintProvider)
	p.On("State").Return(state)

	rr := httptest.NewRecorder()
	GetBlueprint(slog.Default(), p).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/blueprint", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	require.Len(t, resp.Zones, 1)
	assert.Equal(t, storage.TierMedium, resp.DemandTier)
	assert.Equal(t, 5000, resp.Stats.TotalZoneArea)
	assert.Equal(t, 1000*800-5000, resp.Stats.AvailableSpace)
	assert.InDelta(t, 0.625, resp.Stats.ZoneUtilization, 1e-9)
	p.AssertNumberOfCalls(t, "State", 1)
}

func TestExportBlueprint(t *testing.T) {
	p := new(MockBlueprintProvider)
	p.On("State").Return(storage.DefaultState())

	rr := httptest.NewRecorder()
	ExportBlueprint(slog.Default(), p).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/blueprint/export", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "blueprint.json")

	var bundle storage.Bundle
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &bundle))
	assert.Equal(t, 1000, bundle.Warehouse.Width)
}

func TestCheckLayout(t *testing.T) {
	p := new(MockBlueprintProvider)
	p.On("CheckLayout").Return(blueprint.LayoutReport{Valid: false, Issues: []blueprint.LayoutIssue{{}}})

	rr := httptest.NewRecorder()
	CheckLayout(slog.Default(), p).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/blueprint/layout/check", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"valid":false`)
}

func TestGetZones_ByType(t *testing.T) {
	p := new(MockBlueprintProvider)
	p.On("ZonesByType", storage.ZonePacking).Return([]storage.Zone{{ID: "zone-5", Type: storage.ZonePacking}})

	rr := httptest.NewRecorder()
	GetZones(slog.Default(), p).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/zones?type=Packing", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "zone-5")
	p.AssertNotCalled(t, "State")
}

func TestGetZones_UnknownType(t *testing.T) {
	p := new(MockBlueprintProvider)

	rr := httptest.NewRecorder()
	GetZones(slog.Default(), p).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/zones?type=Dock", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
