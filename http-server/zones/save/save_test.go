package save

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rdc-blueprint/internal/storage"
)

type MockZoneCreator struct {
	mock.Mock
}

func (m *MockZoneCreator) AddZone(ctx context.Context, in storage.ZoneInput) (storage.Zone, storage.FieldErrors) {
	args := m.Called(ctx, in)
	errs, _ := args.Get(1).(storage.FieldErrors)
	return args.Get(0).(storage.Zone), errs
}

func TestAddZone_Created(t *testing.T) {
	creator := new(MockZoneCreator)
	creator.On("AddZone", mock.Anything, mock.MatchedBy(func(in storage.ZoneInput) bool {
		return in.Type == storage.ZoneStorage && in.Label == "Overflow" && in.Width == 120 && in.Height == 80
	})).Return(storage.Zone{ID: "zone-1a2b3c4d", Type: storage.ZoneStorage, Label: "Overflow", Width: 120, Height: 80}, nil)

	handler := AddZone(slog.Default(), creator)

	body := `{"type": "Storage", "label": "Overflow", "x": 10, "y": 10, "width": 120, "height": 80}`
	req := httptest.NewRequest(http.MethodPost, "/api/zones", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var zone storage.Zone
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &zone))
	assert.Equal(t, "zone-1a2b3c4d", zone.ID)
	creator.AssertExpectations(t)
}

func TestAddZone_ValidationErrors(t *testing.T) {
	creator := new(MockZoneCreator)
	creator.On("AddZone", mock.Anything, mock.Anything).
		Return(storage.Zone{}, storage.FieldErrors{"label": "Label is required", "width": "Width must be at least 50"})

	handler := AddZone(slog.Default(), creator)

	req := httptest.NewRequest(http.MethodPost, "/api/zones", strings.NewReader(`{"type": "Storage", "width": 10, "height": 80}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, "Label is required", resp.Errors["label"])
	assert.Contains(t, resp.Errors, "width")
}

func TestAddZone_InvalidJSON(t *testing.T) {
	creator := new(MockZoneCreator)
	handler := AddZone(slog.Default(), creator)

	req := httptest.NewRequest(http.MethodPost, "/api/zones", strings.NewReader(`{`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	creator.AssertNotCalled(t, "AddZone")
}
