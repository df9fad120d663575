package update

import (
	"context"
	"fmt"
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

type MockUIUpdater struct {
	mock.Mock
}

func (m *MockUIUpdater) UpdateUI(ctx context.Context, p storage.UIPatch) (storage.UIState, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(storage.UIState), args.Error(1)
}

func TestUpdateUI_SelectAndDrag(t *testing.T) {
	u := new(MockUIUpdater)
	u.On("UpdateUI", mock.Anything, mock.MatchedBy(func(p storage.UIPatch) bool {
		return p.SelectedZoneID != nil && *p.SelectedZoneID == "zone-2" &&
			p.IsDragging != nil && *p.IsDragging &&
			p.IsResizing == nil
	})).Return(storage.UIState{SelectedZoneID: "zone-2", IsDragging: true}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/ui", strings.NewReader(`{"selectedZoneId": "zone-2", "isDragging": true}`))
	rr := httptest.NewRecorder()
	UpdateUI(slog.Default(), u).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var ui storage.UIState
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &ui))
	assert.Equal(t, "zone-2", ui.SelectedZoneID)
	assert.True(t, ui.IsDragging)
	u.AssertExpectations(t)
}

func TestUpdateUI_SelectionOnlyLeavesFlagsOut(t *testing.T) {
	u := new(MockUIUpdater)
	u.On("UpdateUI", mock.Anything, mock.MatchedBy(func(p storage.UIPatch) bool {
		return p.SelectedZoneID != nil && p.IsDragging == nil && p.IsResizing == nil
	})).Return(storage.UIState{SelectedZoneID: "zone-1", IsResizing: true}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/ui", strings.NewReader(`{"selectedZoneId": "zone-1"}`))
	rr := httptest.NewRecorder()
	UpdateUI(slog.Default(), u).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"isResizing":true`)
	u.AssertNumberOfCalls(t, "UpdateUI", 1)
}

func TestUpdateUI_UnknownZone(t *testing.T) {
	u := new(MockUIUpdater)
	u.On("UpdateUI", mock.Anything, mock.Anything).
		Return(storage.UIState{}, fmt.Errorf("service.store.UpdateUI: zone-42: %w", storage.ErrZoneNotFound))

	req := httptest.NewRequest(http.MethodPut, "/api/ui", strings.NewReader(`{"selectedZoneId": "zone-42"}`))
	rr := httptest.NewRecorder()
	UpdateUI(slog.Default(), u).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateUI_InvalidJSON(t *testing.T) {
	u := new(MockUIUpdater)

	req := httptest.NewRequest(http.MethodPut, "/api/ui", strings.NewReader(`{`))
	rr := httptest.NewRecorder()
	UpdateUI(slog.Default(), u).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	u.AssertNotCalled(t, "UpdateUI", mock.Anything, mock.Anything)
}
