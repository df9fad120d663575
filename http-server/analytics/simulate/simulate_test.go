package simulate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rdc-blueprint/internal/client"
)

type MockSimulator struct {
	mock.Mock
}

func (m *MockSimulator) Simulate(ctx context.Context, in client.SimulateRequest) (json.RawMessage, error) {
	args := m.Called(ctx, in)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

type MockSimulationCache struct {
	mock.Mock
}

func (m *MockSimulationCache) SetBackendSimulation(ctx context.Context, payload json.RawMessage) {
	m.Called(ctx, payload)
}

func simulateRequest(t *testing.T) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "orders.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte("workbook"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("breakEvenVolume", "5000"))
	require.NoError(t, mw.WriteField("targetTime", "48"))
	require.NoError(t, mw.WriteField("demandMultiplier", "1.2"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/simulate", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestSimulate(t *testing.T) {
	payload := json.RawMessage(`{"status": "success"}`)

	sim := new(MockSimulator)
	sim.On("Simulate", mock.Anything, mock.MatchedBy(func(in client.SimulateRequest) bool {
		body, _ := io.ReadAll(in.File)
		return in.FileName == "orders.xlsx" && string(body) == "workbook" &&
			in.BreakEvenVolume == "5000" && in.TargetTime == "48" && in.DemandMultiplier == "1.2"
	})).Return(payload, nil)

	cache := new(MockSimulationCache)
	cache.On("SetBackendSimulation", mock.Anything, payload).Return()

	rr := httptest.NewRecorder()
	Simulate(slog.Default(), sim, cache, time.Second).ServeHTTP(rr, simulateRequest(t))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "success"}`, rr.Body.String())
	sim.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestSimulate_BackendError(t *testing.T) {
	sim := new(MockSimulator)
	sim.On("Simulate", mock.Anything, mock.Anything).Return(nil, errors.New("unexpected status code: 500"))

	cache := new(MockSimulationCache)

	rr := httptest.NewRecorder()
	Simulate(slog.Default(), sim, cache, time.Second).ServeHTTP(rr, simulateRequest(t))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	cache.AssertNotCalled(t, "SetBackendSimulation")
}
