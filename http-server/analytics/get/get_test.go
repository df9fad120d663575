package get

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rdc-blueprint/internal/client"
)

type MockAnalytics struct {
	mock.Mock
}

func (m *MockAnalytics) Summary(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func (m *MockAnalytics) GroupedSummary(ctx context.Context) ([]client.GroupedSummary, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]client.GroupedSummary)
	return rows, args.Error(1)
}

func (m *MockAnalytics) OrderDetails(ctx context.Context, city, orderType string) (json.RawMessage, error) {
	args := m.Called(ctx, city, orderType)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func (m *MockAnalytics) InsightsData(ctx context.Context, f client.InsightsFilter) (json.RawMessage, error) {
	args := m.Called(ctx, f)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func (m *MockAnalytics) Overview(ctx context.Context) (client.Overview, error) {
	args := m.Called(ctx)
	return args.Get(0).(client.Overview), args.Error(1)
}

func do(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestGetSummary(t *testing.T) {
	a := new(MockAnalytics)
	a.On("Summary", mock.Anything).Return(json.RawMessage(`{"total_orders": 20}`), nil)

	rr := do(GetSummary(slog.Default(), a, time.Second), "/api/summary")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"total_orders": 20}`, rr.Body.String())
}

func TestGetSummary_BackendDown(t *testing.T) {
	a := new(MockAnalytics)
	a.On("Summary", mock.Anything).Return(nil, errors.New("connection refused"))

	rr := do(GetSummary(slog.Default(), a, time.Second), "/api/summary")

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGetGroupedSummary(t *testing.T) {
	a := new(MockAnalytics)
	a.On("GroupedSummary", mock.Anything).Return([]client.GroupedSummary{{City: "Pune", OrderType: "B2C", SummaryVerdict: "MW"}}, nil)

	rr := do(GetGroupedSummary(slog.Default(), a, time.Second), "/api/grouped-summary")

	assert.Equal(t, http.StatusOK, rr.Code)

	var rows []client.GroupedSummary
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "MW", rows[0].SummaryVerdict)
}

func TestGetOrderDetails(t *testing.T) {
	a := new(MockAnalytics)
	a.On("OrderDetails", mock.Anything, "Delhi", "B2B").Return(json.RawMessage(`[]`), nil)

	rr := do(GetOrderDetails(slog.Default(), a, time.Second), "/api/order-details?city=Delhi&order_type=B2B")

	assert.Equal(t, http.StatusOK, rr.Code)
	a.AssertExpectations(t)
}

func TestGetOrderDetails_MissingParams(t *testing.T) {
	a := new(MockAnalytics)

	rr := do(GetOrderDetails(slog.Default(), a, time.Second), "/api/order-details?city=Delhi")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	a.AssertNotCalled(t, "OrderDetails")
}

func TestGetInsightsData_Filter(t *testing.T) {
	a := new(MockAnalytics)
	a.On("InsightsData", mock.Anything, mock.MatchedBy(func(f client.InsightsFilter) bool {
		return assert.ObjectsAreEqual([]string{"Mumbai", "Pune"}, f.Cities) &&
			len(f.OrderTypes) == 0 &&
			f.MinVolume != nil && *f.MinVolume == 250 &&
			f.SavingsThreshold == nil
	})).Return(json.RawMessage(`{"charts": []}`), nil)

	rr := do(GetInsightsData(slog.Default(), a, time.Second), "/api/insights-data?city=Mumbai,%20Pune&minVolume=250")

	assert.Equal(t, http.StatusOK, rr.Code)
	a.AssertExpectations(t)
}

func TestGetInsightsData_BadNumber(t *testing.T) {
	a := new(MockAnalytics)

	rr := do(GetInsightsData(slog.Default(), a, time.Second), "/api/insights-data?savingsThreshold=ten")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	a.AssertNotCalled(t, "InsightsData")
}

func TestGetOverview(t *testing.T) {
	a := new(MockAnalytics)
	a.On("Overview", mock.Anything).Return(client.Overview{
		Summary:        json.RawMessage(`{"total_orders": 3}`),
		GroupedSummary: []client.GroupedSummary{},
	}, nil)

	rr := do(GetOverview(slog.Default(), a, time.Second), "/api/overview")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"summary": {"total_orders": 3}, "groupedSummary": []}`, rr.Body.String())
}
