package reset

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockClearer struct {
	mock.Mock
}

func (m *MockClearer) ClearData(ctx context.Context) {
	m.Called(ctx)
}

func TestClearData(t *testing.T) {
	c := new(MockClearer)
	c.On("ClearData", mock.Anything).Return()

	rr := httptest.NewRecorder()
	ClearData(slog.Default(), c).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/blueprint/clear", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "cleared"}`, rr.Body.String())
	c.AssertExpectations(t)
}
