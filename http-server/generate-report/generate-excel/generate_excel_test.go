package generate_excel

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/net/context"
)

type MockGenerateExcel struct {
	mock.Mock
}

func (m *MockGenerateExcel) GenerateExcel(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func TestGenerateReportExcel(t *testing.T) {
	gen := new(MockGenerateExcel)
	gen.On("GenerateExcel", mock.Anything).Return([]byte("PK"), nil)

	rr := httptest.NewRecorder()
	GenerateReportExcel(slog.Default(), gen).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/report/excel", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "Blueprint_Report_")
	assert.Equal(t, "PK", rr.Body.String())
}

func TestGenerateReportExcel_Error(t *testing.T) {
	gen := new(MockGenerateExcel)
	gen.On("GenerateExcel", mock.Anything).Return(nil, errors.New("disk full"))

	rr := httptest.NewRecorder()
	GenerateReportExcel(slog.Default(), gen).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/report/excel", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
