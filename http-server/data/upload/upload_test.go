package upload

import (
	"bytes"
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rdc-blueprint/internal/storage"
)

type MockDataLoader struct {
	mock.Mock
}

func (m *MockDataLoader) LoadData(ctx context.Context, data *storage.UploadedData) storage.BlueprintState {
	return m.Called(ctx, data).Get(0).(storage.BlueprintState)
}

func multipartBody(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if content != nil {
		part, err := mw.CreateFormFile(field, "orders.xlsx")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func ordersWorkbook(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Order ID", "City", "Volume"},
		{"ORD_1", "Pune", 4000},
		{"ORD_2", "Mumbai", 10000},
		{"ORD_3", "Pune", 1000},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestUploadDemand(t *testing.T) {
	loader := new(MockDataLoader)
	loader.On("LoadData", mock.Anything, mock.MatchedBy(func(d *storage.UploadedData) bool {
		return d.TotalCities == 2 && d.TotalOrders == 3 &&
			d.CitySummary[0].City == "Mumbai" && d.CitySummary[1].Demand == 5000
	})).Return(storage.BlueprintState{CityDemandData: []storage.CityDemand{{City: "Mumbai", Demand: 10000}}})

	body, contentType := multipartBody(t, "file", ordersWorkbook(t))
	req := httptest.NewRequest(http.MethodPost, "/api/data/upload", body)
	req.Header.Set("Content-Type", contentType)

	rr := httptest.NewRecorder()
	UploadDemand(slog.Default(), loader).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Mumbai")
	loader.AssertExpectations(t)
}

func TestUploadDemand_MissingFile(t *testing.T) {
	loader := new(MockDataLoader)

	body, contentType := multipartBody(t, "file", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/data/upload", body)
	req.Header.Set("Content-Type", contentType)

	rr := httptest.NewRecorder()
	UploadDemand(slog.Default(), loader).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	loader.AssertNotCalled(t, "LoadData")
}

func TestUploadDemand_NotAWorkbook(t *testing.T) {
	loader := new(MockDataLoader)

	body, contentType := multipartBody(t, "file", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/data/upload", body)
	req.Header.Set("Content-Type", contentType)

	rr := httptest.NewRecorder()
	UploadDemand(slog.Default(), loader).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	loader.AssertNotCalled(t, "LoadData")
}
