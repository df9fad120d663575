package upload

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	demand_import "rdc-blueprint/internal/service/demand-import"
	"rdc-blueprint/internal/storage"
)

const maxUploadSize = 32 << 20

type DataLoader interface {
	LoadData(ctx context.Context, data *storage.UploadedData) storage.BlueprintState
}

// UploadDemand reads an order workbook from the "file" form field and
// regenerates the blueprint from it.
func UploadDemand(log *slog.Logger, loader DataLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.data.UploadDemand"

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		file, hdr, err := r.FormFile("file")
		if err != nil {
			log.Error("missing file", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "File is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := demand_import.Read(file)
		if errors.Is(err, demand_import.ErrEmptyWorkbook) {
			http.Error(w, "Excel file is empty", http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Error("failed to read workbook", slog.String("op", op), slog.String("file", hdr.Filename), slog.String("error", err.Error()))
			http.Error(w, "Invalid Excel file", http.StatusBadRequest)
			return
		}

		log.Info("demand uploaded",
			slog.String("op", op),
			slog.String("file", hdr.Filename),
			slog.Int("cities", data.TotalCities),
			slog.Int("orders", data.TotalOrders),
		)

		state := loader.LoadData(r.Context(), data)
		render.JSON(w, r, state)
	}
}
