package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"rdc-blueprint/internal/storage"
)

type WarehouseUpdater interface {
	UpdateWarehouse(ctx context.Context, p storage.WarehousePatch) (storage.Warehouse, storage.FieldErrors)
}

func UpdateWarehouse(log *slog.Logger, updater WarehouseUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.warehouse.UpdateWarehouse"

		var req storage.WarehousePatch
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		wh, errs := updater.UpdateWarehouse(r.Context(), req)
		if !errs.Empty() {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, map[string]interface{}{"errors": errs})
			return
		}

		log.Info("warehouse updated", slog.String("op", op), slog.Int("width", wh.Width), slog.Int("height", wh.Height))
		render.JSON(w, r, wh)
	}
}
