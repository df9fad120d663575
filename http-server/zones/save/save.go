package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"rdc-blueprint/internal/storage"
)

type ZoneCreator interface {
	AddZone(ctx context.Context, in storage.ZoneInput) (storage.Zone, storage.FieldErrors)
}

func AddZone(log *slog.Logger, creator ZoneCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.zones.AddZone"

		var req storage.ZoneInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		zone, errs := creator.AddZone(r.Context(), req)
		if !errs.Empty() {
			log.Info("zone rejected", slog.String("op", op), slog.Int("errors", len(errs)))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, map[string]interface{}{"errors": errs})
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, zone)
	}
}
