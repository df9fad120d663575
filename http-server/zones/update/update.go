package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"rdc-blueprint/internal/storage"
)

type ZoneUpdater interface {
	UpdateZone(ctx context.Context, id string, p storage.ZonePatch) (storage.Zone, storage.FieldErrors, error)
}

// UpdateZone applies a move, resize or edit. Out of canvas geometry is
// clamped, not rejected.
func UpdateZone(log *slog.Logger, updater ZoneUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.zones.UpdateZone"

		id := chi.URLParam(r, "zoneID")

		var req storage.ZonePatch
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		zone, errs, err := updater.UpdateZone(r.Context(), id, req)
		if errors.Is(err, storage.ErrZoneNotFound) {
			http.Error(w, "Zone not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to update zone", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		if !errs.Empty() {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, map[string]interface{}{"errors": errs})
			return
		}

		render.JSON(w, r, zone)
	}
}
