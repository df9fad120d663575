package delete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rdc-blueprint/internal/storage"
)

type ZoneRemover interface {
	RemoveZone(ctx context.Context, id string) error
}

func RemoveZone(log *slog.Logger, remover ZoneRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.zones.RemoveZone"

		id := chi.URLParam(r, "zoneID")

		err := remover.RemoveZone(r.Context(), id)
		if errors.Is(err, storage.ErrZoneNotFound) {
			http.Error(w, "Zone not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to remove zone", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
