package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"rdc-blueprint/internal/storage"
)

type UIUpdater interface {
	UpdateUI(ctx context.Context, p storage.UIPatch) (storage.UIState, error)
}

// UpdateUI stores the editor selection and the drag/resize flags. Fields left
// out of the body keep their current value.
func UpdateUI(log *slog.Logger, updater UIUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ui.UpdateUI"

		var req storage.UIPatch
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ui, err := updater.UpdateUI(r.Context(), req)
		if errors.Is(err, storage.ErrZoneNotFound) {
			http.Error(w, "Zone not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to update ui state", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ui)
	}
}
