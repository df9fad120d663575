package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"rdc-blueprint/internal/storage"
)

type WorkforceUpdater interface {
	UpdateWorkforce(ctx context.Context, p storage.WorkforcePatch) (storage.Workforce, storage.FieldErrors)
}

// UpdateWorkforce overrides role counts; the response carries the new total
// and hourly cost.
func UpdateWorkforce(log *slog.Logger, updater WorkforceUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workforce.UpdateWorkforce"

		var req storage.WorkforcePatch
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		wf, errs := updater.UpdateWorkforce(r.Context(), req)
		if !errs.Empty() {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, map[string]interface{}{"errors": errs})
			return
		}

		log.Info("workforce updated", slog.String("op", op), slog.Int("total", wf.Total))
		render.JSON(w, r, wf)
	}
}
