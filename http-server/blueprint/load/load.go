package load

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"rdc-blueprint/internal/service/store"
	"rdc-blueprint/internal/storage"
)

type DataLoader interface {
	LoadUserData(ctx context.Context) (storage.BlueprintState, error)
}

// LoadUserData pulls the uploaded demand from the backend and regenerates.
// A backend failure still resets the blueprint; the client gets 502.
func LoadUserData(log *slog.Logger, loader DataLoader, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blueprint.LoadUserData"

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		state, err := loader.LoadUserData(ctx)
		if errors.Is(err, store.ErrLoadRunning) || errors.Is(err, store.ErrSimulationRunning) {
			http.Error(w, "Blueprint is busy", http.StatusConflict)
			return
		}
		if err != nil {
			log.Error("failed to load user data", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Demand data is unavailable", http.StatusBadGateway)
			return
		}

		log.Info("user data loaded", slog.String("op", op), slog.Int("total_demand", state.TotalDemand))

		render.JSON(w, r, state)
	}
}
