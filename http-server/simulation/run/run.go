package run

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

type Simulator interface {
	RunSimulation(ctx context.Context) (storage.SimulationResults, error)
}

// RunSimulation blocks until the report is ready. timeout must exceed the
// configured simulation delay.
func RunSimulation(log *slog.Logger, sim Simulator, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.simulation.RunSimulation"

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		res, err := sim.RunSimulation(ctx)
		if errors.Is(err, store.ErrSimulationRunning) {
			http.Error(w, "Simulation already running", http.StatusConflict)
			return
		}
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("simulation timed out", slog.String("op", op))
			http.Error(w, "Simulation timed out", http.StatusGatewayTimeout)
			return
		}
		if err != nil {
			log.Error("simulation failed", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, res)
	}
}
