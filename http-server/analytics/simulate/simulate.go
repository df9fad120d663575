package simulate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"rdc-blueprint/internal/client"
)

const maxUploadSize = 32 << 20

type Simulator interface {
	Simulate(ctx context.Context, in client.SimulateRequest) (json.RawMessage, error)
}

type SimulationCache interface {
	SetBackendSimulation(ctx context.Context, payload json.RawMessage)
}

// Simulate relays the workbook and parameters to the analytics backend and
// keeps its answer as the last backend simulation.
func Simulate(log *slog.Logger, sim Simulator, cache SimulationCache, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.Simulate"

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		file, hdr, err := r.FormFile("file")
		if err != nil {
			log.Error("missing file", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "File is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		resp, err := sim.Simulate(ctx, client.SimulateRequest{
			FileName:         hdr.Filename,
			File:             file,
			BreakEvenVolume:  r.FormValue("breakEvenVolume"),
			TargetTime:       r.FormValue("targetTime"),
			DemandMultiplier: r.FormValue("demandMultiplier"),
		})
		if err != nil {
			log.Error("backend simulation failed", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Analytics backend is unavailable", http.StatusBadGateway)
			return
		}

		cache.SetBackendSimulation(r.Context(), resp)
		render.JSON(w, r, resp)
	}
}
