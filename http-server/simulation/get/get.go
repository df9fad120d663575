package get

import (
	"net/http"

	"github.com/go-chi/render"

	"rdc-blueprint/internal/storage"
)

type SimulationProvider interface {
	Simulation() storage.SimulationStatus
}

// GetSimulation reports the last results and whether a simulation or a
// demand load is running.
func GetSimulation(provider SimulationProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, provider.Simulation())
	}
}
