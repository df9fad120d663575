package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"rdc-blueprint/internal/service/blueprint"
	"rdc-blueprint/internal/storage"
)

type BlueprintProvider interface {
	State() storage.BlueprintState
	CheckLayout() blueprint.LayoutReport
	ZonesByType(t storage.ZoneType) []storage.Zone
}

type Response struct {
	storage.BlueprintState
	Stats storage.AreaStats `json:"stats"`
}

// GetBlueprint returns the whole state plus the area figures derived from
// that same state.
func GetBlueprint(log *slog.Logger, provider BlueprintProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blueprint.GetBlueprint"

		state := provider.State()

		log.Debug("blueprint requested", slog.String("op", op), slog.Int("zones", len(state.Zones)))

		render.JSON(w, r, Response{
			BlueprintState: state,
			Stats:          blueprint.Stats(state.Warehouse, state.Zones),
		})
	}
}

// ExportBlueprint sends the bundle as a JSON attachment.
func ExportBlueprint(log *slog.Logger, provider BlueprintProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blueprint.ExportBlueprint"

		state := provider.State()
		log.Info("blueprint exported", slog.String("op", op), slog.String("warehouse", state.Warehouse.Name))

		w.Header().Set("Content-Disposition", "attachment; filename=blueprint.json")
		render.JSON(w, r, state.Bundle())
	}
}

func CheckLayout(log *slog.Logger, provider BlueprintProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blueprint.CheckLayout"

		report := provider.CheckLayout()
		if !report.Valid {
			log.Info("layout has issues", slog.String("op", op), slog.Int("issues", len(report.Issues)))
		}

		render.JSON(w, r, report)
	}
}

// GetZones lists the zones, optionally only those of ?type=.
func GetZones(log *slog.Logger, provider BlueprintProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blueprint.GetZones"

		t := r.URL.Query().Get("type")
		if t == "" {
			render.JSON(w, r, provider.State().Zones)
			return
		}

		if _, ok := blueprint.LookupZoneType(storage.ZoneType(t)); !ok {
			log.Info("unknown zone type", slog.String("op", op), slog.String("type", t))
			http.Error(w, "Unknown zone type", http.StatusBadRequest)
			return
		}

		render.JSON(w, r, provider.ZonesByType(storage.ZoneType(t)))
	}
}
