package generate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"rdc-blueprint/internal/storage"
)

type Generator interface {
	Generate(ctx context.Context) (storage.Bundle, bool)
}

func Generate(log *slog.Logger, gen Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blueprint.Generate"

		bundle, ok := gen.Generate(r.Context())
		if !ok {
			log.Info("nothing to generate", slog.String("op", op))
			http.Error(w, "No demand data loaded", http.StatusConflict)
			return
		}

		render.JSON(w, r, bundle)
	}
}
