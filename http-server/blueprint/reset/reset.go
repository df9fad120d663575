package reset

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type Clearer interface {
	ClearData(ctx context.Context)
}

func ClearData(log *slog.Logger, c Clearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blueprint.ClearData"

		c.ClearData(r.Context())
		log.Info("blueprint cleared", slog.String("op", op))

		render.JSON(w, r, map[string]string{"status": "cleared"})
	}
}
