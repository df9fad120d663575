package generate_chart

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type GenerateChartHandler interface {
	GenerateChart(ctx context.Context) ([]byte, error)
}

// GenerateReportChart serves the zone and workforce charts as a standalone page.
func GenerateReportChart(log *slog.Logger, gen GenerateChartHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateReportChart"

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		page, err := gen.GenerateChart(ctx)
		if err != nil {
			log.Error("failed to generate chart", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}
