package get

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/render"

	"rdc-blueprint/internal/client"
)

type Analytics interface {
	Summary(ctx context.Context) (json.RawMessage, error)
	GroupedSummary(ctx context.Context) ([]client.GroupedSummary, error)
	OrderDetails(ctx context.Context, city, orderType string) (json.RawMessage, error)
	InsightsData(ctx context.Context, f client.InsightsFilter) (json.RawMessage, error)
	Overview(ctx context.Context) (client.Overview, error)
}

func badGateway(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	log.Error("analytics backend failed", slog.String("op", op), slog.String("error", err.Error()))
	http.Error(w, "Analytics backend is unavailable", http.StatusBadGateway)
}

func GetSummary(log *slog.Logger, a Analytics, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.GetSummary"

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		resp, err := a.Summary(ctx)
		if err != nil {
			badGateway(w, log, op, err)
			return
		}

		render.JSON(w, r, resp)
	}
}

func GetGroupedSummary(log *slog.Logger, a Analytics, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.GetGroupedSummary"

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		resp, err := a.GroupedSummary(ctx)
		if err != nil {
			badGateway(w, log, op, err)
			return
		}

		render.JSON(w, r, resp)
	}
}

func GetOrderDetails(log *slog.Logger, a Analytics, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.GetOrderDetails"

		city := r.URL.Query().Get("city")
		orderType := r.URL.Query().Get("order_type")
		if city == "" || orderType == "" {
			http.Error(w, "city and order_type are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		resp, err := a.OrderDetails(ctx, city, orderType)
		if err != nil {
			badGateway(w, log, op, err)
			return
		}

		render.JSON(w, r, resp)
	}
}

// GetInsightsData accepts comma separated city and orderType lists and
// optional numeric thresholds.
func GetInsightsData(log *slog.Logger, a Analytics, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.GetInsightsData"

		q := r.URL.Query()
		filter := client.InsightsFilter{
			Cities:     splitList(q.Get("city")),
			OrderTypes: splitList(q.Get("orderType")),
		}

		var err error
		if filter.MinVolume, err = parseFloat(q.Get("minVolume")); err != nil {
			http.Error(w, "invalid minVolume", http.StatusBadRequest)
			return
		}
		if filter.SavingsThreshold, err = parseFloat(q.Get("savingsThreshold")); err != nil {
			http.Error(w, "invalid savingsThreshold", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		resp, err := a.InsightsData(ctx, filter)
		if err != nil {
			badGateway(w, log, op, err)
			return
		}

		render.JSON(w, r, resp)
	}
}

func GetOverview(log *slog.Logger, a Analytics, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.GetOverview"

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		resp, err := a.Overview(ctx)
		if err != nil {
			badGateway(w, log, op, err)
			return
		}

		render.JSON(w, r, resp)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
