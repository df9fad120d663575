package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getanalytics "rdc-blueprint/http-server/analytics/get"
	"rdc-blueprint/http-server/analytics/simulate"
	"rdc-blueprint/http-server/blueprint/generate"
	getblueprint "rdc-blueprint/http-server/blueprint/get"
	"rdc-blueprint/http-server/blueprint/load"
	"rdc-blueprint/http-server/blueprint/reset"
	"rdc-blueprint/http-server/data/upload"
	generate_chart "rdc-blueprint/http-server/generate-report/generate-chart"
	generate_excel "rdc-blueprint/http-server/generate-report/generate-excel"
	getsimulation "rdc-blueprint/http-server/simulation/get"
	"rdc-blueprint/http-server/simulation/run"
	updateui "rdc-blueprint/http-server/ui/update"
	updatewarehouse "rdc-blueprint/http-server/warehouse/update"
	updateworkforce "rdc-blueprint/http-server/workforce/update"
	deletezone "rdc-blueprint/http-server/zones/delete"
	savezone "rdc-blueprint/http-server/zones/save"
	updatezone "rdc-blueprint/http-server/zones/update"
	"rdc-blueprint/internal/client"
	"rdc-blueprint/internal/config"
	generate_chart2 "rdc-blueprint/internal/service/generate-chart"
	generate_excel2 "rdc-blueprint/internal/service/generate-excel"
	"rdc-blueprint/internal/service/store"
)

func routes(cfg config.Config, log *slog.Logger, blueprints *store.Store, api *client.Client, excelService *generate_excel2.GenerateExcelService, chartService *generate_chart2.GenerateChartService) *chi.Mux {
	router := chi.NewRouter()

	requestTimeout := cfg.RequestTimeout()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// blueprint lifecycle
	router.Get("/api/blueprint", getblueprint.GetBlueprint(log, blueprints))
	router.Post("/api/blueprint/load", load.LoadUserData(log, blueprints, requestTimeout))
	router.Post("/api/blueprint/generate", generate.Generate(log, blueprints))
	router.Post("/api/blueprint/clear", reset.ClearData(log, blueprints))
	router.Get("/api/blueprint/layout/check", getblueprint.CheckLayout(log, blueprints))
	router.Get("/api/blueprint/export", getblueprint.ExportBlueprint(log, blueprints))

	// editor
	router.Get("/api/zones", getblueprint.GetZones(log, blueprints))
	router.Post("/api/zones", savezone.AddZone(log, blueprints))
	router.Put("/api/zones/{zoneID}", updatezone.UpdateZone(log, blueprints))
	router.Delete("/api/zones/{zoneID}", deletezone.RemoveZone(log, blueprints))
	router.Put("/api/ui", updateui.UpdateUI(log, blueprints))
	router.Put("/api/warehouse", updatewarehouse.UpdateWarehouse(log, blueprints))
	router.Put("/api/workforce", updateworkforce.UpdateWorkforce(log, blueprints))

	router.Post("/api/simulation/run", run.RunSimulation(log, blueprints, cfg.HTTPServer.Timeout))
	router.Get("/api/simulation", getsimulation.GetSimulation(blueprints))

	router.Post("/api/data/upload", upload.UploadDemand(log, blueprints))

	// analytics backend
	router.Post("/api/simulate", simulate.Simulate(log, api, blueprints, requestTimeout))
	router.Get("/api/summary", getanalytics.GetSummary(log, api, requestTimeout))
	router.Get("/api/grouped-summary", getanalytics.GetGroupedSummary(log, api, requestTimeout))
	router.Get("/api/order-details", getanalytics.GetOrderDetails(log, api, requestTimeout))
	router.Get("/api/insights-data", getanalytics.GetInsightsData(log, api, requestTimeout))
	router.Get("/api/overview", getanalytics.GetOverview(log, api, requestTimeout))

	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, excelService))
	router.Get("/api/report/chart", generate_chart.GenerateReportChart(log, chartService))

	if cfg.FrontendDir != "" {
		serveFrontend(router, log, cfg.FrontendDir)
	}

	return router
}

// serveFrontend mounts the built editor: static assets plus an index.html
// fallback for client side routes.
func serveFrontend(router *chi.Mux, log *slog.Logger, frontendDir string) {
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("frontend directory not found, serving API only", "path", frontendDir)
		return
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})
}
