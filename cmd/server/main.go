package main

import (
	"log"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/api"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/boroughs"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/config"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/database"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/handler"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/normalize"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/observability"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/pipeline"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/repository"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/service"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/weather"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	zones := boroughs.DefaultZoneTable()
	if cfg.ZoneTablePath != "" {
		loaded, err := boroughs.LoadZoneTable(cfg.ZoneTablePath)
		if err != nil {
			log.Fatal("Failed to load zone table:", err)
		}
		zones = loaded
	}

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	engine := pipeline.New(normalize.New(zones), metrics)

	var weatherSource weather.Source
	if cfg.WeatherURL != "" {
		client := weather.NewClient(cfg.WeatherURL, 15*time.Second, metrics)
		weatherSource = weather.NewCachedSource(client, cfg.WeatherTTL, clock, metrics)
	} else {
		log.Println("[Server] WEATHER_PROXY_URL not set, weather analysis disabled")
	}

	db := database.GetDB()
	rawRepo := repository.NewRawRepository(db)
	statusRepo := repository.NewStatusRepository(db)

	dashboardService := service.NewDashboardService(rawRepo, engine, weatherSource)
	ingestService := service.NewIngestService(rawRepo, statusRepo, clock, metrics)

	router := api.SetupRouter(cfg, api.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Timeline:  handler.NewTimelineHandler(dashboardService),
		Ingest:    handler.NewIngestHandler(ingestService),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
