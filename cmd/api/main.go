// Glucose Forecast API
//
// REST API for glucose time-series forecasting and pattern analysis.
//
//	@title			Glucose Forecast API
//	@version		1.0
//	@description	Forecast glucose at 5-minute intervals, analyze hourly and daily patterns, and manage the trained model.
//
//	@BasePath	/v1
//
//	@tag.name			forecast
//	@tag.description	Multi-step glucose forecasting endpoints
//
//	@tag.name			patterns
//	@tag.description	Pattern analysis endpoints
//
//	@tag.name			models
//	@tag.description	Model lifecycle endpoints
//
//	@tag.name			readings
//	@tag.description	Raw reading storage endpoints
//
//	@tag.name			insights
//	@tag.description	LLM-powered narrative endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/api"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/api/handler"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/config"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/llm"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/repository"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/seed"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/service"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/store"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when OTLP_ENDPOINT is unset)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "glucose-forecast-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Pick the data backend: Postgres when DATABASE_URL is set, CSV file
	// plus JSON model file otherwise.
	var (
		source         ingest.Source
		models         store.ModelStore
		readingHandler *handler.ReadingHandler
	)
	if cfg.DatabaseURL != "" {
		db, err := config.NewDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := db.AutoMigrate(&domain.Reading{}, &repository.ModelRecord{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		log.Println("Database migration completed")

		if cfg.Seed {
			log.Println("Seeding database with sample data (SEED=true)...")
			if err := seed.Run(db); err != nil {
				log.Fatalf("Failed to seed database: %v", err)
			}
		}

		readingRepo := repository.NewReadingRepository(db)
		source = repository.NewSeriesSource(readingRepo)
		models = repository.NewModelRepository(db)

		readingService := service.NewReadingService(readingRepo)
		readingHandler = handler.NewReadingHandler(readingService)
	} else {
		log.Printf("No DATABASE_URL configured, reading from %s", cfg.DataFile)
		source = ingest.NewCSVSource(cfg.DataFile)
		models = store.NewFileStore(cfg.ModelPath)
	}

	// Initialize services
	trainingService := service.NewTrainingService()
	forecastService := service.NewForecastService(models, trainingService)
	patternService := service.NewPatternService()
	modelService := service.NewModelService(trainingService, models)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	insightsService := service.NewInsightsService(forecastService, patternService, openaiClient)

	// Initialize handlers
	forecastHandler := handler.NewForecastHandler(forecastService, source)
	patternHandler := handler.NewPatternHandler(patternService, source)
	modelHandler := handler.NewModelHandler(modelService, source)
	insightsHandler := handler.NewInsightsHandler(insightsService, source)

	// Setup router
	router := api.NewRouter(forecastHandler, patternHandler, modelHandler, readingHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
