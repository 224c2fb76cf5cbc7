package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/tanmaysharma231/Mcp-hackathon-healthcare/docs"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/api/handler"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/api/middleware"
)

type Router struct {
	forecastHandler *handler.ForecastHandler
	patternHandler  *handler.PatternHandler
	modelHandler    *handler.ModelHandler
	readingHandler  *handler.ReadingHandler
	insightsHandler *handler.InsightsHandler
}

func NewRouter(
	forecastHandler *handler.ForecastHandler,
	patternHandler *handler.PatternHandler,
	modelHandler *handler.ModelHandler,
	readingHandler *handler.ReadingHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		forecastHandler: forecastHandler,
		patternHandler:  patternHandler,
		modelHandler:    modelHandler,
		readingHandler:  readingHandler,
		insightsHandler: insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Get("/forecast", rt.forecastHandler.Get)
		r.Get("/patterns", rt.patternHandler.Get)
		r.Get("/insights", rt.insightsHandler.Get)

		r.Route("/models", func(r chi.Router) {
			r.Post("/train", rt.modelHandler.Train)
			r.Get("/current", rt.modelHandler.GetCurrent)
		})

		// Reading storage needs a database; absent in CSV-only mode.
		if rt.readingHandler != nil {
			r.Route("/readings", func(r chi.Router) {
				r.Post("/", rt.readingHandler.Create)
				r.Get("/", rt.readingHandler.List)
			})
		}
	})

	return r
}
