package server

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/janm-comcon/stdtext/artifacts"
	"github.com/janm-comcon/stdtext/internal/config"
	"github.com/janm-comcon/stdtext/normalization"
	"github.com/janm-comcon/stdtext/polish"
	"github.com/janm-comcon/stdtext/server/handlers"
	"github.com/janm-comcon/stdtext/server/middleware"
	"github.com/janm-comcon/stdtext/server/monitoring"
	"github.com/janm-comcon/stdtext/server/services"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Config alias so callers stay on the server package.
type Config = config.Config

var LoadConfig = config.LoadConfig

// Server wires the artifact store, the services and the HTTP surface.
type Server struct {
	config       *config.Config
	store        *artifacts.Store
	rules        *normalization.RuleEngine
	counts       *normalization.CountExtractor
	polishClient polish.Client

	normalizationService *services.NormalizationService
	spellingService      *services.SpellingService
	similarityService    *services.SimilarityService
	artifactService      *services.ArtifactService
	monitoringService    *services.MonitoringService

	normalizationHandler *handlers.NormalizationHandler
	spellingHandler      *handlers.SpellingHandler
	similarityHandler    *handlers.SimilarityHandler
	artifactsHandler     *handlers.ArtifactsHandler
	monitoringHandler    *handlers.MonitoringHandler

	requestMetrics *monitoring.RequestMetrics

	httpServer     *http.Server
	httpHandler    http.Handler
	handlerOnce    sync.Once
	handlerInitErr error

	healthLogStop chan struct{}

	startTime time.Time
}

// NewServer loads the artifacts and rewrite rules and builds the full
// service and handler graph. A failed artifact load is returned as an
// error; the caller treats it as fatal, there is no serving without a
// snapshot.
func NewServer(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	store := artifacts.NewStore(artifacts.LoadOptions{
		SpellMaxEditDistance: cfg.SpellMaxEditDistance,
		SpellCacheSize:       cfg.SpellCacheSize,
	})
	if err := store.Init(artifacts.Paths{
		CorpusIndex:   cfg.CorpusIndexPath,
		Dictionary:    cfg.DictionaryPath,
		Abbreviations: cfg.AbbreviationsPath,
		Gazetteer:     cfg.GazetteerPath,
	}); err != nil {
		return nil, fmt.Errorf("load artifacts: %w", err)
	}

	var rules *normalization.RuleEngine
	if cfg.RulesPath != "" {
		ruleSet, err := normalization.LoadRewriteRules(cfg.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("load rewrite rules: %w", err)
		}
		rules = normalization.NewRuleEngine(ruleSet)
	}

	var polishClient polish.Client = polish.NoopClient{}
	if cfg.Polish != nil && cfg.Polish.Enabled() {
		polishClient = polish.NewClient(polish.Config{
			APIKey:            cfg.Polish.APIKey,
			BaseURL:           cfg.Polish.BaseURL,
			Model:             cfg.Polish.Model,
			Timeout:           cfg.Polish.Timeout,
			RequestsPerSecond: cfg.Polish.RequestsPerSecond,
		})
	}

	s := &Server{
		config:       cfg,
		store:        store,
		rules:        rules,
		counts:       normalization.NewCountExtractor(cfg.CountUnits),
		polishClient: polishClient,
		startTime:    time.Now(),
	}

	middleware.InitErrorMetrics()
	s.requestMetrics = monitoring.NewRequestMetrics()
	s.initServices()
	s.initHandlers()

	return s, nil
}

// Store exposes the artifact store, mainly for tests.
func (s *Server) Store() *artifacts.Store {
	return s.store
}

func (s *Server) initServices() {
	s.normalizationService = services.NewNormalizationService(
		s.store, s.rules, s.counts, s.polishClient,
		s.config.UppercaseOutput, s.config.MaxTopK)
	s.spellingService = services.NewSpellingService(s.store)
	s.similarityService = services.NewSimilarityService(
		s.store, s.config.DefaultTopK, s.config.MaxTopK)
	s.artifactService = services.NewArtifactService(s.store)
	s.monitoringService = services.NewMonitoringService(
		Version, s.store, s.polishClient, middleware.GetErrorMetrics(), s.requestMetrics)
}

func (s *Server) initHandlers() {
	s.normalizationHandler = handlers.NewNormalizationHandler(s.normalizationService)
	s.spellingHandler = handlers.NewSpellingHandler(s.spellingService)
	s.similarityHandler = handlers.NewSimilarityHandler(s.similarityService)
	s.artifactsHandler = handlers.NewArtifactsHandler(s.artifactService)
	s.monitoringHandler = handlers.NewMonitoringHandler(s.monitoringService)
}
