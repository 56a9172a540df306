// Package app wires configuration, storage, clients, and services.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kotaratanaka/IFA/internal/clients/gemini"
	"github.com/kotaratanaka/IFA/internal/common"
	"github.com/kotaratanaka/IFA/internal/interfaces"
	"github.com/kotaratanaka/IFA/internal/services/deck"
	"github.com/kotaratanaka/IFA/internal/services/importer"
	"github.com/kotaratanaka/IFA/internal/services/recommend"
	"github.com/kotaratanaka/IFA/internal/services/report"
	"github.com/kotaratanaka/IFA/internal/services/session"
	"github.com/kotaratanaka/IFA/internal/storage"
)

// App holds all initialized services and clients. It is the shared core
// behind cmd/ifa-server.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Storage          interfaces.StorageManager
	AIClient         interfaces.AIClient
	SessionService   interfaces.SessionService
	RecommendService interfaces.RecommendService
	ReportService    interfaces.ReportService
	ImportService    interfaces.ImportService
	DeckWriter       interfaces.DeckWriter
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes all services, clients, and storage. configPath may be
// empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	binDir := getBinaryDir()

	// Load configuration - check provided path, IFA_CONFIG, then binary dir
	if configPath == "" {
		configPath = os.Getenv("IFA_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "ifa.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/ifa.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to binary directory
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLogger(config.Logging.Level)

	storageManager, err := storage.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Resolve the Gemini API key; the engine starts without one but every
	// AI-backed operation will be unavailable.
	var aiClient interfaces.AIClient
	geminiKey, err := common.ResolveAPIKey(config.Clients.Gemini.APIKey)
	if err != nil {
		logger.Warn().Msg("Gemini API key not configured - proposal generation will be unavailable")
	} else {
		client, err := gemini.NewClient(context.Background(), geminiKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithRateLimit(config.Clients.Gemini.RateLimit),
			gemini.WithMaxAttempts(config.Clients.Gemini.MaxAttempts),
			gemini.WithTimeout(config.Clients.Gemini.GetTimeout()),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client")
		} else {
			aiClient = client
		}
	}

	sessionService := session.NewService(storageManager, logger)
	recommendService := recommend.NewService(aiClient, config.Proposal, logger)
	reportService := report.NewService(aiClient, storageManager, logger)
	importService := importer.NewService(aiClient, logger)

	a := &App{
		Config:           config,
		Logger:           logger,
		Storage:          storageManager,
		AIClient:         aiClient,
		SessionService:   sessionService,
		RecommendService: recommendService,
		ReportService:    reportService,
		ImportService:    importService,
		DeckWriter:       deck.NewJSONWriter(),
		StartupTime:      startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Storage != nil {
		a.Storage.Close()
		a.Storage = nil
	}
}
