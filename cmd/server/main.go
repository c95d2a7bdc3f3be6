package main

import (
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nexivibe/spider/internal/config"
	"github.com/nexivibe/spider/internal/engine"
	"github.com/nexivibe/spider/internal/server"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		// No logger yet; fall back to a default one.
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		zap.NewExample().Fatal("build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	settings, err := sessionSettings(cfg)
	if err != nil {
		logger.Fatal("game settings", zap.Error(err))
	}

	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", server.NewWSHandler(settings, engine.RealClock{}, logger))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Serve frontend build with SPA fallback
	webDist := cfg.Server.WebDist
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(webDist, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(webDist, "index.html"))
	}))

	logger.Info("listening",
		zap.String("addr", cfg.Server.Addr),
		zap.Int("default_suits", settings.DefaultSuits),
		zap.String("default_mode", settings.DefaultMode.String()),
		zap.Bool("strict_invariants", settings.StrictInvariants))
	if err := http.ListenAndServe(cfg.Server.Addr, mux); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func sessionSettings(cfg *config.Config) (server.Settings, error) {
	mode, err := config.ParseMode(cfg.Game.DefaultMode)
	if err != nil {
		return server.Settings{}, err
	}
	loc, err := cfg.DailyLocation()
	if err != nil {
		return server.Settings{}, err
	}
	return server.Settings{
		DefaultSuits:     cfg.Game.DefaultSuits,
		DefaultMode:      mode,
		DailyLocation:    loc,
		StrictInvariants: cfg.Engine.StrictInvariants,
	}, nil
}

func newLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
