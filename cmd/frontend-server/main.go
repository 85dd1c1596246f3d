package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	theme "github.com/goliatone/go-theme"

	frontend "github.com/goliatone/go-frontend"
	"github.com/goliatone/go-frontend/internal/server"
	"github.com/goliatone/go-frontend/pkg/render"
	"github.com/goliatone/go-frontend/pkg/settings"
)

func main() {
	// Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load config
	cfg, err := server.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	site := settings.Default()
	if cfg.SettingsPath != "" {
		if site, err = settings.LoadFile(cfg.SettingsPath); err != nil {
			log.Fatalf("failed to load settings: %v", err)
		}
	}
	scale, err := site.Scale()
	if err != nil {
		log.Fatalf("invalid settings: %v", err)
	}

	// Plugins
	plugins, err := frontend.NewRegistryFromSettings(site)
	if err != nil {
		log.Fatalf("failed to register plugins: %v", err)
	}

	var renderOptions []render.Option
	if cfg.TemplatesDir != "" {
		renderOptions = append(renderOptions, render.WithTemplatesDir(cfg.TemplatesDir))
	}
	renderer, err := render.New(plugins, renderOptions...)
	if err != nil {
		log.Fatalf("failed to configure renderer: %v", err)
	}

	handlerOptions := []server.Option{
		server.WithScale(scale),
		server.WithDisplayTokens(site.DisplayTokens),
	}
	if cfg.ThemePath != "" {
		themeConfig, err := loadTheme(cfg.ThemePath, cfg.ThemeVariant)
		if err != nil {
			log.Fatalf("failed to load theme: %v", err)
		}
		handlerOptions = append(handlerOptions, server.WithTheme(themeConfig))
	}

	// Handlers
	h := server.New(plugins, renderer, logger, handlerOptions...)

	// Server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.Router(h, logger, cfg.MaxBodyBytes),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"plugins", plugins.List(),
			"breakpoints", scale.Names(),
		)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdown
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}

	logger.Info("shutdown complete")
}

func loadTheme(path, variant string) (*theme.RendererConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var manifest theme.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return render.ResolveTheme(render.NewStaticThemes(&manifest), manifest.Name, variant)
}
