// Command routerd runs the routing gateway's HTTP boundary: it wires the
// engine client, risk-zone and bike-lane services, and the routing
// orchestrator behind the chi-routed surface in internal/httpapi.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sfmobility/routing-gateway/internal/bikelane"
	"github.com/sfmobility/routing-gateway/internal/config"
	"github.com/sfmobility/routing-gateway/internal/httpapi"
	"github.com/sfmobility/routing-gateway/internal/obslog"
	"github.com/sfmobility/routing-gateway/internal/riskzone"
	"github.com/sfmobility/routing-gateway/internal/routing"
	"github.com/sfmobility/routing-gateway/internal/valhalla"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load(".", "/etc/routing-gateway")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := obslog.New(settings.Development)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	engine := valhalla.NewClient(&valhalla.ClientConfig{Endpoint: settings.EngineEndpoint})

	riskZoneSvc := riskzone.NewService(
		riskzone.NewHTTPSource(settings.RiskZoneSourceEndpoint),
		settings.RiskZoneCacheTTL,
		log.Named("riskzone"),
	)
	bikeLaneSvc := bikelane.NewService(
		bikelane.NewGeoJSONSource(settings.BikeLaneSourceEndpoint),
		settings.BikeLaneCacheTTL,
		log.Named("bikelane"),
	)

	orchestrator := routing.NewOrchestrator(engine, riskZoneSvc, bikeLaneSvc, log.Named("routing"), settings.DevMockRoutes,
		settings.AvoidanceFactorSafest, settings.AvoidanceFactorBalanced)

	handlers := httpapi.New(orchestrator, riskZoneSvc, bikeLaneSvc, engine, log.Named("httpapi"))
	router := httpapi.NewRouter(handlers)

	server := &http.Server{
		Addr:         settings.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("routing gateway listening", zap.String("addr", settings.HTTPAddr))
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
			return
		}
		errCh <- nil
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return <-errCh
	}
}
