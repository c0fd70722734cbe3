package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"openbox/internal/core"
	"openbox/internal/sandbox"
)

func main() {
	cfg := loadServerConfig()
	logger := NewLogger(cfg.LogLevel)

	factory, ok := core.Sims()["sandbox"]
	if !ok {
		logger.Errorf("sandbox sim not registered")
		return
	}
	sim := factory(map[string]string{
		"w":    strconv.Itoa(cfg.Width),
		"h":    strconv.Itoa(cfg.Height),
		"seed": strconv.FormatInt(cfg.Seed, 10),
	})
	world, ok := sim.(*sandbox.World)
	if !ok {
		logger.Errorf("unexpected sim type %T", sim)
		return
	}
	world.Reset(cfg.Seed)

	server := NewServer(world, cfg, logger)
	defer server.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Routes(),
	}

	go server.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warnf("shutdown: %v", err)
		}
	}()

	logger.Infof("openbox-server listening on %s (%dx%d grid)", cfg.Addr, cfg.Width, cfg.Height)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("serve: %v", err)
	}
}
