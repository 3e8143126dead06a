package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shape-canvas/internal/config"
	"shape-canvas/internal/entity"
	"shape-canvas/internal/logging"
	"shape-canvas/internal/server"
	"shape-canvas/internal/source"
)

type Serve struct {
	Addr    string `short:"a" default:"localhost:8080" desc:"Listen address"`
	Seed    string `short:"s" desc:"JSON file of shapes to start with"`
	Verbose bool   `short:"v" desc:"Verbose logging"`
}

func (cmd *Serve) Run() error {
	logging.SetLogger(logging.New(os.Stderr, cmd.Verbose))
	log := logging.Logger()

	srv := server.New(entity.NewScene(entity.CanvasSize(containerWidth(config.ScreenWidth))))
	if cmd.Seed != "" {
		recs, err := source.LoadFile(cmd.Seed)
		if err != nil {
			return err
		}
		if err := srv.Seed(recs); err != nil {
			return err
		}
		log.Info("seeded shapes", "path", cmd.Seed, "count", len(recs))
	}

	hs := &http.Server{
		Addr:              cmd.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "err", err)
		}
	}()

	log.Info("listening", "addr", cmd.Addr)
	if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
