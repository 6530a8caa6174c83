package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/SOJH07/NAVA-Dashboard/academy"
	"github.com/SOJH07/NAVA-Dashboard/api"
	"github.com/SOJH07/NAVA-Dashboard/config"
	"github.com/SOJH07/NAVA-Dashboard/dataplatform"
	"github.com/SOJH07/NAVA-Dashboard/facility"
	"github.com/SOJH07/NAVA-Dashboard/liveops"
	"github.com/SOJH07/NAVA-Dashboard/livestatus"
	"github.com/SOJH07/NAVA-Dashboard/roster"
)

func main() {

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	slog.Info("Starting dashboard...")

	cfg := config.Default()
	if len(os.Args) > 1 {
		var err error
		cfg, err = config.Read(os.Args[1])
		if err != nil {
			slog.Error("Failed to read config", "error", err)
			return
		}
	}

	data := academy.Load()
	students := roster.Enhance(data.Students, data.GroupInfo, data.Aptis)
	slog.Info("Loaded academy data", "students", len(students), "assignments", len(data.Table.All()))

	ctx, cancel := context.WithCancel(context.Background())

	deriver := liveops.NewDeriver(students, data.DailyPeriods, data.GroupInfo, data.Table)

	var remote liveops.RemoteSource
	if cfg.LiveStatus.URL != "" {
		client := livestatus.New(http.Client{Timeout: 5 * time.Second}, cfg.LiveStatus.URL)
		go client.Run(ctx, time.Duration(cfg.LiveStatus.PollIntervalSecs)*time.Second)
		remote = client
	}

	engine := liveops.NewEngine(deriver, remote, time.Duration(cfg.LiveStatus.RemoteFreshnessSecs)*time.Second)
	ticker := time.NewTicker(time.Duration(cfg.Engine.TickIntervalSecs) * time.Second)
	go engine.Run(ctx, ticker.C)

	if cfg.DataPlatform.Supabase.Url != "" {
		dataPlatform, err := dataplatform.New(
			cfg.DataPlatform.Supabase.Url,
			os.Getenv("SUPABASE_KEY"),
			cfg.DataPlatform.Supabase.Schema,
			cfg.DataPlatform.BufferFile,
		)
		if err != nil {
			slog.Error("Failed to create data platform", "error", err)
			return
		}
		go dataPlatform.Run(ctx, time.Duration(cfg.DataPlatform.UploadIntervalSecs)*time.Second)

		// occupancy changes flow from the engine into the upload buffer
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case snapshot := <-engine.Snapshots:
					dataPlatform.Snapshots <- snapshot
				}
			}
		}()
	}

	server := api.NewServer(cfg.API.Addr, engine, data, students, facility.NewStore())
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("API server stopped", "error", err)
		}
	}()

	// wait for a ctrl-c interrupt before exiting
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)
	<-signalChan

	// cancel any open go-routines and give them up to 100ms to gracefully shutdown
	cancel()
	ticker.Stop()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("API server shutdown", "error", err)
	}
	time.Sleep(time.Millisecond * 100)

	slog.Info("Exiting")
	os.Exit(0)
}
