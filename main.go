package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"colonisation/communication"
	"colonisation/communication/client"
	"colonisation/communication/server"
	"colonisation/experiments"
	"colonisation/gamemaster"
	"colonisation/meta"
	"colonisation/storage"
	"colonisation/storage/migrations"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: colonisation <serve|simulate|throughput> [-config file] [-server url]")
		os.Exit(2)
	}

	fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	configPath := fs.String("config", "", "YAML configuration file")
	serverURL := fs.String("server", "", "play simulations against a remote game server")
	fs.Parse(os.Args[2:])

	cfg, err := meta.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch os.Args[1] {
	case "serve":
		err = serve(ctx, cfg)
	case "simulate":
		err = simulate(ctx, cfg, *serverURL)
	case "throughput":
		_, err = experiments.RunThroughputExperiment(ctx, newMaster(cfg, gamemaster.NewMemoryStore()), cfg.Simulation, []int{1, 2, 4, 8, meta.GO_ROUTINES * 2})
	default:
		err = fmt.Errorf("unknown command %q", os.Args[1])
	}
	if err != nil {
		log.Fatal().Err(err).Msg(os.Args[1] + " failed")
	}
}

func setupLogger(level string) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func newMaster(cfg meta.Config, store gamemaster.Store) *gamemaster.Master {
	if cfg.Seed != 0 {
		return gamemaster.NewMaster(store, gamemaster.WithSeed(cfg.Seed))
	}
	return gamemaster.NewMaster(store)
}

func serve(ctx context.Context, cfg meta.Config) error {
	var store gamemaster.Store = gamemaster.NewMemoryStore()
	if cfg.PostgresURL != "" {
		if err := migrations.Migrate(ctx, cfg.PostgresURL); err != nil {
			return err
		}
		pg, err := storage.NewPostgres(ctx, cfg.PostgresURL)
		if err != nil {
			return err
		}
		defer pg.Close()
		store = pg
		log.Info().Msg("storing games in postgres")
	} else {
		log.Warn().Msg("no postgres url configured, games are kept in memory")
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(newMaster(cfg, store), server.Config{
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimit:      rate.Limit(cfg.RateLimit),
		Burst:          cfg.Burst,
	})
	srv := &http.Server{Addr: cfg.ListenAddr, Handler: router}

	errChan := make(chan error, 1)
	go func() {
		log.Info().Msgf("listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func simulate(ctx context.Context, cfg meta.Config, serverURL string) error {
	var comm communication.Communicator = newMaster(cfg, gamemaster.NewMemoryStore())
	if serverURL != "" {
		comm = client.NewClientCommunicator(serverURL)
	}

	out, err := experiments.RunSimulation(ctx, comm, cfg.Simulation, cfg.Seed)
	if err != nil {
		return err
	}
	for id, wins := range out.Wins {
		log.Info().Msgf("player %d won %d of %d games", id, wins, len(out.Games))
	}

	dir, err := experiments.Store(cfg.Simulation.OutputDir, "simulation", out)
	if err != nil {
		return err
	}
	log.Info().Msgf("stored results in %s", dir)
	return nil
}
