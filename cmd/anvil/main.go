package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/anvil/internal/config"
	"github.com/udisondev/anvil/internal/data"
	"github.com/udisondev/anvil/internal/db"
	"github.com/udisondev/anvil/internal/game/anvil"
	"github.com/udisondev/anvil/internal/gameserver"
	"github.com/udisondev/anvil/internal/model"
	"github.com/udisondev/anvil/internal/permission"
	"github.com/udisondev/anvil/internal/scheduler"
)

const ConfigPath = "config/anvil.yaml"

func main() {
	scenarioPath := flag.String("scenario", "", "path to a YAML anvil scenario")
	serve := flag.Bool("serve", false, "keep running (metrics endpoint) after the scenario")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, *scenarioPath, *serve); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, scenarioPath string, serve bool) error {
	if scenarioPath == "" && !serve {
		return errors.New("nothing to do: pass -scenario and/or -serve")
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfgPath := ConfigPath
	if p := os.Getenv("ANVIL_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadAnvil(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	slog.Info("anvil starting",
		"config", cfgPath,
		"limit_repair_cost", cfg.LimitRepairCost,
		"limit_repair_value", cfg.LimitRepairValue,
		"remove_repair_limit", cfg.RemoveRepairLimit)

	if err := data.LoadEnchantments(); err != nil {
		return fmt.Errorf("loading enchantment data: %w", err)
	}

	var recorder gameserver.CombinationRecorder
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		version, err := db.RunMigrations(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied", "version", version)
		recorder = db.NewCombinationRepository(database.Pool())
	}

	tasks := scheduler.NewTaskManager(cfg.TaskInterval)
	listener := gameserver.NewAnvilListener(cfg, data.EnchantmentCatalog(), tasks, permission.NewStatic(cfg.Permissions), recorder)
	host := gameserver.NewAnvilHost(listener, tasks)

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		if err := tasks.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("task manager: %w", err)
		}
		return nil
	})

	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			slog.Info("metrics server listening", "addr", cfg.Metrics.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		if scenarioPath != "" {
			if err := replay(gctx, host, scenarioPath); err != nil {
				return err
			}
		}
		if !serve {
			stop()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("anvil: %w", err)
	}
	return nil
}

// replay drives one scenario through the simulated host: prepare, wait for the
// deferred cost write, click.
func replay(ctx context.Context, host *gameserver.AnvilHost, path string) error {
	sc, err := LoadScenario(path)
	if err != nil {
		return err
	}
	inv, err := sc.Inventory()
	if err != nil {
		return err
	}

	result := host.Prepare(ctx, inv)
	if result == nil {
		slog.Info("items cannot be combined",
			"first", sc.First.Type,
			"second", sc.Second.Type)
		return nil
	}
	if err := host.AwaitTick(ctx); err != nil {
		return fmt.Errorf("waiting for deferred repair cost: %w", err)
	}

	enchants := anvil.Extract(result, data.EnchantmentCatalog())
	slog.Info("combination prepared",
		"result", result.String(),
		"enchantments", data.DescribeEnchantments(enchants),
		"repair_cost", inv.RepairCost(),
		"too_expensive", inv.TooExpensive(),
		"conflicting", anvil.HasConflicts(data.EnchantmentCatalog(), enchants))

	var viewer *model.Viewer
	if sc.Viewer != "" {
		viewer = model.NewViewer(1, sc.Viewer)
	}
	taken, ok := host.Click(ctx, viewer, inv, sc.Slot())
	if !ok {
		slog.Info("result not taken", "viewer", sc.Viewer, "slot", sc.Slot())
		return nil
	}
	slog.Info("result taken", "viewer", sc.Viewer, "item", taken.String())
	return nil
}
