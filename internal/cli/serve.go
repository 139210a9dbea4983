package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fairyhunter13/vendor-supply-hub/internal/alerts"
	"github.com/fairyhunter13/vendor-supply-hub/internal/assistant"
	"github.com/fairyhunter13/vendor-supply-hub/internal/config"
	"github.com/fairyhunter13/vendor-supply-hub/internal/grouporder"
	httpapi "github.com/fairyhunter13/vendor-supply-hub/internal/http"
	"github.com/fairyhunter13/vendor-supply-hub/internal/obs"
	"github.com/fairyhunter13/vendor-supply-hub/internal/store"
)

type serveOptions struct {
	addr string
	seed string
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if opts.addr != "" {
				cfg.HTTPAddr = opts.addr
			}
			if opts.seed != "" {
				cfg.SeedFile = opts.seed
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, nil)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	cmd.Flags().StringVar(&opts.seed, "seed", "", "YAML seed file for the group order (overrides GROUP_ORDER_SEED_FILE)")
	return cmd
}

// buildApp wires the services described by cfg.
func buildApp(ctx context.Context, cfg config.Config) (*httpapi.App, error) {
	seed, err := store.LoadSeed(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	orders := grouporder.NewService(store.New(seed))

	var asst *assistant.Assistant
	if cfg.AssistantEnabled() {
		gen, err := assistant.NewGeminiGenerator(ctx, cfg.GenAIAPIKey, cfg.GenAIModel)
		if err != nil {
			return nil, fmt.Errorf("init assistant: %w", err)
		}
		asst = assistant.New(gen, cfg.AssistantTimeout)
		obs.Logger.Info("assistant_enabled", "generator", gen.Name())
	} else {
		obs.Logger.Warn("assistant_disabled", "reason", "GEMINI_API_KEY not set")
	}
	return httpapi.NewApp(cfg, orders, alerts.NewStaticFeed(), asst), nil
}

// serve runs the server until ctx is done, then drains within cfg.ShutdownTimeout.
// If ready is non-nil it receives the bound address once listening.
func serve(ctx context.Context, cfg config.Config, ready chan<- string) error {
	obs.InitLogger(cfg.LogLevel)
	obs.Logger.Info("service_starting")

	app, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           httpapi.NewRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.AssistantTimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	ln, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.HTTPAddr, err)
	}
	obs.Logger.Info("http_listen", "addr", ln.Addr().String())
	if ready != nil {
		ready <- ln.Addr().String()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		obs.Logger.Info("shutdown_begin")
		app.StartShutdown()
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			obs.Logger.Error("http_shutdown_error", "error", err)
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	obs.Logger.Info("service_stopped")
	return nil
}
