package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"os-scheduler/api"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling simulator over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load("")
			if err != nil {
				return err
			}
			defer logger.Sync()

			if port == 0 {
				port = cfg.Port
			}

			var cache *api.ResponseCache
			if cfg.CacheEnabled {
				cache, err = api.NewResponseCache(cfg.CacheMaxCost)
				if err != nil {
					return err
				}
				defer cache.Close()
				logger.Debug("response cache initialized", zap.Int64("max_cost", cfg.CacheMaxCost))
			}

			var metrics *api.Metrics
			var gatherer prometheus.Gatherer
			if cfg.MetricsEnabled {
				registry := prometheus.NewRegistry()
				registry.MustRegister(collectors.NewGoCollector())
				metrics = api.NewMetrics(registry)
				gatherer = registry
			}

			handler, err := api.NewSchedulerHandlerImpl(cfg, logger, cache, metrics)
			if err != nil {
				return err
			}
			app := api.NewApp(handler, gatherer)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				logger.Info("shutting down")
				if err := app.Shutdown(); err != nil {
					logger.Error("shutdown failed", zap.Error(err))
				}
			}()

			addr := fmt.Sprintf(":%d", port)
			logger.Info("listening", zap.String("addr", addr), zap.Strings("algorithms", cfg.Algorithms))
			return app.Listen(addr)
		},
	}

	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default from config)")
	return serveCmd
}
