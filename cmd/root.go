package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"os-scheduler/config"
	"os-scheduler/internal/util"
)

type rootOptions struct {
	cfgFile      string
	outputFormat string
	logLevel     string
}

// load reads the configuration and builds a logger. Without --config the
// process-wide configuration is used. An explicit level wins over the
// configured one.
func (o *rootOptions) load(level string) (*config.SchedulerConfig, *zap.Logger, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, nil, err
	}
	if o.logLevel != "" {
		level = o.logLevel
	}
	if level == "" {
		level = cfg.LogLevel
	}
	logger, err := util.NewLogger(level, cfg.LogDevelopment)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func (o *rootOptions) config() (*config.SchedulerConfig, error) {
	if o.cfgFile == "" {
		return config.GetSchedulerConfig()
	}
	return config.Load(o.cfgFile)
}

// NewRootCmd builds the os-scheduler command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "os-scheduler",
		Short:         "Non-preemptive FCFS and SJF CPU scheduling simulator",
		Long:          `os-scheduler simulates First-Come-First-Served and Shortest-Job-First scheduling over a fixed batch of processes and reports waiting, turnaround and response times.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.outputFormat, "output", "", "output format: table or json (default from config)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
