package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"os-scheduler/internal/input"
	"os-scheduler/internal/report"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		file      string
		algorithm string
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a batch of processes and print the schedule",
		Long: `Reads (arrival, burst) pairs from --file (.csv, .yaml or .json) or, without
a file, asks for them interactively, then prints a Gantt chart, the per-process
table and the average waiting, turnaround and response times.`,
		Example: `  os-scheduler run
  os-scheduler run --file workload.csv --algorithm sjf
  os-scheduler run --file workload.yaml --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// console runs stay quiet unless a level is asked for
			cfg, logger, err := opts.load("warn")
			if err != nil {
				return err
			}
			defer logger.Sync()

			algorithms, err := resolveAlgorithms(algorithm, cfg.Algorithms)
			if err != nil {
				return err
			}
			outputFormat := cfg.Output
			if opts.outputFormat != "" {
				outputFormat = opts.outputFormat
			}
			format, err := report.ParseFormat(outputFormat)
			if err != nil {
				return err
			}

			var request requests.ScheduleRequests
			if file != "" {
				request, err = input.LoadFile(file)
			} else {
				request, err = input.Prompt(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			if err != nil {
				return err
			}

			compare, err := schedulers.ScheduleAll(algorithms, request, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == report.JSON {
				return report.WriteJSON(out, compare)
			}
			for i, result := range compare.Results {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := report.Write(out, schedulers.Title(schedulers.Algorithm(result.Algorithm)), result); err != nil {
					return err
				}
			}
			return nil
		},
	}

	runCmd.Flags().StringVarP(&file, "file", "f", "", "workload file (.csv, .yaml, .yml or .json)")
	runCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "all", "algorithm to run: fcfs, sjf or all")
	return runCmd
}

// resolveAlgorithms maps the --algorithm flag to a list; "all" means the
// configured algorithms.
func resolveAlgorithms(flag string, configured []string) ([]schedulers.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(flag), "all") || flag == "" {
		return schedulers.ParseAlgorithms(configured)
	}
	algorithm, err := schedulers.ParseAlgorithm(flag)
	if err != nil {
		return nil, err
	}
	return []schedulers.Algorithm{algorithm}, nil
}
