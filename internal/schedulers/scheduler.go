package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
)

// Result is a finished run: processes in dispatch order plus CPU bookkeeping.
// It is never modified after the scheduler returns it.
type Result struct {
	Algorithm Algorithm
	Processes []core.Process
	Cpu       core.CpuMetric
}

// ExecutionOrder lists process ids in dispatch order.
func (r Result) ExecutionOrder() []int {
	order := make([]int, len(r.Processes))
	for i, p := range r.Processes {
		order[i] = p.ProcessId
	}
	return order
}

type ScheduleFunc func(processes []core.Process) (Result, error)

type registration struct {
	algorithm Algorithm
	title     string
	schedule  ScheduleFunc
}

var registry = []registration{
	{FirstComeFirstServe, "First Come First Served (FCFS)", ScheduleFCFS},
	{ShortestJobFirst, "Shortest Job First (SJF)", ScheduleSJF},
}

// Algorithms returns the registered algorithms in a stable order.
func Algorithms() []Algorithm {
	algorithms := make([]Algorithm, len(registry))
	for i, r := range registry {
		algorithms[i] = r.algorithm
	}
	return algorithms
}

func ParseAlgorithm(name string) (Algorithm, error) {
	candidate := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, r := range registry {
		if r.algorithm == candidate {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func ParseAlgorithms(names []string) ([]Algorithm, error) {
	algorithms := make([]Algorithm, 0, len(names))
	for _, name := range names {
		algorithm, err := ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algorithms = append(algorithms, algorithm)
	}
	return algorithms, nil
}

// Title is the human readable report heading for algorithm.
func Title(algorithm Algorithm) string {
	for _, r := range registry {
		if r.algorithm == algorithm {
			return r.title
		}
	}
	return string(algorithm)
}

func lookup(algorithm Algorithm) (ScheduleFunc, error) {
	for _, r := range registry {
		if r.algorithm == algorithm {
			return r.schedule, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
}

// Schedule validates the request, runs algorithm on a private copy of the
// jobs and builds the response with averages and CPU figures.
func Schedule(algorithm Algorithm, request requests.ScheduleRequests, logger *zap.Logger) (responses.ScheduleResponse, error) {
	schedule, err := lookup(algorithm)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	log := logger.With(zap.String("algorithm", string(algorithm)))
	log.Info("running scheduler", zap.Int("processes", len(request.Jobs)))

	processes, err := core.NewProcesses(request.Jobs)
	if err != nil {
		log.Warn("rejected input", zap.Error(err))
		return responses.ScheduleResponse{}, err
	}

	result, err := schedule(processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	for _, p := range result.Processes {
		log.Debug("dispatched",
			zap.Int("pid", p.ProcessId),
			zap.Int("start", p.StartTime),
			zap.Int("completion", p.CompletionTime))
	}

	response, err := generateResponse(result)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Info("scheduler finished",
		zap.Ints("execution_order", response.ExecutionOrder),
		zap.Float64("average_waiting_time", response.AverageWaitingTime))
	return response, nil
}

func ScheduleFirstComeFirstServe(request requests.ScheduleRequests, logger *zap.Logger) (responses.ScheduleResponse, error) {
	return Schedule(FirstComeFirstServe, request, logger)
}

func ScheduleShortestJobFirst(request requests.ScheduleRequests, logger *zap.Logger) (responses.ScheduleResponse, error) {
	return Schedule(ShortestJobFirst, request, logger)
}

// ScheduleAll runs the given algorithms (all registered ones when empty)
// concurrently. Each run builds its own process copy from the request, so
// runs never share bookkeeping.
func ScheduleAll(algorithms []Algorithm, request requests.ScheduleRequests, logger *zap.Logger) (responses.CompareResponse, error) {
	if len(algorithms) == 0 {
		algorithms = Algorithms()
	}
	results := make([]responses.ScheduleResponse, len(algorithms))

	var g errgroup.Group
	for i, algorithm := range algorithms {
		i, algorithm := i, algorithm
		g.Go(func() error {
			response, err := Schedule(algorithm, request, logger)
			if err != nil {
				return err
			}
			results[i] = response
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return responses.CompareResponse{}, err
	}
	return responses.CompareResponse{Results: results}, nil
}
