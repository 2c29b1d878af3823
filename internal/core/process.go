package core

import (
	"errors"
	"fmt"

	"os-scheduler/internal/requests"
)

var (
	ErrInvalidInputSize         = errors.New("at least one process is required")
	ErrInvalidProcessParameters = errors.New("invalid process parameters")
)

// InvalidProcessError reports the first offending field of a process.
type InvalidProcessError struct {
	ProcessId int
	Field     string
	Value     int
}

func (e *InvalidProcessError) Error() string {
	return fmt.Sprintf("pid %d: invalid %s %d", e.ProcessId, e.Field, e.Value)
}

func (e *InvalidProcessError) Unwrap() error {
	return ErrInvalidProcessParameters
}

// Process is one unit of work. ArrivalTime and BurstTime are inputs, the rest
// is filled in once when the process is dispatched.
type Process struct {
	ProcessId   int
	ArrivalTime int
	BurstTime   int

	StartTime      int
	CompletionTime int
	WaitingTime    int
	TurnAroundTime int
	ResponseTime   int
}

// NewProcesses assigns 1-based ids in input order and validates every job.
func NewProcesses(jobs []requests.Job) ([]Process, error) {
	processes := make([]Process, 0, len(jobs))
	for i, job := range jobs {
		processes = append(processes, Process{
			ProcessId:   i + 1,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
		})
	}
	if err := Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

// Validate checks the batch before any simulated time passes.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return ErrInvalidInputSize
	}
	for _, p := range processes {
		if p.ArrivalTime < 0 {
			return &InvalidProcessError{ProcessId: p.ProcessId, Field: "arrival_time", Value: p.ArrivalTime}
		}
		if p.BurstTime <= 0 {
			return &InvalidProcessError{ProcessId: p.ProcessId, Field: "burst_time", Value: p.BurstTime}
		}
	}
	return nil
}

// Clone returns an independent copy of the batch with derived fields cleared,
// so each scheduling run owns its bookkeeping.
func Clone(processes []Process) []Process {
	cloned := make([]Process, len(processes))
	for i, p := range processes {
		cloned[i] = Process{
			ProcessId:   p.ProcessId,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
		}
	}
	return cloned
}
