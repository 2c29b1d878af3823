package schedulers

import (
	"os-scheduler/internal/core"
)

type decisionKind int

const (
	// dispatchShortest runs the shortest eligible process at the current clock.
	dispatchShortest decisionKind = iota
	// idleAdvance means nothing has arrived yet: the CPU idles until the
	// earliest pending arrival and runs that process.
	idleAdvance
)

type decision struct {
	index int
	kind  decisionKind
}

// readyQueue tracks which processes of one SJF run are still pending.
type readyQueue struct {
	processes  []core.Process
	dispatched []bool
}

func newReadyQueue(processes []core.Process) *readyQueue {
	return &readyQueue{
		processes:  processes,
		dispatched: make([]bool, len(processes)),
	}
}

// next decides what the CPU does at clock. The queue must not be drained.
func (q *readyQueue) next(clock int) decision {
	if i := q.shortestEligible(clock); i >= 0 {
		return decision{index: i, kind: dispatchShortest}
	}
	return decision{index: q.earliestArrival(), kind: idleAdvance}
}

// shortestEligible picks the minimum burst among arrived processes, then the
// earliest arrival. Remaining ties go to the lowest input index.
func (q *readyQueue) shortestEligible(clock int) int {
	best := -1
	for i, p := range q.processes {
		if q.dispatched[i] || p.ArrivalTime > clock {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		b := q.processes[best]
		if p.BurstTime < b.BurstTime || (p.BurstTime == b.BurstTime && p.ArrivalTime < b.ArrivalTime) {
			best = i
		}
	}
	return best
}

func (q *readyQueue) earliestArrival() int {
	best := -1
	for i, p := range q.processes {
		if q.dispatched[i] {
			continue
		}
		if best == -1 || p.ArrivalTime < q.processes[best].ArrivalTime {
			best = i
		}
	}
	return best
}

// ScheduleSJF is non-preemptive shortest job first. The selection is redone
// from scratch at every dispatch.
func ScheduleSJF(processes []core.Process) (Result, error) {
	if err := core.Validate(processes); err != nil {
		return Result{}, err
	}

	queue := newReadyQueue(core.Clone(processes))
	cpu := core.NewCPU()
	executionOrder := make([]core.Process, 0, len(processes))

	for step := 0; step < len(processes); step++ {
		d := queue.next(cpu.Clock())
		p := &queue.processes[d.index]
		if d.kind == idleAdvance {
			cpu.IdleUntil(p.ArrivalTime)
		}
		cpu.Execute(p)
		queue.dispatched[d.index] = true
		executionOrder = append(executionOrder, *p)
	}

	return Result{
		Algorithm: ShortestJobFirst,
		Processes: executionOrder,
		Cpu:       cpu.Metric(),
	}, nil
}
