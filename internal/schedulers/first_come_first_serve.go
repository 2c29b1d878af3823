package schedulers

import (
	"sort"

	"os-scheduler/internal/core"
)

// ScheduleFCFS runs processes in order of arrival. Simultaneous arrivals keep
// their input order.
func ScheduleFCFS(processes []core.Process) (Result, error) {
	if err := core.Validate(processes); err != nil {
		return Result{}, err
	}

	jobs := sortByArrivalTime(core.Clone(processes))

	cpu := core.NewCPU()
	for i := range jobs {
		cpu.Execute(&jobs[i])
	}

	return Result{
		Algorithm: FirstComeFirstServe,
		Processes: jobs,
		Cpu:       cpu.Metric(),
	}, nil
}

func sortByArrivalTime(processes []core.Process) []core.Process {
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})
	return processes
}
