package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

func generateResponse(result Result) (responses.ScheduleResponse, error) {
	averages, err := util.CalculateAverage(result.Processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	details := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, generateProcessDetails(p))
	}

	return responses.ScheduleResponse{
		Algorithm:             string(result.Algorithm),
		ExecutionOrder:        result.ExecutionOrder(),
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		CpuUtilization:        result.Cpu.Utilization(),
		CpuThroughput:         result.Cpu.Throughput(len(result.Processes)),
		AverageWaitingTime:    averages.WaitingTime,
		AverageResponseTime:   averages.ResponseTime,
		AverageTurnAroundTime: averages.TurnAroundTime,
		Details:               details,
	}, nil
}

func generateProcessDetails(process core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ProcessId,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		StartTime:      process.StartTime,
		CompletionTime: process.CompletionTime,
		ResponseTime:   process.ResponseTime,
		TurnAroundTime: process.TurnAroundTime,
		WaitingTime:    process.WaitingTime,
	}
}
