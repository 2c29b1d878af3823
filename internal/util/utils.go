package util

import (
	"errors"

	"os-scheduler/internal/core"
)

var ErrEmptyResultSet = errors.New("cannot average an empty result set")

type Averages struct {
	WaitingTime    float64
	ResponseTime   float64
	TurnAroundTime float64
}

func CalculateAverage(processes []core.Process) (Averages, error) {
	if len(processes) == 0 {
		return Averages{}, ErrEmptyResultSet
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processes {
		waitingTimeSum += float64(process.WaitingTime)
		responseTimeSum += float64(process.ResponseTime)
		turnAroundTimeSum += float64(process.TurnAroundTime)
	}

	processCount := float64(len(processes))

	return Averages{
		WaitingTime:    waitingTimeSum / processCount,
		ResponseTime:   responseTimeSum / processCount,
		TurnAroundTime: turnAroundTimeSum / processCount,
	}, nil
}
