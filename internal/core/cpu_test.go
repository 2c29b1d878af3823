package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPUExecuteFillsDerivedTimes(t *testing.T) {
	cpu := NewCPU()
	p := Process{ProcessId: 1, ArrivalTime: 0, BurstTime: 5}
	cpu.Execute(&p)

	assert.Equal(t, 0, p.StartTime)
	assert.Equal(t, 5, p.CompletionTime)
	assert.Equal(t, 0, p.WaitingTime)
	assert.Equal(t, 0, p.ResponseTime)
	assert.Equal(t, 5, p.TurnAroundTime)
	assert.Equal(t, 5, cpu.Clock())
}

func TestCPUIdlesUntilArrival(t *testing.T) {
	cpu := NewCPU()
	first := Process{ProcessId: 1, ArrivalTime: 2, BurstTime: 3}
	second := Process{ProcessId: 2, ArrivalTime: 10, BurstTime: 1}
	cpu.Execute(&first)
	cpu.Execute(&second)

	assert.Equal(t, 2, first.StartTime)
	assert.Equal(t, 10, second.StartTime)
	assert.Equal(t, 0, second.WaitingTime)

	m := cpu.Metric()
	assert.Equal(t, 11, m.TotalTime)
	assert.Equal(t, 4, m.UtilizationTime)
	assert.Equal(t, 7, m.IdleTime)
	assert.InDelta(t, 4.0/11.0, m.Utilization(), 1e-9)
	assert.InDelta(t, 2.0/11.0, m.Throughput(2), 1e-9)
}

func TestCPUIdleUntilNeverRewinds(t *testing.T) {
	cpu := NewCPU()
	cpu.IdleUntil(4)
	cpu.IdleUntil(1)
	assert.Equal(t, 4, cpu.Clock())
	assert.Equal(t, 4, cpu.Metric().IdleTime)
}

func TestEmptyCpuMetric(t *testing.T) {
	var m CpuMetric
	assert.Zero(t, m.Utilization())
	assert.Zero(t, m.Throughput(3))
}
