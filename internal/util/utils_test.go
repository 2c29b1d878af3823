package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"os-scheduler/internal/core"
)

func TestCalculateAverage(t *testing.T) {
	processes := []core.Process{
		{ProcessId: 1, WaitingTime: 0, ResponseTime: 0, TurnAroundTime: 5},
		{ProcessId: 2, WaitingTime: 4, ResponseTime: 4, TurnAroundTime: 7},
		{ProcessId: 3, WaitingTime: 6, ResponseTime: 6, TurnAroundTime: 14},
	}
	averages, err := CalculateAverage(processes)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/3.0, averages.WaitingTime, 1e-9)
	assert.InDelta(t, 10.0/3.0, averages.ResponseTime, 1e-9)
	assert.InDelta(t, 26.0/3.0, averages.TurnAroundTime, 1e-9)
}

func TestCalculateAverageEmpty(t *testing.T) {
	_, err := CalculateAverage(nil)
	assert.ErrorIs(t, err, ErrEmptyResultSet)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}
