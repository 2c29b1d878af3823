package core

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is the busy share of TotalTime.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// CPU is a single simulated, non-preemptive core driven by a logical clock
// that starts at 0.
type CPU struct {
	clock  int
	metric CpuMetric
}

func NewCPU() *CPU {
	return &CPU{}
}

func (c *CPU) Clock() int {
	return c.clock
}

// IdleUntil advances the clock to t when the CPU has nothing to run before t.
// It never moves the clock backwards.
func (c *CPU) IdleUntil(t int) {
	if c.clock < t {
		c.metric.IdleTime += t - c.clock
		c.clock = t
	}
}

// Execute runs p to completion starting at max(clock, arrival) and fills in
// its derived times.
func (c *CPU) Execute(p *Process) {
	c.IdleUntil(p.ArrivalTime)

	p.StartTime = c.clock
	p.WaitingTime = c.clock - p.ArrivalTime
	p.ResponseTime = p.WaitingTime // non-preemptive: first dispatch is the only dispatch
	p.CompletionTime = c.clock + p.BurstTime
	p.TurnAroundTime = p.CompletionTime - p.ArrivalTime

	c.clock = p.CompletionTime
	c.metric.UtilizationTime += p.BurstTime
}

func (c *CPU) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}
