package responses

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}
type ScheduleResponse struct {
	RunId                 string            `json:"run_id,omitempty"`
	Algorithm             string            `json:"algorithm"`
	ExecutionOrder        []int             `json:"execution_order"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
}

// CompareResponse holds one ScheduleResponse per algorithm, in registration order.
type CompareResponse struct {
	RunId   string             `json:"run_id,omitempty"`
	Results []ScheduleResponse `json:"results"`
}
