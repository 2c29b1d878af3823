package requests

// Job is one (arrival, burst) pair as supplied by the caller. Its position in
// ScheduleRequests.Jobs determines the process id.
type Job struct {
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
}
type ScheduleRequests struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
}
