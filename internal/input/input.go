// Package input collects (arrival, burst) pairs from people and files.
package input

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
)

var ErrUnsupportedFile = errors.New("unsupported workload file")

// Prompt asks for the process count and then each process's arrival and
// burst time, the same dialogue the classic console simulator uses.
func Prompt(r io.Reader, w io.Writer) (requests.ScheduleRequests, error) {
	in := bufio.NewReader(r)

	var n int
	fmt.Fprint(w, "Enter the number of processes: ")
	if _, err := fmt.Fscan(in, &n); err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("read process count: %w", err)
	}
	if n <= 0 {
		return requests.ScheduleRequests{}, core.ErrInvalidInputSize
	}

	jobs := make([]requests.Job, 0, n)
	fmt.Fprintln(w, "\nEnter process details:")
	for i := 1; i <= n; i++ {
		var job requests.Job
		fmt.Fprintf(w, "Process %d:\n", i)
		fmt.Fprint(w, "  Arrival Time: ")
		if _, err := fmt.Fscan(in, &job.ArrivalTime); err != nil {
			return requests.ScheduleRequests{}, fmt.Errorf("read arrival time of process %d: %w", i, err)
		}
		fmt.Fprint(w, "  Burst Time: ")
		if _, err := fmt.Fscan(in, &job.BurstTime); err != nil {
			return requests.ScheduleRequests{}, fmt.Errorf("read burst time of process %d: %w", i, err)
		}
		jobs = append(jobs, job)
	}
	fmt.Fprintln(w)
	return requests.ScheduleRequests{Jobs: jobs}, nil
}

// LoadFile reads a workload by extension: .csv, .yaml/.yml or .json.
func LoadFile(path string) (requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseCSV(f)
	case ".yaml", ".yml":
		return ParseYAML(f)
	case ".json":
		return ParseJSON(f)
	}
	return requests.ScheduleRequests{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
}

// ParseCSV reads "arrival,burst" rows. A first row with no numeric field is
// treated as a header; lines starting with # are comments.
func ParseCSV(r io.Reader) (requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = 2

	rows, err := reader.ReadAll()
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("read csv: %w", err)
	}

	jobs := make([]requests.Job, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		arrival, arrivalErr := strconv.Atoi(strings.TrimSpace(row[0]))
		burst, burstErr := strconv.Atoi(strings.TrimSpace(row[1]))
		if arrivalErr != nil || burstErr != nil {
			return requests.ScheduleRequests{}, fmt.Errorf("csv row %d: %q is not an integer pair", i+1, strings.Join(row, ","))
		}
		jobs = append(jobs, requests.Job{ArrivalTime: arrival, BurstTime: burst})
	}
	return requests.ScheduleRequests{Jobs: jobs}, nil
}

// isHeader reports whether row names columns rather than carrying data:
// neither field parses as an integer.
func isHeader(row []string) bool {
	for _, field := range row {
		if _, err := strconv.Atoi(strings.TrimSpace(field)); err == nil {
			return false
		}
	}
	return true
}

func ParseYAML(r io.Reader) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := yaml.NewDecoder(r).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		return requests.ScheduleRequests{}, fmt.Errorf("decode yaml: %w", err)
	}
	return request, nil
}

func ParseJSON(r io.Reader) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := json.NewDecoder(r).Decode(&request); err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("decode json: %w", err)
	}
	return request, nil
}
