// Package report renders schedule responses for people (text tables) and
// for machines (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/responses"
)

type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case Table:
		return Table, nil
	case JSON:
		return JSON, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table or json)", s)
}

// GanttChart is the execution order as "| P1 | P3 | P2 |".
func GanttChart(response responses.ScheduleResponse) string {
	b := &strings.Builder{}
	b.WriteString("|")
	for _, pid := range response.ExecutionOrder {
		fmt.Fprintf(b, " P%d |", pid)
	}
	return b.String()
}

// Timeline annotates the Gantt chart with times and idle gaps,
// e.g. "0 [P1] 5 (idle) 7 [P2] 9".
func Timeline(response responses.ScheduleResponse) string {
	if len(response.Details) == 0 {
		return ""
	}
	parts := []string{}
	clock := 0
	for _, d := range response.Details {
		if d.StartTime > clock {
			parts = append(parts, strconv.Itoa(clock), "(idle)")
		}
		parts = append(parts, strconv.Itoa(d.StartTime), "[P"+strconv.Itoa(d.ProcessId)+"]")
		clock = d.CompletionTime
	}
	parts = append(parts, strconv.Itoa(clock))
	return strings.Join(parts, " ")
}

// Write prints the full text report for one algorithm run: heading, Gantt
// chart, per-process table in dispatch order and the three averages.
func Write(w io.Writer, title string, response responses.ScheduleResponse) error {
	fmt.Fprintf(w, "=== %s ===\n", title)

	fmt.Fprintln(w, "\nGantt Chart:")
	fmt.Fprintln(w, GanttChart(response))
	fmt.Fprintln(w, Timeline(response))

	fmt.Fprintln(w, "\nProcess Details:")
	table := tablewriter.NewWriter(w)
	table.Header("PID", "AT", "BT", "WT", "TAT", "RT")
	for _, d := range response.Details {
		err := table.Append(
			fmt.Sprintf("P%d", d.ProcessId),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.ResponseTime),
		)
		if err != nil {
			return fmt.Errorf("append P%d to process table: %w", d.ProcessId, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render process table: %w", err)
	}

	fmt.Fprintln(w, "\nAverage Performance Times:")
	fmt.Fprintf(w, "Average Waiting Time: %.2f\n", response.AverageWaitingTime)
	fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", response.AverageTurnAroundTime)
	_, err := fmt.Fprintf(w, "Average Response Time: %.2f\n", response.AverageResponseTime)
	return err
}

func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
