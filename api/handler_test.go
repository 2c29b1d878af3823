package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"os-scheduler/config"
	"os-scheduler/internal/responses"
)

const scenarioBody = `{"jobs":[{"arrival_time":0,"burst_time":7},{"arrival_time":2,"burst_time":4},{"arrival_time":4,"burst_time":1},{"arrival_time":5,"burst_time":4}]}`

type testServer struct {
	app     *fiber.App
	metrics *Metrics
	cache   *ResponseCache
}

func newTestServer(t *testing.T, algorithms ...string) testServer {
	t.Helper()
	if len(algorithms) == 0 {
		algorithms = []string{"fcfs", "sjf"}
	}
	cfg := &config.SchedulerConfig{Algorithms: algorithms}

	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)
	cache, err := NewResponseCache(100)
	require.NoError(t, err)
	t.Cleanup(cache.Close)

	handler, err := NewSchedulerHandlerImpl(cfg, zaptest.NewLogger(t), cache, metrics)
	require.NoError(t, err)
	return testServer{app: NewApp(handler, registry), metrics: metrics, cache: cache}
}

func (s testServer) do(t *testing.T, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, payload
}

func TestShortestJobFirstEndpoint(t *testing.T) {
	s := newTestServer(t)
	status, body := s.do(t, http.MethodPost, "/api/v1/sjf", scenarioBody)
	require.Equal(t, http.StatusOK, status, string(body))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.NotEmpty(t, response.RunId)
	assert.Equal(t, "sjf", response.Algorithm)
	assert.Equal(t, []int{1, 3, 2, 4}, response.ExecutionOrder)
	assert.InDelta(t, 4.0, response.AverageWaitingTime, 1e-9)
}

func TestFirstComeFirstServeEndpointUsesCache(t *testing.T) {
	s := newTestServer(t)
	status, body := s.do(t, http.MethodPost, "/api/v1/fcfs", scenarioBody)
	require.Equal(t, http.StatusOK, status, string(body))
	var first responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &first))

	status, body = s.do(t, http.MethodPost, "/api/v1/fcfs", scenarioBody)
	require.Equal(t, http.StatusOK, status)
	var second responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &second))

	assert.Equal(t, first.ExecutionOrder, second.ExecutionOrder)
	assert.Equal(t, first.Details, second.Details)
	assert.NotEqual(t, first.RunId, second.RunId)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.cacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.runs.WithLabelValues("fcfs", outcomeOK)))
}

func TestAllAlgorithmsEndpoint(t *testing.T) {
	s := newTestServer(t)
	status, body := s.do(t, http.MethodPost, "/api/v1/all", scenarioBody)
	require.Equal(t, http.StatusOK, status, string(body))

	var compare responses.CompareResponse
	require.NoError(t, json.Unmarshal(body, &compare))
	require.Len(t, compare.Results, 2)
	assert.NotEmpty(t, compare.RunId)
	assert.Equal(t, compare.RunId, compare.Results[1].RunId)
	assert.Equal(t, []int{1, 2, 3, 4}, compare.Results[0].ExecutionOrder)
	assert.Equal(t, []int{1, 3, 2, 4}, compare.Results[1].ExecutionOrder)
}

func TestAllAlgorithmsHonoursConfiguredSubset(t *testing.T) {
	s := newTestServer(t, "sjf")
	status, body := s.do(t, http.MethodPost, "/api/v1/all", scenarioBody)
	require.Equal(t, http.StatusOK, status)

	var compare responses.CompareResponse
	require.NoError(t, json.Unmarshal(body, &compare))
	require.Len(t, compare.Results, 1)
	assert.Equal(t, "sjf", compare.Results[0].Algorithm)
}

func TestAlgorithmsEndpoint(t *testing.T) {
	s := newTestServer(t)
	status, body := s.do(t, http.MethodGet, "/api/v1/algorithms", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"name":"fcfs"`)
	assert.Contains(t, string(body), `"title":"Shortest Job First (SJF)"`)
}

func TestValidationErrors(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodPost, "/api/v1/sjf", `{"jobs":[{"arrival_time":0,"burst_time":3},{"arrival_time":1,"burst_time":0}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, 2.0, payload["process_id"])
	assert.Contains(t, payload["error"], "burst_time")

	status, _ = s.do(t, http.MethodPost, "/api/v1/fcfs", `{"jobs":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = s.do(t, http.MethodPost, "/api/v1/all", `{"jobs":[{"arrival_time":-1,"burst_time":3}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// one rejection from /sjf, one from /all
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.runs.WithLabelValues("sjf", outcomeInvalid)))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.runs.WithLabelValues("fcfs", outcomeInvalid)))
}

func TestMalformedBody(t *testing.T) {
	s := newTestServer(t)
	status, body := s.do(t, http.MethodPost, "/api/v1/fcfs", `{"jobs":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"invalid request format"}`, string(body))
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)
	status, _ := s.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, status)

	s.do(t, http.MethodPost, "/api/v1/sjf", scenarioBody)
	status, body := s.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "os_scheduler_runs_total")
}

func TestNewSchedulerHandlerRejectsUnknownAlgorithm(t *testing.T) {
	_, err := NewSchedulerHandlerImpl(&config.SchedulerConfig{Algorithms: []string{"rr"}}, zaptest.NewLogger(t), nil, nil)
	assert.Error(t, err)
}
