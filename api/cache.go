package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dgraph-io/ristretto"

	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

// ResponseCache memoises schedule responses. Runs are pure functions of the
// algorithm and the job list, so identical requests share a response.
type ResponseCache struct {
	cache *ristretto.Cache
}

// NewResponseCache keeps up to maxCost responses.
func NewResponseCache(maxCost int64) (*ResponseCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
		// cost counts responses, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create response cache: %w", err)
	}
	return &ResponseCache{cache: cache}, nil
}

func cacheKey(algorithm schedulers.Algorithm, request requests.ScheduleRequests) string {
	b := &strings.Builder{}
	b.WriteString(string(algorithm))
	for _, job := range request.Jobs {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(job.ArrivalTime))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(job.BurstTime))
	}
	return b.String()
}

func (c *ResponseCache) Get(algorithm schedulers.Algorithm, request requests.ScheduleRequests) (responses.ScheduleResponse, bool) {
	value, ok := c.cache.Get(cacheKey(algorithm, request))
	if !ok {
		return responses.ScheduleResponse{}, false
	}
	response, ok := value.(responses.ScheduleResponse)
	return response, ok
}

func (c *ResponseCache) Set(algorithm schedulers.Algorithm, request requests.ScheduleRequests, response responses.ScheduleResponse) {
	response.RunId = ""
	c.cache.Set(cacheKey(algorithm, request), response, 1)
	c.cache.Wait()
}

func (c *ResponseCache) Close() {
	c.cache.Close()
}
