package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config     *config.SchedulerConfig
	algorithms []schedulers.Algorithm
	logger     *zap.Logger
	cache      *ResponseCache
	metrics    *Metrics
}

// NewSchedulerHandlerImpl wires the handler. cache and metrics are optional.
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *zap.Logger, cache *ResponseCache, metrics *Metrics) (*SchedulerHandlerImpl, error) {
	algorithms, err := schedulers.ParseAlgorithms(config.Algorithms)
	if err != nil {
		return nil, err
	}
	return &SchedulerHandlerImpl{
		config:     config,
		algorithms: algorithms,
		logger:     logger,
		cache:      cache,
		metrics:    metrics,
	}, nil
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidFormat(ctx)
	}

	compare, err := schedulers.ScheduleAll(s.algorithms, request, s.logger)
	if err != nil {
		for _, algorithm := range s.algorithms {
			s.metrics.observeRun(string(algorithm), outcome(err), 0)
		}
		return s.writeError(ctx, err)
	}
	for _, result := range compare.Results {
		s.metrics.observeRun(result.Algorithm, outcomeOK, result.AverageWaitingTime)
	}

	compare.RunId = uuid.NewString()
	for i := range compare.Results {
		compare.Results[i].RunId = compare.RunId
	}
	return ctx.JSON(compare)
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	names := make([]fiber.Map, 0, len(s.algorithms))
	for _, algorithm := range s.algorithms {
		names = append(names, fiber.Map{
			"name":  algorithm,
			"title": schedulers.Title(algorithm),
		})
	}
	return ctx.JSON(fiber.Map{"algorithms": names})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidFormat(ctx)
	}

	response, err := s.run(algorithm, request)
	if err != nil {
		s.metrics.observeRun(string(algorithm), outcome(err), 0)
		return s.writeError(ctx, err)
	}
	s.metrics.observeRun(string(algorithm), outcomeOK, response.AverageWaitingTime)

	response.RunId = uuid.NewString()
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) run(algorithm schedulers.Algorithm, request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	if s.cache != nil {
		if response, ok := s.cache.Get(algorithm, request); ok {
			s.metrics.observeCacheHit()
			return response, nil
		}
	}
	response, err := schedulers.Schedule(algorithm, request, s.logger)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	if s.cache != nil {
		s.cache.Set(algorithm, request, response)
	}
	return response, nil
}

func outcome(err error) string {
	if errors.Is(err, core.ErrInvalidInputSize) || errors.Is(err, core.ErrInvalidProcessParameters) {
		return outcomeInvalid
	}
	return outcomeError
}

func invalidFormat(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format",
	})
}

func (s *SchedulerHandlerImpl) writeError(ctx *fiber.Ctx, err error) error {
	var invalid *core.InvalidProcessError
	switch {
	case errors.As(err, &invalid):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":      err.Error(),
			"process_id": invalid.ProcessId,
		})
	case errors.Is(err, core.ErrInvalidInputSize):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	s.logger.Error("schedule failed", zap.Error(err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
