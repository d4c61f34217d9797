// internal/workers/matching/find-scholarship-matches/handler.go
package findscholarshipmatches

import (
	"context"
	"encoding/json"
	"fmt"

	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/common/metrics"
	"scholarship-workers/internal/matching"
	"scholarship-workers/internal/models"
	"scholarship-workers/internal/students"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "find-scholarship-matches"
)

type Handler struct {
	config *Config
	engine *matching.Engine
	store  *students.Store
	logger logger.Logger
}

func NewHandler(config *Config, engine *matching.Engine, store *students.Store, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		engine: engine,
		store:  store,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		code := "VALIDATION_FAILED"
		if input.StudentID != "" && input.StudentProfile == nil {
			code = "STUDENT_FETCH_FAILED"
		}
		h.failJob(client, job, code, err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	student, err := h.resolveStudent(ctx, input)
	if err != nil {
		return nil, err
	}

	minScore := h.config.MinScore
	if input.MinScore != nil {
		minScore = *input.MinScore
	}

	matches := h.engine.FindMatches(*student, minScore)
	metrics.MatchesFound.Observe(float64(len(matches)))

	h.logger.Info("matches found", map[string]interface{}{
		"studentName": student.Name,
		"minScore":    minScore,
		"matches":     len(matches),
	})

	return &Output{
		Matches:      matches,
		TotalMatches: len(matches),
		MinScore:     minScore,
	}, nil
}

func (h *Handler) resolveStudent(ctx context.Context, input *Input) (*models.StudentProfile, error) {
	if input.StudentProfile != nil {
		return input.StudentProfile, nil
	}
	if input.StudentID != "" {
		return h.store.GetProfile(ctx, input.StudentID)
	}
	return nil, fmt.Errorf("either studentProfile or studentId is required")
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
