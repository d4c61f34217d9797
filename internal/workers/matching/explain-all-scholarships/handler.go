// internal/workers/matching/explain-all-scholarships/handler.go
package explainallscholarships

import (
	"context"
	"encoding/json"
	"fmt"

	"scholarship-workers/internal/catalog"
	"scholarship-workers/internal/common/errors"
	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/common/metrics"
	"scholarship-workers/internal/eligibility"
	"scholarship-workers/internal/models"
	"scholarship-workers/internal/students"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "explain-all-scholarships"
)

type Handler struct {
	config     *Config
	catalog    *catalog.Catalog
	store      *students.Store
	errHandler *errors.ErrorHandler
	logger     logger.Logger
}

func NewHandler(config *Config, cat *catalog.Catalog, store *students.Store, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		catalog:    cat,
		store:      store,
		errHandler: errors.NewErrorHandler(scoped),
		logger:     scoped,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.errHandler.HandleJobError(context.Background(), client, job,
			errors.NewParseError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.errHandler.HandleJobError(ctx, client, job, err)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	student, err := h.resolveStudent(ctx, input)
	if err != nil {
		return nil, err
	}

	report := eligibility.ExplainAll(*student, h.catalog)

	for range report.Eligible {
		metrics.EligibilityChecks.WithLabelValues("eligible").Inc()
	}
	for range report.NotEligible {
		metrics.EligibilityChecks.WithLabelValues("not_eligible").Inc()
	}

	h.logger.Info("batch eligibility computed", map[string]interface{}{
		"studentName":       student.Name,
		"totalScholarships": report.TotalScholarships,
		"eligibleCount":     report.EligibleCount,
		"eligibilityRate":   report.Summary.EligibilityRate,
	})

	return &Output{BatchReport: report}, nil
}

func (h *Handler) resolveStudent(ctx context.Context, input *Input) (*models.StudentProfile, error) {
	if input.StudentProfile != nil {
		return input.StudentProfile, nil
	}
	if input.StudentID != "" {
		student, err := h.store.GetProfile(ctx, input.StudentID)
		if err != nil {
			return nil, errors.NewStudentFetchFailedError(input.StudentID, err)
		}
		return student, nil
	}
	return nil, errors.NewValidationFailedError("either studentProfile or studentId is required")
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

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
