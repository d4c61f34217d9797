// internal/workers/catalog/lookup-scholarship/handler.go
package lookupscholarship

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"scholarship-workers/internal/catalog"
	"scholarship-workers/internal/common/errors"
	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/common/metrics"
	"scholarship-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "lookup-scholarship"
)

type Handler struct {
	config     *Config
	catalog    *catalog.Catalog
	errHandler *errors.ErrorHandler
	logger     logger.Logger
}

func NewHandler(config *Config, cat *catalog.Catalog, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		catalog:    cat,
		errHandler: errors.NewErrorHandler(scoped),
		logger:     scoped,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	result, err := validation.ValidateJSON([]byte(job.Variables), inputSchema)
	if err != nil {
		h.errHandler.HandleJobError(context.Background(), client, job,
			errors.NewParseError(fmt.Sprintf("parse input: %v", err)))
		return
	}
	if !result.Valid {
		h.errHandler.HandleJobError(context.Background(), client, job,
			errors.NewValidationFailedError(result.ErrorSummary()))
		return
	}

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
	scholarship, err := h.catalog.Get(input.ScholarshipID)
	if err != nil {
		var nf *catalog.ErrNotFound
		if stderrors.As(err, &nf) {
			return nil, errors.NewScholarshipNotFoundError(input.ScholarshipID)
		}
		return nil, err
	}

	h.logger.Info("scholarship found", map[string]interface{}{
		"scholarshipId": scholarship.ID,
		"title":         scholarship.Title,
	})

	return &Output{
		Scholarship:    scholarship,
		CatalogVersion: h.catalog.Version(),
	}, nil
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
