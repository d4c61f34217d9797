// internal/workers/catalog/search-scholarships/handler.go
package searchscholarships

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"scholarship-workers/internal/catalog"
	"scholarship-workers/internal/common/database"
	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/common/metrics"
	"scholarship-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "search-scholarships"
)

type Handler struct {
	config  *Config
	catalog *catalog.Catalog
	es      *database.ElasticsearchClient
	logger  logger.Logger
}

// NewHandler builds a search handler. es may be nil, in which case all
// queries run against the in-memory catalog.
func NewHandler(config *Config, cat *catalog.Catalog, es *database.ElasticsearchClient, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		catalog: cat,
		es:      es,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		h.failJob(client, job, "SEARCH_QUERY_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = h.config.DefaultLimit
	}

	if h.useElasticsearch(input) {
		results, err := h.searchElasticsearch(ctx, input.Query, limit)
		if err == nil {
			return &Output{Scholarships: results, Total: len(results), Source: "elasticsearch"}, nil
		}
		h.logger.Warn("elasticsearch search failed, falling back to catalog", map[string]interface{}{
			"query": input.Query,
			"error": err,
		})
	}

	var results []models.Scholarship
	if input.Query != "" {
		results = h.catalog.Search(input.Query, limit)
		if input.Category != "" {
			results = filterByCategory(results, input.Category)
		}
	} else {
		results = h.catalog.List(input.Category, limit)
	}

	h.logger.Info("search complete", map[string]interface{}{
		"query":    input.Query,
		"category": input.Category,
		"results":  len(results),
	})

	return &Output{Scholarships: results, Total: len(results), Source: "catalog"}, nil
}

func (h *Handler) useElasticsearch(input *Input) bool {
	return h.config.Source == "elasticsearch" && h.es != nil && input.Query != ""
}

func (h *Handler) searchElasticsearch(ctx context.Context, query string, limit int) ([]models.Scholarship, error) {
	sources, err := h.es.SearchDocuments(ctx, h.config.Index, query, limit)
	if err != nil {
		return nil, err
	}

	results := make([]models.Scholarship, 0, len(sources))
	for _, src := range sources {
		var s models.Scholarship
		if err := json.Unmarshal(src, &s); err != nil {
			h.logger.Warn("skipping malformed search hit", map[string]interface{}{
				"error": err,
			})
			continue
		}
		results = append(results, s)
	}
	return results, nil
}

func filterByCategory(in []models.Scholarship, category string) []models.Scholarship {
	out := make([]models.Scholarship, 0, len(in))
	for _, s := range in {
		if strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}
	return out
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
