// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"time"

	"onboarding-workers/internal/common/config"
	"onboarding-workers/internal/common/logger"
	"onboarding-workers/internal/common/metrics"
	"onboarding-workers/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// JobHandler is the signature every task handler exposes as Handle.
type JobHandler func(client worker.JobClient, job entities.Job)

// Registrar opens job workers and closes them on shutdown.
type Registrar struct {
	client  zbc.Client
	obs     *observability.Observability
	log     logger.Logger
	workers []worker.JobWorker
}

func NewRegistrar(client zbc.Client, obs *observability.Observability, log logger.Logger) *Registrar {
	return &Registrar{client: client, obs: obs, log: log}
}

// Register opens a worker for taskType unless it is disabled.
func (r *Registrar) Register(taskType string, wcfg config.WorkerConfig, handler JobHandler) bool {
	if !wcfg.Enabled {
		r.log.Info("worker disabled", map[string]interface{}{"taskType": taskType})
		return false
	}

	jw := r.client.NewJobWorker().
		JobType(taskType).
		Handler(worker.JobHandler(Instrument(taskType, r.obs, handler))).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(config.GetDuration(wcfg.Timeout)).
		Open()
	r.workers = append(r.workers, jw)

	r.log.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": wcfg.MaxJobsActive,
		"timeout_ms":    wcfg.Timeout,
	})
	return true
}

func (r *Registrar) Count() int {
	return len(r.workers)
}

// Close stops polling and waits for in-flight jobs.
func (r *Registrar) Close() {
	for _, jw := range r.workers {
		jw.Close()
		jw.AwaitClose()
	}
	r.workers = nil
}

// Instrument wraps handler with Prometheus and OpenTelemetry job metrics.
func Instrument(taskType string, obs *observability.Observability, handler JobHandler) JobHandler {
	return func(client worker.JobClient, job entities.Job) {
		start := time.Now()
		metrics.WorkerJobsActive.WithLabelValues(taskType).Inc()
		defer func() {
			elapsed := time.Since(start)
			metrics.WorkerJobsActive.WithLabelValues(taskType).Dec()
			metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(elapsed.Seconds())
			obs.RecordJobProcessed(context.Background(), taskType, "handled")
			obs.RecordJobDuration(context.Background(), taskType, elapsed, "handled")
		}()
		handler(client, job)
	}
}

// CompleteJob sends the output as job variables.
func CompleteJob(ctx context.Context, client worker.JobClient, job entities.Job, output interface{}, log logger.Logger) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		log.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}

	if _, err := cmd.Send(ctx); err != nil {
		log.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(job.Type).Inc()
	log.Info("job completed successfully", map[string]interface{}{
		"jobKey": job.Key,
	})
}
