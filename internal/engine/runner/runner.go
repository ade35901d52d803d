// Copyright 2026 fanjia1024
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package runner 单槽位 Job 执行器：同一时刻最多一个活跃 Job，
// 状态变迁统一经由 status.Store 发布。
package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"speech-engine/internal/engine/pipeline"
	"speech-engine/internal/engine/status"
	"speech-engine/pkg/errors"
	"speech-engine/pkg/log"
	"speech-engine/pkg/metrics"
	"speech-engine/pkg/tracing"
	"speech-engine/pkg/utils"
)

// Runner 持有一条管线并串行执行 Job
type Runner[P any] struct {
	pipeline pipeline.Pipeline[P]
	store    *status.Store
	logger   *log.Logger

	mu          sync.Mutex
	activeJobID string
	cancelToken *pipeline.CancelToken
	wg          sync.WaitGroup
}

func NewRunner[P any](p pipeline.Pipeline[P], store *status.Store, logger *log.Logger) *Runner[P] {
	if logger == nil {
		logger = log.Nop()
	}
	return &Runner[P]{pipeline: p, store: store, logger: logger}
}

// StartJob 尝试占用槽位并异步执行；槽位被占时返回 false，不入队
func (r *Runner[P]) StartJob(job pipeline.Job[P]) bool {
	r.mu.Lock()
	if r.activeJobID != "" {
		r.mu.Unlock()
		return false
	}
	token := pipeline.NewCancelToken()
	r.activeJobID = job.ID
	r.cancelToken = token
	r.mu.Unlock()

	startedMs := utils.NowMs()
	r.store.Set(status.JobStatus{
		JobID:         job.ID,
		State:         status.StateQueued,
		Message:       "queued",
		StartedUnixMs: startedMs,
	})
	metrics.EngineBusy.Set(1)
	metrics.JobProgress.Set(0)

	r.wg.Add(1)
	go r.run(job, token, startedMs)
	return true
}

// StopJob 请求取消活跃 Job；job_id 不是当前活跃 Job 时返回 false
func (r *Runner[P]) StopJob(jobID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.activeJobID != jobID || r.cancelToken == nil {
		return false
	}
	r.cancelToken.Cancel()
	return true
}

// ActiveJobID 当前活跃 Job 的 id；空串表示空闲
func (r *Runner[P]) ActiveJobID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeJobID
}

// Wait 等待活跃 Job 结束（仅关停和测试使用）
func (r *Runner[P]) Wait() {
	r.wg.Wait()
}

func (r *Runner[P]) run(job pipeline.Job[P], token *pipeline.CancelToken, startedMs int64) {
	defer r.wg.Done()
	defer func() {
		r.mu.Lock()
		r.activeJobID = ""
		r.cancelToken = nil
		r.mu.Unlock()
		metrics.EngineBusy.Set(0)
	}()

	ctx, span := tracing.StartJobSpan(context.Background(), job.ID, job.ModelID)
	defer span.End()

	r.store.Set(status.JobStatus{
		JobID:         job.ID,
		State:         status.StateRunning,
		Message:       "running",
		StartedUnixMs: startedMs,
	})

	progress := func(p float64, msg string) {
		p = utils.Clamp01(p)
		metrics.JobProgress.Set(p)
		r.store.Set(status.JobStatus{
			JobID:         job.ID,
			State:         status.StateRunning,
			Message:       msg,
			Progress:      p,
			StartedUnixMs: startedMs,
		})
	}

	begin := time.Now()
	outputs, err := r.runPipeline(ctx, job, token, progress)
	metrics.JobDuration.Observe(time.Since(begin).Seconds())
	finishedMs := utils.NowMs()

	switch {
	case err != nil && errors.Is(err, errors.ErrCancelled):
		r.logger.Info("job cancelled", "job_id", job.ID)
		metrics.JobTotal.WithLabelValues("cancelled").Inc()
		metrics.JobFailTotal.WithLabelValues("cancelled").Inc()
		r.store.Set(status.JobStatus{
			JobID:          job.ID,
			State:          status.StateCancelled,
			Message:        "cancelled",
			StartedUnixMs:  startedMs,
			FinishedUnixMs: finishedMs,
		})
	case err != nil:
		r.logger.Error("job failed", "job_id", job.ID, "error", err)
		metrics.JobTotal.WithLabelValues("failed").Inc()
		metrics.JobFailTotal.WithLabelValues("failed").Inc()
		r.store.Set(status.JobStatus{
			JobID:          job.ID,
			State:          status.StateFailed,
			Message:        err.Error(),
			StartedUnixMs:  startedMs,
			FinishedUnixMs: finishedMs,
		})
	default:
		r.logger.Info("job completed", "job_id", job.ID, "outputs", len(outputs))
		metrics.JobTotal.WithLabelValues("completed").Inc()
		metrics.JobProgress.Set(1)
		r.store.Set(status.JobStatus{
			JobID:          job.ID,
			State:          status.StateCompleted,
			Message:        "done",
			Progress:       1,
			Outputs:        outputs,
			StartedUnixMs:  startedMs,
			FinishedUnixMs: finishedMs,
		})
	}
}

// runPipeline 捕获管线 panic，任何异常都折叠为 FAILED 而不是拖垮进程
func (r *Runner[P]) runPipeline(ctx context.Context, job pipeline.Job[P], token *pipeline.CancelToken, progress pipeline.ProgressFunc) (outputs pipeline.Outputs, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			outputs = nil
			err = fmt.Errorf("pipeline panic: %v", rec)
		}
	}()
	return r.pipeline.Run(ctx, job, token, progress)
}
