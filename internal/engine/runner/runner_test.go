package runner

import (
	"context"
	"fmt"
	"testing"
	"time"

	"speech-engine/internal/engine/pipeline"
	"speech-engine/internal/engine/status"
	"speech-engine/pkg/errors"
)

type fakeParams struct {
	Label string
}

// fakePipeline 可编排的管线替身
type fakePipeline struct {
	block   chan struct{} // 非 nil 时阻塞直到关闭或被取消
	fail    error
	panicIt bool
	outputs pipeline.Outputs
	run     func(job pipeline.Job[fakeParams], token *pipeline.CancelToken, progress pipeline.ProgressFunc)
}

func (f *fakePipeline) Run(ctx context.Context, job pipeline.Job[fakeParams], token *pipeline.CancelToken, progress pipeline.ProgressFunc) (pipeline.Outputs, error) {
	if f.run != nil {
		f.run(job, token, progress)
	}
	if f.panicIt {
		panic("synthetic failure")
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-token.Done():
			return nil, errors.ErrCancelled
		}
	}
	if f.fail != nil {
		return nil, f.fail
	}
	return f.outputs, nil
}

func waitTerminal(t *testing.T, store *status.Store, jobID string) status.JobStatus {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if st, ok := store.Get(jobID); ok && st.State.Terminal() {
			return st
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %s never reached a terminal state", jobID)
	return status.JobStatus{}
}

func TestStartJobHappyPath(t *testing.T) {
	store := status.NewStore()
	fp := &fakePipeline{outputs: pipeline.Outputs{"result": "/out/result.json"}}
	r := NewRunner[fakeParams](fp, store, nil)

	sink := store.Subscribe("j1")
	defer store.Unsubscribe("j1", sink)

	if !r.StartJob(pipeline.Job[fakeParams]{ID: "j1", InputPath: "/in/a.wav", OutputDir: "/out"}) {
		t.Fatal("StartJob refused on idle runner")
	}
	st := waitTerminal(t, store, "j1")
	if st.State != status.StateCompleted {
		t.Fatalf("state = %s, want COMPLETED", st.State)
	}
	if st.Progress != 1 {
		t.Errorf("progress = %v, want 1", st.Progress)
	}
	if st.Outputs["result"] != "/out/result.json" {
		t.Errorf("outputs = %v", st.Outputs)
	}
	if st.FinishedUnixMs < st.StartedUnixMs {
		t.Errorf("finished %d before started %d", st.FinishedUnixMs, st.StartedUnixMs)
	}

	// 订阅者必须先看到 QUEUED，再到终态
	first := <-sink.C
	if first.State != status.StateQueued {
		t.Errorf("first event = %s, want QUEUED", first.State)
	}
	if got := r.ActiveJobID(); got != "" {
		t.Errorf("runner still active: %q", got)
	}
}

func TestSecondJobRejectedWhileBusy(t *testing.T) {
	store := status.NewStore()
	fp := &fakePipeline{block: make(chan struct{})}
	r := NewRunner[fakeParams](fp, store, nil)

	if !r.StartJob(pipeline.Job[fakeParams]{ID: "j1"}) {
		t.Fatal("first job refused")
	}
	if r.StartJob(pipeline.Job[fakeParams]{ID: "j2"}) {
		t.Error("second job accepted while busy")
	}
	if _, ok := store.Get("j2"); ok {
		t.Error("rejected job must not appear in the status store")
	}

	close(fp.block)
	waitTerminal(t, store, "j1")
	r.Wait()

	// 槽位释放后可再次接单
	if !r.StartJob(pipeline.Job[fakeParams]{ID: "j3"}) {
		t.Error("runner did not free its slot")
	}
	waitTerminal(t, store, "j3")
}

func TestPipelineErrorMarksFailed(t *testing.T) {
	store := status.NewStore()
	fp := &fakePipeline{fail: fmt.Errorf("decode wav: bad header")}
	r := NewRunner[fakeParams](fp, store, nil)

	r.StartJob(pipeline.Job[fakeParams]{ID: "j1"})
	st := waitTerminal(t, store, "j1")
	if st.State != status.StateFailed {
		t.Fatalf("state = %s, want FAILED", st.State)
	}
	if st.Message == "" {
		t.Error("failed status should carry the error message")
	}
}

func TestPipelinePanicMarksFailed(t *testing.T) {
	store := status.NewStore()
	fp := &fakePipeline{panicIt: true}
	r := NewRunner[fakeParams](fp, store, nil)

	r.StartJob(pipeline.Job[fakeParams]{ID: "j1"})
	st := waitTerminal(t, store, "j1")
	if st.State != status.StateFailed {
		t.Fatalf("state = %s, want FAILED", st.State)
	}
	r.Wait()
	if got := r.ActiveJobID(); got != "" {
		t.Errorf("slot leaked after panic: %q", got)
	}
}

func TestStopJobCancels(t *testing.T) {
	store := status.NewStore()
	fp := &fakePipeline{block: make(chan struct{})}
	r := NewRunner[fakeParams](fp, store, nil)

	r.StartJob(pipeline.Job[fakeParams]{ID: "j1"})
	if r.StopJob("other") {
		t.Error("StopJob of a non-active id should return false")
	}
	if !r.StopJob("j1") {
		t.Fatal("StopJob of the active id should return true")
	}
	st := waitTerminal(t, store, "j1")
	if st.State != status.StateCancelled {
		t.Fatalf("state = %s, want CANCELLED", st.State)
	}
	if st.Message != "cancelled" {
		t.Errorf("message = %q, want cancelled", st.Message)
	}
}

func TestStopJobIdleReturnsFalse(t *testing.T) {
	store := status.NewStore()
	r := NewRunner[fakeParams](&fakePipeline{}, store, nil)
	if r.StopJob("j1") {
		t.Error("StopJob on idle runner should return false")
	}
}

func TestProgressUpdatesFlowThroughStore(t *testing.T) {
	store := status.NewStore()
	fp := &fakePipeline{}
	fp.run = func(job pipeline.Job[fakeParams], token *pipeline.CancelToken, progress pipeline.ProgressFunc) {
		progress(0.25, "batch 1/4")
		progress(0.5, "batch 2/4")
	}
	r := NewRunner[fakeParams](fp, store, nil)
	sink := store.Subscribe("j1")
	defer store.Unsubscribe("j1", sink)

	r.StartJob(pipeline.Job[fakeParams]{ID: "j1"})
	waitTerminal(t, store, "j1")

	var sawHalf bool
	for {
		select {
		case st := <-sink.C:
			if st.State == status.StateRunning && st.Progress == 0.5 && st.Message == "batch 2/4" {
				sawHalf = true
			}
			continue
		default:
		}
		break
	}
	if !sawHalf {
		t.Error("progress update 0.5 never published")
	}
}

func TestProgressClamped(t *testing.T) {
	store := status.NewStore()
	fp := &fakePipeline{}
	fp.run = func(job pipeline.Job[fakeParams], token *pipeline.CancelToken, progress pipeline.ProgressFunc) {
		progress(1.8, "over")
	}
	r := NewRunner[fakeParams](fp, store, nil)
	sink := store.Subscribe("j1")
	defer store.Unsubscribe("j1", sink)

	r.StartJob(pipeline.Job[fakeParams]{ID: "j1"})
	waitTerminal(t, store, "j1")

	for {
		select {
		case st := <-sink.C:
			if st.Progress > 1 {
				t.Errorf("progress %v exceeds 1", st.Progress)
			}
			continue
		default:
		}
		break
	}
}
