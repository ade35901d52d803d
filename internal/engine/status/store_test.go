package status

import (
	"testing"
	"time"
)

func recvOne(t *testing.T, sink *Sink) JobStatus {
	t.Helper()
	select {
	case st := <-sink.C:
		return st
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for status")
		return JobStatus{}
	}
}

func TestGetMissing(t *testing.T) {
	s := NewStore()
	if _, ok := s.Get("nope"); ok {
		t.Error("expected ok=false for unknown job id")
	}
}

func TestSetThenGet(t *testing.T) {
	s := NewStore()
	s.Set(JobStatus{JobID: "j1", State: StateRunning, Progress: 0.5, Message: "half"})
	st, ok := s.Get("j1")
	if !ok {
		t.Fatal("expected status for j1")
	}
	if st.State != StateRunning || st.Progress != 0.5 {
		t.Errorf("got %+v", st)
	}
}

func TestSubscribeReplaysCurrent(t *testing.T) {
	s := NewStore()
	s.Set(JobStatus{JobID: "j1", State: StateCompleted, Progress: 1})
	sink := s.Subscribe("j1")
	defer s.Unsubscribe("j1", sink)

	st := recvOne(t, sink)
	if st.State != StateCompleted {
		t.Errorf("replay state = %s, want COMPLETED", st.State)
	}
}

func TestSubscribeBeforeAnyStatus(t *testing.T) {
	s := NewStore()
	sink := s.Subscribe("j1")
	defer s.Unsubscribe("j1", sink)

	select {
	case st := <-sink.C:
		t.Fatalf("unexpected delivery before first Set: %+v", st)
	default:
	}

	s.Set(JobStatus{JobID: "j1", State: StateQueued})
	if st := recvOne(t, sink); st.State != StateQueued {
		t.Errorf("state = %s, want QUEUED", st.State)
	}
}

func TestPerJobOrdering(t *testing.T) {
	s := NewStore()
	sink := s.Subscribe("j1")
	defer s.Unsubscribe("j1", sink)

	want := []State{StateQueued, StateRunning, StateRunning, StateCompleted}
	for i, state := range want {
		s.Set(JobStatus{JobID: "j1", State: state, Progress: float64(i) / 3})
	}
	for i, state := range want {
		st := recvOne(t, sink)
		if st.State != state {
			t.Fatalf("event %d: state = %s, want %s", i, st.State, state)
		}
	}
}

func TestFanOutToMultipleSubscribers(t *testing.T) {
	s := NewStore()
	a := s.Subscribe("j1")
	b := s.Subscribe("j1")
	defer s.Unsubscribe("j1", a)
	defer s.Unsubscribe("j1", b)

	s.Set(JobStatus{JobID: "j1", State: StateRunning, Progress: 0.2})
	for _, sink := range []*Sink{a, b} {
		st := recvOne(t, sink)
		if st.Progress != 0.2 {
			t.Errorf("progress = %v, want 0.2", st.Progress)
		}
	}
}

func TestSubscribersAreIsolatedByJobID(t *testing.T) {
	s := NewStore()
	sink := s.Subscribe("j1")
	defer s.Unsubscribe("j1", sink)

	s.Set(JobStatus{JobID: "j2", State: StateRunning})
	select {
	case st := <-sink.C:
		t.Fatalf("j1 subscriber got event for %s", st.JobID)
	default:
	}
}

func TestSlowSubscriberDropsOldestKeepsTerminal(t *testing.T) {
	s := NewStore()
	sink := s.Subscribe("j1")
	defer s.Unsubscribe("j1", sink)

	// 超过缓冲容量的发布不能阻塞；最后一条终态必须可达
	for i := 0; i < sinkBuffer*3; i++ {
		s.Set(JobStatus{JobID: "j1", State: StateRunning, Progress: float64(i)})
	}
	s.Set(JobStatus{JobID: "j1", State: StateCompleted, Progress: 1})

	var last JobStatus
	for {
		select {
		case last = <-sink.C:
			continue
		default:
		}
		break
	}
	if last.State != StateCompleted {
		t.Errorf("last buffered state = %s, want COMPLETED", last.State)
	}
}

func TestUnsubscribeIdempotent(t *testing.T) {
	s := NewStore()
	sink := s.Subscribe("j1")
	s.Unsubscribe("j1", sink)
	s.Unsubscribe("j1", sink)

	s.Set(JobStatus{JobID: "j1", State: StateRunning})
	select {
	case <-sink.C:
		t.Error("unsubscribed sink received event")
	default:
	}
}

func TestReset(t *testing.T) {
	s := NewStore()
	s.Set(JobStatus{JobID: "j1", State: StateCompleted})
	s.Reset()
	if _, ok := s.Get("j1"); ok {
		t.Error("status survived Reset")
	}
}

func TestTerminal(t *testing.T) {
	for _, st := range []State{StateCompleted, StateFailed, StateCancelled} {
		if !st.Terminal() {
			t.Errorf("%s should be terminal", st)
		}
	}
	for _, st := range []State{StateQueued, StateRunning} {
		if st.Terminal() {
			t.Errorf("%s should not be terminal", st)
		}
	}
}
