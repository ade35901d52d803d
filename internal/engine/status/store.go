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

// Package status 按 job_id 缓存最新 JobStatus 并向订阅者扇出；
// 同一 job_id 的发布顺序即所有订阅者看到的顺序。
package status

import (
	"sync"
)

// State Job 状态；只允许 QUEUED → RUNNING → 终态 的单向迁移
type State string

const (
	StateQueued    State = "QUEUED"
	StateRunning   State = "RUNNING"
	StateCompleted State = "COMPLETED"
	StateFailed    State = "FAILED"
	StateCancelled State = "CANCELLED"
)

// Terminal 是否为终态
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

// JobStatus 一个 Job 的进度快照
type JobStatus struct {
	JobID          string
	State          State
	Message        string
	Progress       float64
	Outputs        map[string]string
	StartedUnixMs  int64
	FinishedUnixMs int64
}

// sinkBuffer 每个订阅者的有界缓冲；慢订阅者丢最旧事件，不阻塞发布方
const sinkBuffer = 64

// Sink 订阅者接收端；C 只读，生命周期由 Unsubscribe 结束
type Sink struct {
	C chan JobStatus
}

func (k *Sink) put(st JobStatus) {
	for {
		select {
		case k.C <- st:
			return
		default:
			// 缓冲满：丢最旧一条再试，保证终态最终可达
			select {
			case <-k.C:
			default:
			}
		}
	}
}

// Store 进程级状态存储；所有读写持锁，保证单 id 全序
type Store struct {
	mu       sync.Mutex
	statuses map[string]JobStatus
	subs     map[string][]*Sink
}

// NewStore 创建空 Store
func NewStore() *Store {
	return &Store{
		statuses: make(map[string]JobStatus),
		subs:     make(map[string][]*Sink),
	}
}

// Set 原子替换 job_id 的最新状态并扇出给所有订阅者
func (s *Store) Set(st JobStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[st.JobID] = st
	for _, sink := range s.subs[st.JobID] {
		sink.put(st)
	}
}

// Get 返回最新状态；不存在时 ok 为 false
func (s *Store) Get(jobID string) (JobStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.statuses[jobID]
	return st, ok
}

// Subscribe 返回新 Sink；若已有状态则先投递当前值再接收后续更新
func (s *Store) Subscribe(jobID string) *Sink {
	s.mu.Lock()
	defer s.mu.Unlock()
	sink := &Sink{C: make(chan JobStatus, sinkBuffer)}
	s.subs[jobID] = append(s.subs[jobID], sink)
	if st, ok := s.statuses[jobID]; ok {
		sink.put(st)
	}
	return sink
}

// Unsubscribe 移除订阅者；幂等
func (s *Store) Unsubscribe(jobID string, sink *Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subs := s.subs[jobID]
	for i, existing := range subs {
		if existing == sink {
			s.subs[jobID] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(s.subs[jobID]) == 0 {
		delete(s.subs, jobID)
	}
}

// Reset 清空全部状态与订阅者（仅测试使用）
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = make(map[string]JobStatus)
	s.subs = make(map[string][]*Sink)
}
