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

// Package pipeline 定义 Job 执行管线与 Runner 之间的契约。
package pipeline

import (
	"context"
	"sync"
)

// Job 一次推理任务的输入；Params 为各引擎自己的参数类型
type Job[P any] struct {
	ID         string
	InputPath  string
	OutputDir  string
	ModelID    string
	Params     P
	RawParams  map[string]string
}

// Outputs 产物名到绝对路径的映射
type Outputs map[string]string

// ProgressFunc 管线上报进度；progress ∈ [0,1]
type ProgressFunc func(progress float64, message string)

// Pipeline 一条可取消的分块处理管线
type Pipeline[P any] interface {
	Run(ctx context.Context, job Job[P], token *CancelToken, progress ProgressFunc) (Outputs, error)
}

// CancelToken 协作式取消；Cancel 幂等，Cancelled 可被管线在批次边界轮询
type CancelToken struct {
	once sync.Once
	done chan struct{}
}

func NewCancelToken() *CancelToken {
	return &CancelToken{done: make(chan struct{})}
}

// Cancel 置位取消标志；重复调用无害
func (t *CancelToken) Cancel() {
	t.once.Do(func() { close(t.done) })
}

// Cancelled 是否已请求取消
func (t *CancelToken) Cancelled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Done 取消信号通道，供 select 使用
func (t *CancelToken) Done() <-chan struct{} {
	return t.done
}
