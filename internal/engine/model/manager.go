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

// Package model 单槽位模型生命周期管理：同一时刻最多持有一个已加载模型。
package model

import (
	"strings"
	"sync"
	"time"

	"speech-engine/pkg/errors"
	"speech-engine/pkg/metrics"
)

// Spec 模型描述；字段与 LoadModel 请求一一对应
type Spec struct {
	ModelID        string
	ModelName      string
	ModelPath      string
	Providers      []string
	IntraOpThreads int
	VADBackend     string
}

// Loaded 槽位中的模型；Handle 为引擎后端持有的不透明句柄
type Loaded struct {
	Spec     Spec
	Kind     string
	Handle   any
	LoadedAt time.Time
	Token    string
}

// Loader 具体后端的加载函数；token 仅 pyannote 类模型使用
type Loader func(spec Spec, token string) (*Loaded, error)

// Manager 单槽位管理器；Load/Unload/EnsureLoaded 串行化
type Manager struct {
	mu     sync.Mutex
	loader Loader
	loaded *Loaded
}

func NewManager(loader Loader) *Manager {
	return &Manager{loader: loader}
}

// Load 替换槽位内容；失败时槽位清空并返回 ErrLoadFailed
func (m *Manager) Load(spec Spec, token string) (*Loaded, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadLocked(spec, token)
}

func (m *Manager) loadLocked(spec Spec, token string) (*Loaded, error) {
	loaded, err := m.loader(spec, token)
	if err != nil {
		m.loaded = nil
		metrics.ModelLoaded.Set(0)
		return nil, errors.Wrapf(errors.ErrLoadFailed, "load model %s: %v", spec.ModelID, err)
	}
	loaded.Spec = spec
	loaded.Token = token
	if loaded.LoadedAt.IsZero() {
		loaded.LoadedAt = time.Now()
	}
	m.loaded = loaded
	metrics.ModelLoaded.Set(1)
	return loaded, nil
}

// Unload 卸载当前模型；modelID 非空时仅在匹配当前槽位才卸载。
// 槽位为空或不匹配返回 false。
func (m *Manager) Unload(modelID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loaded == nil {
		return false
	}
	if modelID != "" && m.loaded.Spec.ModelID != modelID {
		return false
	}
	m.loaded = nil
	metrics.ModelLoaded.Set(0)
	return true
}

// GetLoaded 返回当前槽位内容；为空时返回 nil
func (m *Manager) GetLoaded() *Loaded {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

// EnsureLoaded 槽位为空、model_id 不同、或 pyannote 模型换了 hf_token 时重新加载，
// 否则复用已有句柄。
func (m *Manager) EnsureLoaded(spec Spec, token string) (*Loaded, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loaded != nil && m.loaded.Spec.ModelID == spec.ModelID {
		if spec.ModelID != "pyannote" || token == "" || m.loaded.Token == token {
			return m.loaded, nil
		}
	}
	return m.loadLocked(spec, token)
}

// ResolveDevice providers 为空返回 auto；任一 provider 提及 CUDA 或
// TensorRT 则返回 cuda，否则 cpu。
func ResolveDevice(providers []string) string {
	if len(providers) == 0 {
		return "auto"
	}
	for _, p := range providers {
		lower := strings.ToLower(p)
		if strings.Contains(lower, "cuda") || strings.Contains(lower, "tensorrt") {
			return "cuda"
		}
	}
	return "cpu"
}
