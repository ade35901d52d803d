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

package metrics

import (
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/shirou/gopsutil/v3/process"
)

// 全局 Registry，引擎进程注册与暴露
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(
		JobDuration, JobTotal, JobFailTotal,
		JobProgress, EngineBusy, ModelLoaded,
	)
}

// JobDuration Job 执行耗时（秒）
var JobDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "engine_job_duration_seconds",
		Help:    "Job 执行耗时（秒）",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
	},
)

// JobTotal Job 总数（按终态）
var JobTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "engine_job_total",
		Help: "Job 总数（按终态）",
	},
	[]string{"state"}, // completed | failed | cancelled
)

// JobFailTotal Job 失败/取消总数（与 JobTotal 配合可算失败率）
var JobFailTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "engine_job_fail_total",
		Help: "Job 失败/取消总数",
	},
	[]string{"state"}, // failed | cancelled
)

// JobProgress 当前活跃 Job 的进度 [0,1]
var JobProgress = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "engine_job_progress",
		Help: "当前活跃 Job 的进度",
	},
)

// EngineBusy 是否有活跃 Job（0/1）
var EngineBusy = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "engine_busy",
		Help: "是否有活跃 Job",
	},
)

// ModelLoaded 是否有已加载模型（0/1）
var ModelLoaded = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "engine_model_loaded",
		Help: "是否有已加载模型",
	},
)

// RSSBytes 当前进程常驻内存；失败时返回 0（GetEngineInfo 容忍）
func RSSBytes() int64 {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0
	}
	info, err := p.MemoryInfo()
	if err != nil || info == nil {
		return 0
	}
	return int64(info.RSS)
}

// WritePrometheus 将 Prometheus 文本格式写入 w
func WritePrometheus(w io.Writer) error {
	metrics, err := DefaultRegistry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range metrics {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
