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

package diar

import (
	"strconv"
	"strings"
)

// JobParams 说话人分离 Job 参数；指针字段 nil 表示未指定
type JobParams struct {
	OutputFormat string // "rttm" | "json"
	Device       string // "auto" | "cpu" | "cuda"
	HFToken      string
	Model        string

	MinSpeakers *int
	MaxSpeakers *int

	SegmentationOnset  *float64
	SegmentationOffset *float64

	BatchSize     int
	StreamingMode bool
	ChunkLengthS  float64

	// sortformer 流式推理参数
	ChunkLen             int
	ChunkRightContext    int
	FifoLen              int
	SpkCacheUpdatePeriod int

	Exclusive               bool
	SegmentationBatchSize   *int
	EmbeddingBatchSize      *int
	EmbeddingExcludeOverlap *bool
	TorchThreads            *int
	TorchInteropThreads     *int
}

func parseBool(v string, def bool) bool {
	if v == "" {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	}
	return def
}

func parseInt(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func parseFloat(v string, def float64) float64 {
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

func optInt(kv map[string]string, key string) *int {
	raw, ok := kv[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}

func optBool(kv map[string]string, key string) *bool {
	raw, ok := kv[key]
	if !ok {
		return nil
	}
	b := parseBool(raw, false)
	return &b
}

// ParseParams 从 StartJob 的 string map 解析；非法值回退默认值，从不报错
func ParseParams(kv map[string]string) JobParams {
	outputFormat := kv["output_format"]
	if outputFormat == "" {
		outputFormat = "rttm"
	}
	device := strings.ToLower(kv["device"])
	if device == "" {
		device = "auto"
	}
	onset := parseFloat(kv["segmentation_onset"], 0.5)
	offset := parseFloat(kv["segmentation_offset"], 0.363)

	return JobParams{
		OutputFormat: outputFormat,
		Device:       device,
		HFToken:      kv["hf_token"],
		Model:        kv["model"],

		MinSpeakers: optInt(kv, "min_speakers"),
		MaxSpeakers: optInt(kv, "max_speakers"),

		SegmentationOnset:  &onset,
		SegmentationOffset: &offset,

		BatchSize:     parseInt(kv["batch_size"], 1),
		StreamingMode: parseBool(kv["streaming_mode"], false),
		ChunkLengthS:  parseFloat(kv["chunk_length_s"], 30.0),

		ChunkLen:             parseInt(kv["chunk_len"], 340),
		ChunkRightContext:    parseInt(kv["chunk_right_context"], 40),
		FifoLen:              parseInt(kv["fifo_len"], 40),
		SpkCacheUpdatePeriod: parseInt(kv["spkcache_update_period"], 300),

		Exclusive:               parseBool(kv["exclusive"], true),
		SegmentationBatchSize:   optInt(kv, "segmentation_batch_size"),
		EmbeddingBatchSize:      optInt(kv, "embedding_batch_size"),
		EmbeddingExcludeOverlap: optBool(kv, "embedding_exclude_overlap"),
		TorchThreads:            optInt(kv, "torch_threads"),
		TorchInteropThreads:     optInt(kv, "torch_interop_threads"),
	}
}
