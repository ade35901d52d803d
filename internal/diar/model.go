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

// Package diar 说话人分离引擎：pyannote/sortformer 双后端、
// 段归一化、JSON 与 RTTM 产物。
package diar

// Segment 归一化后的说话人段
type Segment struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Speaker    string  `json:"speaker"`
	Duration   float64 `json:"duration"`
	Confidence float64 `json:"confidence"`
}

// PyannoteOptions 一次 pyannote 推理的全部调节项；nil 字段不下发
type PyannoteOptions struct {
	Device                  string
	TorchThreads            *int
	TorchInteropThreads     *int
	SegmentationOnset       *float64
	SegmentationOffset      *float64
	MinSpeakers             *int
	MaxSpeakers             *int
	SegmentationBatchSize   *int
	EmbeddingBatchSize      *int
	EmbeddingExcludeOverlap *bool
	Exclusive               bool
}

// PyannoteModel pyannote 管线句柄；实现负责设备放置与阈值注入
type PyannoteModel interface {
	Diarize(path string, opts PyannoteOptions) ([]Segment, error)
}

// StreamingParams sortformer 流式推理配置
type StreamingParams struct {
	ChunkLen             int
	ChunkRightContext    int
	FifoLen              int
	SpkCacheUpdatePeriod int
}

// SortformerModel sortformer 句柄；返回的段为任意形态，由 normalizeSegments 归一
type SortformerModel interface {
	Diarize(path string, batchSize int) ([]any, error)
}

// SortformerStreamer 支持流式参数设定的 sortformer 实现额外暴露该接口
type SortformerStreamer interface {
	SetupStreamingParams(p StreamingParams)
}

// SegmentLike 结构化段的最小只读视图，供 normalizeSegments 识别自定义类型
type SegmentLike interface {
	GetStart() float64
	GetEnd() float64
	GetLabel() string
}
