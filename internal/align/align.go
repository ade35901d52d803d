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

// Package align 把 ASR 词时间轴对齐到说话人分离段：
// 先在 ±2s 内扫描整体偏移，再按最大重叠给每个词挂说话人。
package align

import (
	"encoding/json"
	"math"
	"os"

	"speech-engine/internal/asr"
	"speech-engine/internal/diar"
)

// AlignedWord 带说话人标注的词；Speaker 空串表示未覆盖
type AlignedWord struct {
	asr.WordEntry
	Speaker string `json:"speaker"`
}

const (
	offsetScanRange = 2.0
	offsetScanStep  = 0.05
)

// EstimateOffset 在 [-2s, +2s] 内以 50ms 步长找使词中点覆盖数最大的
// 整体偏移；增益不足（< max(2, 5% 词数)）时保持 0。
func EstimateOffset(words []asr.WordEntry, segments []diar.Segment) float64 {
	if len(words) == 0 || len(segments) == 0 {
		return 0
	}

	coverage := func(offset float64) int {
		count := 0
		for _, w := range words {
			mid := w.Start
			if w.End > w.Start {
				mid = (w.Start + w.End) / 2
			}
			for _, seg := range segments {
				if mid >= seg.Start+offset && mid <= seg.End+offset {
					count++
					break
				}
			}
		}
		return count
	}

	base := coverage(0)
	best, bestOffset := base, 0.0
	for offset := -offsetScanRange; offset <= offsetScanRange+1e-4; offset += offsetScanStep {
		if score := coverage(offset); score > best {
			best = score
			bestOffset = offset
		}
	}

	minGain := len(words) / 20
	if minGain < 2 {
		minGain = 2
	}
	if best-base < minGain {
		return 0
	}
	return math.Round(bestOffset*1000) / 1000
}

// AssignSpeakers 为每个词选与其区间重叠最大的说话人段
func AssignSpeakers(words []asr.WordEntry, segments []diar.Segment, offset float64) []AlignedWord {
	out := make([]AlignedWord, 0, len(words))
	for _, w := range words {
		start, end := w.Start, w.End
		if end < start {
			end = start
		}
		speaker := ""
		maxOverlap := 0.0
		for _, seg := range segments {
			overlapStart := math.Max(start, seg.Start+offset)
			overlapEnd := math.Min(end, seg.End+offset)
			if overlap := overlapEnd - overlapStart; overlap > maxOverlap {
				maxOverlap = overlap
				speaker = seg.Speaker
			}
		}
		out = append(out, AlignedWord{WordEntry: w, Speaker: speaker})
	}
	return out
}

type alignmentStats struct {
	WordCount     int            `json:"word_count"`
	SpeakerCounts map[string]int `json:"speaker_counts"`
	Unassigned    int            `json:"unassigned"`
	OffsetS       float64        `json:"offset_s"`
}

type alignmentPayload struct {
	Stats alignmentStats `json:"stats"`
	Words []AlignedWord  `json:"words"`
}

// WriteAlignment 落盘对齐结果与统计
func WriteAlignment(path string, words []AlignedWord, offset float64) error {
	stats := alignmentStats{
		WordCount:     len(words),
		SpeakerCounts: make(map[string]int),
		OffsetS:       offset,
	}
	for _, w := range words {
		if w.Speaker == "" {
			stats.Unassigned++
			continue
		}
		stats.SpeakerCounts[w.Speaker]++
	}
	buf, err := json.MarshalIndent(alignmentPayload{Stats: stats, Words: words}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}
