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
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// normalizeSegments 把 sortformer 返回的任意形态段统一为 Segment：
// 支持 "start end speaker" 字符串、三元组、map 与 SegmentLike 结构。
// 无法识别的条目丢弃；结果按 start 升序。
func normalizeSegments(raw []any) []Segment {
	// 有些实现把批次结果包一层单元素列表
	if len(raw) == 1 {
		if inner, ok := raw[0].([]any); ok {
			raw = inner
		}
	}

	entries := make([]Segment, 0, len(raw))
	for i, item := range raw {
		switch seg := item.(type) {
		case string:
			parts := strings.Fields(seg)
			if len(parts) < 3 {
				continue
			}
			start, err1 := strconv.ParseFloat(parts[0], 64)
			end, err2 := strconv.ParseFloat(parts[1], 64)
			if err1 != nil || err2 != nil {
				continue
			}
			entries = append(entries, Segment{
				Start: start, End: end, Speaker: parts[2],
				Duration: end - start, Confidence: 1.0,
			})
		case SegmentLike:
			start, end := seg.GetStart(), seg.GetEnd()
			entries = append(entries, Segment{
				Start: start, End: end, Speaker: seg.GetLabel(),
				Duration: end - start, Confidence: 1.0,
			})
		case []any:
			if len(seg) < 3 {
				continue
			}
			start, ok1 := toFloat(seg[0])
			end, ok2 := toFloat(seg[1])
			if !ok1 || !ok2 {
				continue
			}
			entries = append(entries, Segment{
				Start: start, End: end, Speaker: fmt.Sprint(seg[2]),
				Duration: end - start, Confidence: 1.0,
			})
		case map[string]any:
			start, _ := toFloat(seg["start"])
			end, _ := toFloat(seg["end"])
			speaker := ""
			if v, ok := seg["speaker"]; ok {
				speaker = fmt.Sprint(v)
			} else if v, ok := seg["label"]; ok {
				speaker = fmt.Sprint(v)
			} else {
				speaker = fmt.Sprintf("speaker_%d", i)
			}
			confidence := 1.0
			if v, ok := toFloat(seg["confidence"]); ok {
				confidence = v
			}
			entries = append(entries, Segment{
				Start: start, End: end, Speaker: speaker,
				Duration: end - start, Confidence: confidence,
			})
		case Segment:
			if seg.Duration == 0 {
				seg.Duration = seg.End - seg.Start
			}
			if seg.Confidence == 0 {
				seg.Confidence = 1.0
			}
			entries = append(entries, seg)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Start < entries[j].Start })
	return entries
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// diarizationPayload diarization.json 的顶层结构
type diarizationPayload struct {
	AudioFile      string         `json:"audio_file"`
	Model          string         `json:"model"`
	ModelID        string         `json:"model_id"`
	Segments       []Segment      `json:"segments"`
	Speakers       []string       `json:"speakers"`
	SpeakerCount   int            `json:"speaker_count"`
	TotalDuration  float64        `json:"total_duration"`
	ProcessingInfo processingInfo `json:"processing_info"`
}

type processingInfo struct {
	TotalSegments   int     `json:"total_segments"`
	TotalSpeechTime float64 `json:"total_speech_time"`
}

// buildPayload 汇总段列表与说话人集合
func buildPayload(inputPath, modelID, modelName string, segments []Segment, audioSeconds float64) diarizationPayload {
	seen := make(map[string]struct{})
	var speakers []string
	totalSpeech := 0.0
	for _, s := range segments {
		totalSpeech += s.Duration
		if _, ok := seen[s.Speaker]; !ok {
			seen[s.Speaker] = struct{}{}
			speakers = append(speakers, s.Speaker)
		}
	}
	sort.Strings(speakers)
	if speakers == nil {
		speakers = []string{}
	}
	if segments == nil {
		segments = []Segment{}
	}
	return diarizationPayload{
		AudioFile:     inputPath,
		Model:         modelName,
		ModelID:       modelID,
		Segments:      segments,
		Speakers:      speakers,
		SpeakerCount:  len(speakers),
		TotalDuration: audioSeconds,
		ProcessingInfo: processingInfo{
			TotalSegments:   len(segments),
			TotalSpeechTime: totalSpeech,
		},
	}
}
