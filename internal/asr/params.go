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

package asr

import (
	"strconv"
	"strings"
)

// JobParams ASR Job 参数；零值无效，必须经 ParseParams 构造
type JobParams struct {
	ChunkLenS      float64
	ChunkBatchSize int
	SegmentGapS    float64 // <=0 表示未配置
	HasSegmentGap  bool

	IncludeSegments      bool
	IncludeWords         bool
	MergeShortSegments   bool
	MergeAttachThreshold float64
	MergeAttachMaxWords  int

	SampleRate     int
	Language       string
	TargetLanguage string
	// PNC 标点与大小写："pnc"/"nopnc" 为模型原生取值，
	// "on"/"off" 为布尔写法归一化结果，空串表示未指定
	PNC string

	VAD VADParams
}

// VADParams 语音活性检测参数；当前管线不消费，仅解析透传
type VADParams struct {
	Enabled      bool
	SpeechPadMs  int
	MinSilenceMs int
	MinSpeechMs  int
	MaxSpeechS   int
	Preset       string
}

// vadPresets 预设三档；依次为 pad/min_silence/min_speech/max_speech_s
var vadPresets = map[string][4]int{
	"conservative": {400, 800, 300, 30},
	"balanced":     {300, 600, 200, 25},
	"aggressive":   {150, 300, 120, 20},
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

// parsePNC 识别 pnc/nopnc 与布尔写法；无法识别时返回空串
func parsePNC(v string) string {
	val := strings.ToLower(strings.TrimSpace(v))
	switch val {
	case "pnc", "nopnc":
		return val
	case "1", "true", "yes", "y", "on":
		return "on"
	case "0", "false", "no", "n", "off":
		return "off"
	}
	return ""
}

// ParseParams 从 StartJob 的 string map 解析；非法值回退默认值，从不报错
func ParseParams(kv map[string]string) JobParams {
	p := JobParams{
		ChunkLenS:            parseFloat(kv["chunk_len_s"], 300.0),
		ChunkBatchSize:       parseInt(kv["chunk_batch_size"], 8),
		IncludeSegments:      parseBool(kv["include_segments"], true),
		IncludeWords:         parseBool(kv["include_words"], true),
		MergeShortSegments:   parseBool(kv["merge_short_segments"], true),
		MergeAttachThreshold: parseFloat(kv["merge_attach_threshold_s"], 0.25),
		MergeAttachMaxWords:  parseInt(kv["merge_attach_max_words"], 2),
		SampleRate:           parseInt(kv["sample_rate"], 16000),
		Language:             kv["language"],
		TargetLanguage:       kv["target_language"],
		PNC:                  parsePNC(kv["pnc"]),
	}
	if p.ChunkLenS == 0 {
		p.ChunkLenS = 300.0
	}
	if p.ChunkBatchSize == 0 {
		p.ChunkBatchSize = 8
	}
	if raw, ok := kv["segment_gap_s"]; ok && strings.TrimSpace(raw) != "" {
		if gap, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			p.SegmentGapS = gap
			p.HasSegmentGap = true
		}
	}
	p.VAD = parseVAD(kv)
	return p
}

// parseVAD 先套用 vad_preset，再让单项 vad_* 键覆盖
func parseVAD(kv map[string]string) VADParams {
	v := VADParams{
		SpeechPadMs:  vadPresets["balanced"][0],
		MinSilenceMs: vadPresets["balanced"][1],
		MinSpeechMs:  vadPresets["balanced"][2],
		MaxSpeechS:   vadPresets["balanced"][3],
		Preset:       "balanced",
	}
	if preset, ok := vadPresets[strings.ToLower(kv["vad_preset"])]; ok {
		v.Preset = strings.ToLower(kv["vad_preset"])
		v.SpeechPadMs = preset[0]
		v.MinSilenceMs = preset[1]
		v.MinSpeechMs = preset[2]
		v.MaxSpeechS = preset[3]
	}
	v.Enabled = parseBool(kv["vad_enabled"], false)
	v.SpeechPadMs = parseInt(kv["vad_speech_pad_ms"], v.SpeechPadMs)
	v.MinSilenceMs = parseInt(kv["vad_min_silence_ms"], v.MinSilenceMs)
	v.MinSpeechMs = parseInt(kv["vad_min_speech_ms"], v.MinSpeechMs)
	v.MaxSpeechS = parseInt(kv["vad_max_speech_s"], v.MaxSpeechS)
	return v
}
