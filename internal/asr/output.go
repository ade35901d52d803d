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
	"bufio"
	"encoding/json"
	"os"
	"strings"
)

// WordEntry words.jsonl 一行；索引均为 1 起始的稠密编号
type WordEntry struct {
	GlobalWordIndex    int     `json:"global_word_index"`
	SegmentIndex       int     `json:"segment_index"`
	WordIndexInSegment int     `json:"word_index_in_segment"`
	Word               string  `json:"word"`
	Start              float64 `json:"start"`
	End                float64 `json:"end"`
}

type segmentRecord struct {
	SegmentIndex int     `json:"segment_index"`
	Start        float64 `json:"start"`
	End          float64 `json:"end"`
	StartHHMMSS  string  `json:"start_hhmmss"`
	EndHHMMSS    string  `json:"end_hhmmss"`
	Text         string  `json:"text"`
}

// WriteTranscript 段文本按空格拼接成单行全文
func WriteTranscript(path string, segments []Segment) error {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s.Text != "" {
			parts = append(parts, s.Text)
		}
	}
	content := strings.TrimSpace(strings.Join(parts, " "))
	return os.WriteFile(path, []byte(content+"\n"), 0o644)
}

// WriteSegmentsJSONL 每段一行 JSON，附人读时间戳
func WriteSegmentsJSONL(path string, segments []Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i, s := range segments {
		rec := segmentRecord{
			SegmentIndex: i + 1,
			Start:        s.Start,
			End:          s.End,
			StartHHMMSS:  FormatTS(s.Start),
			EndHHMMSS:    FormatTS(s.End),
			Text:         s.Text,
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteWordsJSONL 每词一行 JSON
func WriteWordsJSONL(path string, entries []WordEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, rec := range entries {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}
