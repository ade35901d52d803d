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
	"regexp"
	"strings"
)

// Segment 转写分句
type Segment struct {
	Text  string
	Start float64
	End   float64
}

// Duration 段时长，非负
func (s Segment) Duration() float64 {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// MergeShortSegments 把过短的段折叠进前一段：时长低于 attachThresholdS
// 或词数不超过 attachMaxWords 时并入前驱，前驱保留 start、延长 end 与文本。
func MergeShortSegments(segments []Segment, attachThresholdS float64, attachMaxWords int) []Segment {
	var merged []Segment
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		seg.Text = text
		attach := seg.Duration() < attachThresholdS || len(strings.Fields(text)) <= attachMaxWords
		if len(merged) > 0 && attach {
			prev := &merged[len(merged)-1]
			prev.Text = strings.TrimSpace(prev.Text + " " + seg.Text)
			if seg.End > prev.End {
				prev.End = seg.End
			}
			continue
		}
		merged = append(merged, seg)
	}
	return merged
}

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s']`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeText 小写化并去掉撇号外的标点，用于转写对比
func NormalizeText(text string) string {
	text = strings.ToLower(text)
	text = nonWordRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
