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
	"fmt"
	"strings"
)

// WordStamp 一个词及其全局时间
type WordStamp struct {
	Word  string
	Start float64
	End   float64
}

// WordSegment 分句结果：一句文本与组成它的词
type WordSegment struct {
	Text  string
	Start float64
	End   float64
	Words []WordStamp
}

// FormatTS 秒 → HH:MM:SS.mmm；小时超两位时自然溢出
func FormatTS(seconds float64) string {
	h := int(seconds / 3600)
	m := int(seconds/60) % 60
	s := seconds - float64(h)*3600 - float64(m)*60
	return fmt.Sprintf("%02d:%02d:%06.3f", h, m, s)
}

// WordTimestampsFromSegment 无模型时间戳时按字符长度插值；
// 最后一个词的 end 对齐到段末。
func WordTimestampsFromSegment(text string, start, end float64) []WordStamp {
	words := strings.Fields(text)
	if end <= start || len(words) == 0 {
		return nil
	}

	dur := end - start
	total := 0.0
	lengths := make([]float64, len(words))
	for i, w := range words {
		l := float64(len(w))
		if l < 1 {
			l = 1
		}
		lengths[i] = l
		total += l
	}

	out := make([]WordStamp, 0, len(words))
	t := start
	for i, w := range words {
		wEnd := t + dur*(lengths[i]/total)
		out = append(out, WordStamp{Word: w, Start: t, End: wEnd})
		t = wEnd
	}
	out[len(out)-1].End = end
	return out
}

// WordTimestampsFromTokens 空格前缀启发式：以空格开头的 token 开启新词，
// 其余 token 续接当前词；时间戳为 chunk 内相对时刻，offset 平移到全局。
func WordTimestampsFromTokens(tokens []string, timestamps []float64, segStart, segEnd float64) []WordStamp {
	if len(tokens) == 0 || len(timestamps) == 0 || len(tokens) != len(timestamps) {
		return nil
	}

	var words []WordStamp
	current := ""
	currentStart := 0.0
	haveStart := false

	for i, token := range tokens {
		t := timestamps[i] + segStart
		if !haveStart {
			currentStart = t
			haveStart = true
		}
		if strings.HasPrefix(token, " ") && current != "" {
			if word := strings.TrimSpace(current); word != "" {
				words = append(words, WordStamp{Word: word, Start: currentStart, End: t})
			}
			current = strings.TrimLeft(token, " ")
			currentStart = t
		} else {
			current += token
		}
	}

	if haveStart {
		if word := strings.TrimSpace(current); word != "" {
			end := currentStart
			if segEnd > currentStart {
				end = segEnd
			}
			words = append(words, WordStamp{Word: word, Start: currentStart, End: end})
		}
	}
	return words
}

// SplitSegmentsFromWords 按句末标点或词间停顿切分；
// gapS <= 0 视为未配置停顿切分。
func SplitSegmentsFromWords(words []WordStamp, gapS float64, useGap bool) []WordSegment {
	if len(words) == 0 {
		return nil
	}

	var segments []WordSegment
	var cur []WordStamp
	flush := func() {
		if len(cur) == 0 {
			return
		}
		parts := make([]string, len(cur))
		for i, w := range cur {
			parts[i] = w.Word
		}
		segments = append(segments, WordSegment{
			Text:  strings.Join(parts, " "),
			Start: cur[0].Start,
			End:   cur[len(cur)-1].End,
			Words: cur,
		})
		cur = nil
	}

	for i, w := range words {
		cur = append(cur, w)
		if strings.HasSuffix(w.Word, ".") || strings.HasSuffix(w.Word, "!") || strings.HasSuffix(w.Word, "?") {
			flush()
			continue
		}
		if useGap && gapS > 0 && i+1 < len(words) && words[i+1].Start-w.End >= gapS {
			flush()
		}
	}
	flush()
	return segments
}
