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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteRTTM 以 NIST RTTM 格式落盘；uri 取音频文件名去扩展名
func WriteRTTM(path string, audioPath string, segments []Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	uri := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	w := bufio.NewWriter(f)
	for _, s := range segments {
		duration := s.End - s.Start
		line := fmt.Sprintf("SPEAKER %s 1 %.3f %.3f <NA> <NA> %s <NA> <NA>\n",
			uri, s.Start, duration, s.Speaker)
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	return w.Flush()
}

// ReadRTTM 解析 SPEAKER 行；其他行与残缺行跳过
func ReadRTTM(path string) ([]Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var segments []Segment
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 8 || fields[0] != "SPEAKER" {
			continue
		}
		start, err1 := strconv.ParseFloat(fields[3], 64)
		dur, err2 := strconv.ParseFloat(fields[4], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		segments = append(segments, Segment{
			Start:      start,
			End:        start + dur,
			Speaker:    fields[7],
			Duration:   dur,
			Confidence: 1.0,
		})
	}
	return segments, scanner.Err()
}
