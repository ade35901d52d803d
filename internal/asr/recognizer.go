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

// Package asr 语音识别引擎：分块批量推理、词级时间戳、分句与产物落盘。
package asr

// RecognizeOptions 透传给模型的识别参数；模型实现忽略自己不认识的字段
type RecognizeOptions struct {
	SampleRate     int
	Language       string
	TargetLanguage string
	PNC            string
}

// RecognizeResult 单个 chunk 的识别结果；Tokens/Timestamps 可为空
type RecognizeResult struct {
	Text       string
	Tokens     []string
	Timestamps []float64
}

// Recognizer ASR 模型句柄；batch 内每条音频对应一个结果
type Recognizer interface {
	Recognize(batch [][]float32, opts RecognizeOptions) ([]RecognizeResult, error)
}

// TimestampCapable 支持时间戳增强变体的模型实现该接口；
// 需要词/段输出时管线切换到 WithTimestamps 返回的句柄。
type TimestampCapable interface {
	WithTimestamps() Recognizer
}
