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
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"speech-engine/internal/audio"
	"speech-engine/internal/engine/model"
	enginepipeline "speech-engine/internal/engine/pipeline"
	"speech-engine/pkg/errors"
	"speech-engine/pkg/log"
	"speech-engine/pkg/utils"
)

// Pipeline 分块批量 ASR 管线，实现 runner 契约
type Pipeline struct {
	models  *model.Manager
	decoder audio.Decoder
	logger  *log.Logger
}

func NewPipeline(models *model.Manager, decoder audio.Decoder, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Nop()
	}
	return &Pipeline{models: models, decoder: decoder, logger: logger}
}

type chunk struct {
	samples []float32
	startS  float64
	endS    float64
}

type resultManifest struct {
	ModelID       string          `json:"model_id"`
	ModelName     string          `json:"model_name"`
	AudioPath     string          `json:"audio_path"`
	OutputDir     string          `json:"output_dir"`
	SegmentCount  int             `json:"segment_count"`
	AudioSeconds  float64         `json:"audio_seconds"`
	CreatedUnixMs int64           `json:"created_unix_ms"`
	Params        manifestParams  `json:"params"`
	Outputs       manifestOutputs `json:"outputs"`
}

type manifestParams struct {
	Language       string   `json:"language"`
	TargetLanguage string   `json:"target_language"`
	PNC            string   `json:"pnc"`
	ChunkLenS      float64  `json:"chunk_len_s"`
	ChunkBatchSize int      `json:"chunk_batch_size"`
	SegmentGapS    *float64 `json:"segment_gap_s"`
}

type manifestOutputs struct {
	Transcript string  `json:"transcript"`
	Segments   *string `json:"segments"`
	Words      *string `json:"words"`
}

// Run 执行一次转写 Job；返回产物路径映射
func (p *Pipeline) Run(ctx context.Context, job enginepipeline.Job[JobParams], token *enginepipeline.CancelToken, progress enginepipeline.ProgressFunc) (enginepipeline.Outputs, error) {
	params := job.Params
	if err := utils.EnsureDir(job.OutputDir); err != nil {
		return nil, err
	}

	loaded := p.models.GetLoaded()
	if loaded == nil {
		return nil, errors.ErrNoModelLoaded
	}
	rec, ok := loaded.Handle.(Recognizer)
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnsupportedModel, "model %s is not a recognizer", loaded.Spec.ModelID)
	}
	if params.IncludeWords || params.IncludeSegments {
		if tc, ok := rec.(TimestampCapable); ok {
			rec = tc.WithTimestamps()
		}
	}

	samples, sr, err := p.decoder.Decode(job.InputPath, params.SampleRate)
	if err != nil {
		return nil, err
	}
	audioSeconds := 0.0
	if sr > 0 {
		audioSeconds = float64(len(samples)) / float64(sr)
	}

	opts := RecognizeOptions{
		SampleRate:     sr,
		Language:       params.Language,
		TargetLanguage: params.TargetLanguage,
		PNC:            params.PNC,
	}

	chunkLenS := params.ChunkLenS
	if chunkLenS < 1.0 {
		chunkLenS = 1.0
	}
	batchSize := params.ChunkBatchSize
	if batchSize < 1 {
		batchSize = 1
	}

	chunkSamples := int(chunkLenS * float64(sr))
	var chunks []chunk
	for start := 0; start < len(samples); start += chunkSamples {
		end := start + chunkSamples
		if end > len(samples) {
			end = len(samples)
		}
		chunks = append(chunks, chunk{
			samples: samples[start:end],
			startS:  float64(start) / float64(sr),
			endS:    float64(end) / float64(sr),
		})
	}

	var segments []Segment
	var wordEntries []WordEntry
	segmentIndex := 0

	for batchStart := 0; batchStart < len(chunks); batchStart += batchSize {
		batchEnd := batchStart + batchSize
		if batchEnd > len(chunks) {
			batchEnd = len(chunks)
		}
		batch := chunks[batchStart:batchEnd]
		batchAudio := make([][]float32, len(batch))
		for i, c := range batch {
			batchAudio[i] = c.samples
		}

		results, err := rec.Recognize(batchAudio, opts)
		if err != nil {
			return nil, fmt.Errorf("recognize batch: %w", err)
		}

		for i, c := range batch {
			if token.Cancelled() {
				return nil, errors.ErrCancelled
			}
			if i >= len(results) {
				break
			}
			res := results[i]
			segs := p.chunkSegments(c, res, params)
			for _, seg := range segs {
				segments = append(segments, Segment{Text: seg.Text, Start: seg.Start, End: seg.End})
				segmentIndex++
				if params.IncludeWords {
					for wi, w := range seg.Words {
						wordEntries = append(wordEntries, WordEntry{
							GlobalWordIndex:    len(wordEntries) + 1,
							SegmentIndex:       segmentIndex,
							WordIndexInSegment: wi + 1,
							Word:               w.Word,
							Start:              w.Start,
							End:                w.End,
						})
					}
				}
			}
		}

		if audioSeconds > 0 {
			end := batch[len(batch)-1].endS
			progress(utils.Clamp01(end/audioSeconds), "transcribing")
		}
	}

	if params.MergeShortSegments {
		segments = MergeShortSegments(segments, params.MergeAttachThreshold, params.MergeAttachMaxWords)
	}

	return p.writeOutputs(job, loaded, params, segments, wordEntries, audioSeconds)
}

// chunkSegments 从单个 chunk 的识别结果推导词时间与分句
func (p *Pipeline) chunkSegments(c chunk, res RecognizeResult, params JobParams) []WordSegment {
	text := strings.TrimSpace(res.Text)
	if text == "" {
		return nil
	}

	segStart, segEnd := c.startS, c.endS
	var words []WordStamp
	if len(res.Tokens) > 0 && len(res.Timestamps) > 0 {
		minTS, maxTS := res.Timestamps[0], res.Timestamps[0]
		for _, ts := range res.Timestamps[1:] {
			if ts < minTS {
				minTS = ts
			}
			if ts > maxTS {
				maxTS = ts
			}
		}
		segStart = c.startS + minTS
		segEnd = c.startS + maxTS
		words = WordTimestampsFromTokens(res.Tokens, res.Timestamps, segStart, segEnd)
	}
	if len(words) == 0 {
		words = WordTimestampsFromSegment(text, segStart, segEnd)
	}

	segs := SplitSegmentsFromWords(words, params.SegmentGapS, params.HasSegmentGap)
	if len(segs) == 0 {
		segs = []WordSegment{{Text: text, Start: segStart, End: segEnd, Words: words}}
	}
	return segs
}

func (p *Pipeline) writeOutputs(job enginepipeline.Job[JobParams], loaded *model.Loaded, params JobParams, segments []Segment, wordEntries []WordEntry, audioSeconds float64) (enginepipeline.Outputs, error) {
	transcriptPath := filepath.Join(job.OutputDir, "transcript.txt")
	segmentsPath := filepath.Join(job.OutputDir, "segments.jsonl")
	wordsPath := filepath.Join(job.OutputDir, "words.jsonl")
	resultPath := filepath.Join(job.OutputDir, "result.json")

	if err := WriteTranscript(transcriptPath, segments); err != nil {
		return nil, err
	}

	outputs := enginepipeline.Outputs{
		"transcript": transcriptPath,
		"result":     resultPath,
	}
	manifestOut := manifestOutputs{Transcript: transcriptPath}

	if params.IncludeSegments {
		if err := WriteSegmentsJSONL(segmentsPath, segments); err != nil {
			return nil, err
		}
		outputs["segments"] = segmentsPath
		manifestOut.Segments = &segmentsPath
	}
	if params.IncludeWords {
		if err := WriteWordsJSONL(wordsPath, wordEntries); err != nil {
			return nil, err
		}
		outputs["words"] = wordsPath
		manifestOut.Words = &wordsPath
	}

	var gap *float64
	if params.HasSegmentGap {
		gap = &params.SegmentGapS
	}
	manifest := resultManifest{
		ModelID:       loaded.Spec.ModelID,
		ModelName:     loaded.Spec.ModelName,
		AudioPath:     job.InputPath,
		OutputDir:     job.OutputDir,
		SegmentCount:  len(segments),
		AudioSeconds:  audioSeconds,
		CreatedUnixMs: utils.NowMs(),
		Params: manifestParams{
			Language:       params.Language,
			TargetLanguage: params.TargetLanguage,
			PNC:            params.PNC,
			ChunkLenS:      params.ChunkLenS,
			ChunkBatchSize: params.ChunkBatchSize,
			SegmentGapS:    gap,
		},
		Outputs: manifestOut,
	}
	buf, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(resultPath, buf, 0o644); err != nil {
		return nil, err
	}

	p.logger.Info("transcription written",
		"job_id", job.ID, "segments", len(segments), "audio_seconds", audioSeconds)
	return outputs, nil
}
